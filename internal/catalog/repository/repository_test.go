package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
	"github.com/narwhalmedia/catalog/internal/catalog/repository"
	"github.com/narwhalmedia/catalog/internal/domain/specification"
	"github.com/narwhalmedia/catalog/pkg/pagination"
	"github.com/narwhalmedia/catalog/test/testutil"
)

type StoreTestSuite struct {
	suite.Suite
	store *repository.GormStore
	ctx   context.Context
	owner *domain.User
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) SetupTest() {
	s.store = testutil.NewStore(s.T())
	s.ctx = context.Background()
	s.owner = testutil.CreateTestUser(s.T(), s.store, "owner")
}

func firstPage() pagination.Request {
	return pagination.Request{Page: 0, Size: 20}
}

func (s *StoreTestSuite) newGame(title string) *domain.Game {
	dev := testutil.CreateTestDeveloper(s.T(), s.store, title+" Studio")
	genre := testutil.CreateTestGenre(s.T(), s.store, title+" Genre")
	platform := testutil.CreateTestPlatform(s.T(), s.store, title+" Platform")
	return testutil.CreateTestGame(s.T(), s.store, title, s.owner.ID, dev,
		[]domain.Genre{*genre}, []domain.Platform{*platform})
}

func (s *StoreTestSuite) TestCatalog_CaseInsensitiveUniqueness() {
	testutil.CreateTestGenre(s.T(), s.store, "Action")

	err := s.store.Genres().Create(s.ctx, &domain.Genre{Name: "ACTION"})
	s.ErrorIs(err, domain.ErrGenreAlreadyExists)

	found, err := s.store.Genres().FindByNameIgnoreCase(s.ctx, " action ")
	s.Require().NoError(err)
	s.Require().NotNil(found)
	s.Equal("Action", found.Name)

	missing, err := s.store.Genres().FindByNameIgnoreCase(s.ctx, "Puzzle")
	s.NoError(err)
	s.Nil(missing)
}

func (s *StoreTestSuite) TestCatalog_FindAllFiltersByName() {
	for _, name := range []string{"Nintendo", "Sony", "Nintendo EPD"} {
		testutil.CreateTestDeveloper(s.T(), s.store, name)
	}

	items, total, err := s.store.Developers().FindAll(s.ctx, domain.NameFilter("name", "nintendo"), firstPage())
	s.Require().NoError(err)
	s.Equal(int64(2), total)
	s.Require().Len(items, 2)
	s.Equal("Nintendo", items[0].Name)
	s.Equal("Nintendo EPD", items[1].Name)

	_, total, err = s.store.Developers().FindAll(s.ctx, specification.All(), firstPage())
	s.Require().NoError(err)
	s.Equal(int64(3), total)
}

func (s *StoreTestSuite) TestCatalog_FindByIDNotFound() {
	_, err := s.store.Platforms().FindByID(s.ctx, 404)
	s.ErrorIs(err, domain.ErrPlatformNotFound)

	err = s.store.Platforms().Delete(s.ctx, 404)
	s.ErrorIs(err, domain.ErrPlatformNotFound)
}

func (s *StoreTestSuite) TestCatalog_IsReferenced() {
	game := s.newGame("Zelda")

	referenced, err := s.store.Genres().IsReferenced(s.ctx, game.Genres[0].ID)
	s.Require().NoError(err)
	s.True(referenced)

	referenced, err = s.store.Developers().IsReferenced(s.ctx, game.DeveloperID)
	s.Require().NoError(err)
	s.True(referenced)

	unused := testutil.CreateTestPlatform(s.T(), s.store, "Amiga")
	referenced, err = s.store.Platforms().IsReferenced(s.ctx, unused.ID)
	s.Require().NoError(err)
	s.False(referenced)
}

func (s *StoreTestSuite) TestCrew_UniqueByNameAndBirthDate() {
	birth := testutil.Date(1974, time.November, 11)
	testutil.CreateTestCrew(s.T(), s.store, "Leonardo DiCaprio", birth, s.owner.ID)

	found, err := s.store.Crew().FindByFullNameIgnoreCaseAndBirthDate(s.ctx, "leonardo dicaprio", birth.Add(13*time.Hour))
	s.Require().NoError(err)
	s.Require().NotNil(found)

	other, err := s.store.Crew().FindByFullNameIgnoreCaseAndBirthDate(s.ctx, "Leonardo DiCaprio", birth.AddDate(0, 0, 1))
	s.Require().NoError(err)
	s.Nil(other)

	err = s.store.Crew().Create(s.ctx, &domain.MovieCrew{FullName: "LEONARDO DICAPRIO", BirthDate: birth, CreatorID: s.owner.ID})
	s.ErrorIs(err, domain.ErrCrewAlreadyExists)
}

func (s *StoreTestSuite) TestMediaIDsAreUniqueAcrossVariants() {
	game := s.newGame("Portal")
	movie := testutil.CreateTestMovie(s.T(), s.store, "Inception", s.owner.ID)

	s.NotZero(game.ID)
	s.NotZero(movie.ID)
	s.NotEqual(game.ID, movie.ID)

	_, err := s.store.Movies().FindByID(s.ctx, game.ID)
	s.ErrorIs(err, domain.ErrMovieNotFound)
	_, err = s.store.Games().FindByID(s.ctx, movie.ID)
	s.ErrorIs(err, domain.ErrGameNotFound)
}

func (s *StoreTestSuite) TestGame_FindByIDLoadsAssociationsAndCounts() {
	game := s.newGame("Hades")
	fan := testutil.CreateTestUser(s.T(), s.store, "fan")

	s.Require().NoError(s.store.Likes().Create(s.ctx, &domain.Like{UserID: fan.ID, MediaID: game.ID}))
	s.Require().NoError(s.store.Reviews().Create(s.ctx, &domain.Review{UserID: fan.ID, MediaID: game.ID, Score: 9}))
	s.Require().NoError(s.store.Likes().Create(s.ctx, &domain.Like{UserID: s.owner.ID, MediaID: game.ID}))

	found, err := s.store.Games().FindByID(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Require().NotNil(found.Developer)
	s.Equal("Hades Studio", found.Developer.Name)
	s.Equal([]string{"Hades Genre"}, found.GenreNames())
	s.Equal([]string{"Hades Platform"}, found.PlatformNames())
	s.Equal(int64(2), found.LikeCount)
	s.Equal(int64(1), found.ReviewCount)
}

func (s *StoreTestSuite) TestGame_UpdateReplacesLinks() {
	game := s.newGame("Celeste")
	newGenre := testutil.CreateTestGenre(s.T(), s.store, "Platformer")

	game.Title = "Celeste DX"
	game.Genres = []domain.Genre{*newGenre}
	s.Require().NoError(s.store.Games().Update(s.ctx, game))

	found, err := s.store.Games().FindByID(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal("Celeste DX", found.Title)
	s.Equal([]string{"Platformer"}, found.GenreNames())

	referenced, err := s.store.Genres().IsReferenced(s.ctx, newGenre.ID)
	s.Require().NoError(err)
	s.True(referenced)

	var oldGenre *domain.Genre
	oldGenre, err = s.store.Genres().FindByNameIgnoreCase(s.ctx, "Celeste Genre")
	s.Require().NoError(err)
	referenced, err = s.store.Genres().IsReferenced(s.ctx, oldGenre.ID)
	s.Require().NoError(err)
	s.False(referenced)
}

func (s *StoreTestSuite) TestGame_DeleteKeepsCatalogEntries() {
	game := s.newGame("Doom")

	s.Require().NoError(s.store.Games().Delete(s.ctx, game.ID))

	_, err := s.store.Games().FindByID(s.ctx, game.ID)
	s.ErrorIs(err, domain.ErrGameNotFound)

	_, err = s.store.Genres().FindByID(s.ctx, game.Genres[0].ID)
	s.NoError(err)

	referenced, err := s.store.Platforms().IsReferenced(s.ctx, game.Platforms[0].ID)
	s.Require().NoError(err)
	s.False(referenced)

	s.ErrorIs(s.store.Games().Delete(s.ctx, game.ID), domain.ErrGameNotFound)
}

func (s *StoreTestSuite) TestGame_FindAllBySpecification() {
	s.newGame("Metroid Prime")
	s.newGame("Metroid Dread")
	s.newGame("Halo")

	filter := domain.GameFilter{Title: "metroid", Platforms: []string{"metroid dread platform"}}
	games, total, err := s.store.Games().FindAll(s.ctx, filter.Specification(), firstPage())
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Require().Len(games, 1)
	s.Equal("Metroid Dread", games[0].Title)
	s.NotNil(games[0].Developer)

	games, total, err = s.store.Games().FindAll(s.ctx, domain.GameFilter{}.Specification(), pagination.Request{Page: 1, Size: 2})
	s.Require().NoError(err)
	s.Equal(int64(3), total)
	s.Len(games, 1)
}

func (s *StoreTestSuite) TestMovie_CrewRolesKeepOrder() {
	nolan := testutil.CreateTestCrew(s.T(), s.store, "Christopher Nolan", testutil.Date(1970, time.July, 30), s.owner.ID)
	leo := testutil.CreateTestCrew(s.T(), s.store, "Leonardo DiCaprio", testutil.Date(1974, time.November, 11), s.owner.ID)

	movie := testutil.CreateTestMovie(s.T(), s.store, "Inception", s.owner.ID,
		domain.MovieCrewRole{CrewID: leo.ID, Role: domain.CrewRoleActor, CharacterName: "Cobb"},
		domain.MovieCrewRole{CrewID: nolan.ID, Role: domain.CrewRoleDirector},
	)

	found, err := s.store.Movies().FindByID(s.ctx, movie.ID)
	s.Require().NoError(err)
	s.Require().Len(found.CrewRoles, 2)
	s.Equal(domain.CrewRoleActor, found.CrewRoles[0].Role)
	s.Equal("Cobb", found.CrewRoles[0].CharacterName)
	s.Require().NotNil(found.CrewRoles[1].Crew)
	s.Equal("Christopher Nolan", found.CrewRoles[1].Crew.FullName)

	referenced, err := s.store.Crew().IsReferenced(s.ctx, nolan.ID)
	s.Require().NoError(err)
	s.True(referenced)

	found.CrewRoles = []domain.MovieCrewRole{{CrewID: nolan.ID, Role: domain.CrewRoleWriter}}
	s.Require().NoError(s.store.Movies().Update(s.ctx, found))

	updated, err := s.store.Movies().FindByID(s.ctx, movie.ID)
	s.Require().NoError(err)
	s.Require().Len(updated.CrewRoles, 1)
	s.Equal(domain.CrewRoleWriter, updated.CrewRoles[0].Role)

	referenced, err = s.store.Crew().IsReferenced(s.ctx, leo.ID)
	s.Require().NoError(err)
	s.False(referenced)
}

func (s *StoreTestSuite) TestMovie_FindAllByCrew() {
	nolan := testutil.CreateTestCrew(s.T(), s.store, "Christopher Nolan", testutil.Date(1970, time.July, 30), s.owner.ID)
	testutil.CreateTestMovie(s.T(), s.store, "Tenet", s.owner.ID,
		domain.MovieCrewRole{CrewID: nolan.ID, Role: domain.CrewRoleDirector})
	testutil.CreateTestMovie(s.T(), s.store, "Arrival", s.owner.ID)

	movies, total, err := s.store.Movies().FindAll(s.ctx, domain.MovieFilter{CrewName: "nolan"}.Specification(), firstPage())
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Require().Len(movies, 1)
	s.Equal("Tenet", movies[0].Title)

	movies, _, err = s.store.Movies().FindAll(s.ctx, domain.MovieFilter{CrewIDs: []uint{nolan.ID + 100}}.Specification(), firstPage())
	s.Require().NoError(err)
	s.Empty(movies)
}

func (s *StoreTestSuite) TestMovie_DeleteRemovesRoles() {
	nolan := testutil.CreateTestCrew(s.T(), s.store, "Christopher Nolan", testutil.Date(1970, time.July, 30), s.owner.ID)
	movie := testutil.CreateTestMovie(s.T(), s.store, "Memento", s.owner.ID,
		domain.MovieCrewRole{CrewID: nolan.ID, Role: domain.CrewRoleDirector})

	s.Require().NoError(s.store.Movies().Delete(s.ctx, movie.ID))

	referenced, err := s.store.Crew().IsReferenced(s.ctx, nolan.ID)
	s.Require().NoError(err)
	s.False(referenced)
}

func (s *StoreTestSuite) TestUser_ActiveNameIsUnique() {
	other := testutil.CreateTestUser(s.T(), s.store, "other")
	other.UserName = "OWNER"
	s.ErrorIs(s.store.Users().Update(s.ctx, other), domain.ErrUserNameTaken)

	found, err := s.store.Users().FindActiveByUserNameIgnoreCase(s.ctx, "Owner")
	s.Require().NoError(err)
	s.Require().NotNil(found)
	s.Equal(s.owner.ID, found.ID)

	s.owner.Deactivate()
	s.Require().NoError(s.store.Users().Update(s.ctx, s.owner))

	found, err = s.store.Users().FindActiveByUserNameIgnoreCase(s.ctx, "owner")
	s.Require().NoError(err)
	s.Nil(found)

	testutil.CreateTestUser(s.T(), s.store, "owner")

	users, total, err := s.store.Users().FindAll(s.ctx, firstPage())
	s.Require().NoError(err)
	s.Equal(int64(2), total)
	s.Len(users, 2)
}

func (s *StoreTestSuite) TestLikes_OnePerUserAndMedia() {
	game := s.newGame("Tetris")

	like := &domain.Like{UserID: s.owner.ID, MediaID: game.ID}
	s.Require().NoError(s.store.Likes().Create(s.ctx, like))

	err := s.store.Likes().Create(s.ctx, &domain.Like{UserID: s.owner.ID, MediaID: game.ID})
	s.ErrorIs(err, domain.ErrAlreadyLiked)

	found, err := s.store.Likes().FindByMediaIDAndUserID(s.ctx, game.ID, s.owner.ID)
	s.Require().NoError(err)
	s.Require().NotNil(found)
	s.Equal(like.ID, found.ID)

	byUser, total, err := s.store.Likes().FindByUserID(s.ctx, s.owner.ID, firstPage())
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Len(byUser, 1)

	removed, err := s.store.Likes().DeleteByMediaID(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(int64(1), removed)

	s.ErrorIs(s.store.Likes().Delete(s.ctx, like.ID), domain.ErrLikeNotFound)
}

func (s *StoreTestSuite) TestLikes_RequireExistingMedia() {
	err := s.store.Likes().Create(s.ctx, &domain.Like{UserID: s.owner.ID, MediaID: 999})
	s.Error(err)
}

func (s *StoreTestSuite) TestReviews_CreateUpdateDelete() {
	movie := testutil.CreateTestMovie(s.T(), s.store, "Heat", s.owner.ID)

	review := &domain.Review{UserID: s.owner.ID, MediaID: movie.ID, Score: 8, WrittenReview: "Tense."}
	s.Require().NoError(s.store.Reviews().Create(s.ctx, review))

	err := s.store.Reviews().Create(s.ctx, &domain.Review{UserID: s.owner.ID, MediaID: movie.ID, Score: 3})
	s.ErrorIs(err, domain.ErrAlreadyReviewed)

	review.Score = 10
	s.Require().NoError(s.store.Reviews().Update(s.ctx, review))

	found, err := s.store.Reviews().FindByID(s.ctx, review.ID)
	s.Require().NoError(err)
	s.Equal(10, found.Score)

	byMedia, total, err := s.store.Reviews().FindByMediaID(s.ctx, movie.ID, firstPage())
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Len(byMedia, 1)

	s.Require().NoError(s.store.Reviews().Delete(s.ctx, review.ID))
	_, err = s.store.Reviews().FindByID(s.ctx, review.ID)
	s.ErrorIs(err, domain.ErrReviewNotFound)
}

func (s *StoreTestSuite) TestMediaKeyDeleteCascadesToLikesAndReviews() {
	movie := testutil.CreateTestMovie(s.T(), s.store, "Alien", s.owner.ID)
	s.Require().NoError(s.store.Likes().Create(s.ctx, &domain.Like{UserID: s.owner.ID, MediaID: movie.ID}))
	s.Require().NoError(s.store.Reviews().Create(s.ctx, &domain.Review{UserID: s.owner.ID, MediaID: movie.ID, Score: 7}))

	s.Require().NoError(s.store.Movies().Delete(s.ctx, movie.ID))
	s.Require().NoError(s.store.MediaKeys().Delete(s.ctx, movie.ID))

	like, err := s.store.Likes().FindByMediaIDAndUserID(s.ctx, movie.ID, s.owner.ID)
	s.Require().NoError(err)
	s.Nil(like)

	review, err := s.store.Reviews().FindByMediaIDAndUserID(s.ctx, movie.ID, s.owner.ID)
	s.Require().NoError(err)
	s.Nil(review)
}

func (s *StoreTestSuite) TestTransactionRollsBack() {
	err := s.store.Transaction(s.ctx, func(tx repository.Store) error {
		if err := tx.Genres().Create(s.ctx, &domain.Genre{Name: "Roguelike"}); err != nil {
			return err
		}
		return tx.Genres().Create(s.ctx, &domain.Genre{Name: "roguelike"})
	})
	s.ErrorIs(err, domain.ErrGenreAlreadyExists)

	found, err := s.store.Genres().FindByNameIgnoreCase(s.ctx, "Roguelike")
	s.Require().NoError(err)
	s.Nil(found)
}
