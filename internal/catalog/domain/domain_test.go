package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
	"github.com/narwhalmedia/catalog/internal/domain/specification"
	"github.com/narwhalmedia/catalog/pkg/errors"
)

func TestValidateCrewRole(t *testing.T) {
	tests := []struct {
		name          string
		role          domain.CrewRoleType
		characterName string
		want          error
	}{
		{"actor with character", domain.CrewRoleActor, "Neo", nil},
		{"actor without character", domain.CrewRoleActor, "", domain.ErrCharacterNameRequired},
		{"actor with blank character", domain.CrewRoleActor, "   ", domain.ErrCharacterNameRequired},
		{"director without character", domain.CrewRoleDirector, "", nil},
		{"director with character", domain.CrewRoleDirector, "Lead", domain.ErrCharacterNameNotAllowed},
		{"writer with character", domain.CrewRoleWriter, "Narrator", domain.ErrCharacterNameNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.ValidateCrewRole(tt.role, tt.characterName)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, errors.IsBadRequest(err))
		})
	}
}

func TestDateOnly(t *testing.T) {
	in := time.Date(1990, 5, 17, 23, 30, 0, 0, time.FixedZone("X", 3600))
	assert.Equal(t, time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC), domain.DateOnly(in))
}

func TestUserDeactivate(t *testing.T) {
	u := &domain.User{ID: "u-1", UserName: "neo", Active: true}
	u.Deactivate()
	assert.Empty(t, u.UserName)
	assert.False(t, u.Active)
}

func game(title, developer string, platforms, genres []string) *domain.Game {
	g := &domain.Game{Media: domain.Media{Title: title}, Developer: &domain.Developer{Name: developer}}
	for _, p := range platforms {
		g.Platforms = append(g.Platforms, domain.Platform{Name: p})
	}
	for _, n := range genres {
		g.Genres = append(g.Genres, domain.Genre{Name: n})
	}
	return g
}

func TestGameFilter_Specification(t *testing.T) {
	zelda := game("Zelda", "Nintendo", []string{"Switch"}, []string{"Adventure"})
	elden := game("Elden Ring", "FromSoftware", []string{"PS4", "PC"}, []string{"RPG"})
	halo := game("Halo", "Bungie", []string{"XBOX"}, []string{"Shooter"})
	witcher := game("The Witcher 3", "CD Projekt", []string{"PC"}, []string{"RPG", "Adventure"})
	fifa := game("FIFA", "EA", []string{"PS4"}, []string{"Sports"})
	all := []*domain.Game{zelda, elden, halo, witcher, fifa}

	match := func(f domain.GameFilter) []string {
		spec := f.Specification()
		var titles []string
		for _, g := range all {
			if spec.IsSatisfiedBy(g) {
				titles = append(titles, g.Title)
			}
		}
		return titles
	}

	assert.True(t, specification.IsAll(domain.GameFilter{}.Specification()))
	assert.Len(t, match(domain.GameFilter{}), len(all))

	assert.Equal(t, []string{"Elden Ring", "The Witcher 3", "FIFA"},
		match(domain.GameFilter{Platforms: []string{"ps4", "PC"}}))

	assert.Equal(t, []string{"Elden Ring"},
		match(domain.GameFilter{Platforms: []string{"PS4"}, Genres: []string{"RPG"}}))

	assert.Equal(t, []string{"Zelda", "The Witcher 3"},
		match(domain.GameFilter{Title: "E", Genres: []string{"adventure"}}))

	assert.Equal(t, []string{"Elden Ring"},
		match(domain.GameFilter{Developer: "soft"}))

	assert.Empty(t, match(domain.GameFilter{Platforms: []string{"PS4"}, Developer: "Bungie"}))
}

func TestGameFilter_SQL(t *testing.T) {
	spec := domain.GameFilter{
		Title:     "50%",
		Platforms: []string{" PS4", "pc", "PS4", ""},
		Genres:    []string{"RPG"},
	}.Specification()

	sql, params := spec.ToSQL()
	assert.Equal(t, "(LOWER(games.title) LIKE ? ESCAPE '\\'"+
		" AND games.id IN (SELECT gp.game_id FROM game_platforms gp JOIN platforms p ON p.id = gp.platform_id WHERE LOWER(p.name) IN ?)"+
		" AND games.id IN (SELECT gg.game_id FROM game_genres gg JOIN genres g ON g.id = gg.genre_id WHERE LOWER(g.name) IN ?))", sql)
	assert.Equal(t, []interface{}{`%50\%%`, []string{"ps4", "pc"}, []string{"rpg"}}, params)
}

func TestMovieFilter_Specification(t *testing.T) {
	keanu := &domain.MovieCrew{ID: 1, FullName: "Keanu Reeves"}
	lana := &domain.MovieCrew{ID: 2, FullName: "Lana Wachowski"}
	matrix := &domain.Movie{Media: domain.Media{Title: "The Matrix"}, CrewRoles: []domain.MovieCrewRole{
		{CrewID: 1, Crew: keanu, Role: domain.CrewRoleActor, CharacterName: "Neo"},
		{CrewID: 2, Crew: lana, Role: domain.CrewRoleDirector},
	}}
	wick := &domain.Movie{Media: domain.Media{Title: "John Wick"}, CrewRoles: []domain.MovieCrewRole{
		{CrewID: 1, Crew: keanu, Role: domain.CrewRoleActor, CharacterName: "John"},
	}}

	spec := domain.MovieFilter{CrewIDs: []uint{2, 0}}.Specification()
	assert.True(t, spec.IsSatisfiedBy(matrix))
	assert.False(t, spec.IsSatisfiedBy(wick))

	spec = domain.MovieFilter{CrewName: "reeves", Title: "wick"}.Specification()
	assert.False(t, spec.IsSatisfiedBy(matrix))
	assert.True(t, spec.IsSatisfiedBy(wick))

	sql, params := domain.MovieFilter{CrewIDs: []uint{3, 3}}.Specification().ToSQL()
	assert.Equal(t, "movies.id IN (SELECT movie_id FROM movie_crew_roles WHERE crew_id IN ?)", sql)
	assert.Equal(t, []interface{}{[]uint{3}}, params)
}

func TestNameFilter(t *testing.T) {
	assert.True(t, specification.IsAll(domain.NameFilter("name", "  ")))

	spec := domain.NameFilter("name", "Soft")
	assert.True(t, spec.IsSatisfiedBy(&domain.Developer{Name: "FromSoftware"}))
	assert.False(t, spec.IsSatisfiedBy(&domain.Genre{Name: "RPG"}))
	assert.True(t, domain.NameFilter("full_name", "ree").IsSatisfiedBy(&domain.MovieCrew{FullName: "Keanu Reeves"}))
}

func TestMediaItem(t *testing.T) {
	var item domain.MediaItem = &domain.Game{Media: domain.Media{ID: 4, Title: "Halo", CreatorID: "u-1"}}
	assert.Equal(t, uint(4), item.GetID())
	assert.Equal(t, domain.MediaTypeGame, item.GetMediaType())
	assert.Equal(t, "u-1", item.GetCreatorID())

	item = &domain.Movie{Media: domain.Media{ID: 5}}
	assert.Equal(t, domain.MediaTypeMovie, item.GetMediaType())
	assert.Equal(t, uint(5), item.Base().ID)
}
