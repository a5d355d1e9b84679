package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
	"github.com/narwhalmedia/catalog/internal/catalog/repository"
)

// Date returns midnight UTC of the given day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// CreateTestUser stores an active user with a random id.
func CreateTestUser(t testing.TB, store repository.Store, userName string) *domain.User {
	t.Helper()
	user := &domain.User{
		ID:       uuid.NewString(),
		UserName: userName,
		JoinDate: time.Now().UTC(),
		Active:   true,
	}
	if err := store.Users().Create(context.Background(), user); err != nil {
		t.Fatalf("Failed to create user %q: %v", userName, err)
	}
	return user
}

// CreateTestDeveloper stores a developer.
func CreateTestDeveloper(t testing.TB, store repository.Store, name string) *domain.Developer {
	t.Helper()
	dev := &domain.Developer{Name: name}
	if err := store.Developers().Create(context.Background(), dev); err != nil {
		t.Fatalf("Failed to create developer %q: %v", name, err)
	}
	return dev
}

// CreateTestGenre stores a genre.
func CreateTestGenre(t testing.TB, store repository.Store, name string) *domain.Genre {
	t.Helper()
	genre := &domain.Genre{Name: name}
	if err := store.Genres().Create(context.Background(), genre); err != nil {
		t.Fatalf("Failed to create genre %q: %v", name, err)
	}
	return genre
}

// CreateTestPlatform stores a platform.
func CreateTestPlatform(t testing.TB, store repository.Store, name string) *domain.Platform {
	t.Helper()
	platform := &domain.Platform{Name: name}
	if err := store.Platforms().Create(context.Background(), platform); err != nil {
		t.Fatalf("Failed to create platform %q: %v", name, err)
	}
	return platform
}

// CreateTestCrew stores a crew member owned by creatorID.
func CreateTestCrew(t testing.TB, store repository.Store, fullName string, birthDate time.Time, creatorID string) *domain.MovieCrew {
	t.Helper()
	crew := &domain.MovieCrew{FullName: fullName, BirthDate: domain.DateOnly(birthDate), CreatorID: creatorID}
	if err := store.Crew().Create(context.Background(), crew); err != nil {
		t.Fatalf("Failed to create crew %q: %v", fullName, err)
	}
	return crew
}

// CreateTestGame stores a game owned by creatorID.
func CreateTestGame(t testing.TB, store repository.Store, title, creatorID string, dev *domain.Developer, genres []domain.Genre, platforms []domain.Platform) *domain.Game {
	t.Helper()
	game := &domain.Game{
		Media: domain.Media{
			Title:       title,
			ReleaseDate: Date(2020, time.January, 1),
			CreatorID:   creatorID,
		},
		DeveloperID: dev.ID,
		Genres:      genres,
		Platforms:   platforms,
		Price:       59.99,
	}
	if err := store.Games().Create(context.Background(), game); err != nil {
		t.Fatalf("Failed to create game %q: %v", title, err)
	}
	return game
}

// CreateTestMovie stores a movie owned by creatorID.
func CreateTestMovie(t testing.TB, store repository.Store, title, creatorID string, roles ...domain.MovieCrewRole) *domain.Movie {
	t.Helper()
	movie := &domain.Movie{
		Media: domain.Media{
			Title:       title,
			ReleaseDate: Date(2010, time.July, 16),
			CreatorID:   creatorID,
		},
		Duration:  120,
		CrewRoles: roles,
	}
	if err := store.Movies().Create(context.Background(), movie); err != nil {
		t.Fatalf("Failed to create movie %q: %v", title, err)
	}
	return movie
}
