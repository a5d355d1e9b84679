package domain

import (
	"strings"
	"time"
)

// CatalogInput creates or renames a Developer, Genre or Platform.
type CatalogInput struct {
	Name string `json:"name" validate:"required,max=100"`
}

// Normalized returns the input with surrounding blanks removed from the name.
func (in CatalogInput) Normalized() CatalogInput {
	in.Name = strings.TrimSpace(in.Name)
	return in
}

// CrewInput creates or updates a crew member.
type CrewInput struct {
	FullName  string    `json:"fullName" validate:"required,max=150"`
	BirthDate time.Time `json:"birthDate" validate:"required"`
}

// Normalized returns the input with surrounding blanks removed from the name.
func (in CrewInput) Normalized() CrewInput {
	in.FullName = strings.TrimSpace(in.FullName)
	return in
}

// MediaInput holds the fields shared by every variant.
type MediaInput struct {
	Title       string    `json:"title" validate:"required,max=200"`
	Description string    `json:"description" validate:"max=5000"`
	ReleaseDate time.Time `json:"releaseDate" validate:"required"`
	MediaURL    string    `json:"mediaUrl" validate:"omitempty,url,max=500"`
	ImageURL    string    `json:"imageUrl" validate:"omitempty,url,max=500"`
}

// GameInput creates or replaces a game.
type GameInput struct {
	MediaInput
	DeveloperID uint    `json:"developerId" validate:"required"`
	GenreIDs    []uint  `json:"genreIds" validate:"required,min=1,dive,required"`
	PlatformIDs []uint  `json:"platformIds" validate:"required,min=1,dive,required"`
	Price       float64 `json:"price" validate:"gte=0,lte=1000"`
}

// CrewRoleInput assigns a crew member to a movie.
type CrewRoleInput struct {
	CrewID        uint         `json:"crewId" validate:"required"`
	Role          CrewRoleType `json:"role" validate:"required,oneof=DIRECTOR PRODUCER WRITER ACTOR COMPOSER CINEMATOGRAPHER EDITOR"`
	CharacterName string       `json:"characterName" validate:"max=100"`
}

// MovieInput creates or replaces a movie.
type MovieInput struct {
	MediaInput
	Duration  int             `json:"duration" validate:"gte=1,lte=1440"`
	CrewRoles []CrewRoleInput `json:"crewRoles" validate:"dive"`
}

// Normalized returns a copy with trimmed character names. The caller's
// role slice is left untouched.
func (in MovieInput) Normalized() MovieInput {
	roles := make([]CrewRoleInput, len(in.CrewRoles))
	for i, role := range in.CrewRoles {
		role.CharacterName = strings.TrimSpace(role.CharacterName)
		roles[i] = role
	}
	in.CrewRoles = roles
	return in
}

// UserInput registers or renames a user.
type UserInput struct {
	UserName string `json:"userName" validate:"required,min=3,max=50"`
}

// Normalized returns the input with surrounding blanks removed from the name.
func (in UserInput) Normalized() UserInput {
	in.UserName = strings.TrimSpace(in.UserName)
	return in
}

// ReviewInput creates a review.
type ReviewInput struct {
	Score         int    `json:"score" validate:"gte=1,lte=10"`
	WrittenReview string `json:"writtenReview" validate:"max=2000"`
}

// ReviewUpdate changes a review partially. Nil fields are left untouched.
type ReviewUpdate struct {
	Score         *int    `json:"score" validate:"omitempty,gte=1,lte=10"`
	WrittenReview *string `json:"writtenReview" validate:"omitempty,max=2000"`
}

// GameFilter holds the optional game search criteria.
type GameFilter struct {
	Title     string   `form:"title"`
	Developer string   `form:"developer"`
	Platforms []string `form:"platform"`
	Genres    []string `form:"genre"`
}

// MovieFilter holds the optional movie search criteria.
type MovieFilter struct {
	Title    string `form:"title"`
	CrewName string `form:"crewName"`
	CrewIDs  []uint `form:"crewId"`
}
