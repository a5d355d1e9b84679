package domain

import "github.com/narwhalmedia/catalog/pkg/errors"

// Not found.
var (
	ErrMediaNotFound     = errors.NotFound("media not found")
	ErrGameNotFound      = errors.NotFound("game not found")
	ErrMovieNotFound     = errors.NotFound("movie not found")
	ErrDeveloperNotFound = errors.NotFound("developer not found")
	ErrGenreNotFound     = errors.NotFound("genre not found")
	ErrPlatformNotFound  = errors.NotFound("platform not found")
	ErrCrewNotFound      = errors.NotFound("crew member not found")
	ErrUserNotFound      = errors.NotFound("user not found")
	ErrLikeNotFound      = errors.NotFound("like not found")
	ErrReviewNotFound    = errors.NotFound("review not found")
)

// Already exists.
var (
	ErrDeveloperAlreadyExists = errors.Conflict("developer already exists")
	ErrGenreAlreadyExists     = errors.Conflict("genre already exists")
	ErrPlatformAlreadyExists  = errors.Conflict("platform already exists")
	ErrCrewAlreadyExists      = errors.Conflict("crew member already exists")
	ErrUserAlreadyExists      = errors.Conflict("user already exists")
	ErrUserNameTaken          = errors.Conflict("user name already taken")
	ErrAlreadyLiked           = errors.Conflict("media already liked by user")
	ErrAlreadyReviewed        = errors.Conflict("media already reviewed by user")
)

// ErrCatalogEntryInUse is returned when deleting a catalog entry that media still references.
var ErrCatalogEntryInUse = errors.Conflict("catalog entry is referenced by media")

// Invalid permission. Update and delete stay distinguishable.
var (
	ErrUnauthorizedUpdate = errors.Forbidden("unauthorized update")
	ErrUnauthorizedDelete = errors.Forbidden("unauthorized delete")
	ErrUnauthorizedCreate = errors.Forbidden("unauthorized create")
)

// ErrAuthenticationRequired is returned when a write has no principal.
var ErrAuthenticationRequired = errors.Unauthorized("authentication required")

// Validation.
var (
	ErrCharacterNameRequired   = errors.BadRequest("character name is required for ACTOR role")
	ErrCharacterNameNotAllowed = errors.BadRequest("character name is only allowed for ACTOR role")
	ErrEmptyReviewUpdate       = errors.BadRequest("review update must change score or written review")
)
