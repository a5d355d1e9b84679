package handler

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
	"github.com/narwhalmedia/catalog/pkg/errors"
	"github.com/narwhalmedia/catalog/pkg/pagination"
)

// DateLayout is the wire format of release and birth dates.
const DateLayout = "2006-01-02"

func parseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, errors.BadRequest(fmt.Sprintf("%s must be a date in %s format", field, DateLayout))
	}
	return t, nil
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.BadRequest(fmt.Sprintf("invalid id %q", c.Param("id")))
	}
	return uint(id), nil
}

func bindPage(c *gin.Context) (pagination.Request, error) {
	var req pagination.Request
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errors.BadRequest("page and size must be integers")
	}
	return req, nil
}

func bindJSON(c *gin.Context, v interface{}) error {
	if err := c.ShouldBindJSON(v); err != nil {
		return errors.Wrap(errors.ErrorTypeBadRequest, "malformed request body", err)
	}
	return nil
}

type mediaRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ReleaseDate string `json:"releaseDate"`
	MediaURL    string `json:"mediaUrl"`
	ImageURL    string `json:"imageUrl"`
}

func (r mediaRequest) toInput() (domain.MediaInput, error) {
	released, err := parseDate("releaseDate", r.ReleaseDate)
	if err != nil {
		return domain.MediaInput{}, err
	}
	return domain.MediaInput{
		Title:       r.Title,
		Description: r.Description,
		ReleaseDate: released,
		MediaURL:    r.MediaURL,
		ImageURL:    r.ImageURL,
	}, nil
}

type gameRequest struct {
	mediaRequest
	DeveloperID uint    `json:"developerId"`
	GenreIDs    []uint  `json:"genreIds"`
	PlatformIDs []uint  `json:"platformIds"`
	Price       float64 `json:"price"`
}

func (r gameRequest) toInput() (domain.GameInput, error) {
	media, err := r.mediaRequest.toInput()
	if err != nil {
		return domain.GameInput{}, err
	}
	return domain.GameInput{
		MediaInput:  media,
		DeveloperID: r.DeveloperID,
		GenreIDs:    r.GenreIDs,
		PlatformIDs: r.PlatformIDs,
		Price:       r.Price,
	}, nil
}

type movieRequest struct {
	mediaRequest
	Duration  int                    `json:"duration"`
	CrewRoles []domain.CrewRoleInput `json:"crewRoles"`
}

func (r movieRequest) toInput() (domain.MovieInput, error) {
	media, err := r.mediaRequest.toInput()
	if err != nil {
		return domain.MovieInput{}, err
	}
	return domain.MovieInput{
		MediaInput: media,
		Duration:   r.Duration,
		CrewRoles:  r.CrewRoles,
	}, nil
}

type crewRequest struct {
	FullName  string `json:"fullName"`
	BirthDate string `json:"birthDate"`
}

func (r crewRequest) toInput() (domain.CrewInput, error) {
	born, err := parseDate("birthDate", r.BirthDate)
	if err != nil {
		return domain.CrewInput{}, err
	}
	return domain.CrewInput{FullName: r.FullName, BirthDate: born}, nil
}
