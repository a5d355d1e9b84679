// Package handler exposes the catalog services over HTTP with gin.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/narwhalmedia/catalog/internal/catalog/service"
	"github.com/narwhalmedia/catalog/pkg/auth"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
	"github.com/narwhalmedia/catalog/pkg/logger"
)

// Services are the use cases served over HTTP.
type Services struct {
	Developers *service.DeveloperService
	Genres     *service.GenreService
	Platforms  *service.PlatformService
	Crew       *service.CrewService
	Games      *service.GameService
	Movies     *service.MovieService
	Media      *service.MediaService
	Users      *service.UserService
	Likes      *service.LikeService
	Reviews    *service.ReviewService
}

// Handler routes HTTP requests to the services.
type Handler struct {
	services Services
	authn    *auth.Authenticator
	logger   interfaces.Logger
}

// NewHandler creates a handler.
func NewHandler(services Services, authn *auth.Authenticator, logger interfaces.Logger) *Handler {
	return &Handler{services: services, authn: authn, logger: logger}
}

// NewRouter builds the gin engine with recovery, request logging and all routes.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logger.GinMiddleware(h.logger))
	h.RegisterRoutes(r)
	return r
}

// RegisterRoutes mounts /health and the /api routes. Reads accept anonymous
// callers; writes require a bearer token.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.health)

	api := r.Group("/api", h.authn.Optional())
	write := api.Group("", h.authn.Required())

	api.GET("/media/:id", h.getMedia)

	registerCatalog(api, write, "/developers", h.services.Developers)
	registerCatalog(api, write, "/genres", h.services.Genres)
	registerCatalog(api, write, "/platforms", h.services.Platforms)

	api.GET("/crew", h.listCrew)
	api.GET("/crew/:id", h.getCrew)
	write.POST("/crew", h.createCrew)
	write.PUT("/crew/:id", h.updateCrew)
	write.DELETE("/crew/:id", h.deleteCrew)

	api.GET("/games", h.searchGames)
	api.GET("/games/:id", h.getGame)
	write.POST("/games", h.createGame)
	write.PUT("/games/:id", h.updateGame)
	write.DELETE("/games/:id", h.deleteGame)

	api.GET("/movies", h.searchMovies)
	api.GET("/movies/:id", h.getMovie)
	write.POST("/movies", h.createMovie)
	write.PUT("/movies/:id", h.updateMovie)
	write.DELETE("/movies/:id", h.deleteMovie)

	api.GET("/users", h.listUsers)
	api.GET("/users/:id", h.getUser)
	api.GET("/users/:id/likes", h.listUserLikes)
	api.GET("/users/:id/reviews", h.listUserReviews)
	write.POST("/users", h.registerUser)
	write.PUT("/users/:id", h.renameUser)
	write.DELETE("/users/:id", h.deleteUser)

	api.GET("/media/:id/likes", h.listMediaLikes)
	api.GET("/media/:id/reviews", h.listMediaReviews)
	write.POST("/media/:id/likes", h.createLike)
	write.POST("/media/:id/reviews", h.createReview)
	write.DELETE("/likes/:id", h.deleteLike)
	write.PUT("/reviews/:id", h.updateReview)
	write.DELETE("/reviews/:id", h.deleteReview)

	admin := write.Group("/admin")
	admin.DELETE("/developers/:id", adminDeleteCatalog(h.services.Developers))
	admin.DELETE("/genres/:id", adminDeleteCatalog(h.services.Genres))
	admin.DELETE("/platforms/:id", adminDeleteCatalog(h.services.Platforms))
	admin.DELETE("/crew/:id", h.adminDeleteCrew)
	admin.DELETE("/games/:id", h.adminDeleteGame)
	admin.DELETE("/movies/:id", h.adminDeleteMovie)
	admin.DELETE("/users/:id", h.adminDeleteUser)
	admin.DELETE("/likes/:id", h.adminDeleteLike)
	admin.DELETE("/reviews/:id", h.adminDeleteReview)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) getMedia(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	item, err := h.services.Media.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"mediaType": item.GetMediaType(),
		"media":     item,
	})
}

// idAction runs fn with the principal and the path id and answers 204.
func idAction(c *gin.Context, fn func(p auth.Principal, id uint) error) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := fn(auth.PrincipalFrom(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
