package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
	"github.com/narwhalmedia/catalog/pkg/auth"
)

func (h *Handler) searchGames(c *gin.Context) {
	var filter domain.GameFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		badRequest(c, "invalid game filter")
		return
	}
	req, err := bindPage(c)
	if err != nil {
		respondError(c, err)
		return
	}
	page, err := h.services.Games.Search(c.Request.Context(), filter, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handler) getGame(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	game, err := h.services.Games.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, game)
}

func bindGame(c *gin.Context) (domain.GameInput, error) {
	var req gameRequest
	if err := bindJSON(c, &req); err != nil {
		return domain.GameInput{}, err
	}
	return req.toInput()
}

func (h *Handler) createGame(c *gin.Context) {
	input, err := bindGame(c)
	if err != nil {
		respondError(c, err)
		return
	}
	game, err := h.services.Games.Create(c.Request.Context(), auth.PrincipalFrom(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, game)
}

func (h *Handler) updateGame(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	input, err := bindGame(c)
	if err != nil {
		respondError(c, err)
		return
	}
	game, err := h.services.Games.Update(c.Request.Context(), auth.PrincipalFrom(c), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, game)
}

func (h *Handler) deleteGame(c *gin.Context) {
	idAction(c, func(p auth.Principal, id uint) error {
		return h.services.Games.Delete(c.Request.Context(), p, id)
	})
}

func (h *Handler) adminDeleteGame(c *gin.Context) {
	idAction(c, func(p auth.Principal, id uint) error {
		return h.services.Games.AdminDelete(c.Request.Context(), p, id)
	})
}

func (h *Handler) searchMovies(c *gin.Context) {
	var filter domain.MovieFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		badRequest(c, "invalid movie filter")
		return
	}
	req, err := bindPage(c)
	if err != nil {
		respondError(c, err)
		return
	}
	page, err := h.services.Movies.Search(c.Request.Context(), filter, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handler) getMovie(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	movie, err := h.services.Movies.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, movie)
}

func bindMovie(c *gin.Context) (domain.MovieInput, error) {
	var req movieRequest
	if err := bindJSON(c, &req); err != nil {
		return domain.MovieInput{}, err
	}
	return req.toInput()
}

func (h *Handler) createMovie(c *gin.Context) {
	input, err := bindMovie(c)
	if err != nil {
		respondError(c, err)
		return
	}
	movie, err := h.services.Movies.Create(c.Request.Context(), auth.PrincipalFrom(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, movie)
}

func (h *Handler) updateMovie(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	input, err := bindMovie(c)
	if err != nil {
		respondError(c, err)
		return
	}
	movie, err := h.services.Movies.Update(c.Request.Context(), auth.PrincipalFrom(c), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, movie)
}

func (h *Handler) deleteMovie(c *gin.Context) {
	idAction(c, func(p auth.Principal, id uint) error {
		return h.services.Movies.Delete(c.Request.Context(), p, id)
	})
}

func (h *Handler) adminDeleteMovie(c *gin.Context) {
	idAction(c, func(p auth.Principal, id uint) error {
		return h.services.Movies.AdminDelete(c.Request.Context(), p, id)
	})
}
