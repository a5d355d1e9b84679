package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
	"github.com/narwhalmedia/catalog/pkg/auth"
)

func (h *Handler) listUsers(c *gin.Context) {
	req, err := bindPage(c)
	if err != nil {
		respondError(c, err)
		return
	}
	page, err := h.services.Users.List(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handler) getUser(c *gin.Context) {
	user, err := h.services.Users.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// registerUser creates the user record of the token subject.
func (h *Handler) registerUser(c *gin.Context) {
	var input domain.UserInput
	if err := bindJSON(c, &input); err != nil {
		respondError(c, err)
		return
	}
	user, err := h.services.Users.Register(c.Request.Context(), auth.PrincipalFrom(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *Handler) renameUser(c *gin.Context) {
	var input domain.UserInput
	if err := bindJSON(c, &input); err != nil {
		respondError(c, err)
		return
	}
	user, err := h.services.Users.Rename(c.Request.Context(), auth.PrincipalFrom(c), c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) deleteUser(c *gin.Context) {
	if err := h.services.Users.Delete(c.Request.Context(), auth.PrincipalFrom(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) adminDeleteUser(c *gin.Context) {
	if err := h.services.Users.AdminDelete(c.Request.Context(), auth.PrincipalFrom(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) listUserLikes(c *gin.Context) {
	req, err := bindPage(c)
	if err != nil {
		respondError(c, err)
		return
	}
	page, err := h.services.Likes.ListByUser(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handler) listUserReviews(c *gin.Context) {
	req, err := bindPage(c)
	if err != nil {
		respondError(c, err)
		return
	}
	page, err := h.services.Reviews.ListByUser(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handler) listMediaLikes(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	req, err := bindPage(c)
	if err != nil {
		respondError(c, err)
		return
	}
	page, err := h.services.Likes.ListByMedia(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handler) listMediaReviews(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	req, err := bindPage(c)
	if err != nil {
		respondError(c, err)
		return
	}
	page, err := h.services.Reviews.ListByMedia(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handler) createLike(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	like, err := h.services.Likes.Create(c.Request.Context(), auth.PrincipalFrom(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, like)
}

func (h *Handler) deleteLike(c *gin.Context) {
	idAction(c, func(p auth.Principal, id uint) error {
		return h.services.Likes.Delete(c.Request.Context(), p, id)
	})
}

func (h *Handler) adminDeleteLike(c *gin.Context) {
	idAction(c, func(p auth.Principal, id uint) error {
		return h.services.Likes.AdminDelete(c.Request.Context(), p, id)
	})
}

func (h *Handler) createReview(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	var input domain.ReviewInput
	if err := bindJSON(c, &input); err != nil {
		respondError(c, err)
		return
	}
	review, err := h.services.Reviews.Create(c.Request.Context(), auth.PrincipalFrom(c), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (h *Handler) updateReview(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	var input domain.ReviewUpdate
	if err := bindJSON(c, &input); err != nil {
		respondError(c, err)
		return
	}
	review, err := h.services.Reviews.Update(c.Request.Context(), auth.PrincipalFrom(c), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *Handler) deleteReview(c *gin.Context) {
	idAction(c, func(p auth.Principal, id uint) error {
		return h.services.Reviews.Delete(c.Request.Context(), p, id)
	})
}

func (h *Handler) adminDeleteReview(c *gin.Context) {
	idAction(c, func(p auth.Principal, id uint) error {
		return h.services.Reviews.AdminDelete(c.Request.Context(), p, id)
	})
}
