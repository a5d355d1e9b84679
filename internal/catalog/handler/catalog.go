package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
	"github.com/narwhalmedia/catalog/internal/catalog/service"
	"github.com/narwhalmedia/catalog/pkg/auth"
)

func registerCatalog[T any, PT service.Entry[T]](api, write gin.IRoutes, path string, svc *service.CatalogService[T, PT]) {
	api.GET(path, func(c *gin.Context) {
		req, err := bindPage(c)
		if err != nil {
			respondError(c, err)
			return
		}
		page, err := svc.List(c.Request.Context(), c.Query("name"), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	})

	api.GET(path+"/:id", func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			respondError(c, err)
			return
		}
		entry, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, entry)
	})

	write.POST(path, func(c *gin.Context) {
		var input domain.CatalogInput
		if err := bindJSON(c, &input); err != nil {
			respondError(c, err)
			return
		}
		entry, err := svc.Create(c.Request.Context(), auth.PrincipalFrom(c), input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, entry)
	})

	write.PUT(path+"/:id", func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			respondError(c, err)
			return
		}
		var input domain.CatalogInput
		if err := bindJSON(c, &input); err != nil {
			respondError(c, err)
			return
		}
		entry, err := svc.Update(c.Request.Context(), auth.PrincipalFrom(c), id, input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, entry)
	})

	write.DELETE(path+"/:id", func(c *gin.Context) {
		idAction(c, func(p auth.Principal, id uint) error {
			return svc.Delete(c.Request.Context(), p, id)
		})
	})
}

func adminDeleteCatalog[T any, PT service.Entry[T]](svc *service.CatalogService[T, PT]) gin.HandlerFunc {
	return func(c *gin.Context) {
		idAction(c, func(p auth.Principal, id uint) error {
			return svc.AdminDelete(c.Request.Context(), p, id)
		})
	}
}

func (h *Handler) listCrew(c *gin.Context) {
	req, err := bindPage(c)
	if err != nil {
		respondError(c, err)
		return
	}
	page, err := h.services.Crew.List(c.Request.Context(), c.Query("fullName"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handler) getCrew(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	crew, err := h.services.Crew.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, crew)
}

func (h *Handler) createCrew(c *gin.Context) {
	var req crewRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		respondError(c, err)
		return
	}
	crew, err := h.services.Crew.Create(c.Request.Context(), auth.PrincipalFrom(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, crew)
}

func (h *Handler) updateCrew(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	var req crewRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		respondError(c, err)
		return
	}
	crew, err := h.services.Crew.Update(c.Request.Context(), auth.PrincipalFrom(c), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, crew)
}

func (h *Handler) deleteCrew(c *gin.Context) {
	idAction(c, func(p auth.Principal, id uint) error {
		return h.services.Crew.Delete(c.Request.Context(), p, id)
	})
}

func (h *Handler) adminDeleteCrew(c *gin.Context) {
	idAction(c, func(p auth.Principal, id uint) error {
		return h.services.Crew.AdminDelete(c.Request.Context(), p, id)
	})
}
