package content

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"makeupstudio/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/pages/:slug", h.GetPage)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/pages", h.ListPages)
	rg.PUT("/pages", h.UpsertPage)
	rg.DELETE("/pages/:slug", h.DeletePage)
}

func (h *Handler) GetPage(c *gin.Context) {
	p, err := h.service.GetPublished(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Page not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load page")
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) ListPages(c *gin.Context) {
	pages, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load pages")
		return
	}
	response.Success(c, http.StatusOK, pages)
}

func (h *Handler) UpsertPage(c *gin.Context) {
	var req UpsertPageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.Upsert(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidRequest) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Slug and title are required")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save page")
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) DeletePage(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("slug")); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Page not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete page")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
