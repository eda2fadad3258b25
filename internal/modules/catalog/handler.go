package catalog

import (
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
	rg.GET("/services", h.ListServices)
	rg.GET("/districts", h.ListDistricts)
}

func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.service.ListServices(c.Request.Context(), c.Query("category"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load services")
		return
	}
	response.Success(c, http.StatusOK, services)
}

func (h *Handler) ListDistricts(c *gin.Context) {
	districts, err := h.service.ListDistricts(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load districts")
		return
	}
	response.Success(c, http.StatusOK, districts)
}
