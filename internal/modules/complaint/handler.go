package complaint

import (
	"errors"
	"net/http"
	"strconv"

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
	rg.POST("/complaints", h.File)
	rg.GET("/complaints/:code", h.GetByCode)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/complaints", h.List)
	rg.POST("/complaints/:id/response", h.Respond)
}

func (h *Handler) File(c *gin.Context) {
	var req FileComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	created, err := h.service.File(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidRequest) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing or invalid complaint fields")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to register complaint")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"code":   created.Code,
		"status": created.Status,
	})
}

func (h *Handler) GetByCode(c *gin.Context) {
	found, err := h.service.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Complaint not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load complaint")
		return
	}
	response.Success(c, http.StatusOK, found)
}

func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	complaints, err := h.service.List(c.Request.Context(), c.Query("status"), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load complaints")
		return
	}
	response.Success(c, http.StatusOK, complaints)
}

func (h *Handler) Respond(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid complaint id")
		return
	}

	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	updated, err := h.service.Respond(c.Request.Context(), id, req.Response)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRequest):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Response must not be empty")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Complaint not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save response")
		}
		return
	}

	response.Success(c, http.StatusOK, updated)
}
