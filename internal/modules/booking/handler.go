package booking

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
	rg.POST("/quote", h.Quote)
	rg.POST("/appointments", h.CreateAppointment)
	rg.GET("/appointments/:code", h.GetAppointment)
	rg.GET("/availability", h.GetAvailability)
}

func (h *Handler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.Quote(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid quote request")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute quote")
		return
	}

	if res.Rejection != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "SELECTION_REJECTED", res.Rejection.Message, res.Rejection)
		return
	}

	response.Success(c, http.StatusOK, res.Breakdown)
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	a, rej, err := h.service.CreateAppointment(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrSelectionRejected):
			response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "SELECTION_REJECTED", rej.Message, rej)
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid appointment request")
		case errors.Is(err, ErrUnknownService):
			response.Error(c, http.StatusBadRequest, "UNKNOWN_SERVICE", "One or more selected services are unavailable")
		case errors.Is(err, ErrNotAvailable), errors.Is(err, ErrOverbooking):
			response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "The selected slot is not available")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create appointment")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"appointment": gin.H{
			"code":           a.Code,
			"status":         a.Status,
			"total_price":    a.TotalPrice,
			"total_duration": a.TotalDuration,
		},
	})
}

func (h *Handler) GetAppointment(c *gin.Context) {
	a, err := h.service.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Appointment not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load appointment")
		return
	}
	response.Success(c, http.StatusOK, a)
}

func (h *Handler) GetAvailability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "date query parameter is required")
		return
	}

	res, err := h.service.GetAvailability(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "date must be YYYY-MM-DD")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load availability")
		return
	}

	response.Success(c, http.StatusOK, res)
}
