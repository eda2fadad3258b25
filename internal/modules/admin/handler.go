package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"makeupstudio/internal/pkg/response"
	"makeupstudio/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/stats", h.GetStats)

	rg.GET("/appointments", h.ListAppointments)
	rg.GET("/appointments/:id", h.GetAppointment)
	rg.PATCH("/appointments/:id/status", h.UpdateAppointmentStatus)
	rg.POST("/appointments/:id/cancel", h.CancelAppointment)

	rg.GET("/services", h.ListServices)
	rg.POST("/services", h.CreateService)
	rg.PUT("/services/:id", h.UpdateService)
	rg.PATCH("/services/:id/active", h.SetServiceActive)

	rg.GET("/transport-costs", h.ListTransportCosts)
	rg.POST("/transport-costs", h.CreateTransportCost)
	rg.PUT("/transport-costs/:id", h.UpdateTransportCost)
	rg.DELETE("/transport-costs/:id", h.DeleteTransportCost)

	rg.GET("/blocked-slots", h.ListBlockedSlots)
	rg.POST("/blocked-slots", h.CreateBlockedSlot)
	rg.DELETE("/blocked-slots/:id", h.DeleteBlockedSlot)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return 0, false
	}
	return id, true
}

func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load stats")
		return
	}
	response.Success(c, http.StatusOK, stats)
}

func (h *Handler) ListAppointments(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	f := repository.ListFilter{
		Status:   c.Query("status"),
		DateFrom: c.Query("date_from"),
		DateTo:   c.Query("date_to"),
		Limit:    limit,
		Offset:   offset,
	}

	appointments, err := h.service.ListAppointments(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load appointments")
		return
	}
	response.Success(c, http.StatusOK, appointments)
}

func (h *Handler) GetAppointment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	a, err := h.service.GetAppointment(c.Request.Context(), id)
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

func (h *Handler) UpdateAppointmentStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	a, err := h.service.UpdateAppointmentStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Appointment not found")
		case errors.Is(err, ErrInvalidStatusTransition):
			response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Status change not allowed from current state")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update appointment")
		}
		return
	}
	response.Success(c, http.StatusOK, a)
}

func (h *Handler) CancelAppointment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req CancelAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Cancellation reason is required")
		return
	}

	a, err := h.service.CancelAppointment(c.Request.Context(), id, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Appointment not found")
		case errors.Is(err, ErrInvalidStatusTransition):
			response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Appointment can no longer be cancelled")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to cancel appointment")
		}
		return
	}
	response.Success(c, http.StatusOK, a)
}

func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.service.ListServices(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load services")
		return
	}
	response.Success(c, http.StatusOK, services)
}

func (h *Handler) CreateService(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	svc, err := h.service.CreateService(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid service fields")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create service")
		return
	}
	response.Success(c, http.StatusCreated, svc)
}

func (h *Handler) UpdateService(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	svc, err := h.service.UpdateService(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid service fields")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Service not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update service")
		}
		return
	}
	response.Success(c, http.StatusOK, svc)
}

func (h *Handler) SetServiceActive(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req struct {
		IsActive *bool `json:"is_active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "is_active is required")
		return
	}

	if err := h.service.SetServiceActive(c.Request.Context(), id, *req.IsActive); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Service not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update service")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id, "is_active": *req.IsActive})
}

func (h *Handler) ListTransportCosts(c *gin.Context) {
	costs, err := h.service.ListTransportCosts(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load transport costs")
		return
	}
	response.Success(c, http.StatusOK, costs)
}

func (h *Handler) CreateTransportCost(c *gin.Context) {
	var req TransportCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	t, err := h.service.CreateTransportCost(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid transport cost fields")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create transport cost")
		return
	}
	response.Success(c, http.StatusCreated, t)
}

func (h *Handler) UpdateTransportCost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req TransportCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	t, err := h.service.UpdateTransportCost(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid transport cost fields")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Transport cost not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update transport cost")
		}
		return
	}
	response.Success(c, http.StatusOK, t)
}

func (h *Handler) DeleteTransportCost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteTransportCost(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Transport cost not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete transport cost")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) ListBlockedSlots(c *gin.Context) {
	slots, err := h.service.ListBlockedSlots(c.Request.Context(), c.Query("from"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load blocked dates")
		return
	}
	response.Success(c, http.StatusOK, slots)
}

func (h *Handler) CreateBlockedSlot(c *gin.Context) {
	var req BlockedSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CreateBlockedSlot(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Date must be in YYYY-MM-DD format")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to block date")
		return
	}
	response.Success(c, http.StatusCreated, b)
}

func (h *Handler) DeleteBlockedSlot(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteBlockedSlot(c.Request.Context(), id); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to unblock date")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
