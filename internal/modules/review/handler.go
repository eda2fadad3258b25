package review

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"makeupstudio/internal/domain"
	"makeupstudio/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/reviews", h.Create)
	rg.GET("/reviews", h.ListApproved)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/reviews", h.ListForAdmin)
	rg.POST("/reviews/:id/approve", h.Approve)
	rg.POST("/reviews/:id/hide", h.Hide)
	rg.POST("/reviews/:id/response", h.Respond)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	rv, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRequest):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Rating must be between 1 and 5")
		case errors.Is(err, ErrInviteInvalid):
			response.Error(c, http.StatusForbidden, "INVITE_INVALID", "Unknown review token")
		case errors.Is(err, ErrInviteUsed):
			response.Error(c, http.StatusConflict, "INVITE_USED", "This review token was already used")
		case errors.Is(err, ErrConflict):
			response.Error(c, http.StatusConflict, "CONFLICT", "A review for this appointment already exists")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to submit review")
		}
		return
	}

	response.Success(c, http.StatusCreated, rv)
}

func (h *Handler) ListApproved(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	reviews, err := h.service.ListApproved(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load reviews")
		return
	}
	response.Success(c, http.StatusOK, reviews)
}

func (h *Handler) ListForAdmin(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	reviews, err := h.service.ListForAdmin(c.Request.Context(), c.Query("status"), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load reviews")
		return
	}
	response.Success(c, http.StatusOK, reviews)
}

func (h *Handler) Approve(c *gin.Context) {
	h.setStatus(c, domain.ReviewApproved)
}

func (h *Handler) Hide(c *gin.Context) {
	h.setStatus(c, domain.ReviewHidden)
}

func (h *Handler) setStatus(c *gin.Context, status domain.ReviewStatus) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid review id")
		return
	}

	if err := h.service.SetStatus(c.Request.Context(), id, status); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Review not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update review")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": id, "status": status})
}

func (h *Handler) Respond(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid review id")
		return
	}

	var req AdminResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	rv, err := h.service.Respond(c.Request.Context(), id, req.Response)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRequest):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Response must not be empty")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Review not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save response")
		}
		return
	}

	response.Success(c, http.StatusOK, rv)
}
