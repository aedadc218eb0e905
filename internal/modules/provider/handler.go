package provider

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"smarthub/internal/middleware"
	"smarthub/internal/pkg/response"
	"smarthub/internal/pkg/validator"
	"smarthub/internal/session"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup) {
	p := v1.Group("/provider", middleware.RequireRole(session.RoleProvider))
	{
		p.GET("/dashboard", h.GetDashboard)
		p.GET("/profile", h.GetProfile)
		p.PUT("/profile", h.UpdateProfile)
		p.GET("/bookings", h.GetBookings)
		p.PUT("/bookings/:id/status", h.UpdateStatus)
		p.GET("/reviews", h.GetReviews)
	}
}

func (h *Handler) GetDashboard(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)
	view, err := h.service.Dashboard(c.Request.Context(), sess.ID)
	if err != nil {
		response.Upstream(c, err, "Failed to load dashboard")
		return
	}
	response.Success(c, http.StatusOK, view)
}

func (h *Handler) GetProfile(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)
	profile, err := h.service.Profile(c.Request.Context(), sess.ID)
	if err != nil {
		response.Upstream(c, err, "Failed to load profile")
		return
	}
	response.Success(c, http.StatusOK, profile)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Please check the highlighted fields", errs)
		return
	}

	sess, _ := middleware.CurrentSession(c)
	profile, err := h.service.UpdateProfile(c.Request.Context(), sess.ID, req)
	if err != nil {
		response.Upstream(c, err, "Failed to save changes")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"profile": profile, "message": "Service details updated successfully"})
}

func (h *Handler) GetBookings(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)
	view, err := h.service.Bookings(c.Request.Context(), sess.ID)
	if err != nil {
		response.Upstream(c, err, "Failed to load bookings")
		return
	}
	response.Success(c, http.StatusOK, view)
}

// UpdateStatus accepts, rejects or completes a booking request.
// @Summary		Update booking status
// @Tags		Provider
// @Param		id		path	int					true	"booking id"
// @Param		request	body	UpdateStatusRequest	true	"ACCEPTED, REJECTED or COMPLETED"
// @Success		200	{object}	StatusResult
// @Failure		409	{object}	map[string]interface{}	"transition not allowed"
// @Router		/provider/bookings/{id}/status [PUT]
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	var req UpdateStatusRequest
	_ = c.ShouldBindJSON(&req)
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid status", errs)
		return
	}

	sess, _ := middleware.CurrentSession(c)
	result, err := h.service.SetStatus(c.Request.Context(), middleware.ClientID(c), sess.ID, id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case errors.Is(err, ErrInvalidTransition):
			response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "This booking can no longer be changed")
		default:
			response.Upstream(c, err, "Failed to update booking")
		}
		return
	}
	response.Success(c, http.StatusOK, result)
}

func (h *Handler) GetReviews(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)
	summary, err := h.service.Reviews(c.Request.Context(), sess.ID)
	if err != nil {
		response.Upstream(c, err, "Failed to load reviews")
		return
	}
	response.Success(c, http.StatusOK, summary)
}
