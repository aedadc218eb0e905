package notification

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"smarthub/internal/feed"
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
	g := v1.Group("/notifications", middleware.RequireRole(session.RoleUser, session.RoleProvider))
	{
		g.GET("", h.GetNotifications)
		g.POST("/refresh", h.Refresh)
		g.POST("/:id/read", h.MarkAsRead)
		g.POST("/read-all", h.MarkAllAsRead)
		g.POST("/bookings/:bookingId/accept", h.Accept)
		g.POST("/bookings/:bookingId/reject", h.Reject)
	}
}

// GetNotifications returns the feed snapshot: items, unread count and which
// rows carry accept/reject controls.
// @Summary		Notification feed
// @Tags		Notifications
// @Success		200	{object}	map[string]interface{}	"feed snapshot"
// @Failure		502	{object}	map[string]interface{}	"backend unreachable"
// @Router		/notifications [GET]
func (h *Handler) GetNotifications(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)
	snap, err := h.service.Snapshot(c.Request.Context(), middleware.ClientID(c), sess)
	h.write(c, snap, err, "Failed to load notifications")
}

func (h *Handler) Refresh(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)
	snap, err := h.service.Refresh(c.Request.Context(), middleware.ClientID(c), sess)
	h.write(c, snap, err, "Failed to load notifications")
}

func (h *Handler) MarkAsRead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid notification ID")
		return
	}

	sess, _ := middleware.CurrentSession(c)
	snap, err := h.service.MarkRead(c.Request.Context(), middleware.ClientID(c), sess, id)
	h.write(c, snap, err, "Failed to mark as read")
}

func (h *Handler) MarkAllAsRead(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)
	snap, err := h.service.MarkAllRead(c.Request.Context(), middleware.ClientID(c), sess)
	h.write(c, snap, err, "Failed to mark all as read")
}

// Accept accepts the booking behind a BOOKING_REQUEST notification.
// @Summary		Accept booking request
// @Tags		Notifications
// @Param		bookingId	path	int				true	"booking id"
// @Param		request		body	DecisionRequest	true	"notification that triggered the decision"
// @Success		200	{object}	map[string]interface{}	"feed snapshot with the booking shown as accepted"
// @Failure		409	{object}	map[string]interface{}	"booking is no longer pending"
// @Router		/notifications/bookings/{bookingId}/accept [POST]
func (h *Handler) Accept(c *gin.Context) {
	h.decide(c, true)
}

func (h *Handler) Reject(c *gin.Context) {
	h.decide(c, false)
}

func (h *Handler) decide(c *gin.Context, accept bool) {
	bookingID, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil || bookingID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	var req DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "notificationId is required", errs)
		return
	}

	sess, _ := middleware.CurrentSession(c)
	ctx, clientID := c.Request.Context(), middleware.ClientID(c)

	var snap feed.Snapshot
	if accept {
		snap, err = h.service.Accept(ctx, clientID, sess, bookingID, req.NotificationID)
		h.write(c, snap, err, "Failed to accept booking. Please try again.")
		return
	}
	snap, err = h.service.Reject(ctx, clientID, sess, bookingID, req.NotificationID)
	h.write(c, snap, err, "Failed to reject booking. Please try again.")
}

func (h *Handler) write(c *gin.Context, snap feed.Snapshot, err error, failMsg string) {
	switch {
	case err == nil:
		response.Success(c, http.StatusOK, snap)
	case errors.Is(err, ErrNoFeed):
		response.Error(c, http.StatusForbidden, "FEED_UNAVAILABLE", err.Error())
	case errors.Is(err, feed.ErrNotProvider):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	case errors.Is(err, feed.ErrNotActionable):
		response.Error(c, http.StatusConflict, "BOOKING_NOT_PENDING", "This booking has already been handled")
	default:
		response.Upstream(c, err, failMsg)
	}
}
