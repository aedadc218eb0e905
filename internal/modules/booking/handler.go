package booking

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
	v1.GET("/booking/pending", h.GetPending)
	v1.POST("/booking", h.Create)

	users := v1.Group("", middleware.RequireRole(session.RoleUser))
	{
		users.GET("/bookings", h.List)
		users.POST("/bookings/:id/pay", h.PayNow)
	}
}

func (h *Handler) GetPending(c *gin.Context) {
	pending, err := h.service.Pending(c.Request.Context(), middleware.ClientID(c))
	if err != nil {
		h.writeError(c, err, "Failed to load booking")
		return
	}
	response.Success(c, http.StatusOK, pending)
}

// Create books the provider chosen on the search page.
// @Summary		Create booking
// @Tags		Bookings
// @Param		request	body	CreateBookingRequest	true	"date (YYYY-MM-DD) and time (HH:MM or HH:MM:SS)"
// @Success		201	{object}	CreateBookingResult
// @Failure		400	{object}	map[string]interface{}	"date or time missing"
// @Failure		404	{object}	map[string]interface{}	"no provider selected"
// @Router		/booking [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	_ = c.ShouldBindJSON(&req)
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Please select both date and time", errs)
		return
	}

	sess, ok := middleware.CurrentSession(c)
	if !ok || sess.Role != session.RoleUser {
		response.ErrorWithAction(c, http.StatusForbidden, "USER_LOGIN_REQUIRED", "Please log in as a User to book a service.", "Login", "/login")
		return
	}
	result, err := h.service.Create(c.Request.Context(), middleware.ClientID(c), sess, req)
	if err != nil {
		h.writeError(c, err, "Booking failed. Please try again.")
		return
	}
	response.Success(c, http.StatusCreated, result)
}

func (h *Handler) List(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)
	views, err := h.service.List(c.Request.Context(), sess.ID)
	if err != nil {
		response.Upstream(c, err, "Failed to fetch bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": views})
}

func (h *Handler) PayNow(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	sess, _ := middleware.CurrentSession(c)
	result, err := h.service.PayNow(c.Request.Context(), middleware.ClientID(c), sess.ID, id)
	if err != nil {
		h.writeError(c, err, "Failed to start payment")
		return
	}
	response.Success(c, http.StatusOK, result)
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNoPendingBooking):
		response.ErrorWithAction(c, http.StatusNotFound, "NO_PENDING_BOOKING", "Please choose a provider first", "Search Services", SearchPagePath)
	case errors.Is(err, ErrNotPayable):
		response.Error(c, http.StatusConflict, "NOT_PAYABLE", "Only completed bookings can be paid")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		response.Upstream(c, err, fallback)
	}
}
