package payment

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"smarthub/internal/middleware"
	"smarthub/internal/pkg/response"
	"smarthub/internal/session"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup) {
	payment := v1.Group("/payment", middleware.RequireRole(session.RoleUser))
	{
		payment.GET("/pending", h.GetPending)
		payment.POST("", h.Pay)
	}
}

func (h *Handler) GetPending(c *gin.Context) {
	pending, err := h.service.Pending(c.Request.Context(), middleware.ClientID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, PendingView{Payment: pending, TestCard: TestCard})
}

// Pay completes the simulated checkout for the pending booking.
// @Summary		Pay for a completed booking
// @Tags		Payment
// @Param		request	body	PayRequest	true	"card form"
// @Success		200	{object}	PayResult
// @Failure		400	{object}	map[string]interface{}	"form check failed"
// @Failure		404	{object}	map[string]interface{}	"no pending payment"
// @Router		/payment [POST]
func (h *Handler) Pay(c *gin.Context) {
	var req PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Please fill in all payment fields")
		return
	}

	result, err := h.service.Pay(c.Request.Context(), middleware.ClientID(c), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	var fieldErr *FieldError
	switch {
	case errors.As(err, &fieldErr):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", fieldErr.Message, map[string]string{fieldErr.Field: fieldErr.Message})
	case errors.Is(err, ErrNoPendingPayment):
		response.ErrorWithAction(c, http.StatusNotFound, "NO_PENDING_PAYMENT", "No payment information found", "My Bookings", BookingsPagePath)
	case errors.Is(err, ErrMarkPaid):
		_ = c.Error(err)
		response.Error(c, http.StatusBadGateway, "PAYMENT_FAILED", "Payment failed. Please try again.")
	default:
		response.Upstream(c, err, "Payment failed. Please try again.")
	}
}
