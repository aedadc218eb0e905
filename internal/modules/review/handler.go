package review

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
	reviews := v1.Group("/reviews", middleware.RequireSession())
	{
		reviews.GET("/provider/:id", h.GetProviderReviews)
		reviews.GET("/completed", middleware.RequireRole(session.RoleUser), h.GetCompleted)
		reviews.POST("", middleware.RequireRole(session.RoleUser), h.Create)
	}
}

func (h *Handler) GetCompleted(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)
	bookings, err := h.service.Completed(c.Request.Context(), sess.ID)
	if err != nil {
		response.Upstream(c, err, "Could not load bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) GetProviderReviews(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid provider ID")
		return
	}
	summary, err := h.service.ForProvider(c.Request.Context(), id)
	if err != nil {
		response.Upstream(c, err, "Could not load reviews")
		return
	}
	response.Success(c, http.StatusOK, summary)
}

// Create submits a review for a completed booking.
// @Summary		Create review
// @Tags		Reviews
// @Param		request	body	CreateReviewRequest	true	"rating 1..5"
// @Success		201	{object}	map[string]interface{}
// @Router		/reviews [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "No booking selected")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "No booking selected", errs)
		return
	}

	sess, _ := middleware.CurrentSession(c)
	rv, err := h.service.Create(c.Request.Context(), sess.ID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRequest):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Please select a rating")
		case errors.Is(err, ErrReviewNotAllowed):
			response.Error(c, http.StatusForbidden, "REVIEW_NOT_ALLOWED", "Only completed bookings can be reviewed")
		default:
			response.Upstream(c, err, "Could not submit review")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"review": rv, "message": "Review submitted successfully"})
}
