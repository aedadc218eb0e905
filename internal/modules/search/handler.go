package search

import (
	"net/http"

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
	g := v1.Group("/search")
	{
		g.GET("", h.Search)
		g.POST("/select", middleware.RequireRole(session.RoleUser), h.Select)
	}
}

// Search lists providers by service type and location; both are optional.
// @Summary		Search providers
// @Tags		Search
// @Param		type		query	string	false	"service type"
// @Param		location	query	string	false	"location"
// @Success		200	{object}	map[string]interface{}	"providers"
// @Router		/search [GET]
func (h *Handler) Search(c *gin.Context) {
	providers, err := h.service.Search(c.Request.Context(), c.Query("type"), c.Query("location"))
	if err != nil {
		response.Upstream(c, err, "Failed to fetch providers")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"providers": providers})
}

// Select remembers the provider the user wants to book.
func (h *Handler) Select(c *gin.Context) {
	var req SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Please choose a provider", errs)
		return
	}

	pending, err := h.service.Select(c.Request.Context(), middleware.ClientID(c), req.ProviderID)
	if err != nil {
		response.Upstream(c, err, "Failed to select provider")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"pendingBooking": pending, "redirectUrl": BookingPagePath})
}
