package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"smarthub/internal/middleware"
	"smarthub/internal/pkg/response"
	"smarthub/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup) {
	admin := v1.Group("/admin", middleware.AdminOnly())
	{
		admin.GET("/overview", h.GetOverview)
		admin.GET("/users", h.GetUsers)
		admin.GET("/providers", h.GetProviders)
		admin.GET("/bookings", h.GetBookings)
		admin.GET("/complaints", h.GetComplaints)
		admin.PUT("/complaints/:id", h.UpdateComplaint)
	}
}

// GetOverview returns the admin dashboard counters and recent activity.
// @Summary		Admin overview
// @Tags		Admin
// @Success		200	{object}	Overview
// @Failure		403	{object}	map[string]interface{}	"admin only"
// @Failure		502	{object}	map[string]interface{}	"backend unavailable"
// @Router		/admin/overview [GET]
func (h *Handler) GetOverview(c *gin.Context) {
	overview, err := h.service.Overview(c.Request.Context())
	if err != nil {
		response.Upstream(c, err, "Failed to fetch data from backend")
		return
	}
	response.Success(c, http.StatusOK, overview)
}

func (h *Handler) GetUsers(c *gin.Context) {
	users, err := h.service.Users(c.Request.Context())
	if err != nil {
		response.Upstream(c, err, "Failed to fetch users")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"users": users})
}

func (h *Handler) GetProviders(c *gin.Context) {
	providers, err := h.service.Providers(c.Request.Context())
	if err != nil {
		response.Upstream(c, err, "Failed to fetch providers")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"providers": providers})
}

func (h *Handler) GetBookings(c *gin.Context) {
	bookings, err := h.service.Bookings(c.Request.Context())
	if err != nil {
		response.Upstream(c, err, "Failed to fetch bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) GetComplaints(c *gin.Context) {
	complaints, err := h.service.Complaints(c.Request.Context())
	if err != nil {
		response.Upstream(c, err, "Failed to fetch complaints")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"complaints": complaints})
}

func (h *Handler) UpdateComplaint(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid complaint ID")
		return
	}

	var req UpdateComplaintRequest
	_ = c.ShouldBindJSON(&req)
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid complaint status", errs)
		return
	}

	complaint, err := h.service.UpdateComplaint(c.Request.Context(), id, req)
	if err != nil {
		response.Upstream(c, err, "Failed to update complaint")
		return
	}
	response.Success(c, http.StatusOK, complaint)
}
