package complaint

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"smarthub/internal/hubapi"
	"smarthub/internal/middleware"
	"smarthub/internal/pkg/response"
	"smarthub/internal/pkg/validator"
	"smarthub/internal/session"
)

type Backend interface {
	CreateComplaint(ctx context.Context, req hubapi.ComplaintRequest) (*hubapi.Complaint, error)
}

type Handler struct {
	backend Backend
}

func NewHandler(backend Backend) *Handler {
	return &Handler{backend: backend}
}

func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup) {
	v1.POST("/complaints", middleware.RequireRole(session.RoleUser), h.File)
}

// File lodges a complaint, optionally against a provider.
func (h *Handler) File(c *gin.Context) {
	var req FileRequest
	_ = c.ShouldBindJSON(&req)
	req.Message = strings.TrimSpace(req.Message)
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Message is required", errs)
		return
	}

	sess, _ := middleware.CurrentSession(c)
	complaint, err := h.backend.CreateComplaint(c.Request.Context(), hubapi.ComplaintRequest{
		UserID:     sess.ID,
		ProviderID: req.ProviderID,
		Message:    req.Message,
	})
	if err != nil {
		response.Upstream(c, err, "Could not submit complaint")
		return
	}
	response.Success(c, http.StatusCreated, complaint)
}
