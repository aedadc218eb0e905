package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"smarthub/internal/hubapi"
	"smarthub/internal/middleware"
	"smarthub/internal/pkg/response"
	"smarthub/internal/pkg/validator"
	"smarthub/internal/shell"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.POST("/register", h.Register)
		authGroup.POST("/logout", h.Logout)
	}

	v1.GET("/session", h.GetSession)
	v1.PUT("/profile", middleware.RequireSession(), h.UpdateProfile)
}

// Login signs the browser in.
// @Summary		Log in
// @Tags		Auth
// @Param		request	body	LoginRequest	true	"mobile, password, role"
// @Success		200	{object}	map[string]interface{}	"session and redirect target"
// @Failure		400	{object}	map[string]interface{}	"validation error"
// @Failure		401	{object}	map[string]interface{}	"wrong credentials"
// @Failure		404	{object}	map[string]interface{}	"account not found, action leads to sign-up"
// @Router		/auth/login [POST]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Please check your input and try again.", errs)
		return
	}

	result, err := h.service.Login(c.Request.Context(), middleware.ClientID(c), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	middleware.SetSession(c, result.Session)
	response.Success(c, http.StatusOK, result)
}

// Register creates an account and signs the browser in.
// @Summary		Sign up
// @Tags		Auth
// @Param		request	body	RegisterRequest	true	"account data; provider extras when role is PROVIDER"
// @Success		201	{object}	map[string]interface{}	"session and redirect target"
// @Failure		400	{object}	map[string]interface{}	"validation error"
// @Failure		409	{object}	map[string]interface{}	"mobile already registered, action leads to login"
// @Router		/auth/register [POST]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		msg := "Please fill in all required fields"
		if errs["Mobile"] == "mobile10" {
			msg = "Mobile number must be 10 digits"
		} else if errs["Password"] == "strongpassword" {
			msg = "Password must be at least 8 characters with 1 uppercase, 1 number, and 1 special character"
		}
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", msg, errs)
		return
	}

	result, err := h.service.Register(c.Request.Context(), middleware.ClientID(c), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	middleware.SetSession(c, result.Session)
	response.Success(c, http.StatusCreated, result)
}

func (h *Handler) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context(), middleware.ClientID(c)); err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "LOGOUT_FAILED", "Failed to log out")
		return
	}
	middleware.SetSession(c, nil)
	response.Success(c, http.StatusOK, gin.H{
		"message":     "You have been successfully logged out",
		"redirectUrl": shell.LogoutRedirect,
	})
}

// GetSession returns the stored session, or null when signed out.
func (h *Handler) GetSession(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		response.Success(c, http.StatusOK, gin.H{"session": nil})
		return
	}
	response.Success(c, http.StatusOK, gin.H{"session": sess})
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	current, _ := middleware.CurrentSession(c)

	var req ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Please check your input and try again.", errs)
		return
	}

	updated, err := h.service.UpdateProfile(c.Request.Context(), middleware.ClientID(c), current, req)
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "PROFILE_UPDATE_FAILED", "Failed to update profile")
		return
	}

	middleware.SetSession(c, updated)
	response.Success(c, http.StatusOK, gin.H{"message": "Profile updated successfully", "session": updated})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	var authErr *hubapi.AuthError
	switch {
	case errors.As(err, &authErr):
		status := http.StatusBadRequest
		switch authErr.Kind {
		case hubapi.AuthUserNotFound:
			status = http.StatusNotFound
		case hubapi.AuthInvalidCredentials:
			status = http.StatusUnauthorized
		case hubapi.AuthDuplicateAccount:
			status = http.StatusConflict
		case hubapi.AuthNetwork, hubapi.AuthServer:
			status = http.StatusBadGateway
		}
		if authErr.Kind == hubapi.AuthValidation && len(authErr.Details) > 0 {
			response.ErrorWithDetails(c, status, string(authErr.Kind), authErr.UserMessage(), authErr.Details)
			return
		}
		response.ErrorWithAction(c, status, string(authErr.Kind), authErr.UserMessage(), authErr.Action(), authErr.ActionURL())
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "SERVER_ERROR", "Server error. Please try again later.")
	}
}
