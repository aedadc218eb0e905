package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"smarthub/internal/hubapi"
	"smarthub/internal/session"
	"smarthub/internal/shell"
)

type Service struct {
	backend       Backend
	sessions      *session.Provider
	redirectDelay time.Duration
	loggerf       func(format string, args ...interface{})
}

func NewService(backend Backend, sessions *session.Provider, redirectDelay time.Duration, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{
		backend:       backend,
		sessions:      sessions,
		redirectDelay: redirectDelay,
		loggerf:       loggerf,
	}
}

// Login authenticates against the backend and stores the session for the
// client. Backend failures come back as *hubapi.AuthError.
func (s *Service) Login(ctx context.Context, clientID string, req LoginRequest) (*AuthResult, error) {
	role, err := session.ParseRole(req.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	resp, err := s.backend.Login(ctx, hubapi.LoginRequest{
		Mobile:   req.Mobile,
		Password: req.Password,
		Role:     role.BackendName(),
	})
	if err != nil {
		authErr := hubapi.ClassifyAuth(err)
		s.loggerf("level=warn msg=login_failed client_id=%s kind=%s status=%d", clientID, authErr.Kind, authErr.StatusCode)
		return nil, authErr
	}

	return s.establish(ctx, clientID, resp, "Login successful", s.redirectDelay)
}

func (s *Service) Register(ctx context.Context, clientID string, req RegisterRequest) (*AuthResult, error) {
	role, err := session.ParseRole(req.Role)
	if err != nil || role == session.RoleAdmin {
		return nil, fmt.Errorf("%w: role must be USER or PROVIDER", ErrValidation)
	}

	signup := hubapi.SignupRequest{
		FullName: strings.TrimSpace(req.FullName),
		Mobile:   req.Mobile,
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
		Role:     role.BackendName(),
	}
	if role == session.RoleProvider {
		signup.ServiceType = req.ServiceType
		signup.Experience = req.Experience
		signup.Price = req.Price
		signup.Availability = req.Availability
		signup.Location = req.Location
	}

	resp, err := s.backend.Register(ctx, signup)
	if err != nil {
		authErr := hubapi.ClassifyAuth(err)
		s.loggerf("level=warn msg=register_failed client_id=%s kind=%s status=%d", clientID, authErr.Kind, authErr.StatusCode)
		return nil, authErr
	}

	return s.establish(ctx, clientID, resp, "Account created successfully", 0)
}

func (s *Service) establish(ctx context.Context, clientID string, resp *hubapi.AuthResponse, fallbackMsg string, delay time.Duration) (*AuthResult, error) {
	sess, err := session.FromAuthResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadAuthReply, err)
	}
	if err := s.sessions.Login(ctx, clientID, sess); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	redirect := resp.RedirectURL
	if redirect == "" {
		redirect = shell.HomePath(sess.Role)
	}
	msg := resp.Message
	if msg == "" {
		msg = fallbackMsg
	}

	s.loggerf("level=info msg=session_started client_id=%s user_id=%d role=%s", clientID, sess.ID, sess.Role)
	return &AuthResult{
		Message:         msg,
		Session:         sess,
		RedirectURL:     redirect,
		RedirectAfterMs: delay.Milliseconds(),
	}, nil
}

func (s *Service) Logout(ctx context.Context, clientID string) error {
	return s.sessions.Logout(ctx, clientID)
}

// UpdateProfile merges the edited fields into the stored session.
func (s *Service) UpdateProfile(ctx context.Context, clientID string, current *session.Session, req ProfileUpdateRequest) (*session.Session, error) {
	updated := *current
	updated.DisplayName = strings.TrimSpace(req.FullName)
	if req.Email != "" {
		updated.Email = strings.TrimSpace(req.Email)
	}
	if req.Mobile != "" {
		updated.Mobile = req.Mobile
	}
	if err := s.sessions.Update(ctx, clientID, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
