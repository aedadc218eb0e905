// Package session holds the identity record each browser carries between
// page views, plus the small hand-off payloads pages pass to each other.
package session

import (
	"encoding/json"
	"errors"
	"strings"

	"smarthub/internal/hubapi"
)

type Role string

const (
	RoleUser     Role = "USER"
	RoleProvider Role = "PROVIDER"
	RoleAdmin    Role = "ADMIN"
)

var (
	ErrUnknownRole = errors.New("unknown role")
	ErrMissingID   = errors.New("session has no identifier")
	ErrNoSession   = errors.New("no session")
)

// ParseRole accepts the UI names and the backend's SERVICE_PROVIDER alias.
func ParseRole(s string) (Role, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "USER":
		return RoleUser, nil
	case "PROVIDER", "SERVICE_PROVIDER", "SERVICEPROVIDER":
		return RoleProvider, nil
	case "ADMIN":
		return RoleAdmin, nil
	}
	return "", ErrUnknownRole
}

// BackendName is the role as the backend's auth endpoints spell it.
func (r Role) BackendName() string {
	if r == RoleProvider {
		return hubapi.RoleServiceProvider
	}
	return string(r)
}

func (r *Role) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseRole(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Session is the client-held identity record. It has no expiry and is only
// invalidated by an explicit Clear.
type Session struct {
	ID          int64  `json:"id"`
	Role        Role   `json:"role"`
	DisplayName string `json:"fullName,omitempty"`
	Email       string `json:"email,omitempty"`
	Mobile      string `json:"mobile,omitempty"`
}

func (s *Session) UnmarshalJSON(data []byte) error {
	// Older records stored the raw login response, where the identifier
	// may sit under userId or providerId.
	var raw struct {
		ID          int64  `json:"id"`
		UserID      int64  `json:"userId"`
		ProviderID  int64  `json:"providerId"`
		Role        Role   `json:"role"`
		DisplayName string `json:"fullName"`
		Email       string `json:"email"`
		Mobile      string `json:"mobile"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	id := raw.UserID
	if id == 0 {
		id = raw.ProviderID
	}
	if id == 0 {
		id = raw.ID
	}
	if id == 0 {
		return ErrMissingID
	}
	if raw.Role == "" {
		return ErrUnknownRole
	}

	*s = Session{
		ID:          id,
		Role:        raw.Role,
		DisplayName: raw.DisplayName,
		Email:       raw.Email,
		Mobile:      raw.Mobile,
	}
	return nil
}

// FromAuthResponse builds the session stored after a successful login or
// registration.
func FromAuthResponse(resp *hubapi.AuthResponse) (*Session, error) {
	if resp == nil || resp.ID == 0 {
		return nil, ErrMissingID
	}
	role, err := ParseRole(resp.Role)
	if err != nil {
		return nil, err
	}
	return &Session{
		ID:          resp.ID,
		Role:        role,
		DisplayName: resp.FullName,
		Email:       resp.Email,
		Mobile:      resp.Mobile,
	}, nil
}
