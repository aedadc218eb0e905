package hubapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const defaultErrorMessage = "An error occurred"

// ErrNetwork matches every NetworkError through errors.Is.
var ErrNetwork = errors.New("unable to connect to server")

// NetworkError is a transport failure: nothing usable came back.
type NetworkError struct {
	Method string
	Path   string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

func (e *NetworkError) Is(target error) bool { return target == ErrNetwork }

// APIError is a non-2xx answer from the backend.
type APIError struct {
	StatusCode int
	Message    string
	// Code is the machine-readable kind, when the backend sends one.
	Code    string
	Details map[string]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
}

func newAPIError(status int, raw []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Message: defaultErrorMessage}

	var body struct {
		Message string            `json:"message"`
		Error   string            `json:"error"`
		Code    string            `json:"code"`
		Kind    string            `json:"kind"`
		Details map[string]string `json:"details"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		if text := strings.TrimSpace(string(raw)); text != "" && len(text) < 512 {
			apiErr.Message = text
		}
		return apiErr
	}

	switch {
	case body.Message != "":
		apiErr.Message = body.Message
	case body.Error != "":
		apiErr.Message = body.Error
	}
	apiErr.Code = body.Code
	if apiErr.Code == "" {
		apiErr.Code = body.Kind
	}
	apiErr.Details = body.Details
	return apiErr
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// AuthErrorKind classifies login and registration failures.
type AuthErrorKind string

const (
	AuthUserNotFound       AuthErrorKind = "USER_NOT_FOUND"
	AuthInvalidCredentials AuthErrorKind = "INVALID_CREDENTIALS"
	AuthNetwork            AuthErrorKind = "NETWORK_ERROR"
	AuthValidation         AuthErrorKind = "VALIDATION_ERROR"
	AuthDuplicateAccount   AuthErrorKind = "DUPLICATE_ACCOUNT"
	AuthServer             AuthErrorKind = "SERVER_ERROR"
)

type AuthError struct {
	Kind       AuthErrorKind
	Message    string
	StatusCode int
	Details    map[string]string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// ClassifyAuth turns a Login/Register failure into an AuthError. A
// machine-readable code from the backend wins; the message substring rules
// only apply when the backend sends free text alone.
func ClassifyAuth(err error) *AuthError {
	if err == nil {
		return nil
	}

	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return &AuthError{
			Kind:    AuthNetwork,
			Message: "Unable to connect to server. Please check your internet connection.",
		}
	}

	out := &AuthError{Message: apiErr.Message, StatusCode: apiErr.StatusCode}
	if kind, ok := knownAuthKind(apiErr.Code); ok {
		out.Kind = kind
		if kind == AuthValidation {
			out.Details = apiErr.Details
		}
		return out
	}

	switch apiErr.StatusCode {
	case http.StatusBadRequest:
		switch {
		case strings.Contains(apiErr.Message, "Invalid credentials"),
			strings.Contains(apiErr.Message, "User not found"):
			out.Kind = AuthUserNotFound
		case strings.Contains(apiErr.Message, "already"):
			out.Kind = AuthDuplicateAccount
		default:
			out.Kind = AuthValidation
			out.Details = apiErr.Details
			if out.Details == nil {
				out.Details = map[string]string{}
			}
		}
	case http.StatusUnauthorized:
		out.Kind = AuthInvalidCredentials
	case http.StatusConflict:
		out.Kind = AuthDuplicateAccount
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable:
		out.Kind = AuthServer
	default:
		out.Kind = AuthValidation
	}
	return out
}

func knownAuthKind(code string) (AuthErrorKind, bool) {
	switch kind := AuthErrorKind(strings.ToUpper(strings.TrimSpace(code))); kind {
	case AuthUserNotFound, AuthInvalidCredentials, AuthValidation, AuthDuplicateAccount, AuthServer:
		return kind, true
	}
	return "", false
}

// UserMessage is the dialog text for an auth failure.
func (e *AuthError) UserMessage() string {
	switch e.Kind {
	case AuthUserNotFound:
		return "Account not found. This phone number is not registered with us."
	case AuthInvalidCredentials:
		return "Invalid phone number or password. Please try again."
	case AuthDuplicateAccount:
		return "This phone number is already registered. Please use a different number or login."
	case AuthValidation:
		if e.Message != "" {
			return e.Message
		}
		return "Please check your input and try again."
	case AuthNetwork:
		return "Unable to connect to server. Please check your internet connection."
	case AuthServer:
		return "Server error. Please try again later."
	default:
		return "An error occurred. Please try again."
	}
}

// Action is the label of the dialog button.
func (e *AuthError) Action() string {
	switch e.Kind {
	case AuthUserNotFound:
		return "Create Account"
	case AuthDuplicateAccount:
		return "Go to Login"
	default:
		return "Try Again"
	}
}

// ActionURL is where the dialog button leads; empty means stay.
func (e *AuthError) ActionURL() string {
	switch e.Kind {
	case AuthUserNotFound:
		return "/signup"
	case AuthDuplicateAccount:
		return "/login"
	default:
		return ""
	}
}
