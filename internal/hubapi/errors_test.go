package hubapi

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyAuth_SubstringFallback(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		kind   AuthErrorKind
		action string
		url    string
	}{
		{"user not found", &APIError{StatusCode: 400, Message: "User not found"}, AuthUserNotFound, "Create Account", "/signup"},
		{"invalid credentials", &APIError{StatusCode: 400, Message: "Invalid credentials"}, AuthUserNotFound, "Create Account", "/signup"},
		{"duplicate", &APIError{StatusCode: 400, Message: "Mobile number already registered"}, AuthDuplicateAccount, "Go to Login", "/login"},
		{"validation", &APIError{StatusCode: 400, Message: "Invalid email format"}, AuthValidation, "Try Again", ""},
		{"conflict", &APIError{StatusCode: 409, Message: "x"}, AuthDuplicateAccount, "Go to Login", "/login"},
		{"server", &APIError{StatusCode: 503, Message: "x"}, AuthServer, "Try Again", ""},
		{"network", &NetworkError{Method: "POST", Path: "/api/auth/login", Err: errors.New("refused")}, AuthNetwork, "Try Again", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyAuth(tc.err)
			assert.Equal(t, tc.kind, got.Kind)
			assert.Equal(t, tc.action, got.Action())
			assert.Equal(t, tc.url, got.ActionURL())
			assert.NotEmpty(t, got.UserMessage())
		})
	}
}

func TestClassifyAuth_MachineCodeWins(t *testing.T) {
	// The text would match the duplicate rule; the code says otherwise.
	err := &APIError{StatusCode: http.StatusBadRequest, Message: "already tried too often", Code: "user_not_found"}
	assert.Equal(t, AuthUserNotFound, ClassifyAuth(err).Kind)
}

func TestClassifyAuth_Nil(t *testing.T) {
	assert.Nil(t, ClassifyAuth(nil))
}
