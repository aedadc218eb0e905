// Package testutil wires a gin router with the client-cookie middleware and
// a fake hub backend for handler tests.
package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"smarthub/internal/hubapi"
	"smarthub/internal/middleware"
	"smarthub/internal/pkg/jwt"
	"smarthub/internal/session"
)

const CookieName = "ssh_client"

type Response struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorDetail    `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code      string      `json:"code"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
	Action    string      `json:"action,omitempty"`
	ActionURL string      `json:"action_url,omitempty"`
}

// Env is a router plus the state behind it.
type Env struct {
	Engine   *gin.Engine
	V1       *gin.RouterGroup
	Tokens   *jwt.Service
	Sessions *session.Provider
	KV       *session.MemoryKV
}

func NewEnv(t *testing.T) *Env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	kv := session.NewMemoryKV()
	env := &Env{
		Engine:   gin.New(),
		Tokens:   jwt.New("test-secret", time.Hour),
		Sessions: session.NewProvider(session.NewStore(kv)),
		KV:       kv,
	}
	env.Engine.Use(middleware.ErrorLogger(), middleware.ClientCookie(env.Tokens, CookieName, false), middleware.LoadSession(env.Sessions))
	env.V1 = env.Engine.Group("/api/v1")
	return env
}

// Cookie returns a valid client cookie for clientID.
func (e *Env) Cookie(t *testing.T, clientID string) *http.Cookie {
	t.Helper()
	token, err := e.Tokens.GenerateToken(clientID)
	require.NoError(t, err)
	return &http.Cookie{Name: CookieName, Value: token}
}

// SignIn stores sess for clientID.
func (e *Env) SignIn(t *testing.T, clientID string, sess *session.Session) {
	t.Helper()
	require.NoError(t, e.Sessions.Login(context.Background(), clientID, sess))
}

// Do performs a request as clientID; an empty clientID sends no cookie.
func (e *Env) Do(t *testing.T, method, path, clientID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if clientID != "" {
		req.AddCookie(e.Cookie(t, clientID))
	}
	w := httptest.NewRecorder()
	e.Engine.ServeHTTP(w, req)
	return w
}

// Decode parses the response envelope and, when out is non-nil, its data.
func Decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	if out != nil && len(resp.Data) > 0 {
		require.NoError(t, json.Unmarshal(resp.Data, out))
	}
	return resp
}

// Backend is a fake hub API. Routes use net/http pattern syntax, e.g.
// "PUT /api/bookings/{id}/status".
type Backend struct {
	Server *httptest.Server
	Client *hubapi.Client
	mux    *http.ServeMux
}

func NewBackend(t *testing.T, opts ...hubapi.Option) *Backend {
	t.Helper()
	b := &Backend{mux: http.NewServeMux()}
	b.Server = httptest.NewServer(b.mux)
	t.Cleanup(b.Server.Close)
	b.Client = hubapi.NewClient(b.Server.URL, opts...)
	return b
}

func (b *Backend) Handle(pattern string, fn http.HandlerFunc) {
	b.mux.HandleFunc(pattern, fn)
}

// JSON registers a route that answers status with body.
func (b *Backend) JSON(pattern string, status int, body interface{}) {
	b.Handle(pattern, func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, status, body)
	})
}

func WriteJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}
