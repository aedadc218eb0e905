package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smarthub/internal/pkg/jwt"
	"smarthub/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(tokens *jwt.Service, provider *session.Provider, guards ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(ClientCookie(tokens, "ssh_client", false), LoadSession(provider))
	handlers := append(guards, func(c *gin.Context) {
		sess, ok := CurrentSession(c)
		if !ok {
			c.JSON(http.StatusOK, gin.H{"client_id": ClientID(c)})
			return
		}
		c.JSON(http.StatusOK, gin.H{"client_id": ClientID(c), "user_id": sess.ID, "role": sess.Role})
	})
	router.GET("/check", handlers...)
	return router
}

func TestClientCookie_IssuesAndReuses(t *testing.T) {
	tokens := jwt.New("test-secret", time.Hour)
	provider := session.NewProvider(session.NewStore(session.NewMemoryKV()))
	router := newRouter(tokens, provider)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/check", nil))
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "ssh_client", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	claims, err := tokens.ValidateToken(cookies[0].Value)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/check", nil)
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Empty(t, w.Result().Cookies())
	assert.Contains(t, w.Body.String(), claims.ClientID)
}

func TestClientCookie_TamperedCookieIsReplaced(t *testing.T) {
	tokens := jwt.New("test-secret", time.Hour)
	other := jwt.New("other-secret", time.Hour)
	forged, err := other.GenerateToken("victim")
	require.NoError(t, err)

	router := newRouter(tokens, session.NewProvider(session.NewStore(session.NewMemoryKV())))

	req := httptest.NewRequest(http.MethodGet, "/check", nil)
	req.AddCookie(&http.Cookie{Name: "ssh_client", Value: forged})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Len(t, w.Result().Cookies(), 1)
	assert.NotContains(t, w.Body.String(), "victim")
}

func TestLoadSessionAndRequireRole(t *testing.T) {
	tokens := jwt.New("test-secret", time.Hour)
	provider := session.NewProvider(session.NewStore(session.NewMemoryKV()))

	token, err := tokens.GenerateToken("client-1")
	require.NoError(t, err)
	cookie := &http.Cookie{Name: "ssh_client", Value: token}

	router := newRouter(tokens, provider, RequireRole(session.RoleProvider))

	req := httptest.NewRequest(http.MethodGet, "/check", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	require.NoError(t, provider.Login(context.Background(), "client-1", &session.Session{ID: 3, Role: session.RoleUser}))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	require.NoError(t, provider.Update(context.Background(), "client-1", &session.Session{ID: 7, Role: session.RoleProvider}))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":7`)
	assert.Contains(t, w.Body.String(), `"role":"PROVIDER"`)
}

func TestCORS(t *testing.T) {
	router := gin.New()
	router.Use(CORS([]string{"https://hub.example.com"}))
	router.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://hub.example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://hub.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestErrorLogger_RecoversPanic(t *testing.T) {
	router := gin.New()
	router.Use(ErrorLogger())
	router.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_SERVER_ERROR")
}
