package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smarthub/internal/pkg/jwt"
	"smarthub/internal/session"
)

const (
	ctxClientID = "client_id"
	ctxSession  = "session"
)

// ClientCookie identifies the browser. A valid signed cookie yields its
// client id; otherwise a fresh id is minted and the cookie (re)issued.
func ClientCookie(tokens *jwt.Service, cookieName string, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID := ""
		if raw, err := c.Cookie(cookieName); err == nil && raw != "" {
			if claims, err := tokens.ValidateToken(raw); err == nil {
				clientID = claims.ClientID
			}
		}

		if clientID == "" {
			clientID = session.NewClientID()
			token, err := tokens.GenerateToken(clientID)
			if err != nil {
				_ = c.Error(err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error":   gin.H{"code": "INTERNAL_ERROR", "message": "Failed to issue client cookie"},
				})
				return
			}
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cookieName, token, int(tokens.TTL().Seconds()), "/", "", secure, true)
		}

		c.Set(ctxClientID, clientID)
		c.Next()
	}
}

// LoadSession reads the client's session once per request. Requests without
// one continue anonymously.
func LoadSession(provider *session.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess, ok := provider.Current(c.Request.Context(), ClientID(c)); ok {
			c.Set(ctxSession, sess)
			c.Set("user_id", sess.ID)
			c.Set("role", string(sess.Role))
		}
		c.Next()
	}
}

func ClientID(c *gin.Context) string {
	return c.GetString(ctxClientID)
}

func CurrentSession(c *gin.Context) (*session.Session, bool) {
	v, ok := c.Get(ctxSession)
	if !ok {
		return nil, false
	}
	sess, ok := v.(*session.Session)
	return sess, ok && sess != nil
}

// SetSession replaces the request's session after login or a profile edit.
func SetSession(c *gin.Context, sess *session.Session) {
	if sess == nil {
		c.Set(ctxSession, (*session.Session)(nil))
		c.Set("user_id", int64(0))
		c.Set("role", "")
		return
	}
	c.Set(ctxSession, sess)
	c.Set("user_id", sess.ID)
	c.Set("role", string(sess.Role))
}
