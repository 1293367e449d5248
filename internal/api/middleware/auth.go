package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jiyoon/drambook/internal/auth"
	"github.com/jiyoon/drambook/internal/logger"
)

// Context keys set by Auth for downstream handlers.
const (
	ContextUserID   = "user_id"
	ContextNickname = "nickname"
)

// Auth resolves the session cookie (or bearer token) to a logged-in
// user and rejects the request otherwise.
func Auth(sessions *auth.SessionStore, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c, cookieName)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}

		session, ok := sessions.Get(token)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
			return
		}

		c.Set(ContextUserID, session.UserID)
		c.Set(ContextNickname, session.Nickname)

		ctx := logger.ContextWithField(c.Request.Context(), logger.FieldUserID, session.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// UserID returns the authenticated user's ID set by Auth.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

func sessionToken(c *gin.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
