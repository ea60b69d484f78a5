package middleware

import (
	"net/http"
	"strings"

	"busbook/internal/domain"

	"github.com/gin-gonic/gin"
)

const (
	authContextKey = "auth"

	// TokenCookie holds the admin token for browser clients.
	TokenCookie = "admin_token"
)

// TokenParser turns a raw token into the admin it belongs to.
type TokenParser interface {
	ParseToken(raw string) (*domain.AuthContext, error)
}

// RequireAdmin accepts a Bearer header or the admin_token cookie.
// Requests without a valid admin token are rejected with 401.
func RequireAdmin(p TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth, err := p.ParseToken(tokenFromRequest(c))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      err.Error(),
				"code":       "auth_required",
				"message":    err.Error(),
				"request_id": GetRequestID(c),
			})
			return
		}
		c.Set(authContextKey, auth)
		c.Next()
	}
}

// AdminFromContext returns the admin stored by RequireAdmin, or nil.
func AdminFromContext(c *gin.Context) *domain.AuthContext {
	if v, ok := c.Get(authContextKey); ok {
		if a, ok := v.(*domain.AuthContext); ok {
			return a
		}
	}
	return nil
}

func tokenFromRequest(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		if token, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	if cookie, err := c.Cookie(TokenCookie); err == nil {
		return cookie
	}
	return ""
}
