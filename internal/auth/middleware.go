package auth

import (
	"net/http"
	"strings"

	"mod-registry-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CallerKey is the gin context key holding the authenticated token row
const CallerKey = "caller_token"

// SessionKey is the gin context key holding validated session claims
const SessionKey = "session_claims"

// AuthMiddleware validates credentials on protected route groups
type AuthMiddleware struct {
	tokens  *service.TokenService
	session *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(tokens *service.TokenService, session *AuthService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, session: session}
}

// RequireToken validates the registry bearer token from the Authorization
// header: a lookup plus a ban check, nothing cryptographic on the read path.
func (m *AuthMiddleware) RequireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No Authorization Token provided"})
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		row, err := m.tokens.Lookup(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		c.Set(CallerKey, row)
		c.Set("user_id", row.UserID)
		c.Set("email", row.Email)
		c.Next()
	}
}

// RequireSession validates the browser session JWT, from either the
// Authorization header or the session cookie.
func (m *AuthMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		if header := c.GetHeader("Authorization"); header != "" {
			tokenString = strings.TrimPrefix(header, "Bearer ")
		} else if cookie, err := c.Cookie("session"); err == nil {
			tokenString = cookie
		}

		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No session provided"})
			c.Abort()
			return
		}

		claims, err := m.session.ValidateSession(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid session"})
			c.Abort()
			return
		}

		c.Set(SessionKey, claims)
		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Next()
	}
}
