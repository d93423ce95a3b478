package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Context keys for the authenticated identity
const (
	ContextKeyUserID = "auth_user_id"
	ContextKeyEmail  = "auth_email"
)

// bearerPrefix is matched case-sensitively.
const bearerPrefix = "Bearer "

// Middleware guards routes behind bearer-token authentication.
type Middleware struct {
	tokens *TokenService
	users  UserRepository
}

// NewMiddleware creates a new authentication middleware.
func NewMiddleware(tokens *TokenService, users UserRepository) *Middleware {
	return &Middleware{
		tokens: tokens,
		users:  users,
	}
}

// Handler returns a Gin handler that authenticates requests. On success the
// user's id and email are attached to the request context; otherwise the
// request is aborted with 401.
func (m *Middleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token required"})
			return
		}

		identity, err := m.tokens.Verify(strings.TrimPrefix(authHeader, bearerPrefix))
		if err != nil {
			if errors.Is(err, ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token expired"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		// A valid token may outlive its account; re-resolve the subject.
		user, err := m.users.GetUserByID(identity.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}

		c.Set(ContextKeyUserID, user.ID)
		c.Set(ContextKeyEmail, user.Email)
		c.Next()
	}
}

// GetUserID returns the authenticated user's ID from the context, or 0.
func GetUserID(c *gin.Context) uint {
	if id, ok := c.Get(ContextKeyUserID); ok {
		if userID, ok := id.(uint); ok {
			return userID
		}
	}
	return 0
}

// GetEmail returns the authenticated user's email from the context.
func GetEmail(c *gin.Context) string {
	if email, ok := c.Get(ContextKeyEmail); ok {
		if s, ok := email.(string); ok {
			return s
		}
	}
	return ""
}
