package auth

import (
	"net/http"
	"strings"

	"tasting-contest-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const actorKey = "user_id"

// TokenValidator validates bearer tokens
type TokenValidator interface {
	ValidateJWT(tokenString string) (*AuthClaims, error)
}

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	validator TokenValidator
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(validator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{validator: validator}
}

// RequireAuth validates the bearer token and stores the actor on the request
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "authorization header is required")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			unauthorized(c, "invalid authorization header format")
			return
		}

		claims, err := m.validator.ValidateJWT(tokenString)
		if err != nil {
			logger.WithContext(c.Request.Context()).WithField("error", err.Error()).Debug("rejected token")
			unauthorized(c, "invalid token")
			return
		}
		userID, _ := claims.UserID()

		c.Set(actorKey, userID)
		c.Set("auth_claims", claims)
		c.Request = c.Request.WithContext(logger.ContextWithActor(c.Request.Context(), userID))
		c.Next()
	}
}

// Actor returns the authenticated user of the request
func Actor(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok && id != uuid.Nil
}

// SetActor stores an authenticated user on the request
func SetActor(c *gin.Context, userID uuid.UUID) {
	c.Set(actorKey, userID)
	c.Request = c.Request.WithContext(logger.ContextWithActor(c.Request.Context(), userID))
}

func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"status":  "error",
		"message": message,
		"data":    nil,
	})
}
