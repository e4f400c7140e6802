package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Aashiq1/TripGenie-sub000/config"
	apperrors "github.com/Aashiq1/TripGenie-sub000/errors"
	"github.com/Aashiq1/TripGenie-sub000/logger"
)

const (
	// UserEmailKey is the gin context key for the authenticated member's email.
	UserEmailKey = "user_email"
)

// SessionClaims are the claims this service reads from session tokens.
// Token issuance lives in the auth service; this layer only verifies.
type SessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// AuthMiddleware validates the Bearer token and stores the member's
// email on the context. When no secret is configured (local
// development), requests pass through unauthenticated.
func AuthMiddleware(cfg *config.ServerConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.JwtSecretKey == "" {
			c.Next()
			return
		}

		log := logger.GetLogger()

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			abortUnauthorized(c, "Missing or malformed Authorization header")
			return
		}

		claims := &SessionClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims,
			func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(cfg.JwtSecretKey), nil
			})
		if err != nil || !token.Valid {
			log.Debugw("Token validation failed", "error", err, "path", c.Request.URL.Path)
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(UserEmailKey, claims.Email)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	appErr := apperrors.AuthenticationFailed(message)
	_ = c.Error(appErr)
	c.Abort()
}
