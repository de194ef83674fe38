package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/TravelPlannerHQ/travel-planner-gateway/config"
	"github.com/TravelPlannerHQ/travel-planner-gateway/logger"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates the Bearer session token and threads the
// authenticated user ID through the request context. Sessions are values
// carried per-request; nothing about the identity is held in package state.
func AuthMiddleware(cfg *config.ServerConfig) gin.HandlerFunc {
	secret := []byte(cfg.JwtSecretKey)

	return func(c *gin.Context) {
		log := logger.GetLogger()

		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			log.Warnw("Missing bearer token",
				"path", c.Request.URL.Path,
				"method", c.Request.Method)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Authorization required",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := validateToken(tokenString, secret)
		if err != nil {
			log.Warnw("Invalid session token",
				"error", err,
				"token", logger.MaskToken(tokenString),
				"path", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid or expired session",
			})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// validateToken parses an HS256 session token and returns its subject.
func validateToken(tokenString string, secret []byte) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return "", err
	}
	if subject == "" {
		return "", fmt.Errorf("token missing sub claim")
	}
	return subject, nil
}

// GetUserID returns the authenticated user ID set by AuthMiddleware, or an
// empty string when the request is unauthenticated.
func GetUserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
