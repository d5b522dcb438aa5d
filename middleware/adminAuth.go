package middleware

import (
	"errors"
	"net/http"
	"strings"

	"gasthaus/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

// AdminAuthMiddleware gates the admin endpoints. It accepts either the
// static operations token or an HS256 JWT carrying role "admin", signed
// with the configured secret.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		if staticToken := config.AppConfig.AdminAPIToken; staticToken != "" && tokenString == staticToken {
			c.Set("isAdmin", true)
			c.Next()
			return
		}

		if err := validateAdminJWT(tokenString); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}
		c.Set("isAdmin", true)
		c.Next()
	}
}

func validateAdminJWT(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return errors.New("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return errors.New("invalid claims")
	}
	if role, _ := claims["role"].(string); role != "admin" {
		return errors.New("missing admin role")
	}
	return nil
}
