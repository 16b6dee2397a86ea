// Validates the bearer JWT and injects the caller's id/email into the
// Gin context for downstream handlers.

package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/MarKarl30/UTS-BackEnd-Prog/global"
)

// Auth returns a middleware that validates "Authorization: Bearer <token>"
// and stores the subject (user id) and email claims in the context.
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		raw := strings.TrimPrefix(auth, "Bearer ")

		t, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
			return []byte(jwtSecret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !t.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		claims, ok := t.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid claims"})
			return
		}
		// sub carries the Mongo ObjectID hex; eml the account email.
		if sub, ok := claims["sub"].(string); ok {
			c.Set(global.CtxUserIDKey, sub)
		}
		if eml, ok := claims["eml"].(string); ok {
			c.Set(global.CtxUserEmailKey, eml)
		}
		c.Next()
	}
}
