package middleware

import (
	"net/http"
	"strings"

	"sportify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OperatorIDKey is the gin context key holding the authenticated operator.
const OperatorIDKey = "operatorID"

// OperatorAuthMiddleware requires a valid Bearer JWT and stores its subject
// as the operator id.
func OperatorAuthMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "UNAUTHORIZED", "message": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		operatorID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			logger.Warn("Rejected operator token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "UNAUTHORIZED", "message": "Invalid or expired token"})
			return
		}

		c.Set(OperatorIDKey, operatorID)
		c.Next()
	}
}
