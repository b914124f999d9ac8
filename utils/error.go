package utils

import (
	"errors"
	"net/http"

	"sportify/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err))

				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Error:   "INTERNAL",
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{Error: code, Message: message})
}

// JSONRejection reports err as 422 when it is a validation rejection and
// returns true; other errors are left to the caller.
func JSONRejection(c *gin.Context, logger *zap.Logger, err error) bool {
	var rej *models.Rejection
	if !errors.As(err, &rej) {
		return false
	}
	status := http.StatusUnprocessableEntity
	switch rej.Code {
	case models.RejectFieldNotFound, models.RejectSlotNotFound:
		status = http.StatusNotFound
	case models.RejectSubmissionInFlight, models.RejectDraftConsumed:
		status = http.StatusConflict
	}
	logger.Warn("Operator intent rejected", zap.String("code", string(rej.Code)), zap.String("message", rej.Message))
	c.JSON(status, ErrorResponse{Error: string(rej.Code), Message: rej.Message})
	return true
}
