package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// APIResponse is the envelope shared by every endpoint.
type APIResponse struct {
	Status  string      `json:"status"` // "success" or "fail"
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// JSONSuccess sends a success envelope with the given payload.
func JSONSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, APIResponse{Status: "success", Data: data})
}

// JSONFail sends a fail envelope carrying a human-readable reason.
func JSONFail(c *gin.Context, status int, message string) {
	c.JSON(status, APIResponse{Status: "fail", Message: message})
}

// ErrorHandler is a middleware to catch panics and return structured errors.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err))
				c.JSON(http.StatusInternalServerError, APIResponse{
					Status:  "fail",
					Message: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}
