package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mazdoor/utils"
)

// getLogger retrieves a Zap logger from the Gin context or falls back to the
// global one.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}

// actor pulls the authenticated user's ID and role set by the auth middleware.
func actor(c *gin.Context) (id string, role string) {
	if v, ok := c.Get("userID"); ok {
		id, _ = v.(string)
	}
	if v, ok := c.Get("userRole"); ok {
		role, _ = v.(string)
	}
	return id, role
}
