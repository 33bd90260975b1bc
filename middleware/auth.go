package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"mazdoor/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"status":  "fail",
		"message": "Insufficient authorization",
	})
}

// JWTAuthMiddleware validates the bearer token and sets userID and userRole
// in the request context. The token hash is checked against the Redis auth
// cache when available; a cache miss falls back to plain JWT validation and
// repopulates the cache.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c)
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			abortUnauthorized(c)
			return
		}

		userID, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || userID == "" {
			abortUnauthorized(c)
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + userID

		if authCache := utils.AuthCacheClient; authCache != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			cachedHash, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil {
				if cachedHash != computedHash {
					cancel()
					abortUnauthorized(c)
					return
				}
				// Refresh TTL on a hit.
				_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
			} else {
				// Cache miss: the JWT already validated, repopulate.
				if err := authCache.Set(ctx, cacheKey, computedHash, utils.AuthCacheTTL).Err(); err != nil {
					zap.L().Warn("auth: failed to repopulate token cache", zap.Error(err))
				}
			}
			cancel()
		}

		c.Set("userID", userID)
		c.Set("userRole", role)
		c.Next()
	}
}
