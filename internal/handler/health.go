package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health returns a JSON health check response. Checks store connectivity and,
// when a cache is configured, Redis. Never exposes credentials or internals.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		storeStatus := "connected"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			storeStatus = "error"
		}

		cacheStatus := "disabled"
		if rdb != nil {
			cacheStatus = "connected"
			if rdb.Ping(ctx).Err() != nil {
				cacheStatus = "error"
			}
		}

		status := http.StatusOK
		if storeStatus != "connected" || cacheStatus == "error" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":    status == http.StatusOK,
			"store": storeStatus,
			"cache": cacheStatus,
		})
	}
}
