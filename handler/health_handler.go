package handler

import (
	"context"
	"time"

	"main/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var startTime = time.Now()

// HealthHandler reports service liveness, database reachability and
// basic host resource usage.
func HealthHandler(c *gin.Context) {
	status := "ok"

	dbStatus := "ok"
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if utils.MongoClient == nil {
		dbStatus = "uninitialized"
		status = "degraded"
	} else if err := utils.MongoClient.Ping(ctx, readpref.Primary()); err != nil {
		dbStatus = "unreachable"
		status = "degraded"
	}

	c.JSON(200, gin.H{
		"status":         status,
		"database":       dbStatus,
		"uptime_seconds": int(time.Since(startTime).Seconds()),
		"cpu_percent":    utils.GetCPUUsage(),
		"memory_percent": utils.GetMemoryUsage(),
	})
}
