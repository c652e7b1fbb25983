package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const serviceVersion = "1.0"

var processStart = time.Now()

// HandleHealth reports liveness.
// @Summary Health check
// @Description Returns service liveness. No dependencies are touched.
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string "Service status"
// @Router /health [get]
func HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "pricegen",
		"version": serviceVersion,
		"uptime":  time.Since(processStart).Truncate(time.Second).String(),
		"time":    time.Now().Format(time.RFC3339),
	})
}
