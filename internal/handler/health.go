package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status        string `json:"status"`
	Service       string `json:"service"`
	UptimeSeconds int64  `json:"uptimeSeconds"`
}

// Health godoc
// @Summary      Health check
// @Description  Liveness probe. Never calls an upstream.
// @Tags         health
// @Produce      json
// @Success      200  {object}  handler.HealthResponse
// @Router       /health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:        "healthy",
		Service:       "market-pulse",
		UptimeSeconds: int64(time.Since(h.started).Seconds()),
	})
}
