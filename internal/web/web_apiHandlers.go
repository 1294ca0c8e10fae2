package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthStatus is the fixed payload returned by the health endpoint.
type HealthStatus struct {
	Status string `json:"status"`
}

// getHealth handles "/api/health". It always reports ok while the process is
// serving requests; orchestration and uptime probes poll it.
func (s *WebServer) getHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthStatus{Status: "ok"})
}
