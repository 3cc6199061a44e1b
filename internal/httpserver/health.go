package httpserver

import (
	"github.com/gin-gonic/gin"

	"tutorial-api/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Tutorial API is up"
	HealthVersion = "0.1.0"
	ServiceName   = "tutorial-api"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	srv.status(c, "healthy")
}

// readyCheck handles readiness check requests
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	srv.status(c, "ready")
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	srv.status(c, "alive")
}

// status writes the shared probe body with the given status.
func (srv HTTPServer) status(c *gin.Context, status string) {
	response.OK(c, gin.H{
		"status":  status,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

type rootResp struct {
	Message string `json:"message" example:"Hello World"`
}

// root godoc
// @Summary Root
// @Description Greets the caller.
// @Tags Root
// @Produce json
// @Success 200 {object} rootResp
// @Router / [get]
func (srv HTTPServer) root(c *gin.Context) {
	response.JSON(c, rootResp{Message: "Hello World"})
}
