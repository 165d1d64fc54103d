package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hireflow/backend/models"
	"github.com/hireflow/backend/screening"
	"github.com/hireflow/backend/tools"
)

// Version is reported by the health check
const Version = "1.0.0"

// SystemHandler serves health and tool introspection
type SystemHandler struct {
	providers   []string
	transcripts bool
	registry    *tools.ToolRegistry
}

// NewSystemHandler reports on svc's providers and transcript storage
func NewSystemHandler(svc *screening.Service, registry *tools.ToolRegistry) *SystemHandler {
	providers := svc.Providers()
	if providers == nil {
		providers = []string{}
	}
	return &SystemHandler{
		providers:   providers,
		transcripts: svc.TranscriptsEnabled(),
		registry:    registry,
	}
}

// HealthCheck returns server health status
// @Summary Health check
// @Description Check if the server is running, which AI providers are configured (in fallback order) and whether chat transcripts are stored
// @Tags System
// @Produce json
// @Success 200 {object} models.HealthResponse "Server is healthy"
// @Router /health [get]
func (h *SystemHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Version:   Version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Providers: h.providers,

		TranscriptsStored: h.transcripts,
	})
}

// GetTools returns available MCP tools
// @Summary List available tools
// @Description Get a list of all available MCP tools for AI agents
// @Tags Tools
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]interface{} "List of tools"
// @Failure 401 {object} models.ErrorResponse
// @Router /tools [get]
func (h *SystemHandler) GetTools(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"tools": h.registry.Definitions(),
	})
}
