package handlers

import (
	"time"

	"clinical-dss-server/internal/engine"
	"clinical-dss-server/internal/utils"
	"clinical-dss-server/internal/vitals"

	"github.com/gin-gonic/gin"
)

// StatusHandler reports service health and usage statistics.
type StatusHandler struct {
	Engine   *engine.Engine
	Analyzer *vitals.Analyzer
	started  time.Time
}

// NewStatusHandler creates a new StatusHandler.
func NewStatusHandler(eng *engine.Engine, analyzer *vitals.Analyzer) *StatusHandler {
	return &StatusHandler{Engine: eng, Analyzer: analyzer, started: time.Now()}
}

// Status handles reporting engine and analyzer statistics.
func (h *StatusHandler) Status(c *gin.Context) {
	utils.Success(c, "Service status", gin.H{
		"status":        "UP",
		"uptimeSeconds": int64(time.Since(h.started).Seconds()),
		"engine":        h.Engine.Statistics(),
		"vitals":        h.Analyzer.Statistics(),
	})
}
