package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hsati/directory-backend/internal/interfaces/http/dto"
)

// Pinger reports whether the backing data store is reachable
type Pinger interface {
	Ping() error
}

// SystemHandler serves liveness endpoints
type SystemHandler struct {
	BaseHandler
	db Pinger
}

// NewSystemHandler creates a new SystemHandler. db may be nil when the
// process runs without a database (some tests do).
func NewSystemHandler(db Pinger) *SystemHandler {
	return &SystemHandler{db: db}
}

// RegisterRoutes registers system routes
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/healthz", h.Health)
}

// Health reports process liveness and database reachability
func (h *SystemHandler) Health(c *gin.Context) {
	status := "ok"
	dbStatus := "ok"

	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			status = "degraded"
			dbStatus = err.Error()
		}
	} else {
		dbStatus = "not configured"
	}

	code := http.StatusOK
	if status != "ok" {
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, dto.Response{
		Success: status == "ok",
		Data: gin.H{
			"status":   status,
			"database": dbStatus,
		},
	})
}
