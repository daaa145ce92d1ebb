package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"USERTODO_BACK-END/internal/dto"
	"USERTODO_BACK-END/internal/store"
	"USERTODO_BACK-END/internal/utils"
)

const readinessTimeout = 3 * time.Second

// ProbeHandler serves the liveness and readiness endpoints. Readiness pings every registered
// dependency; liveness never touches them.
type ProbeHandler struct {
	deps    map[string]store.Pinger
	started time.Time
}

// NewProbeHandler registers the storage handle as the "db" dependency.
func NewProbeHandler(db store.Pinger) *ProbeHandler {
	return &ProbeHandler{
		deps:    map[string]store.Pinger{"db": db},
		started: time.Now(),
	}
}

// Health handles GET /healthz
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /healthz [get]
func (p *ProbeHandler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// Live handles GET /livez
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /livez [get]
func (p *ProbeHandler) Live(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{
		Status:  "alive",
		Details: map[string]any{"uptime_seconds": int64(time.Since(p.started).Seconds())},
	})
}

// Ready handles GET /readyz
// @Summary Readiness check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /readyz [get]
func (p *ProbeHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	status, code := "ready", http.StatusOK
	details := make(map[string]any, len(p.deps))
	for name, dep := range p.deps {
		if err := dep.Ping(ctx); err != nil {
			// raw driver errors can carry hostnames
			slog.WarnContext(r.Context(), "dependency unreachable", "dependency", name, "error", err)
			details[name] = "unreachable"
			status, code = "degraded", http.StatusServiceUnavailable
			continue
		}
		details[name] = "ok"
	}

	utils.WriteJSONResponse(w, code, dto.HealthResponse{Status: status, Details: details})
}
