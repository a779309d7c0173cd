package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/userdir/userdir/internal/cache"
	"github.com/userdir/userdir/internal/handler/dto"
)

// CacheProber performs a cache write/read round trip.
type CacheProber interface {
	ProbeRoundTrip(ctx context.Context) (*cache.ProbeResult, error)
}

// DebugHandler serves diagnostic endpoints.
type DebugHandler struct {
	prober CacheProber
	logger *slog.Logger
}

// NewDebugHandler creates a new DebugHandler.
func NewDebugHandler(prober CacheProber, logger *slog.Logger) *DebugHandler {
	return &DebugHandler{
		prober: prober,
		logger: logger,
	}
}

// RedisTest handles GET /redis-test. The endpoint exists to diagnose the
// cache connection, so a failed round trip is reported, not masked.
func (h *DebugHandler) RedisTest(w http.ResponseWriter, r *http.Request) {
	result, err := h.prober.ProbeRoundTrip(r.Context())
	if err != nil {
		h.logger.Error("cache_probe_failed", "error", err)
		writeError(w, http.StatusInternalServerError, "cache probe failed")
		return
	}

	writeJSON(w, http.StatusOK, dto.ProbeResponse{
		Key:            result.Key,
		SetValue:       result.SetValue,
		RetrievedValue: result.RetrievedValue,
	})
}
