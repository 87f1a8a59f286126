package server

import (
	"context"
	"net/http"
	"time"

	. "postshare/pkg/common"
	"postshare/pkg/logger"
)

const pingTimeout = 2 * time.Second

type healthHandler struct {
	ping    func(context.Context) error
	started time.Time
}

func (h *healthHandler) Info(w http.ResponseWriter, r *http.Request) {
	WriteRespJSON(w, map[string]interface{}{
		"status":    "success",
		"message":   "Server is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"routes": map[string]string{
			"posts":       "/posts",
			"single post": "/posts/:id",
			"like post":   "/posts/:id/likePost",
			"update post": "/posts/:id",
		},
	})
}

// Health reports store connectivity. A failing ping answers 503.
func (h *healthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status, db, code := "healthy", "connected", http.StatusOK
	if h.ping != nil {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()
		if err := h.ping(ctx); err != nil {
			logger.Log(r.Context()).Warnf("health: store ping failed: %v", err)
			status, db, code = "unhealthy", "disconnected", http.StatusServiceUnavailable
		}
	}

	WriteJSON(w, code, map[string]interface{}{
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(h.started).Seconds(),
		"db":        db,
	})
}
