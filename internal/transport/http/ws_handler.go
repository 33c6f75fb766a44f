package http

import (
	"log/slog"
	"net/http"

	gorilla "github.com/gorilla/websocket"

	apierrors "matchday/internal/errors"
	"matchday/internal/infrastructure"
	"matchday/internal/websocket"
)

// WebSocketHandler upgrades connections and hands them to the hub.
type WebSocketHandler struct {
	hub      *websocket.Hub
	upgrader gorilla.Upgrader
	errors   *apierrors.ErrorHandler
	logger   *slog.Logger
}

// NewWebSocketHandler creates a websocket handler restricted to the given
// origins.
func NewWebSocketHandler(hub *websocket.Hub, allowedOrigins []string, errHandler *apierrors.ErrorHandler, logger *slog.Logger) *WebSocketHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WebSocketHandler{
		hub:      hub,
		upgrader: websocket.NewUpgrader(allowedOrigins),
		errors:   errHandler,
		logger:   logger.With(slog.String("handler", "websocket")),
	}
}

// ServeHTTP handles GET /ws
func (h *WebSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote its own response; just log
		h.logger.ErrorContext(r.Context(), "websocket upgrade failed",
			slog.String("error", err.Error()),
			slog.String("remote_addr", r.RemoteAddr))
		return
	}

	traceID := infrastructure.GetTraceID(r.Context())
	websocket.ServeWS(h.hub, conn, traceID)
}
