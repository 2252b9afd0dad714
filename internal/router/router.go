package router

import (
	"net/http"

	"github.com/adsmedia/mailbridge/internal/handler"
	"github.com/adsmedia/mailbridge/internal/middleware"
)

// New creates and configures the HTTP router
func New(h *handler.Handler, mw *middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health)

	// Email facade, 1:1 with the client operations
	mux.HandleFunc("POST /email/send", h.SendEmail)
	mux.HandleFunc("POST /email/batch", h.SendBatch)
	mux.HandleFunc("GET /email/check", h.CheckSuppression)
	mux.HandleFunc("GET /email/ping", h.Ping)
	mux.HandleFunc("GET /email/usage", h.Usage)
	mux.HandleFunc("GET /email/status", h.Status)

	// Apply middleware stack
	var handler http.Handler = mux

	// Request logging
	handler = mw.Logger(handler)

	// Request ID
	handler = mw.RequestID(handler)

	// Panic recovery (outermost)
	handler = mw.Recover(handler)

	return handler
}
