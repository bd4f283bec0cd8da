package handler

import "net/http"

// NewRouter registers every route and wraps the mux in the middleware chain.
// /pages/api is kept as an alias of /messages for the existing frontend.
func NewRouter(h *Handler, messages *MessageHandler) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)

	mux.HandleFunc("POST /messages", messages.Submit)
	mux.HandleFunc("GET /messages", messages.List)
	mux.HandleFunc("POST /pages/api", messages.Submit)
	mux.HandleFunc("GET /pages/api", messages.List)

	return RequestLogger(SecurityHeaders(h.CORS(mux)))
}
