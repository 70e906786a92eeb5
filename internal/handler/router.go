package handler

import (
	"net/http"

	"github.com/folio/backend/pkg/auth"
)

// RouterConfig bundles the handlers and settings the router needs.
type RouterConfig struct {
	Base           *Handler
	Contacts       *ContactHandler
	Resume         *ResumeHandler
	AdminToken     string
	MetricsEnabled bool
}

// NewRouter registers every route and wraps the mux in the middleware chain:
// RequestID → RequestLogger → SecurityHeaders → CORS → mux.
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", cfg.Base.Health)
	mux.HandleFunc("POST /api/contact", cfg.Contacts.Submit)
	mux.HandleFunc("GET /api/resume", cfg.Resume.Download)

	// Admin listing. Open when no ADMIN_TOKEN is configured.
	requireAdmin := auth.RequireAdminToken(cfg.AdminToken)
	mux.Handle("GET /api/contacts", requireAdmin(http.HandlerFunc(cfg.Contacts.List)))

	if cfg.MetricsEnabled {
		mux.Handle("GET /metrics", Metrics())
	}

	return RequestID(RequestLogger(SecurityHeaders(cfg.Base.CORS(mux))))
}
