package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// license endpoints: open to end-user applications, so CORS + rate limit
	router.Group(func(r chi.Router) {
		r.Use(h.withCORS)
		r.Use(h.withRateLimit)

		r.Post("/api/license/validate", h.validateLicense)
		r.Post("/api/license/derive", h.deriveLicense)

		// preflight requests terminate inside withCORS
		r.Options("/api/license/validate", h.preflight)
		r.Options("/api/license/derive", h.preflight)
	})

	// every other externally reachable route is rate limited too, no CORS
	router.Group(func(r chi.Router) {
		r.Use(h.withRateLimit)

		r.Post("/api/vault/seal", h.sealVault)
		r.Post("/api/vault/open", h.openVault)

		// webhook deliveries additionally authenticate via signature
		r.Post("/api/webhook/billing", h.billingWebhook)

		r.Get("/api/version", h.getServerVersion)

		// admin routes additionally require a bearer token
		r.Group(func(ar chi.Router) {
			ar.Use(h.auth)

			ar.Put("/api/admin/session-key", h.setSessionKey)
		})
	})

	return router
}
