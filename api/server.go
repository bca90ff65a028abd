/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests, origins from FC60_CORS_ORIGINS

ROUTE GROUPS:
  /api/stamp/*          Stamp encode/decode
  /api/base60/*         Base-60 codec
  /api/jdn/*            Julian Day Number conversions
  /api/moon, /ganzhi    Lunar phase and sexagenary cycle
  /api/numerology, /synchronicities, /readings
  /api/health, /selftest

SECURITY NOTE:
  No authentication. The engine is read-only and stores nothing.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Get("/selftest", h.SelfTest)

		// Codec routes
		r.Route("/stamp", func(r chi.Router) {
			r.Get("/", h.Stamp)
			r.Get("/decode", h.DecodeStamp)
		})
		r.Route("/base60", func(r chi.Router) {
			r.Get("/encode", h.EncodeBase60)
			r.Get("/decode", h.DecodeBase60)
		})

		// Calendar routes
		r.Route("/jdn", func(r chi.Router) {
			r.Get("/", h.DateToJDN)
			r.Get("/{jdn}", h.JDNToDate)
		})
		r.Get("/moon", h.Moon)
		r.Get("/ganzhi", h.Ganzhi)

		// Reading routes
		r.Post("/numerology", h.Numerology)
		r.Post("/synchronicities", h.Synchronicities)
		r.Post("/readings", h.Reading)
	})

	return r
}
