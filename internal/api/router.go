package api

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/joestump/restful-notes/docs/swagger"
	"github.com/joestump/restful-notes/internal/resource"
)

// Deps holds all dependencies required to build the router.
type Deps struct {
	Service *resource.Service
	// BaseURL roots every generated link. Nil derives it from each request.
	BaseURL     *url.URL
	Logger      zerolog.Logger
	CORSOrigins []string
}

// NewRouter assembles the chi router with middleware, resource routes, the
// error channel, Swagger UI and the Prometheus endpoint.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(requestLogger(deps.Logger)...)
	r.Use(recoverer)
	r.Use(instrument)
	if len(deps.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: deps.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			ExposedHeaders: []string{"Location"},
			MaxAge:         300,
		}))
	}

	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	assembler := assemblers(deps.BaseURL)
	registerIndexRoutes(r, assembler)
	registerNoteRoutes(r, deps.Service, assembler)
	registerTagRoutes(r, deps.Service, assembler)

	r.Get("/error", ErrorPage)
	r.Get("/docs/*", httpSwagger.WrapHandler)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
