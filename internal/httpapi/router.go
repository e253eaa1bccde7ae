package httpapi

import (
	"net/http"

	"chocoshop-be/internal/logger"
	"chocoshop-be/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(middleware.RateLimitMiddleware)

	r.Get("/api/products", h.GetProducts)
	r.Post("/api/checkout", h.Checkout)
	r.Get("/", h.ServeIndex)

	return r
}
