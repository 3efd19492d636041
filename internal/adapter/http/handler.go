package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"channel-offers/internal/core/port"
)

const defaultMaxFeedProducts = 500

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds an OfferUseCase to execute business logic and a logger for
// structured logging. Routes are registered on a chi.Router.
type Handler struct {
	svc             port.OfferUseCase
	logger          *slog.Logger
	router          chi.Router
	maxFeedProducts int
}

// NewHandler creates a handler with all routes configured. maxFeedProducts
// caps the SKUs accepted by a single feed request; zero or less uses the
// default of 500.
func NewHandler(svc port.OfferUseCase, logger *slog.Logger, maxFeedProducts int) *Handler {
	if maxFeedProducts <= 0 {
		maxFeedProducts = defaultMaxFeedProducts
	}
	h := &Handler{svc: svc, logger: logger, maxFeedProducts: maxFeedProducts}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.logRequests)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", h.handleListProducts)
		r.Route("/products/{sku}", func(r chi.Router) {
			r.Get("/", h.handleGetProduct)
			r.Put("/offers", h.handlePutOffer)
			r.Delete("/offers/{operatorCode}", h.handleRemoveOffer)
			r.Patch("/offers/{operatorCode}/price", h.handleUpdatePrice)
			r.Patch("/offers/{operatorCode}/stock", h.handleUpdateStock)
			r.Get("/offers/{operatorCode}/attributes", h.handleGetAttributes)
		})
		r.Post("/feeds", h.handleBuildFeed)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.Debug("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("duration", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
