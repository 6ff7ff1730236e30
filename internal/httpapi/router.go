// Package httpapi is the JSON screen adapter a mobile client drives. Each
// route renders one screen or forwards one user intent into the core.
package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	catalogapp "github.com/dwikikusuma/shoping-mobile/internal/catalog/app"
	searchapp "github.com/dwikikusuma/shoping-mobile/internal/search/app"
	"github.com/dwikikusuma/shoping-mobile/internal/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Handler struct {
	catalog  *catalogapp.Service
	search   *searchapp.Service
	sessions *session.Registry
	log      *slog.Logger
}

func NewHandler(catalog *catalogapp.Service, search *searchapp.Service, sessions *session.Registry, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{catalog: catalog, search: search, sessions: sessions, log: log}
}

func (h *Handler) Routes(requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(h.log))
	r.Use(middleware.Recoverer)
	if requestTimeout > 0 {
		r.Use(middleware.Timeout(requestTimeout))
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", h.ListProducts)
		r.Get("/products/{productId}", h.GetProduct)
		r.Get("/categories", h.ListCategories)

		r.Post("/sessions", h.CreateSession)
		r.Route("/sessions/{sessionId}", func(r chi.Router) {
			r.Delete("/", h.DeleteSession)

			r.Get("/search", h.Search)
			r.Post("/search/recent", h.SubmitSearch)
			r.Delete("/search/recent", h.ClearRecentSearches)
			r.Delete("/search/recent/{query}", h.RemoveRecentSearch)

			// The client sends reset=true when the cart screen mounts, which starts
			// the view with an empty selection. Plain reloads keep the selection.
			r.Get("/cart", h.GetCart)
			r.Post("/cart/items", h.AddItem)
			r.Patch("/cart/items/{productId}", h.UpdateQuantity)
			r.Delete("/cart/items/{productId}", h.RemoveItem)
			r.Post("/cart/items/{productId}/increment", h.IncrementItem)
			r.Post("/cart/items/{productId}/decrement", h.DecrementItem)
			r.Post("/cart/selection/{productId}", h.ToggleSelection)

			r.Post("/checkout", h.BeginCheckout)
			r.Get("/checkout", h.GetCheckout)
			r.Put("/checkout/delivery", h.SelectDelivery)
			r.Post("/checkout/submit", h.SubmitCheckout)

			r.Get("/payment", h.GetPayment)
			r.Post("/payment", h.Pay)
			r.Get("/orders", h.ListOrders)
		})
	})

	return r
}

// requestLogger logs one structured line per request.
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			log.Info("http request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}
