package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the full route tree. maxBodyBytes limits request bodies.
func NewRouter(h *Handler, maxBodyBytes int64) http.Handler {
	r := chi.NewRouter()

	// Outermost first.
	r.Use(h.requestLogger)
	r.Use(metricsMiddleware)
	r.Use(h.recoverer)
	r.Use(bodyLimit(maxBodyBytes))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.respondMessage(w, r, http.StatusNotFound, MsgNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		h.respondMessage(w, r, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
	})

	r.Get("/", h.HandleRoot)
	r.Get("/healthz", h.HandleHealthz)
	r.Get("/readyz", h.HandleReadyz)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/signup", h.HandleSignup)
		r.Post("/login", h.HandleLogin)
	})

	r.Route("/inventory", func(r chi.Router) {
		r.Use(h.requireToken)

		r.Post("/add", h.HandleAdd)
		r.Get("/get/all", h.HandleGetAll)
		r.Get("/getById/{id}", h.HandleGetByID)
		r.Put("/update/{id}", h.HandleUpdate)
		r.Delete("/delete/{id}", h.HandleDelete)
	})

	return r
}
