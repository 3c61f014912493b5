// Package teaserver is the reference REST server for the api/teas
// surface. It exposes the bare-entity shape under /api/teas and the
// envelope shape under /envelope/api/teas, both over one DataService.
package teaserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/steepworks/steeper/pkg/types"
)

// NewRouter builds the chi router with middleware and both route
// shapes over the given data service.
func NewRouter(svc types.DataService[*types.TeaVariety]) *chi.Mux {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(Recovery)
	r.Use(Logger)

	h := NewTeaHandler(svc)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/teas", func(r chi.Router) {
		r.Get("/", h.ListTeas)
		r.Post("/", h.CreateTea)
		r.Get("/{id}", h.GetTea)
		r.Put("/{id}", h.UpdateTea)
		r.Delete("/{id}", h.DeleteTea)
	})

	r.Route("/envelope/api/teas", func(r chi.Router) {
		r.Get("/", h.ListTeasEnveloped)
		r.Post("/", h.CreateTeaEnveloped)
		r.Put("/", h.UpdateTeaEnveloped)
		r.Get("/{id}", h.GetTeaEnveloped)
		r.Delete("/{id}", h.DeleteTeaEnveloped)
	})

	return r
}
