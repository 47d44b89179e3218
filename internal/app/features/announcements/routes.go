// internal/app/features/announcements/routes.go
package announcements

import "github.com/go-chi/chi/v5"

// Routes returns the announcements subrouter, mounted under
// /forum/announcements.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/create", h.HandleCreate)
	r.Post("/get", h.HandleList)
	r.Get("/get/amount", h.HandleCount)
	r.Delete("/delete/{id}", h.HandleDelete)
	return r
}
