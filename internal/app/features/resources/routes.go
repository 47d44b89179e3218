// internal/app/features/resources/routes.go
package resources

import "github.com/go-chi/chi/v5"

// Routes returns the resources subrouter, mounted under /resources.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/get", h.HandleList)
	r.Post("/create", h.HandleCreate)
	r.Delete("/delete/{id}", h.HandleDelete)
	return r
}
