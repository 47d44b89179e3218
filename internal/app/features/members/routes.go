// internal/app/features/members/routes.go
package members

import "github.com/go-chi/chi/v5"

// GeneralRoutes returns the subrouter mounted under /general_member.
func GeneralRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/post", h.HandleGeneralCreate)
	r.Get("/get/{value}", h.HandleGeneralProbe)
	r.Post("/get_all", h.HandleGeneralGetAll)
	return r
}

// ExecutiveRoutes returns the subrouter mounted under /executive_member.
func ExecutiveRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/post", h.HandleExecutiveCreate)
	r.Get("/get/{value}", h.HandleExecutiveProbe)
	r.Post("/get_all", h.HandleExecutiveGetAll)
	return r
}
