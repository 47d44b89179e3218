// internal/app/features/admin/routes.go
package admin

import "github.com/go-chi/chi/v5"

// Routes returns the admin subrouter, mounted under /admin.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/signin", h.HandleSignin)
	r.Post("/verify", h.HandleVerify)
	return r
}
