// internal/app/features/accounts/routes.go
package accounts

import "github.com/go-chi/chi/v5"

// Routes returns the account subrouter, mounted under /account.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/post/signup", h.HandleSignup)
	r.Post("/post/signin", h.HandleSignin)
	r.Get("/verify/{id}", h.HandleVerify)
	r.Get("/get/{value}", h.HandleProbe)
	r.Post("/get_all", h.HandleGetAll)
	return r
}
