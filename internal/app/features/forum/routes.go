// internal/app/features/forum/routes.go
package forum

import "github.com/go-chi/chi/v5"

// Routes returns the forum subrouter, mounted under /forum/general.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/create", h.HandleCreate)
	r.Post("/get", h.HandleList)
	r.Get("/get/amount", h.HandleCount)

	r.Get("/post/{id}", h.HandleGet)
	r.Post("/post/{id}/comment", h.HandleComment)
	r.Post("/post/{id}/comments", h.HandleComments)
	r.Delete("/post/{id}/comment/as_admin/{comment_id}", h.HandleCommentDeleteAsAdmin)
	r.Delete("/post/{id}/comment/{comment_id}", h.HandleCommentDelete)

	r.Delete("/delete/as_admin/{id}", h.HandleDeleteAsAdmin)
	r.Delete("/delete/{id}", h.HandleDelete)

	return r
}
