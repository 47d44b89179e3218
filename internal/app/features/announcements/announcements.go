// internal/app/features/announcements/announcements.go
package announcements

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	announcementstore "github.com/hbcybertech/clubhub/internal/app/store/announcements"
	"github.com/hbcybertech/clubhub/internal/app/system/convert"
	"github.com/hbcybertech/clubhub/internal/app/system/htmlsanitize"
	"github.com/hbcybertech/clubhub/internal/app/system/httpjson"
	"github.com/hbcybertech/clubhub/internal/app/system/inputval"
	"github.com/hbcybertech/clubhub/internal/app/system/paging"
	"github.com/hbcybertech/clubhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// createRequest is the wire form of a new announcement. The admin JWT
// rides in the body; author and email are stamped server-side.
type createRequest struct {
	Token       string `json:"token"`
	Title       string `json:"title"`
	Body        string `json:"body"`
	DateCreated string `json:"date_created"`
}

func (req createRequest) validate() error {
	var v inputval.Violations
	v.Check(inputval.FreeText("title", req.Title, 5, 20))
	v.Check(inputval.FreeText("body", req.Body, 20, 600))
	return v.Err()
}

// HandleCreate handles POST /forum/announcements/create. Admin only;
// every announcement is published as "The Team".
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.Gate.Check(r.Context(), req.Token); err != nil {
		httpjson.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if err := req.validate(); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := convert.ParseDate(req.DateCreated)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ann, err := h.Announcements.Insert(r.Context(), models.Announcement{
		Author:      inputval.TeamAuthor,
		Email:       h.SystemEmail,
		DateCreated: created,
		Title:       htmlsanitize.Sanitize(req.Title),
		Body:        htmlsanitize.Sanitize(req.Body),
	})
	if err != nil {
		h.Log.Error("announcement create: insert failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpjson.Write(w, http.StatusOK, ann)
}

// HandleList handles POST /forum/announcements/get.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	var req paging.Args
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	anns, err := h.Announcements.FindPaginated(r.Context(), req)
	if err != nil {
		h.Log.Error("announcement list: find failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpjson.Write(w, http.StatusOK, anns)
}

// HandleCount handles GET /forum/announcements/get/amount.
func (h *Handler) HandleCount(w http.ResponseWriter, r *http.Request) {
	n, err := h.Announcements.Count(r.Context())
	if err != nil {
		h.Log.Error("announcement count: count failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpjson.Write(w, http.StatusOK, n)
}

// HandleDelete handles DELETE /forum/announcements/delete/{id}. Admin
// JWT in the Authorization header.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Gate.Check(r.Context(), r.Header.Get("Authorization")); err != nil {
		httpjson.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid announcement id")
		return
	}

	n, err := h.Announcements.Delete(r.Context(), id)
	if err != nil {
		h.Log.Error("announcement delete: delete failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	if n == 0 {
		httpjson.Error(w, http.StatusNotFound, announcementstore.ErrNotFound.Error())
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]bool{"deleted": true})
}
