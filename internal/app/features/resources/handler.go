// internal/app/features/resources/handler.go
package resources

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	resourcestore "github.com/hbcybertech/clubhub/internal/app/store/resources"
	"github.com/hbcybertech/clubhub/internal/app/system/gates"
	"github.com/hbcybertech/clubhub/internal/app/system/htmlsanitize"
	"github.com/hbcybertech/clubhub/internal/app/system/httpjson"
	"github.com/hbcybertech/clubhub/internal/app/system/inputval"
	"github.com/hbcybertech/clubhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler holds dependencies for the resource link endpoints.
type Handler struct {
	Resources *resourcestore.Store
	Gate      *gates.AdminGate
	Log       *zap.Logger
}

// NewHandler constructs a resources Handler.
func NewHandler(store *resourcestore.Store, gate *gates.AdminGate, logger *zap.Logger) *Handler {
	return &Handler{Resources: store, Gate: gate, Log: logger}
}

type createRequest struct {
	Title       string   `json:"title"`
	Link        string   `json:"link"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
}

func (req createRequest) validate() error {
	var v inputval.Violations
	v.Check(inputval.FreeText("title", req.Title, 1, 100))
	v.Check(inputval.Link(req.Link))
	v.Check(inputval.FreeText("description", req.Description, 0, 350))
	return v.Err()
}

// HandleList handles GET /resources/get.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	resources, err := h.Resources.All(r.Context())
	if err != nil {
		h.Log.Error("resource list: find failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	if resources == nil {
		resources = []models.Resource{}
	}
	httpjson.Write(w, http.StatusOK, resources)
}

// HandleCreate handles POST /resources/create. Admin JWT in the
// Authorization header.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := h.Gate.Check(r.Context(), r.Header.Get("Authorization")); err != nil {
		httpjson.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req createRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.validate(); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.Resources.Insert(r.Context(), models.Resource{
		Title:       htmlsanitize.Sanitize(req.Title),
		Link:        req.Link,
		Tags:        req.Tags,
		Description: htmlsanitize.Sanitize(req.Description),
	})
	if err != nil {
		h.Log.Error("resource create: insert failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpjson.Write(w, http.StatusOK, created)
}

// HandleDelete handles DELETE /resources/delete/{id}. Admin JWT in
// the Authorization header.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Gate.Check(r.Context(), r.Header.Get("Authorization")); err != nil {
		httpjson.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid resource id")
		return
	}

	n, err := h.Resources.Delete(r.Context(), id)
	if err != nil {
		h.Log.Error("resource delete: delete failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	if n == 0 {
		httpjson.Error(w, http.StatusNotFound, resourcestore.ErrNotFound.Error())
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]bool{"deleted": true})
}
