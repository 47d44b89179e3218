// internal/app/features/accounts/probe.go
package accounts

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hbcybertech/clubhub/internal/app/system/httpjson"
	"go.uber.org/zap"
)

// HandleProbe handles GET /account/get/{value}. It answers with the
// value when an account holds it as username or email, otherwise with
// an empty string. Signup forms use it to flag taken identifiers.
func (h *Handler) HandleProbe(w http.ResponseWriter, r *http.Request) {
	value := chi.URLParam(r, "value")

	exists, err := h.Accounts.ExistsByUsername(r.Context(), value)
	if err != nil {
		h.Log.Error("probe: username lookup failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !exists {
		exists, err = h.Accounts.ExistsByEmail(r.Context(), value)
		if err != nil {
			h.Log.Error("probe: email lookup failed", zap.Error(err))
			httpjson.Error(w, http.StatusInternalServerError, "internal error")
			return
		}
	}

	if exists {
		httpjson.Write(w, http.StatusOK, value)
		return
	}
	httpjson.Write(w, http.StatusOK, "")
}
