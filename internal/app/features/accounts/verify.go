// internal/app/features/accounts/verify.go
package accounts

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	accountstore "github.com/hbcybertech/clubhub/internal/app/store/accounts"
	"github.com/hbcybertech/clubhub/internal/app/system/httpjson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleVerify handles GET /account/verify/{id}. Verification flips
// the account's verified flag exactly once; repeat visits are no-ops.
func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid account id")
		return
	}

	if err := h.Accounts.Verify(r.Context(), id); err != nil {
		if errors.Is(err, accountstore.ErrNotFound) {
			httpjson.Error(w, http.StatusNotFound, err.Error())
			return
		}
		h.Log.Error("verify: update failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]bool{"verified": true})
}
