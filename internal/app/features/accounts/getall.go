// internal/app/features/accounts/getall.go
package accounts

import (
	"net/http"

	"github.com/hbcybertech/clubhub/internal/app/system/httpjson"
	"github.com/hbcybertech/clubhub/internal/app/system/paging"
	"go.uber.org/zap"
)

// HandleGetAll handles POST /account/get_all. Admin only; the admin
// JWT rides in the request body next to the page window. Password
// hashes are masked in the listing.
func (h *Handler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	var req paging.AdminArgs
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.Gate.Check(r.Context(), req.Token); err != nil {
		httpjson.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	accounts, err := h.Accounts.FindPaginated(r.Context(), req.Args)
	if err != nil {
		h.Log.Error("get_all: find failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	views := make([]accountView, 0, len(accounts))
	for _, a := range accounts {
		views = append(views, viewOf(a))
	}
	httpjson.Write(w, http.StatusOK, views)
}
