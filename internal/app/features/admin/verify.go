// internal/app/features/admin/verify.go
package admin

import (
	"net/http"

	"github.com/hbcybertech/clubhub/internal/app/system/httpjson"
)

type verifyRequest struct {
	Token string `json:"token"`
}

// HandleVerify handles POST /admin/verify. Clients poll it to learn
// whether a held admin JWT is still usable; the answer is a bare
// boolean, with no hint of which check failed.
func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	httpjson.Write(w, http.StatusOK, h.Gate.Check(r.Context(), req.Token) == nil)
}
