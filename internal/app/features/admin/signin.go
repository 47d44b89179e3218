// internal/app/features/admin/signin.go
package admin

import (
	"net/http"
	"time"

	adminstore "github.com/hbcybertech/clubhub/internal/app/store/admin"
	"github.com/hbcybertech/clubhub/internal/app/system/httpjson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type signinRequest struct {
	Password string `json:"password"`
}

// HandleSignin handles POST /admin/signin. Rotation is a side effect
// of traffic: the first sign-in attempt past the window replaces the
// credentials before the supplied password is evaluated, so a stale
// password can never unlock a fresh token.
func (h *Handler) HandleSignin(w http.ResponseWriter, r *http.Request) {
	var req signinRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	now := time.Now().UTC()
	record, err := h.Admin.Get(r.Context())
	if err != nil {
		h.Log.Error("admin signin: record lookup failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	if adminstore.NeedsRotation(record, now) {
		record, err = h.Admin.Rotate(r.Context(), record.ID, now)
		if err != nil {
			h.Log.Error("admin signin: rotation failed", zap.Error(err))
			httpjson.Error(w, http.StatusInternalServerError, "internal error")
			return
		}
		h.Log.Info("admin credentials rotated", zap.Time("last_reset", record.LastReset))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(record.Password), bcrypt.DefaultCost)
	if err != nil {
		h.Log.Error("admin signin: hash failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	if bcrypt.CompareHashAndPassword(hash, []byte(req.Password)) != nil {
		httpjson.Write(w, http.StatusOK, "")
		return
	}

	token, err := h.Auth.IssueAdminToken(record.Token, now)
	if err != nil {
		h.Log.Error("admin signin: token issue failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]string{"token": token})
}
