// internal/app/features/accounts/signin.go
package accounts

import (
	"errors"
	"net/http"
	"time"

	accountstore "github.com/hbcybertech/clubhub/internal/app/store/accounts"
	"github.com/hbcybertech/clubhub/internal/app/system/httpjson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// HandleSignin handles POST /account/post/signin. An unknown email is
// a 404; a wrong password answers 200 with an empty string so clients
// cannot tell a near miss from a hit by status code alone.
func (h *Handler) HandleSignin(w http.ResponseWriter, r *http.Request) {
	var req signinRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	acct, err := h.Accounts.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, accountstore.ErrNotFound) {
			httpjson.Error(w, http.StatusNotFound, err.Error())
			return
		}
		h.Log.Error("signin: lookup failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(acct.Password), []byte(req.Password)) != nil {
		httpjson.Write(w, http.StatusOK, "")
		return
	}

	token, err := h.Auth.IssueUserToken(acct.Username, acct.Email, acct.Verified, time.Now().UTC())
	if err != nil {
		h.Log.Error("signin: token issue failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]string{"token": token})
}
