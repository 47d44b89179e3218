// internal/app/features/accounts/signup.go
package accounts

import (
	"errors"
	"fmt"
	"net/http"

	accountstore "github.com/hbcybertech/clubhub/internal/app/store/accounts"
	"github.com/hbcybertech/clubhub/internal/app/system/convert"
	"github.com/hbcybertech/clubhub/internal/app/system/httpjson"
	"github.com/hbcybertech/clubhub/internal/app/system/mailer"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// HandleSignup handles POST /account/post/signup.
func (h *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.validate(h.SystemEmail); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	acct, err := req.toEntity()
	if err != nil {
		if errors.Is(err, convert.ErrBadDate) {
			httpjson.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Log.Error("signup: conversion failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.Log.Error("signup: password hash failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	acct.Password = string(hash)

	created, err := h.Accounts.Insert(r.Context(), acct)
	if err != nil {
		if errors.Is(err, accountstore.ErrDuplicate) {
			httpjson.Error(w, http.StatusConflict, err.Error())
			return
		}
		h.Log.Error("signup: insert failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	// Delivery failure does not undo the signup; the account can be
	// re-verified out of band.
	email := mailer.BuildVerificationEmail(mailer.VerificationEmailData{
		SiteName:  h.SiteName,
		Username:  created.Username,
		VerifyURL: fmt.Sprintf("%s/account/verify/%s", h.BaseURL, created.ID.Hex()),
	})
	email.To = created.Email
	if err := h.Mail.Send(email); err != nil {
		h.Log.Warn("signup: verification email failed", zap.String("email", created.Email), zap.Error(err))
	}

	httpjson.Write(w, http.StatusOK, created)
}
