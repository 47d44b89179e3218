// internal/app/features/members/general.go
package members

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	memberstore "github.com/hbcybertech/clubhub/internal/app/store/members"
	"github.com/hbcybertech/clubhub/internal/app/system/convert"
	"github.com/hbcybertech/clubhub/internal/app/system/httpjson"
	"github.com/hbcybertech/clubhub/internal/app/system/paging"
	"go.uber.org/zap"
)

// HandleGeneralCreate handles POST /general_member/post.
func (h *Handler) HandleGeneralCreate(w http.ResponseWriter, r *http.Request) {
	var req generalRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.validate(h.SystemEmail); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	m, err := req.toEntity()
	if err != nil {
		if errors.Is(err, convert.ErrBadDate) {
			httpjson.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Log.Error("general create: conversion failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	created, err := h.General.Insert(r.Context(), m)
	if err != nil {
		if errors.Is(err, memberstore.ErrDuplicate) {
			httpjson.Error(w, http.StatusConflict, err.Error())
			return
		}
		h.Log.Error("general create: insert failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpjson.Write(w, http.StatusOK, created)
}

// HandleGeneralProbe handles GET /general_member/get/{value}. Echoes
// the value when an application holds it as full name or email,
// otherwise an empty string.
func (h *Handler) HandleGeneralProbe(w http.ResponseWriter, r *http.Request) {
	value := chi.URLParam(r, "value")
	exists, err := h.General.ExistsByNameOrEmail(r.Context(), value, value)
	if err != nil {
		h.Log.Error("general probe: lookup failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	if exists {
		httpjson.Write(w, http.StatusOK, value)
		return
	}
	httpjson.Write(w, http.StatusOK, "")
}

// HandleGeneralGetAll handles POST /general_member/get_all. Admin only.
func (h *Handler) HandleGeneralGetAll(w http.ResponseWriter, r *http.Request) {
	var req paging.AdminArgs
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.Gate.Check(r.Context(), req.Token); err != nil {
		httpjson.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	members, err := h.General.FindPaginated(r.Context(), req.Args)
	if err != nil {
		h.Log.Error("general get_all: find failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpjson.Write(w, http.StatusOK, members)
}
