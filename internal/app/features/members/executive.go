// internal/app/features/members/executive.go
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

// HandleExecutiveCreate handles POST /executive_member/post.
func (h *Handler) HandleExecutiveCreate(w http.ResponseWriter, r *http.Request) {
	var req executiveRequest
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
		h.Log.Error("executive create: conversion failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	created, err := h.Executive.Insert(r.Context(), m)
	if err != nil {
		if errors.Is(err, memberstore.ErrDuplicate) {
			httpjson.Error(w, http.StatusConflict, err.Error())
			return
		}
		h.Log.Error("executive create: insert failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpjson.Write(w, http.StatusOK, created)
}

// HandleExecutiveProbe handles GET /executive_member/get/{value}.
func (h *Handler) HandleExecutiveProbe(w http.ResponseWriter, r *http.Request) {
	value := chi.URLParam(r, "value")
	exists, err := h.Executive.ExistsByNameOrEmail(r.Context(), value, value)
	if err != nil {
		h.Log.Error("executive probe: lookup failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	if exists {
		httpjson.Write(w, http.StatusOK, value)
		return
	}
	httpjson.Write(w, http.StatusOK, "")
}

// HandleExecutiveGetAll handles POST /executive_member/get_all. Admin
// only; Field may carry an exec type for categorical filtering.
func (h *Handler) HandleExecutiveGetAll(w http.ResponseWriter, r *http.Request) {
	var req paging.AdminArgs
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.Gate.Check(r.Context(), req.Token); err != nil {
		httpjson.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	members, err := h.Executive.FindPaginated(r.Context(), req.Args)
	if err != nil {
		h.Log.Error("executive get_all: find failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpjson.Write(w, http.StatusOK, members)
}
