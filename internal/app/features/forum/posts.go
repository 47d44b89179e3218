// internal/app/features/forum/posts.go
package forum

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	forumpoststore "github.com/hbcybertech/clubhub/internal/app/store/forumposts"
	"github.com/hbcybertech/clubhub/internal/app/system/convert"
	"github.com/hbcybertech/clubhub/internal/app/system/httpjson"
	"github.com/hbcybertech/clubhub/internal/app/system/paging"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleCreate handles POST /forum/general/create. Open to anyone;
// only the delete routes check tokens.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.validate(h.SystemEmail); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	post, err := req.toEntity()
	if err != nil {
		if errors.Is(err, convert.ErrBadDate) {
			httpjson.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Log.Error("forum create: conversion failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	created, err := h.Posts.Insert(r.Context(), post)
	if err != nil {
		h.Log.Error("forum create: insert failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpjson.Write(w, http.StatusOK, created)
}

// HandleList handles POST /forum/general/get.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	var req paging.Args
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	posts, err := h.Posts.FindPaginated(r.Context(), req)
	if err != nil {
		h.Log.Error("forum list: find failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpjson.Write(w, http.StatusOK, posts)
}

// HandleCount handles GET /forum/general/get/amount.
func (h *Handler) HandleCount(w http.ResponseWriter, r *http.Request) {
	n, err := h.Posts.Count(r.Context())
	if err != nil {
		h.Log.Error("forum count: count failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpjson.Write(w, http.StatusOK, n)
}

// HandleGet handles GET /forum/general/post/{id}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid post id")
		return
	}

	post, err := h.Posts.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, forumpoststore.ErrNotFound) {
			httpjson.Error(w, http.StatusNotFound, err.Error())
			return
		}
		h.Log.Error("forum get: lookup failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpjson.Write(w, http.StatusOK, post)
}

// HandleDelete handles DELETE /forum/general/delete/{id}. Only the
// post's author may remove it.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	claims, err := h.userClaims(r)
	if err != nil {
		httpjson.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid post id")
		return
	}

	post, err := h.Posts.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, forumpoststore.ErrNotFound) {
			httpjson.Error(w, http.StatusNotFound, err.Error())
			return
		}
		h.Log.Error("forum delete: lookup failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	if post.Author != claims.Username {
		httpjson.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if _, err := h.Posts.Delete(r.Context(), id); err != nil {
		h.Log.Error("forum delete: delete failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]bool{"deleted": true})
}

// HandleDeleteAsAdmin handles DELETE /forum/general/delete/as_admin/{id}.
func (h *Handler) HandleDeleteAsAdmin(w http.ResponseWriter, r *http.Request) {
	if err := h.Gate.Check(r.Context(), r.Header.Get("Authorization")); err != nil {
		httpjson.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid post id")
		return
	}

	n, err := h.Posts.Delete(r.Context(), id)
	if err != nil {
		h.Log.Error("forum admin delete: delete failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	if n == 0 {
		httpjson.Error(w, http.StatusNotFound, forumpoststore.ErrNotFound.Error())
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]bool{"deleted": true})
}
