// internal/app/features/forum/comments.go
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

// HandleComment handles POST /forum/general/post/{id}/comment. Open to
// anyone; only the delete routes check tokens.
func (h *Handler) HandleComment(w http.ResponseWriter, r *http.Request) {
	postID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid post id")
		return
	}

	var req commentRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.validate(h.SystemEmail); err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	comment, err := req.toEntity()
	if err != nil {
		if errors.Is(err, convert.ErrBadDate) {
			httpjson.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Log.Error("comment: conversion failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	added, err := h.Posts.AppendComment(r.Context(), postID, comment)
	if err != nil {
		if errors.Is(err, forumpoststore.ErrNotFound) {
			httpjson.Error(w, http.StatusNotFound, err.Error())
			return
		}
		h.Log.Error("comment: append failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpjson.Write(w, http.StatusOK, added)
}

// HandleComments handles POST /forum/general/post/{id}/comments.
func (h *Handler) HandleComments(w http.ResponseWriter, r *http.Request) {
	postID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid post id")
		return
	}

	var req paging.Args
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	comments, err := h.Posts.ListComments(r.Context(), postID, req)
	if err != nil {
		if errors.Is(err, forumpoststore.ErrNotFound) {
			httpjson.Error(w, http.StatusNotFound, err.Error())
			return
		}
		h.Log.Error("comments: list failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpjson.Write(w, http.StatusOK, comments)
}

// HandleCommentDelete handles
// DELETE /forum/general/post/{id}/comment/{comment_id}. Only the
// comment's author may remove it.
func (h *Handler) HandleCommentDelete(w http.ResponseWriter, r *http.Request) {
	claims, err := h.userClaims(r)
	if err != nil {
		httpjson.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	postID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid post id")
		return
	}
	commentID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "comment_id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid comment id")
		return
	}

	comment, err := h.Posts.FindComment(r.Context(), postID, commentID)
	if err != nil {
		h.writeCommentLookupError(w, err)
		return
	}
	if comment.Author != claims.Username {
		httpjson.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.Posts.DeleteComment(r.Context(), postID, commentID); err != nil {
		h.writeCommentLookupError(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]bool{"deleted": true})
}

// HandleCommentDeleteAsAdmin handles
// DELETE /forum/general/post/{id}/comment/as_admin/{comment_id}.
func (h *Handler) HandleCommentDeleteAsAdmin(w http.ResponseWriter, r *http.Request) {
	if err := h.Gate.Check(r.Context(), r.Header.Get("Authorization")); err != nil {
		httpjson.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	postID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid post id")
		return
	}
	commentID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "comment_id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid comment id")
		return
	}

	if err := h.Posts.DeleteComment(r.Context(), postID, commentID); err != nil {
		h.writeCommentLookupError(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *Handler) writeCommentLookupError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, forumpoststore.ErrNotFound), errors.Is(err, forumpoststore.ErrCommentNotFound):
		httpjson.Error(w, http.StatusNotFound, err.Error())
	default:
		h.Log.Error("comment delete: store failure", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal error")
	}
}
