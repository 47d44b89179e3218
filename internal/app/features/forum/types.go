// internal/app/features/forum/types.go
package forum

import (
	"net/http"

	"github.com/hbcybertech/clubhub/internal/app/system/convert"
	"github.com/hbcybertech/clubhub/internal/app/system/htmlsanitize"
	"github.com/hbcybertech/clubhub/internal/app/system/inputval"
	"github.com/hbcybertech/clubhub/internal/app/system/jwtauth"
	"github.com/hbcybertech/clubhub/internal/domain/models"
)

// postRequest is the wire form of a new forum post.
type postRequest struct {
	Author      string `json:"author"`
	Email       string `json:"email"`
	Title       string `json:"title"`
	Body        string `json:"body"`
	DateCreated string `json:"date_created"`
}

func (req postRequest) validate(systemEmail string) error {
	var v inputval.Violations
	v.Check(inputval.Username(req.Author))
	v.Check(inputval.Email(req.Email, systemEmail))
	v.Check(inputval.FreeText("title", req.Title, 5, 20))
	v.Check(inputval.FreeText("body", req.Body, 20, 600))
	return v.Err()
}

// toEntity converts the request into a persistable post with a fresh
// identity and an empty comment list.
func (req postRequest) toEntity() (models.ForumPost, error) {
	created, err := convert.ParseDate(req.DateCreated)
	if err != nil {
		return models.ForumPost{}, err
	}
	return models.ForumPost{
		Author:      req.Author,
		Email:       req.Email,
		DateCreated: created,
		Title:       htmlsanitize.Sanitize(req.Title),
		Body:        htmlsanitize.Sanitize(req.Body),
		Comments:    []models.Comment{},
	}, nil
}

// commentRequest is the wire form of a new comment.
type commentRequest struct {
	Author      string `json:"author"`
	Email       string `json:"email"`
	Body        string `json:"body"`
	DateCreated string `json:"date_created"`
}

func (req commentRequest) validate(systemEmail string) error {
	var v inputval.Violations
	v.Check(inputval.Username(req.Author))
	v.Check(inputval.Email(req.Email, systemEmail))
	v.Check(inputval.FreeText("body", req.Body, 20, 600))
	return v.Err()
}

func (req commentRequest) toEntity() (models.Comment, error) {
	created, err := convert.ParseDate(req.DateCreated)
	if err != nil {
		return models.Comment{}, err
	}
	return models.Comment{
		Author:      req.Author,
		Email:       req.Email,
		DateCreated: created,
		Body:        htmlsanitize.Sanitize(req.Body),
	}, nil
}

// userClaims pulls and verifies the caller's user JWT. The token rides
// in the raw Authorization header, without a scheme prefix.
func (h *Handler) userClaims(r *http.Request) (*jwtauth.UserClaims, error) {
	return h.Auth.ParseUserClaims(r.Header.Get("Authorization"))
}
