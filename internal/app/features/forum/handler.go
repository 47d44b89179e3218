// internal/app/features/forum/handler.go
package forum

import (
	forumpoststore "github.com/hbcybertech/clubhub/internal/app/store/forumposts"
	"github.com/hbcybertech/clubhub/internal/app/system/gates"
	"github.com/hbcybertech/clubhub/internal/app/system/jwtauth"
	"go.uber.org/zap"
)

// Handler holds dependencies for the forum endpoints.
type Handler struct {
	Posts *forumpoststore.Store
	Gate  *gates.AdminGate
	Auth  *jwtauth.Auth

	// SystemEmail is accepted alongside student addresses.
	SystemEmail string

	Log *zap.Logger
}

// NewHandler constructs a forum Handler.
func NewHandler(posts *forumpoststore.Store, gate *gates.AdminGate, auth *jwtauth.Auth, systemEmail string, logger *zap.Logger) *Handler {
	return &Handler{
		Posts:       posts,
		Gate:        gate,
		Auth:        auth,
		SystemEmail: systemEmail,
		Log:         logger,
	}
}
