// internal/app/features/admin/handler.go
package admin

import (
	adminstore "github.com/hbcybertech/clubhub/internal/app/store/admin"
	"github.com/hbcybertech/clubhub/internal/app/system/gates"
	"github.com/hbcybertech/clubhub/internal/app/system/jwtauth"
	"go.uber.org/zap"
)

// Handler holds dependencies for the admin endpoints.
type Handler struct {
	Admin *adminstore.Store
	Gate  *gates.AdminGate
	Auth  *jwtauth.Auth
	Log   *zap.Logger
}

// NewHandler constructs an admin Handler.
func NewHandler(admin *adminstore.Store, gate *gates.AdminGate, auth *jwtauth.Auth, logger *zap.Logger) *Handler {
	return &Handler{Admin: admin, Gate: gate, Auth: auth, Log: logger}
}
