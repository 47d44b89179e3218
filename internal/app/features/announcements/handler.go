// internal/app/features/announcements/handler.go
package announcements

import (
	announcementstore "github.com/hbcybertech/clubhub/internal/app/store/announcements"
	"github.com/hbcybertech/clubhub/internal/app/system/gates"
	"go.uber.org/zap"
)

// Handler holds dependencies for the announcement endpoints.
type Handler struct {
	Announcements *announcementstore.Store
	Gate          *gates.AdminGate

	// SystemEmail is stamped onto every announcement as the author
	// address.
	SystemEmail string

	Log *zap.Logger
}

// NewHandler constructs an announcements Handler.
func NewHandler(store *announcementstore.Store, gate *gates.AdminGate, systemEmail string, logger *zap.Logger) *Handler {
	return &Handler{
		Announcements: store,
		Gate:          gate,
		SystemEmail:   systemEmail,
		Log:           logger,
	}
}
