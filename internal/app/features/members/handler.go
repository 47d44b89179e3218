// internal/app/features/members/handler.go
package members

import (
	memberstore "github.com/hbcybertech/clubhub/internal/app/store/members"
	"github.com/hbcybertech/clubhub/internal/app/system/gates"
	"go.uber.org/zap"
)

// Handler holds dependencies for the membership application endpoints.
type Handler struct {
	General   *memberstore.GeneralStore
	Executive *memberstore.ExecutiveStore
	Gate      *gates.AdminGate

	// SystemEmail is accepted alongside student addresses.
	SystemEmail string

	Log *zap.Logger
}

// NewHandler constructs a members Handler.
func NewHandler(general *memberstore.GeneralStore, executive *memberstore.ExecutiveStore, gate *gates.AdminGate, systemEmail string, logger *zap.Logger) *Handler {
	return &Handler{
		General:     general,
		Executive:   executive,
		Gate:        gate,
		SystemEmail: systemEmail,
		Log:         logger,
	}
}
