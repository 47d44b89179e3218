// internal/app/system/gates/gates.go
package gates

import (
	"context"

	adminstore "github.com/hbcybertech/clubhub/internal/app/store/admin"
	"github.com/hbcybertech/clubhub/internal/app/system/jwtauth"
)

// AdminGate authorizes admin-only requests. Both layers must hold: the
// presented JWT decodes with a live expiry, and its embedded secret
// matches the admin token that is current at check time.
type AdminGate struct {
	Admin *adminstore.Store
	Auth  *jwtauth.Auth
}

// Check validates an admin JWT against the live admin record. Any
// failure comes back as jwtauth.ErrInvalidToken; callers never learn
// which layer rejected.
func (g *AdminGate) Check(ctx context.Context, tokenStr string) error {
	if tokenStr == "" {
		return jwtauth.ErrInvalidToken
	}
	admin, err := g.Admin.Get(ctx)
	if err != nil {
		return err
	}
	return g.Auth.VerifyAdmin(tokenStr, admin.Token)
}
