// internal/app/features/accounts/handler.go
package accounts

import (
	accountstore "github.com/hbcybertech/clubhub/internal/app/store/accounts"
	"github.com/hbcybertech/clubhub/internal/app/system/gates"
	"github.com/hbcybertech/clubhub/internal/app/system/jwtauth"
	"github.com/hbcybertech/clubhub/internal/app/system/mailer"
	"go.uber.org/zap"
)

// Handler holds dependencies for the account endpoints.
type Handler struct {
	Accounts *accountstore.Store
	Gate     *gates.AdminGate
	Auth     *jwtauth.Auth
	Mail     mailer.Sender

	// SystemEmail is the club's own address, accepted alongside
	// student addresses.
	SystemEmail string
	SiteName    string
	BaseURL     string

	Log *zap.Logger
}

// NewHandler constructs an account Handler.
func NewHandler(accounts *accountstore.Store, gate *gates.AdminGate, auth *jwtauth.Auth, mail mailer.Sender, systemEmail, siteName, baseURL string, logger *zap.Logger) *Handler {
	return &Handler{
		Accounts:    accounts,
		Gate:        gate,
		Auth:        auth,
		Mail:        mail,
		SystemEmail: systemEmail,
		SiteName:    siteName,
		BaseURL:     baseURL,
		Log:         logger,
	}
}
