// internal/app/features/accounts/types.go
package accounts

import (
	"time"

	"github.com/hbcybertech/clubhub/internal/app/system/convert"
	"github.com/hbcybertech/clubhub/internal/app/system/inputval"
	"github.com/hbcybertech/clubhub/internal/domain/models"
)

// signupRequest is the wire form of a new account. Clients send
// verified and a server-parsed date_created alongside the credentials;
// verified is never trusted, a new account always starts unverified.
type signupRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Verified    bool   `json:"verified"`
	DateCreated string `json:"date_created"`
}

func (req signupRequest) validate(systemEmail string) error {
	var v inputval.Violations
	v.Check(inputval.Username(req.Username))
	v.Check(inputval.Email(req.Email, systemEmail))
	v.Check(inputval.Password(req.Password))
	return v.Err()
}

// toEntity converts the request into a persistable account. Identity
// is always freshly generated and the password hash is filled in by
// the caller.
func (req signupRequest) toEntity() (models.Account, error) {
	created, err := convert.ParseDate(req.DateCreated)
	if err != nil {
		return models.Account{}, err
	}
	return models.Account{
		Username:    req.Username,
		Email:       req.Email,
		Verified:    false,
		DateCreated: created,
	}, nil
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// accountView is the admin-listing projection of an account. The
// password hash is masked, never exposed.
type accountView struct {
	ID          string    `json:"_id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Password    string    `json:"password"`
	Verified    bool      `json:"verified"`
	DateCreated time.Time `json:"date_created"`
}

func viewOf(a models.Account) accountView {
	return accountView{
		ID:          a.ID.Hex(),
		Username:    a.Username,
		Email:       a.Email,
		Password:    "********",
		Verified:    a.Verified,
		DateCreated: a.DateCreated,
	}
}
