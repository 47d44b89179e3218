// internal/app/system/jwtauth/jwtauth.go
package jwtauth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	// UserTokenTTL is how long a user token stays valid after sign-in.
	UserTokenTTL = 24 * time.Hour
	// AdminTokenTTL is how long an admin token stays valid. Admin
	// tokens additionally die early when the admin secret rotates.
	AdminTokenTTL = time.Hour
)

// ErrInvalidToken covers every verification failure: bad signature,
// expired, malformed, or admin-secret mismatch. Callers must not learn
// which check failed.
var ErrInvalidToken = errors.New("invalid token")

// UserClaims is the payload of a user token.
type UserClaims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Verified bool   `json:"verified"`
	jwt.RegisteredClaims
}

// AdminClaims binds an admin token to the rotating admin secret that
// was current at issue time.
type AdminClaims struct {
	Token string `json:"token"`
	jwt.RegisteredClaims
}

// Auth signs and verifies the two token kinds with one HS256 secret.
type Auth struct {
	secret []byte
}

func New(secret string) *Auth {
	return &Auth{secret: []byte(secret)}
}

// IssueUserToken signs a 24h user token for a signed-in account.
func (a *Auth) IssueUserToken(username, email string, verified bool, now time.Time) (string, error) {
	claims := UserClaims{
		Username: username,
		Email:    email,
		Verified: verified,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(UserTokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// IssueAdminToken signs a 1h admin token embedding the current admin
// secret.
func (a *Auth) IssueAdminToken(adminSecret string, now time.Time) (string, error) {
	claims := AdminClaims{
		Token: adminSecret,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(AdminTokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// ParseUserClaims verifies signature and expiry and returns the user
// claims.
func (a *Auth) ParseUserClaims(tokenStr string) (*UserClaims, error) {
	var claims UserClaims
	if err := a.parse(tokenStr, &claims); err != nil {
		return nil, err
	}
	return &claims, nil
}

// ParseAdminClaims verifies signature and expiry and returns the admin
// claims. It says nothing about the embedded secret; use VerifyAdmin
// for full authorization.
func (a *Auth) ParseAdminClaims(tokenStr string) (*AdminClaims, error) {
	var claims AdminClaims
	if err := a.parse(tokenStr, &claims); err != nil {
		return nil, err
	}
	return &claims, nil
}

// VerifyAdmin runs the full two-layer admin check: the token must
// decode with a live expiry, and its embedded secret must hash-compare
// against the admin secret that is current right now. Rotating the
// admin secret therefore invalidates every outstanding admin token at
// once, not just at their own expiry.
func (a *Auth) VerifyAdmin(tokenStr, currentSecret string) error {
	claims, err := a.ParseAdminClaims(tokenStr)
	if err != nil {
		return ErrInvalidToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(currentSecret), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin secret: %w", err)
	}
	if bcrypt.CompareHashAndPassword(hash, []byte(claims.Token)) != nil {
		return ErrInvalidToken
	}
	return nil
}

func (a *Auth) parse(tokenStr string, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	},
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
	)
	if err != nil {
		return ErrInvalidToken
	}
	if !token.Valid {
		return ErrInvalidToken
	}
	return nil
}
