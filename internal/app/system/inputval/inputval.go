// internal/app/system/inputval/inputval.go
package inputval

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Shared field rules. Every request type validates against this one
// table so the same field always carries the same rule and message;
// per-entity regex drift is not allowed to creep back in.
var (
	reUsername     = regexp.MustCompile(`^[a-zA-Z0-9._%+-]{2,20}$`)
	reStudentEmail = regexp.MustCompile(`^[0-9]{6,7}@pdsb\.net$`)
	reFullName     = regexp.MustCompile(`^[A-Za-zÀ-ÖØ-öø-įĴ-őŔ-žǍ-ǰǴ-ǵǸ-țȞ-ȟȤ-ȳɃɆ-ɏḀ-ẞƀ-ƓƗ-ƚƝ-ơƤ-ƥƫ-ưƲ-ƶẠ-ỿ ']{2,40}$`)
	reExecType     = regexp.MustCompile(`^(development|marketing|events)$`)
	reURL          = regexp.MustCompile(`^(https?://)[^\s/$.?#].[^\s]*$`)
)

// TeamAuthor is the sentinel author used for system-authored content.
// It bypasses the username pattern.
const TeamAuthor = "The Team"

// bcrypt truncates passwords beyond 72 bytes, so that is the only cap.
// The absence of a complexity rule is a deliberately preserved
// behavior, not an oversight to fix here.
const (
	PasswordMinLen = 1
	PasswordMaxLen = 72
)

// Username accepts 2-20 chars of [a-zA-Z0-9._%+-], or the team author.
func Username(v string) error {
	if v != TeamAuthor && !reUsername.MatchString(v) {
		return errors.New("Invalid username.")
	}
	return nil
}

// Email accepts a 6-7 digit student number at the board domain, or the
// configured system address.
func Email(v, systemEmail string) error {
	if v != systemEmail && !reStudentEmail.MatchString(v) {
		return errors.New("Email must be a valid PDSB email.")
	}
	return nil
}

func Password(v string) error {
	if len(v) < PasswordMinLen || len(v) > PasswordMaxLen {
		return fmt.Errorf("Password should be from %d to %d characters.", PasswordMinLen, PasswordMaxLen)
	}
	return nil
}

func FullName(v string) error {
	if !reFullName.MatchString(v) {
		return errors.New("Invalid name.")
	}
	return nil
}

func Grade(v int) error {
	if v < 9 || v > 12 {
		return errors.New("Grade should be 9, 10, 11, or 12.")
	}
	return nil
}

func Skills(v int) error {
	if v < 0 || v > 100 {
		return errors.New("Skills should be from 0 to 100.")
	}
	return nil
}

func ExecType(v string) error {
	if !IsExecType(v) {
		return errors.New("Invalid exec type. Must be development, marketing, or events.")
	}
	return nil
}

// IsExecType reports whether v names one of the executive roles.
func IsExecType(v string) bool {
	return reExecType.MatchString(v)
}

// FreeText bounds a free-text field by rune count.
func FreeText(name, v string, min, max int) error {
	n := len([]rune(v))
	if n < min || n > max {
		return fmt.Errorf("%s should be from %d to %d characters.", name, min, max)
	}
	return nil
}

// PortfolioURL is optional; when present it must look like an http(s)
// URL.
func PortfolioURL(v string) error {
	if v == "" {
		return nil
	}
	if !reURL.MatchString(v) {
		return errors.New("Portfolio must be a valid URL.")
	}
	return nil
}

// Link requires an http(s) URL.
func Link(v string) error {
	if !reURL.MatchString(v) {
		return errors.New("Link must be a valid URL.")
	}
	return nil
}

// Violations accumulates field rule failures so a request is accepted
// or rejected wholesale with every message at once.
type Violations struct {
	msgs []string
}

// Check records err if non-nil.
func (v *Violations) Check(err error) {
	if err != nil {
		v.msgs = append(v.msgs, err.Error())
	}
}

// Err returns a single error joining all recorded messages, or nil.
func (v *Violations) Err() error {
	if len(v.msgs) == 0 {
		return nil
	}
	return errors.New(strings.Join(v.msgs, " "))
}
