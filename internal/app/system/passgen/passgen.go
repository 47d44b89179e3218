// internal/app/system/passgen/passgen.go
package passgen

import (
	"crypto/rand"
	"math/big"
	"strings"
)

// Generated admin passwords are 30-45 characters drawn from all four
// character classes plus space, with visually similar characters
// excluded. Candidates below the score threshold are regenerated.
const (
	MinLength = 30
	MaxLength = 45
	MinScore  = 90.0
)

const (
	lowerSet  = "abcdefghjkmnpqrstuvwxyz" // i, l, o excluded
	upperSet  = "ABCDEFGHJKMNPQRSTUVWXYZ" // I, L, O excluded
	digitSet  = "23456789"                // 0, 1 excluded
	symbolSet = "!@#$%^&*()-_=+[]{};:,.<>?/"
)

var allSets = []string{lowerSet, upperSet, digitSet, symbolSet}

// Generate produces one candidate password of random length in
// [MinLength, MaxLength] containing at least one character from each
// class. Panics if the system's cryptographic random number generator
// fails, matching how other secret generation in this codebase treats
// entropy exhaustion.
func Generate() string {
	length := MinLength + randInt(MaxLength-MinLength+1)

	full := strings.Join(allSets, "") + " "
	buf := make([]byte, length)

	// One guaranteed character per class, the rest from the full set.
	for i, set := range allSets {
		buf[i] = set[randInt(len(set))]
	}
	for i := len(allSets); i < length; i++ {
		buf[i] = full[randInt(len(full))]
	}

	// Fisher-Yates so the guaranteed characters are not positional.
	for i := length - 1; i > 0; i-- {
		j := randInt(i + 1)
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// NewAdminPassword generates candidates until one scores at or above
// MinScore.
func NewAdminPassword() string {
	p := Generate()
	for Score(p) < MinScore {
		p = Generate()
	}
	return p
}

// Score rates a password 0-100: up to 40 points for length (saturating
// at 32 characters), 40 for character-class variety, 20 for the share
// of distinct characters.
func Score(password string) float64 {
	if password == "" {
		return 0
	}

	n := len(password)
	lengthPts := float64(n) / 32.0 * 40.0
	if lengthPts > 40 {
		lengthPts = 40
	}

	classes := 0
	for _, set := range allSets {
		if strings.ContainsAny(password, set) {
			classes++
		}
	}
	classPts := float64(classes) / 4.0 * 40.0

	distinct := make(map[rune]struct{}, n)
	for _, r := range password {
		distinct[r] = struct{}{}
	}
	varietyPts := float64(len(distinct)) / float64(n) * 20.0

	return lengthPts + classPts + varietyPts
}

func randInt(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("crypto/rand.Int failed: " + err.Error())
	}
	return int(v.Int64())
}
