package inputval

import (
	"strings"
	"testing"
)

func TestUsername(t *testing.T) {
	tests := []struct {
		username string
		wantOK   bool
	}{
		// Valid usernames
		{"ab", true},
		{"user123", true},
		{"first.last", true},
		{"tag+plus", true},
		{"pct%enc", true},
		{"under_score", true},
		{"The Team", true}, // sentinel bypasses the pattern

		// Invalid usernames
		{"", false},
		{"a", false},
		{strings.Repeat("a", 21), false},
		{"has space", false},
		{"emoji😀", false},
	}

	for _, tt := range tests {
		t.Run(tt.username, func(t *testing.T) {
			err := Username(tt.username)
			if (err == nil) != tt.wantOK {
				t.Errorf("Username(%q) = %v, want ok=%v", tt.username, err, tt.wantOK)
			}
		})
	}
}

func TestEmail(t *testing.T) {
	const systemEmail = "hbcybertech@gmail.com"

	tests := []struct {
		email  string
		wantOK bool
	}{
		{"123456@pdsb.net", true},
		{"1234567@pdsb.net", true},
		{"hbcybertech@gmail.com", true}, // configured system address

		{"12345@pdsb.net", false},    // too few digits
		{"12345678@pdsb.net", false}, // too many digits
		{"1234567@pdsb.com", false},
		{"abcdef@pdsb.net", false},
		{"1234567@gmail.com", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			err := Email(tt.email, systemEmail)
			if (err == nil) != tt.wantOK {
				t.Errorf("Email(%q) = %v, want ok=%v", tt.email, err, tt.wantOK)
			}
		})
	}
}

func TestFullName(t *testing.T) {
	tests := []struct {
		name   string
		wantOK bool
	}{
		{"Jo", true},
		{"Mary Jane Watson", true},
		{"O'Brien", true},
		{"Renée Łukasz", true},
		{"José", true},

		{"J", false},
		{strings.Repeat("a", 41), false},
		{"R2D2", false},
		{"name-with-dash", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FullName(tt.name)
			if (err == nil) != tt.wantOK {
				t.Errorf("FullName(%q) = %v, want ok=%v", tt.name, err, tt.wantOK)
			}
		})
	}
}

func TestGradeAndSkills(t *testing.T) {
	for _, g := range []int{9, 10, 11, 12} {
		if err := Grade(g); err != nil {
			t.Errorf("Grade(%d) = %v, want nil", g, err)
		}
	}
	for _, g := range []int{0, 8, 13, -1} {
		if err := Grade(g); err == nil {
			t.Errorf("Grade(%d) = nil, want error", g)
		}
	}

	for _, s := range []int{0, 50, 100} {
		if err := Skills(s); err != nil {
			t.Errorf("Skills(%d) = %v, want nil", s, err)
		}
	}
	for _, s := range []int{-1, 101} {
		if err := Skills(s); err == nil {
			t.Errorf("Skills(%d) = nil, want error", s)
		}
	}
}

func TestExecType(t *testing.T) {
	for _, v := range []string{"development", "marketing", "events"} {
		if err := ExecType(v); err != nil {
			t.Errorf("ExecType(%q) = %v, want nil", v, err)
		}
	}
	for _, v := range []string{"", "Development", "design", "events "} {
		if err := ExecType(v); err == nil {
			t.Errorf("ExecType(%q) = nil, want error", v)
		}
	}
}

func TestFreeText(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		min    int
		max    int
		wantOK bool
	}{
		{"Title", "Hello", 5, 20, true},
		{"Title", "Hey", 5, 20, false},
		{"Title", strings.Repeat("x", 21), 5, 20, false},
		{"Body", strings.Repeat("x", 20), 20, 600, true},
		{"Body", strings.Repeat("x", 19), 20, 600, false},
		{"Extra", "", 0, 350, true},
		{"Body", "héllo wörld with ünïcode rüne cöunting", 20, 600, true},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.value[:minInt(10, len(tt.value))], func(t *testing.T) {
			err := FreeText(tt.name, tt.value, tt.min, tt.max)
			if (err == nil) != tt.wantOK {
				t.Errorf("FreeText(%q, len=%d, %d, %d) = %v, want ok=%v",
					tt.name, len(tt.value), tt.min, tt.max, err, tt.wantOK)
			}
		})
	}
}

func TestPortfolioURL(t *testing.T) {
	tests := []struct {
		url    string
		wantOK bool
	}{
		{"", true}, // optional
		{"https://example.com", true},
		{"http://example.com/portfolio?x=1", true},

		{"ftp://example.com", false},
		{"example.com", false},
		{"not a url", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			err := PortfolioURL(tt.url)
			if (err == nil) != tt.wantOK {
				t.Errorf("PortfolioURL(%q) = %v, want ok=%v", tt.url, err, tt.wantOK)
			}
		})
	}
}

func TestViolations_JoinsAllMessages(t *testing.T) {
	var v Violations
	v.Check(Username(""))
	v.Check(Grade(3))
	v.Check(Skills(50)) // passes, not recorded

	err := v.Err()
	if err == nil {
		t.Fatal("expected joined error, got nil")
	}
	msg := err.Error()
	if !strings.Contains(msg, "Invalid username.") {
		t.Errorf("missing username message in %q", msg)
	}
	if !strings.Contains(msg, "Grade should be") {
		t.Errorf("missing grade message in %q", msg)
	}
}

func TestViolations_EmptyIsNil(t *testing.T) {
	var v Violations
	if err := v.Err(); err != nil {
		t.Errorf("expected nil for no violations, got %v", err)
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
