package passgen

import (
	"strings"
	"testing"
)

func TestGenerate_LengthBounds(t *testing.T) {
	for i := 0; i < 100; i++ {
		p := Generate()
		if len(p) < MinLength || len(p) > MaxLength {
			t.Fatalf("Generate() length = %d, want %d-%d", len(p), MinLength, MaxLength)
		}
	}
}

func TestGenerate_ContainsAllClasses(t *testing.T) {
	for i := 0; i < 100; i++ {
		p := Generate()
		for _, set := range allSets {
			if !strings.ContainsAny(p, set) {
				t.Fatalf("Generate() = %q missing class %q", p, set[:5])
			}
		}
	}
}

func TestGenerate_ExcludesSimilarCharacters(t *testing.T) {
	for i := 0; i < 100; i++ {
		p := Generate()
		if strings.ContainsAny(p, "il1LoO0I") {
			t.Fatalf("Generate() = %q contains visually similar character", p)
		}
	}
}

func TestNewAdminPassword_MeetsThreshold(t *testing.T) {
	for i := 0; i < 20; i++ {
		p := NewAdminPassword()
		if got := Score(p); got < MinScore {
			t.Fatalf("NewAdminPassword() score = %.1f, want >= %.1f", got, MinScore)
		}
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		password string
		atLeast  float64
		below    float64
	}{
		{"empty", "", 0, 1},
		{"short lowercase", "abc", 0, 40},
		{"repeated single char", strings.Repeat("a", 40), 0, 60},
		{"long all classes", "aB3$eF7(hJ9)kM2#pQ5@sT8%vW4^xZ6&", 90, 101},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.password)
			if got < tt.atLeast || got >= tt.below {
				t.Errorf("Score(%q) = %.1f, want in [%.1f, %.1f)", tt.password, got, tt.atLeast, tt.below)
			}
		})
	}
}

func TestScore_GeneratedUsuallyStrong(t *testing.T) {
	// The regeneration loop in NewAdminPassword must terminate quickly;
	// generated candidates should nearly always clear the bar already.
	weak := 0
	for i := 0; i < 200; i++ {
		if Score(Generate()) < MinScore {
			weak++
		}
	}
	if weak > 20 {
		t.Errorf("%d/200 generated passwords below threshold; generator too weak", weak)
	}
}
