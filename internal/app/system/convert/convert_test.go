package convert_test

import (
	"testing"
	"time"

	"github.com/hbcybertech/clubhub/internal/app/system/convert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{"utc", "2024-03-01T12:00:00Z", true},
		{"offset", "2024-03-01T12:00:00-05:00", true},
		{"fractional seconds", "2024-03-01T12:00:00.123Z", true},
		{"date only", "2024-03-01", false},
		{"no zone", "2024-03-01T12:00:00", false},
		{"garbage", "yesterday", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := convert.ParseDate(tt.input)
			if tt.ok {
				if err != nil {
					t.Fatalf("ParseDate(%q) error: %v", tt.input, err)
				}
				want, _ := time.Parse(time.RFC3339, tt.input)
				if !got.Equal(want) {
					t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, want)
				}
				return
			}
			if err != convert.ErrBadDate {
				t.Errorf("ParseDate(%q) err = %v, want ErrBadDate", tt.input, err)
			}
		})
	}
}
