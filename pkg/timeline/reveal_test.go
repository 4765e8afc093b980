package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCharReveal(t *testing.T) {
	tests := []struct {
		name   string
		target string
		p      float64
		want   string
	}{
		{"start", "Welcome", 0, ""},
		{"half rounds up", "Welcome", 0.5, "Welc"}, // round(3.5) = 4
		{"end", "Welcome", 1, "Welcome"},
		{"quarter", "Welcome", 0.25, "We"}, // round(1.75) = 2
		{"empty target", "", 0.5, ""},
		{"multibyte runes", "héllo", 0.4, "hé"}, // round(2.0) = 2
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, charReveal(tt.target, tt.p))
		})
	}
}

func TestWordReveal(t *testing.T) {
	tests := []struct {
		name   string
		target string
		sep    string
		p      float64
		want   string
	}{
		{"start", "the quick brown fox", " ", 0, ""},
		{"half", "the quick brown fox", " ", 0.5, "the quick"},
		{"end", "the quick brown fox", " ", 1, "the quick brown fox"},
		{"single word", "hello", " ", 0.4, ""},
		{"single word shown", "hello", " ", 0.6, "hello"},
		{"custom separator", "a,b,c,d", ",", 0.5, "a,b"},
		{"empty separator defaults to space", "one two", "", 0.5, "one"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wordReveal(tt.target, tt.sep, tt.p))
		})
	}
}
