package utils

import (
	"strings"
	"testing"
)

func TestSanitizeQuery(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		maxLength int
		want      string
	}{
		{"trims whitespace", "  chest pain  ", 100, "chest pain"},
		{"strips control characters", "fever\x00 and\x07 chills", 100, "fever and chills"},
		{"keeps newlines and tabs", "fever\nand\tchills", 100, "fever\nand\tchills"},
		{"truncates at max length", strings.Repeat("a", 20), 10, strings.Repeat("a", 10)},
		{"zero max length means unlimited", strings.Repeat("a", 20), 0, strings.Repeat("a", 20)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeQuery(tt.text, tt.maxLength); got != tt.want {
				t.Errorf("SanitizeQuery(%q, %d) = %q, want %q", tt.text, tt.maxLength, got, tt.want)
			}
		})
	}
}
