package util

import (
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Simple title", "Modern Villa", "modern-villa"},
		{"Vietnamese diacritics", "Thiết kế nội thất", "thiet-ke-noi-that"},
		{"Vietnamese with dj", "Biệt thự hiện đại", "biet-thu-hien-dai"},
		{"Special characters", "Hello, World!", "hello-world"},
		{"Multiple spaces", "a  b   c", "a-b-c"},
		{"Leading and trailing spaces", "  trimmed  ", "trimmed"},
		{"Already a slug", "already-a-slug", "already-a-slug"},
		{"Empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
