package util

import (
	"testing"
)

func TestToJSONColumn(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"String slice", []string{"a.png", "b.png"}, `["a.png","b.png"]`},
		{"Empty slice", []string{}, `[]`},
		{"Struct slice", []struct {
			Type string `json:"type"`
			Text string `json:"text,omitempty"`
		}{{Type: "paragraph", Text: "hello"}}, `[{"type":"paragraph","text":"hello"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToJSONColumn(tt.input)
			if err != nil {
				t.Fatalf("ToJSONColumn() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ToJSONColumn() = %s, want %s", got, tt.want)
			}
		})
	}
}
