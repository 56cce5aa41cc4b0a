package util

import (
	"encoding/base64"
	"testing"
)

func TestIsBase64DataURI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"Valid png data uri", "data:image/png;base64,iVBORw0KGgo=", true},
		{"Valid jpeg data uri", "data:image/jpeg;base64,/9j/4AAQ", true},
		{"Hosted url", "http://localhost:9000/interiorhub/designs/cover.png", false},
		{"Missing marker", "data:image/png,rawdata", false},
		{"Not an image", "data:text/plain;base64,aGVsbG8=", false},
		{"Empty string", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBase64DataURI(tt.input); got != tt.want {
				t.Errorf("IsBase64DataURI(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDecodeBase64DataURI(t *testing.T) {
	payload := []byte("fake image bytes")
	dataURI := "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)

	data, contentType, err := DecodeBase64DataURI(dataURI)
	if err != nil {
		t.Fatalf("DecodeBase64DataURI() error = %v", err)
	}

	if contentType != "image/png" {
		t.Errorf("Expected content type image/png, got %s", contentType)
	}

	if string(data) != string(payload) {
		t.Errorf("Expected decoded payload %q, got %q", payload, data)
	}

	if _, _, err := DecodeBase64DataURI("http://example.com/a.png"); err == nil {
		t.Error("Expected error for non data uri input")
	}

	if _, _, err := DecodeBase64DataURI("data:image/png;base64,!!!not-base64!!!"); err == nil {
		t.Error("Expected error for malformed base64 payload")
	}
}

func TestRemovedImages(t *testing.T) {
	old := []string{
		"http://localhost:9000/interiorhub/designs/a.png",
		"http://localhost:9000/interiorhub/designs/b.png",
		"http://localhost:9000/interiorhub/designs/c.png",
	}

	tests := []struct {
		name     string
		incoming []string
		want     []string
	}{
		{"All kept", old, nil},
		{"One replaced", []string{old[0], old[2], "data:image/png;base64,iVBORw0KGgo="}, []string{old[1]}},
		{"All replaced", []string{"http://localhost:9000/interiorhub/designs/new.png"}, old},
		{"Cleared", []string{}, old},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RemovedImages(old, tt.incoming)
			if len(got) != len(tt.want) {
				t.Fatalf("RemovedImages() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("RemovedImages()[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestExtensionForContentType(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		want        string
	}{
		{"Png", "image/png", ".png"},
		{"Jpeg", "image/jpeg", ".jpeg"},
		{"Svg with suffix", "image/svg+xml", ".svg"},
		{"Empty subtype", "image/", ".bin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extensionForContentType(tt.contentType); got != tt.want {
				t.Errorf("extensionForContentType(%q) = %q, want %q", tt.contentType, got, tt.want)
			}
		})
	}
}
