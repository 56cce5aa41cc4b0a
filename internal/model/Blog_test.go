package model

import (
	"testing"

	"github.com/phuchoang/InteriorHub/internal/constant"
)

func TestContentBlockValidate(t *testing.T) {
	tests := []struct {
		name    string
		block   ContentBlock
		wantErr bool
	}{
		{"Paragraph with text", ContentBlock{Type: constant.ContentBlockParagraph, Text: "hello"}, false},
		{"Paragraph without text", ContentBlock{Type: constant.ContentBlockParagraph}, true},
		{"Header with text", ContentBlock{Type: constant.ContentBlockHeader, Text: "Title", Level: 2}, false},
		{"Bullet without text", ContentBlock{Type: constant.ContentBlockBullet}, true},
		{"Image with url", ContentBlock{Type: constant.ContentBlockImage, URL: "http://localhost:9000/interiorhub/blogs/a.png"}, false},
		{"Image without url", ContentBlock{Type: constant.ContentBlockImage, Text: "caption"}, true},
		{"Unknown type", ContentBlock{Type: "video", Text: "x"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.block.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
