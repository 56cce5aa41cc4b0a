package model

import (
	"errors"
	"fmt"

	"github.com/phuchoang/InteriorHub/internal/constant"
)

type ContentBlock struct {
	Type   constant.ContentBlockType `json:"type"`
	Text   string                    `json:"text,omitempty"`
	URL    string                    `json:"url,omitempty"`
	Level  int                       `json:"level,omitempty"`
	Bold   bool                      `json:"bold,omitempty"`
	Italic bool                      `json:"italic,omitempty"`
}

// Validate checks the per-type field requirements of a content block:
// image blocks carry a url, every other block carries text.
func (cb ContentBlock) Validate() error {
	switch cb.Type {
	case constant.ContentBlockImage:
		if cb.URL == "" {
			return errors.New("content block of type image requires a url")
		}
	case constant.ContentBlockParagraph, constant.ContentBlockHeader, constant.ContentBlockBullet:
		if cb.Text == "" {
			return fmt.Errorf("content block of type %s requires text", cb.Type)
		}
	default:
		return fmt.Errorf("unknown content block type: %s", cb.Type)
	}
	return nil
}

type Blog struct {
	BaseModel
	Title       string              `gorm:"type:varchar(200);not null" json:"title" form:"title"`
	Slug        string              `gorm:"type:text;not null;uniqueIndex" json:"slug" form:"slug"`
	Content     []ContentBlock      `gorm:"type:jsonb;serializer:json" json:"content" form:"content"`
	Image       string              `gorm:"type:text" json:"image" form:"image"`
	Status      constant.BlogStatus `gorm:"type:varchar(10);not null;default:active" json:"status" form:"status"`
	IsHighlight bool                `gorm:"not null;default:false" json:"isHighlight" form:"isHighlight"`
	Views       int64               `gorm:"not null;default:0" json:"views"`
}

func (b Blog) TableName() string {
	return "blogs"
}
