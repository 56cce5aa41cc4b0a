package constant

type BlogStatus string

const (
	BlogStatusActive   BlogStatus = "active"
	BlogStatusInactive BlogStatus = "inactive"
	BlogStatusDraft    BlogStatus = "draft"
)

type ContentBlockType string

const (
	ContentBlockParagraph ContentBlockType = "paragraph"
	ContentBlockHeader    ContentBlockType = "header"
	ContentBlockBullet    ContentBlockType = "bullet"
	ContentBlockImage     ContentBlockType = "image"
)
