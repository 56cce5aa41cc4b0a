package model

type Category struct {
	BaseModel
	Name     string `gorm:"type:varchar(100);not null" json:"name" form:"name" binding:"required,strNotEmpty"`
	Slug     string `gorm:"type:text;not null;uniqueIndex" json:"slug" form:"slug"`
	IsActive bool   `gorm:"not null;default:true" json:"isActive" form:"isActive"`
}

func (c Category) TableName() string {
	return "categories"
}
