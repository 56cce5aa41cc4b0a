package model

import "github.com/phuchoang/InteriorHub/internal/constant"

// Information is a contact/lead record submitted through the public contact form.
type Information struct {
	BaseModel
	FullName    string                     `gorm:"type:varchar(100);not null" json:"fullName" form:"fullName" binding:"required,strNotEmpty"`
	PhoneNumber string                     `gorm:"type:varchar(20);not null" json:"phoneNumber" form:"phoneNumber" binding:"required,strNotEmpty"`
	Province    string                     `gorm:"type:varchar(100)" json:"province" form:"province"`
	District    string                     `gorm:"type:varchar(100)" json:"district" form:"district"`
	Description string                     `gorm:"type:text" json:"description" form:"description"`
	Status      constant.InformationStatus `gorm:"type:varchar(10);not null;default:pending" json:"status" form:"status"`
}

func (i Information) TableName() string {
	return "information"
}
