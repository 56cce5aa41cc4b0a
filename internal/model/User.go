package model

import (
	"time"

	"github.com/phuchoang/InteriorHub/internal/constant"
)

type User struct {
	BaseModel
	Email     string            `gorm:"unique;not null;type:citext" json:"email" form:"email" binding:"required,email"`
	Password  string            `gorm:"type:text;not null" json:"-" form:"-"`
	FullName  string            `gorm:"type:varchar(100);not null" json:"fullname" form:"fullname" binding:"required,strNotEmpty"`
	Role      constant.UserRole `gorm:"type:varchar(10);not null;default:user" json:"role" form:"role"`
	IsActive  bool              `gorm:"not null;default:true" json:"isActive" form:"isActive"`
	LastLogin *time.Time        `gorm:"type:timestamptz;default:null" json:"lastLogin"`
}

func (u User) TableName() string {
	return "users"
}

func (u User) IsAdmin() bool {
	return u.Role == constant.UserRoleAdmin
}
