package entity

import (
	"gorm.io/gorm"
)

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

type User struct {
	gorm.Model
	Email         string `gorm:"uniqueIndex;not null" json:"email"`
	Password      string `json:"-"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	AvatarDefault string `json:"avatarDefault"`
	Role          string `gorm:"not null;default:customer" json:"role"`

	// Relations, preload only when needed
	Cart   *Cart     `gorm:"foreignKey:UserID" json:"-"`
	Token  *ApiToken `gorm:"foreignKey:UserID" json:"-"`
	Orders []Order   `json:"-"`
}
