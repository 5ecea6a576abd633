package entity

import (
	"gorm.io/gorm"
)

// ApiToken is the opaque bearer credential of the mobile API.
// One token per user; re-login returns the same key.
type ApiToken struct {
	gorm.Model
	Key    string `gorm:"uniqueIndex;not null;size:40" json:"-"`
	UserID uint   `gorm:"uniqueIndex" json:"userId"`
	User   User   `json:"-"`
}
