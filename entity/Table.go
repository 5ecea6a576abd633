package entity

import (
	"gorm.io/gorm"
)

type Table struct {
	gorm.Model
	Number   int  `gorm:"uniqueIndex;not null" json:"number"`
	Occupied bool `gorm:"not null;default:false" json:"occupied"`
}
