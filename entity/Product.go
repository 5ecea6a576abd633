package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	ProductActive     = "active"
	ProductOutOfStock = "out_of_stock"
)

type Product struct {
	gorm.Model
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"price"`
	Status      string          `gorm:"not null;default:active" json:"status"`
	Image       string          `json:"image"` // relative path under the uploads dir, empty when none

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"` // preload only for detail views

	OrderItems []OrderItem `json:"-"`
}
