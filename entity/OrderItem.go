package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItem is immutable history: qty and price are frozen at checkout.
type OrderItem struct {
	gorm.Model
	Qty       int             `json:"qty"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"unitPrice"`
	Note      string          `json:"note"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	ProductID uint    `json:"productId"`
	Product   Product `json:"-"` // preload when the product name is needed
}

func (oi *OrderItem) Subtotal() decimal.Decimal {
	return oi.UnitPrice.Mul(decimal.NewFromInt(int64(oi.Qty)))
}
