package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	ProductID uint    `json:"productId"`
	Product   Product `json:"-"`

	Qty  int    `json:"qty"`
	Note string `json:"note"`

	// Price captured when the line was first added; later product price
	// changes do not touch it.
	UnitPrice decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"unitPrice"`
}

func (ci *CartItem) Subtotal() decimal.Decimal {
	return ci.UnitPrice.Mul(decimal.NewFromInt(int64(ci.Qty)))
}
