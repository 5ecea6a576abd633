package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderActive    = "active"
	OrderReady     = "ready"
	OrderDelivered = "delivered"
)

const (
	PaymentCard    = "card"
	PaymentInStore = "in_store"
)

type Order struct {
	gorm.Model
	Total         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	Status        string          `gorm:"not null;default:active" json:"status"`
	PaymentMethod string          `json:"paymentMethod"`

	UserID uint `json:"userId"`
	User   User `json:"-"` // preload only for admin detail

	// Table the order was placed from, by number; zero when takeaway.
	TableNumber int `json:"tableNumber"`

	Items []OrderItem `json:"-"` // preload for detail only
}

func ValidOrderStatus(s string) bool {
	switch s {
	case OrderActive, OrderReady, OrderDelivered:
		return true
	}
	return false
}
