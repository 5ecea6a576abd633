package repository

import (
	"time"

	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/entity"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

// CountActive counts orders with status "active" as seen by tx. Used for the
// wait estimate, so it must run inside the checkout transaction.
func (r *OrderRepository) CountActive(tx *gorm.DB) (int64, error) {
	var n int64
	err := tx.Model(&entity.Order{}).Where("status = ?", entity.OrderActive).Count(&n).Error
	return n, err
}

type OrderSummary struct {
	ID            uint            `json:"id"`
	Total         decimal.Decimal `json:"total"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"paymentMethod"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForUser(userID uint) ([]OrderSummary, error) {
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, total, status, payment_method, created_at").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Scan(&out).Error
	return out, err
}

func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).
		Preload("Items").
		Preload("Items.Product").
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// ---------------- Admin side ----------------

func (r *OrderRepository) ListAll() ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Preload("User").Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Preload("Items").Preload("Items.Product").Preload("User").
		First(&o, orderID).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) UpdateStatus(orderID uint, status string) error {
	res := r.DB.Model(&entity.Order{}).Where("id = ?", orderID).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListDelivered returns delivered orders for the sales report, oldest first.
func (r *OrderRepository) ListDelivered() ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Preload("User").
		Where("status = ?", entity.OrderDelivered).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}
