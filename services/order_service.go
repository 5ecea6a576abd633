package services

import (
	"errors"

	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/entity"
	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderService struct {
	DB        *gorm.DB
	Repo      *repository.OrderRepository
	CartRepo  *repository.CartRepository
	TableRepo *repository.TableRepository
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	tableRepo *repository.TableRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, TableRepo: tableRepo}
}

type CheckoutRes struct {
	OrderID       uint
	Total         decimal.Decimal
	EstimatedWait int
}

// Checkout turns the user's cart into an order. The occupancy flip, the order
// row, its items, the cart wipe and the queue count for the wait estimate all
// happen in one transaction, so a failure anywhere leaves no trace.
func (s *OrderService) Checkout(userID uint, paymentMethod string, tableNumber int) (*CheckoutRes, error) {
	if paymentMethod == "" {
		paymentMethod = entity.PaymentCard
	}

	var out CheckoutRes
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetCartWithItems(tx, userID)
		if err != nil {
			return err
		}
		if len(cart.Items) == 0 {
			return ErrEmptyCart
		}

		if tableNumber != 0 {
			t, err := s.TableRepo.LockByNumber(tx, tableNumber)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrTableNotFound
				}
				return err
			}
			t.Occupied = true
			if err := s.TableRepo.Save(tx, t); err != nil {
				return err
			}
		}

		// Total comes from the cart's price snapshots, never the live
		// product prices.
		total := decimal.Zero
		for i := range cart.Items {
			total = total.Add(cart.Items[i].Subtotal())
		}

		order := entity.Order{
			UserID:        userID,
			Total:         total,
			Status:        entity.OrderActive,
			PaymentMethod: paymentMethod,
			TableNumber:   tableNumber,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, it := range cart.Items {
			oi := entity.OrderItem{
				OrderID:   order.ID,
				ProductID: it.ProductID,
				Qty:       it.Qty,
				UnitPrice: it.UnitPrice,
				Note:      it.Note,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}

		if err := s.CartRepo.ClearCart(tx, userID); err != nil {
			return err
		}

		// Counted after the insert, so this order counts itself.
		active, err := s.Repo.CountActive(tx)
		if err != nil {
			return err
		}

		out = CheckoutRes{
			OrderID:       order.ID,
			Total:         total,
			EstimatedWait: 20 + 10*int(active),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ----- List & Detail -----

func (s *OrderService) ListForUser(userID uint) ([]repository.OrderSummary, error) {
	return s.Repo.ListOrdersForUser(userID)
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

// ----- Admin -----

func (s *OrderService) ListAll() ([]entity.Order, error) {
	return s.Repo.ListAll()
}

func (s *OrderService) Detail(orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

// UpdateStatus moves an order along active -> ready -> delivered. The data
// model does not enforce the direction; the allowed set is.
func (s *OrderService) UpdateStatus(orderID uint, status string) error {
	if !entity.ValidOrderStatus(status) {
		return ErrInvalidStatus
	}
	err := s.Repo.UpdateStatus(orderID, status)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
