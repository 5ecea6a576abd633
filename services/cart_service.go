package services

import (
	"errors"

	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/entity"
	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartService struct {
	DB          *gorm.DB
	CartRepo    *repository.CartRepository
	CatalogRepo *repository.CatalogRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, catr *repository.CatalogRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, CatalogRepo: catr}
}

// Get returns the cart with lines in insertion order plus the running total.
func (s *CartService) Get(userID uint) (*entity.Cart, decimal.Decimal, error) {
	c, err := s.CartRepo.GetCartWithItems(s.DB, userID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	total := decimal.Zero
	for i := range c.Items {
		total = total.Add(c.Items[i].Subtotal())
	}
	return c, total, nil
}

// Add puts qty of the product into the user's cart. A line that already
// exists for the product gains qty and keeps its first note and price
// snapshot; a new line snapshots the product's current price.
func (s *CartService) Add(userID, productID uint, qty int, note string) error {
	if qty <= 0 {
		qty = 1
	}

	p, err := s.CatalogRepo.GetProduct(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if p.Status != entity.ProductActive {
		return ErrProductUnavailable
	}

	c, err := s.CartRepo.GetOrCreateCart(userID)
	if err != nil {
		return err
	}

	line := &entity.CartItem{
		ProductID: p.ID,
		Qty:       qty,
		Note:      note,
		UnitPrice: p.Price,
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertItem(tx, c.ID, line)
	})
}

// RemoveItem deletes a line of the user's cart; ErrNotFound when the item
// does not exist or belongs to someone else.
func (s *CartService) RemoveItem(userID, itemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		deleted, err := s.CartRepo.RemoveItem(tx, userID, itemID)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrNotFound
		}
		return nil
	})
}

func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, userID)
	})
}
