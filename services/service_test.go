package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/entity"
	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database per test. The shared cache
// keeps every pooled connection on the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.ApiToken{},
		&entity.Category{}, &entity.Product{},
		&entity.Table{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()
	u := &entity.User{Email: email, Password: "x", Role: entity.RoleCustomer}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedCatalog(t *testing.T, db *gorm.DB) (burger, soda *entity.Product) {
	t.Helper()
	cat := &entity.Category{Name: "Food", Description: "main dishes"}
	require.NoError(t, db.Create(cat).Error)

	burger = &entity.Product{
		CategoryID: cat.ID,
		Name:       "Burger",
		Price:      decimal.RequireFromString("85.50"),
		Status:     entity.ProductActive,
	}
	soda = &entity.Product{
		CategoryID: cat.ID,
		Name:       "Soda",
		Price:      decimal.RequireFromString("20.00"),
		Status:     entity.ProductActive,
	}
	require.NoError(t, db.Create(burger).Error)
	require.NoError(t, db.Create(soda).Error)
	return burger, soda
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewCatalogRepository(db))
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewTableRepository(db))
}
