package services

import (
	"testing"

	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutEmptyCart(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "ana@example.com")
	require.NoError(t, db.Create(&entity.Table{Number: 4}).Error)
	svc := newOrderService(db)

	_, err := svc.Checkout(user.ID, "", 4)
	assert.ErrorIs(t, err, ErrEmptyCart)

	var orders int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&orders).Error)
	assert.Zero(t, orders)

	var table entity.Table
	require.NoError(t, db.Where("number = ?", 4).First(&table).Error)
	assert.False(t, table.Occupied, "empty cart must not flip table occupancy")
}

func TestCheckoutInvalidTable(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "ana@example.com")
	burger, _ := seedCatalog(t, db)
	cartSvc := newCartService(db)
	require.NoError(t, cartSvc.Add(user.ID, burger.ID, 2, ""))
	svc := newOrderService(db)

	_, err := svc.Checkout(user.ID, "", 77)
	assert.ErrorIs(t, err, ErrTableNotFound)

	var orders int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&orders).Error)
	assert.Zero(t, orders)

	// cart untouched
	cart, _, err := cartSvc.Get(user.ID)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestCheckoutSuccess(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "ana@example.com")
	burger, soda := seedCatalog(t, db)
	require.NoError(t, db.Create(&entity.Table{Number: 2}).Error)

	cartSvc := newCartService(db)
	require.NoError(t, cartSvc.Add(user.ID, burger.ID, 2, "no onion"))
	require.NoError(t, cartSvc.Add(user.ID, soda.ID, 1, ""))

	_, preTotal, err := cartSvc.Get(user.ID)
	require.NoError(t, err)

	svc := newOrderService(db)
	out, err := svc.Checkout(user.ID, entity.PaymentInStore, 2)
	require.NoError(t, err)

	// reported total == pre-checkout cart total
	assert.True(t, out.Total.Equal(preTotal), "reported %s, cart had %s", out.Total, preTotal)

	// line subtotals sum back to the order total
	order, err := svc.DetailForUser(user.ID, out.OrderID)
	require.NoError(t, err)
	require.Len(t, order.Items, 2)
	sum := decimal.Zero
	for i := range order.Items {
		sum = sum.Add(order.Items[i].Subtotal())
	}
	assert.True(t, sum.Equal(order.Total))
	assert.Equal(t, entity.OrderActive, order.Status)
	assert.Equal(t, entity.PaymentInStore, order.PaymentMethod)
	assert.Equal(t, 2, order.TableNumber)
	assert.Equal(t, "no onion", order.Items[0].Note)

	// cart cleared
	cart, _, err := cartSvc.Get(user.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	// table flipped
	var table entity.Table
	require.NoError(t, db.Where("number = ?", 2).First(&table).Error)
	assert.True(t, table.Occupied)

	// only this order is active
	assert.Equal(t, 30, out.EstimatedWait)
}

func TestCheckoutUsesSnapshotNotLivePrice(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "ana@example.com")
	burger, _ := seedCatalog(t, db)
	cartSvc := newCartService(db)
	require.NoError(t, cartSvc.Add(user.ID, burger.ID, 2, ""))

	// mid-checkout price race
	require.NoError(t, db.Model(&entity.Product{}).Where("id = ?", burger.ID).
		Update("price", decimal.RequireFromString("200.00")).Error)

	svc := newOrderService(db)
	out, err := svc.Checkout(user.ID, "", 0)
	require.NoError(t, err)

	assert.True(t, out.Total.Equal(decimal.RequireFromString("171.00")),
		"total must come from the snapshot, got %s", out.Total)
}

func TestCheckoutWaitEstimateCountsQueue(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "ana@example.com")
	burger, _ := seedCatalog(t, db)

	// two other active orders already in the kitchen, one delivered
	other := seedUser(t, db, "bob@example.com")
	for _, status := range []string{entity.OrderActive, entity.OrderActive, entity.OrderDelivered} {
		require.NoError(t, db.Create(&entity.Order{
			UserID: other.ID,
			Total:  decimal.RequireFromString("10.00"),
			Status: status,
		}).Error)
	}

	cartSvc := newCartService(db)
	require.NoError(t, cartSvc.Add(user.ID, burger.ID, 1, ""))

	out, err := newOrderService(db).Checkout(user.ID, "", 0)
	require.NoError(t, err)

	// 20 + 10 × (2 others + this one)
	assert.Equal(t, 50, out.EstimatedWait)
}

func TestCheckoutDefaultsPaymentToCard(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "ana@example.com")
	burger, _ := seedCatalog(t, db)
	cartSvc := newCartService(db)
	require.NoError(t, cartSvc.Add(user.ID, burger.ID, 1, ""))

	svc := newOrderService(db)
	out, err := svc.Checkout(user.ID, "", 0)
	require.NoError(t, err)

	order, err := svc.DetailForUser(user.ID, out.OrderID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentCard, order.PaymentMethod)
}

func TestOrderDetailIsScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	ana := seedUser(t, db, "ana@example.com")
	bob := seedUser(t, db, "bob@example.com")
	burger, _ := seedCatalog(t, db)
	cartSvc := newCartService(db)
	require.NoError(t, cartSvc.Add(ana.ID, burger.ID, 1, ""))

	svc := newOrderService(db)
	out, err := svc.Checkout(ana.ID, "", 0)
	require.NoError(t, err)

	_, err = svc.DetailForUser(bob.ID, out.OrderID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateOrderStatus(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "ana@example.com")
	burger, _ := seedCatalog(t, db)
	cartSvc := newCartService(db)
	require.NoError(t, cartSvc.Add(user.ID, burger.ID, 1, ""))

	svc := newOrderService(db)
	out, err := svc.Checkout(user.ID, "", 0)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(out.OrderID, entity.OrderReady))
	require.NoError(t, svc.UpdateStatus(out.OrderID, entity.OrderDelivered))

	order, err := svc.Detail(out.OrderID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderDelivered, order.Status)

	assert.ErrorIs(t, svc.UpdateStatus(out.OrderID, "cancelled"), ErrInvalidStatus)
	assert.ErrorIs(t, svc.UpdateStatus(9999, entity.OrderReady), ErrNotFound)
}
