package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/configs"
	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/entity"
	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/routes"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

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

	cfg := &configs.Config{
		MediaBaseURL: "http://test.local",
		UploadDir:    t.TempDir(),
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	routes.RegisterRoutes(r, db, cfg)
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func seedProduct(t *testing.T, db *gorm.DB, name, price string) *entity.Product {
	t.Helper()
	cat := entity.Category{Name: name + " category"}
	require.NoError(t, db.Create(&cat).Error)
	p := entity.Product{
		CategoryID: cat.ID,
		Name:       name,
		Price:      decimal.RequireFromString(price),
		Status:     entity.ProductActive,
	}
	require.NoError(t, db.Create(&p).Error)
	return &p
}

func registerAndLogin(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	rec := doJSON(t, r, "POST", "/api/register", "",
		fmt.Sprintf(`{"first_name":"Ana","last_name":"Lopez","email":%q,"password":"secret"}`, email))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, r, "POST", "/api/login", "",
		fmt.Sprintf(`{"email":%q,"password":"secret"}`, email))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out struct {
		Token string `json:"token"`
	}
	decode(t, rec, &out)
	require.Len(t, out.Token, 40)
	return out.Token
}

func TestRegisterLoginCartRoundTrip(t *testing.T) {
	r, db := newTestServer(t)
	burger := seedProduct(t, db, "Burger", "85.50")

	token := registerAndLogin(t, r, "ana@example.com")

	// add two burgers with a note
	rec := doJSON(t, r, "POST", "/api/cart/items", token,
		fmt.Sprintf(`{"producto_id":%d,"cantidad":2,"nota":"no onion"}`, burger.ID))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, r, "GET", "/api/cart", token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var cart struct {
		Items []struct {
			ProductID uint    `json:"product_id"`
			Quantity  int     `json:"quantity"`
			Note      string  `json:"note"`
			UnitPrice float64 `json:"unit_price"`
			Subtotal  float64 `json:"subtotal"`
		} `json:"items"`
		Total float64 `json:"total"`
	}
	decode(t, rec, &cart)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, burger.ID, cart.Items[0].ProductID)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, "no onion", cart.Items[0].Note)
	assert.InDelta(t, 85.50, cart.Items[0].UnitPrice, 0.001)
	assert.InDelta(t, 171.00, cart.Items[0].Subtotal, 0.001)
	assert.InDelta(t, 171.00, cart.Total, 0.001)
}

func TestCheckoutRoundTrip(t *testing.T) {
	r, db := newTestServer(t)
	burger := seedProduct(t, db, "Burger", "85.50")
	require.NoError(t, db.Create(&entity.Table{Number: 3}).Error)

	token := registerAndLogin(t, r, "ana@example.com")

	rec := doJSON(t, r, "POST", "/api/cart/items", token,
		fmt.Sprintf(`{"producto_id":%d,"cantidad":2}`, burger.ID))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, "POST", "/api/checkout", token, `{"metodo_pago":"in_store","mesa":3}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out struct {
		PedidoID       uint    `json:"pedido_id"`
		Total          float64 `json:"total"`
		TiempoEstimado int     `json:"tiempo_estimado"`
	}
	decode(t, rec, &out)
	assert.NotZero(t, out.PedidoID)
	assert.InDelta(t, 171.00, out.Total, 0.001)
	assert.Equal(t, 30, out.TiempoEstimado)

	// cart is now empty, so a second checkout fails
	rec = doJSON(t, r, "POST", "/api/checkout", token, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// the table got occupied
	var table entity.Table
	require.NoError(t, db.Where("number = ?", 3).First(&table).Error)
	assert.True(t, table.Occupied)

	// and the order shows up in the history
	rec = doJSON(t, r, "GET", "/api/orders", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var orders []struct {
		ID            uint    `json:"id"`
		Total         float64 `json:"total"`
		Status        string  `json:"status"`
		PaymentMethod string  `json:"payment_method"`
	}
	decode(t, rec, &orders)
	require.Len(t, orders, 1)
	assert.Equal(t, out.PedidoID, orders[0].ID)
	assert.Equal(t, "active", orders[0].Status)
	assert.Equal(t, "in_store", orders[0].PaymentMethod)

	rec = doJSON(t, r, "GET", fmt.Sprintf("/api/orders/%d", out.PedidoID), token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var detail struct {
		Items []struct {
			Quantity int     `json:"quantity"`
			Subtotal float64 `json:"subtotal"`
		} `json:"items"`
	}
	decode(t, rec, &detail)
	require.Len(t, detail.Items, 1)
	assert.Equal(t, 2, detail.Items[0].Quantity)
	assert.InDelta(t, 171.00, detail.Items[0].Subtotal, 0.001)
}

func TestCheckoutBadTableAndBadJSON(t *testing.T) {
	r, db := newTestServer(t)
	burger := seedProduct(t, db, "Burger", "85.50")
	token := registerAndLogin(t, r, "ana@example.com")

	rec := doJSON(t, r, "POST", "/api/cart/items", token,
		fmt.Sprintf(`{"producto_id":%d}`, burger.ID))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, "POST", "/api/checkout", token, `{"mesa":99}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, r, "POST", "/api/checkout", token, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPIRejectsBadTokens(t *testing.T) {
	r, db := newTestServer(t)
	seedProduct(t, db, "Burger", "85.50")

	// no token
	rec := doJSON(t, r, "GET", "/api/products", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// unregistered key
	rec = doJSON(t, r, "GET", "/api/products", "abc123", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// wrong scheme
	req := httptest.NewRequest("GET", "/api/products", nil)
	req.Header.Set("Authorization", "Bearer abc123")
	raw := httptest.NewRecorder()
	r.ServeHTTP(raw, req)
	assert.Equal(t, http.StatusUnauthorized, raw.Code)
}

func TestLoginWrongMethod(t *testing.T) {
	r, _ := newTestServer(t)

	rec := doJSON(t, r, "GET", "/api/login", "", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRegisterValidation(t *testing.T) {
	r, _ := newTestServer(t)

	rec := doJSON(t, r, "POST", "/api/register", "", `{"email":"ana@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error"`)

	rec = doJSON(t, r, "POST", "/api/register", "",
		`{"first_name":"Ana","last_name":"Lopez","email":"ana@example.com","password":"secret"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, r, "POST", "/api/register", "",
		`{"first_name":"Ana","last_name":"Lopez","email":"ana@example.com","password":"secret"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductListingFiltersAndDetail(t *testing.T) {
	r, db := newTestServer(t)
	burger := seedProduct(t, db, "Burger", "85.50")
	soda := seedProduct(t, db, "Soda", "20.00")
	require.NoError(t, db.Model(&entity.Product{}).Where("id = ?", soda.ID).
		Update("status", entity.ProductOutOfStock).Error)

	token := registerAndLogin(t, r, "ana@example.com")

	rec := doJSON(t, r, "GET", "/api/products", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var products []struct {
		ID    uint        `json:"id"`
		Price float64     `json:"price"`
		Image interface{} `json:"image"`
	}
	decode(t, rec, &products)
	require.Len(t, products, 1)
	assert.Equal(t, burger.ID, products[0].ID)
	assert.Nil(t, products[0].Image, "missing image serializes as null")

	// detail works for out-of-stock too
	rec = doJSON(t, r, "GET", fmt.Sprintf("/api/products/%d", soda.ID), token, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, "GET", "/api/products/9999", token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func seedAdmin(t *testing.T, db *gorm.DB, key string) {
	t.Helper()
	admin := entity.User{Email: "admin@example.com", Password: "x", Role: entity.RoleAdmin}
	require.NoError(t, db.Create(&admin).Error)
	require.NoError(t, db.Create(&entity.ApiToken{UserID: admin.ID, Key: key}).Error)
}

func TestAdminSurfaceRequiresRole(t *testing.T) {
	r, _ := newTestServer(t)
	token := registerAndLogin(t, r, "ana@example.com")

	rec := doJSON(t, r, "GET", "/admin/dashboard", token, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminDeleteCustomerRevokesToken(t *testing.T) {
	r, db := newTestServer(t)
	adminKey := "0000111122223333444455556666777788889999"
	seedAdmin(t, db, adminKey)

	token := registerAndLogin(t, r, "ana@example.com")

	rec := doJSON(t, r, "GET", "/api/cart", token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var ana entity.User
	require.NoError(t, db.Where("email = ?", "ana@example.com").First(&ana).Error)

	rec = doJSON(t, r, "DELETE", fmt.Sprintf("/admin/customers/%d", ana.ID), adminKey, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// the deleted account's key no longer authenticates
	rec = doJSON(t, r, "GET", "/api/cart", token, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var tokenCount int64
	require.NoError(t, db.Unscoped().Model(&entity.ApiToken{}).
		Where("user_id = ?", ana.ID).Count(&tokenCount).Error)
	assert.Zero(t, tokenCount, "token row is removed with the account")
}

func TestAdminCannotDeleteAdminAccount(t *testing.T) {
	r, db := newTestServer(t)
	adminKey := "0000111122223333444455556666777788889999"
	seedAdmin(t, db, adminKey)

	var admin entity.User
	require.NoError(t, db.Where("role = ?", entity.RoleAdmin).First(&admin).Error)

	rec := doJSON(t, r, "DELETE", fmt.Sprintf("/admin/customers/%d", admin.ID), adminKey, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var count int64
	require.NoError(t, db.Model(&entity.User{}).Where("id = ?", admin.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count, "admin account survives")
}

func TestAdminCategoryList(t *testing.T) {
	r, db := newTestServer(t)
	adminKey := "0000111122223333444455556666777788889999"
	seedAdmin(t, db, adminKey)
	seedProduct(t, db, "Burger", "85.50")

	rec := doJSON(t, r, "GET", "/admin/categories", adminKey, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var cats []struct {
		Name string `json:"name"`
	}
	decode(t, rec, &cats)
	require.Len(t, cats, 1)
	assert.Equal(t, "Burger category", cats[0].Name)
}

func TestAdminTableToggleAndOrderStatus(t *testing.T) {
	r, db := newTestServer(t)
	adminKey := "0000111122223333444455556666777788889999"
	seedAdmin(t, db, adminKey)

	table := entity.Table{Number: 5}
	require.NoError(t, db.Create(&table).Error)

	rec := doJSON(t, r, "POST", fmt.Sprintf("/admin/tables/%d/toggle", table.ID), adminKey, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var toggled struct {
		Success  bool `json:"success"`
		Occupied bool `json:"occupied"`
	}
	decode(t, rec, &toggled)
	assert.True(t, toggled.Success)
	assert.True(t, toggled.Occupied)

	rec = doJSON(t, r, "POST", fmt.Sprintf("/admin/tables/%d/toggle", table.ID), adminKey, "")
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &toggled)
	assert.False(t, toggled.Occupied, "a toggle pair restores the original state")

	// order status flow
	user := entity.User{Email: "ana@example.com", Password: "x", Role: entity.RoleCustomer}
	require.NoError(t, db.Create(&user).Error)
	order := entity.Order{UserID: user.ID, Total: decimal.RequireFromString("10.00"), Status: entity.OrderActive}
	require.NoError(t, db.Create(&order).Error)

	rec = doJSON(t, r, "PATCH", fmt.Sprintf("/admin/orders/%d/status", order.ID), adminKey, `{"status":"ready"}`)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, r, "PATCH", fmt.Sprintf("/admin/orders/%d/status", order.ID), adminKey, `{"status":"cancelled"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
