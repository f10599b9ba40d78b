package orderControllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/molch4nov/e-flower-shop-sub000/database"
	"github.com/molch4nov/e-flower-shop-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedUserWithCart(t *testing.T, db *gorm.DB, products []models.Product, quantities []int) models.User {
	t.Helper()
	user := models.User{Email: uuid.NewString() + "@test.local", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)

	for i := range products {
		require.NoError(t, db.Create(&products[i]).Error)
		item := models.CartItem{UserID: user.ID, ProductID: products[i].ID, Quantity: quantities[i]}
		require.NoError(t, db.Create(&item).Error)
	}
	return user
}

func TestCreateOrder_Success(t *testing.T) {
	db := newTestDB(t)
	user := seedUserWithCart(t, db,
		[]models.Product{
			{Name: "Rose Bouquet", Price: 1500, Type: models.ProductTypeBouquet},
			{Name: "Tulip", Price: 90, Type: models.ProductTypeNormal},
		},
		[]int{1, 3},
	)

	order, err := CreateOrder(db, user.ID, CreateOrderRequest{DeliveryAddress: "Main St 1"})
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, models.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, "Main St 1", order.DeliveryAddress)
	assert.Equal(t, defaultPaymentMethod, order.PaymentMethod)
	assert.Equal(t, 1500.0+3*90.0, order.TotalPrice)
	assert.NotEmpty(t, order.OrderNumber)

	// Total equals the sum of its items.
	var items []models.OrderItem
	require.NoError(t, db.Where("order_id = ?", order.ID).Find(&items).Error)
	require.Len(t, items, 2)
	var sum float64
	for _, item := range items {
		sum += item.Price * float64(item.Quantity)
	}
	assert.Equal(t, order.TotalPrice, sum)

	// Cart is empty afterwards.
	var cartCount int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&cartCount).Error)
	assert.Zero(t, cartCount)

	// Purchase counters reflect the quantities.
	var rose models.Product
	require.NoError(t, db.First(&rose, "name = ?", "Rose Bouquet").Error)
	assert.Equal(t, 1, rose.PurchasesCount)
	var tulip models.Product
	require.NoError(t, db.First(&tulip, "name = ?", "Tulip").Error)
	assert.Equal(t, 3, tulip.PurchasesCount)
}

func TestCreateOrder_PriceIsSnapshot(t *testing.T) {
	db := newTestDB(t)
	user := seedUserWithCart(t, db,
		[]models.Product{{Name: "Peony", Price: 220}},
		[]int{2},
	)

	order, err := CreateOrder(db, user.ID, CreateOrderRequest{DeliveryAddress: "Main St 1"})
	require.NoError(t, err)

	// A later price change must not touch the historical order.
	require.NoError(t, db.Model(&models.Product{}).
		Where("name = ?", "Peony").Update("price", 999).Error)

	var item models.OrderItem
	require.NoError(t, db.First(&item, "order_id = ?", order.ID).Error)
	assert.Equal(t, 220.0, item.Price)

	var reloaded models.Order
	require.NoError(t, db.First(&reloaded, order.ID).Error)
	assert.Equal(t, 440.0, reloaded.TotalPrice)
}

func TestCreateOrder_EmptyCart(t *testing.T) {
	db := newTestDB(t)
	user := models.User{Email: "empty@test.local", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	product := models.Product{Name: "Rose", Price: 150}
	require.NoError(t, db.Create(&product).Error)

	order, err := CreateOrder(db, user.ID, CreateOrderRequest{DeliveryAddress: "Main St 1"})
	assert.Nil(t, order)
	assert.ErrorIs(t, err, ErrEmptyCart)

	var orderCount, itemCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	require.NoError(t, db.Model(&models.OrderItem{}).Count(&itemCount).Error)
	assert.Zero(t, orderCount)
	assert.Zero(t, itemCount)

	var reloaded models.Product
	require.NoError(t, db.First(&reloaded, product.ID).Error)
	assert.Zero(t, reloaded.PurchasesCount)
}

func TestCreateOrder_RollbackOnMidTransactionFailure(t *testing.T) {
	db := newTestDB(t)
	user := seedUserWithCart(t, db,
		[]models.Product{{Name: "Rose", Price: 150}},
		[]int{2},
	)

	// Fail the order-item insert, after the order row but before the cart
	// clear. Nothing may persist.
	err := db.Callback().Create().After("gorm:create").Register("fail_order_items", func(tx *gorm.DB) {
		if tx.Statement.Table == "order_items" {
			tx.AddError(errors.New("simulated insert failure"))
		}
	})
	require.NoError(t, err)

	order, err := CreateOrder(db, user.ID, CreateOrderRequest{DeliveryAddress: "Main St 1"})
	assert.Nil(t, order)
	assert.Error(t, err)

	var orderCount, itemCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	require.NoError(t, db.Model(&models.OrderItem{}).Count(&itemCount).Error)
	assert.Zero(t, orderCount, "order row must be rolled back")
	assert.Zero(t, itemCount, "order items must be rolled back")

	var cartCount int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&cartCount).Error)
	assert.Equal(t, int64(1), cartCount, "cart must retain its rows")

	var product models.Product
	require.NoError(t, db.First(&product, "name = ?", "Rose").Error)
	assert.Zero(t, product.PurchasesCount, "purchase counter must be rolled back")
}

func TestCancelOrder_Guard(t *testing.T) {
	tests := []struct {
		name        string
		status      models.OrderStatus
		expectError error
	}{
		{name: "pending order can be cancelled", status: models.OrderStatusPending},
		{name: "processing order cannot", status: models.OrderStatusProcessing, expectError: ErrCannotCancel},
		{name: "shipped order cannot", status: models.OrderStatusShipped, expectError: ErrCannotCancel},
		{name: "delivered order cannot", status: models.OrderStatusDelivered, expectError: ErrCannotCancel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newTestDB(t)
			user := models.User{Email: uuid.NewString() + "@test.local", PasswordHash: "x"}
			require.NoError(t, db.Create(&user).Error)
			order := models.Order{
				UserID:          user.ID,
				OrderNumber:     generateOrderNumber(),
				TotalPrice:      100,
				DeliveryAddress: "Main St 1",
				Status:          tt.status,
			}
			require.NoError(t, db.Create(&order).Error)

			result, err := CancelOrder(db, user.ID, order.ID)
			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				var reloaded models.Order
				require.NoError(t, db.First(&reloaded, order.ID).Error)
				assert.Equal(t, tt.status, reloaded.Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, models.OrderStatusCancelled, result.Status)
		})
	}
}

func TestCancelOrder_NotOwned(t *testing.T) {
	db := newTestDB(t)
	owner := models.User{Email: "owner@test.local", PasswordHash: "x"}
	require.NoError(t, db.Create(&owner).Error)
	other := models.User{Email: "other@test.local", PasswordHash: "x"}
	require.NoError(t, db.Create(&other).Error)

	order := models.Order{
		UserID:          owner.ID,
		OrderNumber:     generateOrderNumber(),
		DeliveryAddress: "Main St 1",
		Status:          models.OrderStatusPending,
	}
	require.NoError(t, db.Create(&order).Error)

	_, err := CancelOrder(db, other.ID, order.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateStatus_AllowList(t *testing.T) {
	db := newTestDB(t)
	user := models.User{Email: "status@test.local", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	order := models.Order{
		UserID:          user.ID,
		OrderNumber:     generateOrderNumber(),
		DeliveryAddress: "Main St 1",
		Status:          models.OrderStatusPending,
	}
	require.NoError(t, db.Create(&order).Error)

	_, err := UpdateStatus(db, order.ID, "packed") // not in the allow-list
	assert.EqualError(t, err, "invalid order status")

	updated, err := UpdateStatus(db, order.ID, "processing")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusProcessing, updated.Status)

	// Terminal orders stay put.
	_, err = UpdateStatus(db, order.ID, "delivered")
	require.NoError(t, err)
	_, err = UpdateStatus(db, order.ID, "pending")
	assert.Error(t, err)
}

func TestCreateOrderHandler_SingleItemCheckout(t *testing.T) {
	db := newTestDB(t)
	user := seedUserWithCart(t, db,
		[]models.Product{{Name: "Rose Bouquet", Price: 1500, Type: models.ProductTypeBouquet}},
		[]int{1},
	)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/orders", func(c *gin.Context) {
		c.Set("user_id", user.ID)
	}, CreateOrderHandler(db))

	body := strings.NewReader(`{"delivery_address":"Main St 1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/orders", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"total_price":1500`)
	assert.Contains(t, w.Body.String(), `"status":"pending"`)

	var cartCount int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&cartCount).Error)
	assert.Zero(t, cartCount)
}

func TestCreateOrderHandler_EmptyCartResponse(t *testing.T) {
	db := newTestDB(t)
	user := models.User{Email: "http@test.local", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/orders", func(c *gin.Context) {
		c.Set("user_id", user.ID)
	}, CreateOrderHandler(db))

	body := strings.NewReader(`{"delivery_address":"Main St 1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/orders", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Корзина пуста, невозможно создать заказ")
}
