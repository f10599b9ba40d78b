package orderControllers

import (
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/molch4nov/e-flower-shop-sub000/middleware"
	"github.com/molch4nov/e-flower-shop-sub000/models"
	"gorm.io/gorm"
)

// ErrEmptyCart carries the storefront's user-facing message verbatim.
var (
	ErrEmptyCart    = errors.New("Корзина пуста, невозможно создать заказ")
	ErrCannotCancel = errors.New("cannot cancel: already in progress")
)

const defaultPaymentMethod = "cash"

// -------- Request Structs --------

type CreateOrderRequest struct {
	DeliveryAddress string `json:"delivery_address" binding:"required"`
	DeliveryDate    string `json:"delivery_date"`
	DeliveryTime    string `json:"delivery_time"`
	PaymentMethod   string `json:"payment_method"`
	Notes           string `json:"notes"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

// -------- Helpers --------

// mapOrderStatus validates an admin-supplied status against the allow-list.
func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusProcessing):
		return models.OrderStatusProcessing, nil
	case string(models.OrderStatusShipped):
		return models.OrderStatusShipped, nil
	case string(models.OrderStatusDelivered):
		return models.OrderStatusDelivered, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

func mapPaymentStatus(status string) (models.PaymentStatus, error) {
	switch strings.ToLower(status) {
	case string(models.PaymentStatusPending):
		return models.PaymentStatusPending, nil
	case string(models.PaymentStatusPaid):
		return models.PaymentStatusPaid, nil
	case string(models.PaymentStatusFailed):
		return models.PaymentStatusFailed, nil
	case string(models.PaymentStatusRefunded):
		return models.PaymentStatusRefunded, nil
	default:
		return "", errors.New("invalid payment status")
	}
}

// generateOrderNumber returns "<epoch_ms>-<0..999>". Not collision-proof; the
// unique index on orders.order_number turns a collision into a rolled-back
// transaction the client can retry.
func generateOrderNumber() string {
	return fmt.Sprintf("%d-%d", time.Now().UnixMilli(), rand.Intn(1000))
}

// -------- Core Logic --------

// CreateOrder converts the user's cart into an order inside one transaction:
// snapshot prices into order items, bump purchase counters, clear the cart.
// An empty cart is rejected before the transaction opens.
func CreateOrder(db *gorm.DB, userID uint, req CreateOrderRequest) (*models.Order, error) {
	var items []models.CartItem
	if err := db.Preload("Product").Where("user_id = ?", userID).Find(&items).Error; err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = defaultPaymentMethod
	}

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var total float64
		for _, item := range items {
			total += item.Product.Price * float64(item.Quantity)
		}

		order = models.Order{
			UserID:          userID,
			OrderNumber:     generateOrderNumber(),
			TotalPrice:      total,
			DeliveryAddress: req.DeliveryAddress,
			DeliveryDate:    req.DeliveryDate,
			DeliveryTime:    req.DeliveryTime,
			Status:          models.OrderStatusPending,
			PaymentMethod:   paymentMethod,
			PaymentStatus:   models.PaymentStatusPending,
			Notes:           req.Notes,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, item := range items {
			orderItem := models.OrderItem{
				OrderID:     order.ID,
				ProductID:   item.ProductID,
				ProductName: item.Product.Name,
				Quantity:    item.Quantity,
				Price:       item.Product.Price, // snapshot, not a live reference
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}
			order.Items = append(order.Items, orderItem)

			if err := tx.Model(&models.Product{}).
				Where("id = ?", item.ProductID).
				UpdateColumn("purchases_count", gorm.Expr("purchases_count + ?", item.Quantity)).Error; err != nil {
				return err
			}
		}

		return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// CancelOrder lets a user cancel their own order while it is still pending.
func CancelOrder(db *gorm.DB, userID uint, orderID uint) (*models.Order, error) {
	var order models.Order
	if err := db.Preload("Items").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order).Error; err != nil {
		return nil, err
	}

	if order.Status != models.OrderStatusPending {
		return nil, ErrCannotCancel
	}

	if err := db.Model(&order).Update("status", models.OrderStatusCancelled).Error; err != nil {
		return nil, err
	}
	order.Status = models.OrderStatusCancelled
	return &order, nil
}

// UpdateStatus applies an admin status change; terminal orders stay put.
func UpdateStatus(db *gorm.DB, orderID uint, status string) (*models.Order, error) {
	newStatus, err := mapOrderStatus(status)
	if err != nil {
		return nil, err
	}

	var order models.Order
	if err := db.Preload("Items").First(&order, orderID).Error; err != nil {
		return nil, err
	}
	if order.Status.Terminal() && newStatus != order.Status {
		return nil, fmt.Errorf("order is already %s", order.Status)
	}

	if err := db.Model(&order).Update("status", newStatus).Error; err != nil {
		return nil, err
	}
	order.Status = newStatus
	return &order, nil
}

// -------- Handlers --------

// POST /api/orders
func CreateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := CreateOrder(db, userID, req)
		if err != nil {
			if errors.Is(err, ErrEmptyCart) {
				c.JSON(http.StatusBadRequest, gin.H{"error": ErrEmptyCart.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}

		broadcastNewOrder(*order)
		c.JSON(http.StatusCreated, order)
	}
}

// GET /api/orders
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.UserID(c)

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /api/orders/:id
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.UserID(c)

		var order models.Order
		if err := db.
			Preload("Items").
			Where("id = ? AND user_id = ?", c.Param("id"), userID).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// POST /api/orders/:id/cancel
func CancelOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.UserID(c)

		var orderID uint
		if _, err := fmt.Sscan(c.Param("id"), &orderID); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}

		order, err := CancelOrder(db, userID, orderID)
		if err != nil {
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			case errors.Is(err, ErrCannotCancel):
				c.JSON(http.StatusBadRequest, gin.H{"error": ErrCannotCancel.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel order"})
			}
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GET /api/orders/admin
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// PUT /api/orders/admin/:id/status
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orderID uint
		if _, err := fmt.Sscan(c.Param("id"), &orderID); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
			return
		}

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := UpdateStatus(db, orderID, req.Status)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PUT /api/orders/admin/:id/payment
func UpdatePaymentStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("id")

		var req UpdatePaymentStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapPaymentStatus(req.PaymentStatus)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		if err := db.Model(&order).Update("payment_status", newStatus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update payment status"})
			return
		}
		order.PaymentStatus = newStatus
		c.JSON(http.StatusOK, order)
	}
}
