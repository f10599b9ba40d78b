package models

import "time"

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending    OrderStatus = "pending"    // placed, not yet taken into work
	OrderStatusProcessing OrderStatus = "processing" // florist assembling
	OrderStatusShipped    OrderStatus = "shipped"    // courier on the way
	OrderStatusDelivered  OrderStatus = "delivered"  // terminal
	OrderStatusCancelled  OrderStatus = "cancelled"  // terminal

	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Terminal reports whether no further status transition is possible.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

type Order struct {
	ID              uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          uint          `gorm:"not null;index" json:"user_id"`
	OrderNumber     string        `gorm:"uniqueIndex;not null" json:"order_number"`
	Items           []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalPrice      float64       `gorm:"not null" json:"total_price"`
	DeliveryAddress string        `gorm:"not null" json:"delivery_address"`
	DeliveryDate    string        `json:"delivery_date"`
	DeliveryTime    string        `json:"delivery_time"`
	Status          OrderStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentMethod   string        `json:"payment_method"`
	PaymentStatus   PaymentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`
	Notes           string        `json:"notes"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// OrderItem carries a snapshot of the product's name and price taken at
// checkout. Later product edits must not change historical orders.
type OrderItem struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID     uint    `gorm:"not null;index" json:"order_id"`
	ProductID   uint    `gorm:"not null" json:"product_id"`
	ProductName string  `gorm:"not null" json:"product_name"`
	Quantity    int     `gorm:"not null" json:"quantity"`
	Price       float64 `gorm:"not null" json:"price"`
}
