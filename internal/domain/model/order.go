package model

import "time"

// Fulfillment lifecycle. Any status is reachable from any status; there is
// no transition table.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Payment lifecycle, owned by the gateway side.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusRejected PaymentStatus = "rejected"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// TotalAmount is fixed at checkout time and never recomputed from live
// product prices.
type Order struct {
	ID                  int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID              int64         `gorm:"not null;index" json:"user_id"`
	CustomerName        string        `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerEmail       string        `gorm:"type:varchar(255);not null" json:"customer_email"`
	CustomerPhone       string        `gorm:"type:varchar(30);not null" json:"customer_phone"`
	ShippingAddress     string        `gorm:"type:text;not null" json:"shipping_address"`
	TotalAmount         int64         `gorm:"not null" json:"total_amount"`
	Status              OrderStatus   `gorm:"type:varchar(20);not null;index" json:"status"`
	PaymentStatus       PaymentStatus `gorm:"type:varchar(20);not null" json:"payment_status"`
	PaymentPreferenceID string        `gorm:"type:varchar(255)" json:"payment_preference_id"`
	CreatedAt           time.Time     `gorm:"not null;autoCreateTime;index" json:"created_at"`
	UpdatedAt           time.Time     `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
