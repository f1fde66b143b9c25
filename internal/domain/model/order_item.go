package model

import "time"

// ProductName and PriceAtPurchase are snapshots taken at checkout so order
// history survives later catalog edits and deletions.
type OrderItem struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID         int64     `gorm:"not null;index" json:"order_id"`
	ProductID       int64     `gorm:"not null;index" json:"product_id"`
	ProductName     string    `gorm:"type:varchar(255);not null" json:"product_name"`
	Quantity        int64     `gorm:"not null" json:"quantity"`
	PriceAtPurchase int64     `gorm:"not null" json:"price_at_purchase"`
	CreatedAt       time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
