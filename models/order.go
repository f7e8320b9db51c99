package models

import "time"

// Order is written once when a payment succeeds and never mutated afterwards.
type Order struct {
	ID            uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	BuyerID       uint        `gorm:"index;not null" json:"buyer_id"`
	Buyer         User        `gorm:"foreignKey:BuyerID" json:"buyer"`
	Items         []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	PaymentRef    string      `json:"payment_ref"` // processor transaction id
	PaymentStatus string      `json:"payment_status"`
	TotalAmount   float64     `json:"total_amount"`
	CreatedAt     time.Time   `json:"created_at"`
}

// OrderItem snapshots a cart line at purchase time; later product edits
// must not rewrite order history.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"index" json:"order_id"`
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}
