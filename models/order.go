package models

import "time"

type OrderStatus string

const (
	// Order statuses, in lifecycle order.
	OrderStatusPending   OrderStatus = "pending"   // Order placed, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // Confirmed by the bookshop
	OrderStatusShipped   OrderStatus = "shipped"   // Out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // Customer received the books
)

// StatusSequence is the ordered lifecycle used by order tracking.
var StatusSequence = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusShipped,
	OrderStatusDelivered,
}

// StatusIndex returns the position of s in the lifecycle, or -1 if s is not
// a known status.
func StatusIndex(s OrderStatus) int {
	for i, st := range StatusSequence {
		if st == s {
			return i
		}
	}
	return -1
}

type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	OrderNumber     string      `gorm:"uniqueIndex;not null" json:"order_number"`
	CustomerName    string      `gorm:"not null" json:"customer_name"`
	CustomerEmail   string      `gorm:"not null" json:"customer_email"`
	CustomerPhone   string      `gorm:"not null" json:"customer_phone"`
	CustomerAddress string      `gorm:"not null" json:"customer_address"`
	Notes           string      `json:"notes"`
	PaymentMethod   string      `gorm:"default:'cod'" json:"payment_method"`
	TotalAmount     float64     `json:"total_amount"`
	Status          OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	Items           []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// OrderItem carries a snapshot of the product's titles and price at purchase
// time, so tracking keeps showing them even if the catalog changes.
type OrderItem struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	OrderID        uint    `gorm:"index" json:"order_id"`
	ProductID      uint    `json:"product_id"`
	ProductTitle   string  `json:"product_title"`
	ProductTitleAR string  `json:"product_title_ar"`
	Quantity       int     `json:"quantity"`
	UnitPrice      float64 `json:"unit_price"`
	TotalPrice     float64 `json:"total_price"` // unit_price * quantity
}
