package models

import "time"

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "Pending" // intent created, payment not confirmed
	OrderStatusPaid    OrderStatus = "Paid"    // payment verified, order committed
	OrderStatusFailed  OrderStatus = "Failed"  // payment attempt failed
)

type Order struct {
	ID     uint        `gorm:"primaryKey" json:"id"`
	UserID string      `gorm:"index;not null" json:"user_id"`
	Items  []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`

	// RazorpayOrderID is the gateway order reference. The unique index is
	// the idempotency guard for payment verification: at most one order per
	// gateway reference, enforced by the database.
	RazorpayOrderID   string `gorm:"uniqueIndex;not null" json:"razorpay_order_id"`
	RazorpayPaymentID string `gorm:"not null" json:"razorpay_payment_id"`

	AmountPaid float64     `gorm:"not null" json:"amount_paid"`
	Status     OrderStatus `gorm:"type:VARCHAR(20);default:'Pending'" json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// OrderItem is copied by value from the cart at commit time, never a live
// reference to a cart row.
type OrderItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	OrderID     uint    `gorm:"index" json:"order_id"`
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
}
