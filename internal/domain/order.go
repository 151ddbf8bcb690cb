package domain

import "time"

// Order status constants
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusCancelled = "cancelled"
)

// Order is an immutable snapshot of a cart taken at checkout.
type Order struct {
	ID          string     `json:"_id" db:"id"`
	UserID      string     `json:"userId" db:"user_id"`
	Items       []CartItem `json:"items"`
	TotalAmount float64    `json:"totalAmount" db:"total_amount"`
	Status      string     `json:"status" db:"status"`
	Notes       string     `json:"notes,omitempty" db:"notes"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
}
