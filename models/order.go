package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusServed    OrderStatus = "served"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is one of the five known order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusServed,
		OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "unpaid"
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

type PaymentMethod string

const (
	PaymentMethodOnline PaymentMethod = "online"
	PaymentMethodCash   PaymentMethod = "cash"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodOnline || m == PaymentMethodCash
}

// OrderItem is a priced snapshot of one menu item line. Name, price and
// line total are copied from the menu at order time and never re-derived.
type OrderItem struct {
	ItemID    string  `json:"item_id" bson:"item_id"`
	Name      string  `json:"name" bson:"name"`
	Price     float64 `json:"price" bson:"price"`
	Quantity  int     `json:"quantity" bson:"quantity"`
	LineTotal float64 `json:"line_total" bson:"line_total"`
}

type Order struct {
	ID            string        `json:"id" bson:"_id,omitempty"`
	TableID       string        `json:"table_id" bson:"table_id"`
	Items         []OrderItem   `json:"items" bson:"items"`
	Subtotal      float64       `json:"subtotal" bson:"subtotal"`
	PaymentMethod PaymentMethod `json:"payment_method" bson:"payment_method"`
	Status        OrderStatus   `json:"status" bson:"status"`
	PaymentStatus PaymentStatus `json:"payment_status" bson:"payment_status"`
	Notes         string        `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt     time.Time     `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt     time.Time     `json:"updated_at" bson:"updated_at,omitempty"`
}
