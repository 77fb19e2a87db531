package models

import "time"

type PaymentProvider string

const (
	ProviderMock     PaymentProvider = "mock"
	ProviderRazorpay PaymentProvider = "razorpay"
	ProviderStripe   PaymentProvider = "stripe"
	ProviderPaytm    PaymentProvider = "paytm"
)

type PaymentRecordStatus string

const (
	PaymentRecordCreated   PaymentRecordStatus = "created"
	PaymentRecordPending   PaymentRecordStatus = "pending"
	PaymentRecordSucceeded PaymentRecordStatus = "succeeded"
	PaymentRecordFailed    PaymentRecordStatus = "failed"
)

// PaymentRecord tracks one payment attempt for an order. Only "online"
// orders get one; the amount is fixed to the order subtotal at creation.
type PaymentRecord struct {
	ID            string              `json:"id" bson:"_id,omitempty"`
	OrderID       string              `json:"order_id" bson:"order_id"`
	Provider      PaymentProvider     `json:"provider" bson:"provider"`
	Amount        float64             `json:"amount" bson:"amount"`
	Currency      string              `json:"currency" bson:"currency"`
	Status        PaymentRecordStatus `json:"status" bson:"status"`
	TransactionID string              `json:"transaction_id,omitempty" bson:"transaction_id,omitempty"`
	Metadata      map[string]string   `json:"metadata,omitempty" bson:"metadata,omitempty"`
	CreatedAt     time.Time           `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt     time.Time           `json:"updated_at" bson:"updated_at,omitempty"`
}
