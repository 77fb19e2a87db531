package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"smart-restaurant/models"
	"smart-restaurant/pkg/logger"
)

type PaymentRepositoryInterface interface {
	Create(ctx context.Context, record *models.PaymentRecord) (string, error)
	GetByOrderID(ctx context.Context, orderID string) (*models.PaymentRecord, error)
	SetOutcome(ctx context.Context, id string, status models.PaymentRecordStatus, transactionID string) (bool, error)
}

type PaymentRepository struct {
	logger *logger.Logger
	docs   DocumentStoreInterface
}

func NewPaymentRepository(log *logger.Logger, docs DocumentStoreInterface) *PaymentRepository {
	return &PaymentRepository{
		logger: log.WithComponent("payment_repository"),
		docs:   docs,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, record *models.PaymentRecord) (string, error) {
	id, err := r.docs.Create(ctx, CollectionPayments, record)
	if err != nil {
		return "", err
	}
	r.logger.Info("Created payment record",
		"id", id,
		"order_id", record.OrderID,
		"amount", record.Amount,
		"provider", record.Provider)
	return id, nil
}

// GetByOrderID returns the payment record for an order, ErrNotFound when
// the order has none (cash orders never get one).
func (r *PaymentRepository) GetByOrderID(ctx context.Context, orderID string) (*models.PaymentRecord, error) {
	docs, err := r.docs.List(ctx, CollectionPayments, bson.M{"order_id": orderID}, &ListOptions{Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("payment record for order %s: %w", orderID, models.ErrNotFound)
	}

	record := &models.PaymentRecord{}
	if err := decodeDocument(docs[0], record); err != nil {
		return nil, fmt.Errorf("failed to decode payment record: %w", err)
	}
	return record, nil
}

func (r *PaymentRepository) SetOutcome(ctx context.Context, id string, status models.PaymentRecordStatus, transactionID string) (bool, error) {
	partial := bson.M{"status": status}
	if transactionID != "" {
		partial["transaction_id"] = transactionID
	}

	found, err := r.docs.Update(ctx, CollectionPayments, id, partial)
	if err != nil {
		return false, err
	}
	if found {
		r.logger.Info("Updated payment record outcome", "id", id, "status", status)
	}
	return found, nil
}
