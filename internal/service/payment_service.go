package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"smart-restaurant/internal/repositories"
	"smart-restaurant/models"
	"smart-restaurant/pkg/logger"
)

// Payment outcomes accepted by the mock confirmation endpoint.
const (
	OutcomeSucceeded = "succeeded"
	OutcomeFailed    = "failed"
)

type PaymentServiceInterface interface {
	ConfirmMockPayment(ctx context.Context, orderID, outcome string) (models.PaymentStatus, error)
}

type PaymentService struct {
	orderRepo   repositories.OrderRepositoryInterface
	paymentRepo repositories.PaymentRepositoryInterface
	logger      *logger.Logger
}

func NewPaymentService(orderRepo repositories.OrderRepositoryInterface, paymentRepo repositories.PaymentRepositoryInterface, log *logger.Logger) *PaymentService {
	return &PaymentService{
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		logger:      log.WithComponent("payment_service"),
	}
}

// ConfirmMockPayment records a mock payment outcome against the order.
// The transition is unconditional: neither the order's payment method nor
// its current payment status is checked, so repeats are idempotent in
// effect. The order's payment record, when one exists, gets the outcome
// and a generated transaction id on success.
func (s *PaymentService) ConfirmMockPayment(ctx context.Context, orderID, outcome string) (models.PaymentStatus, error) {
	if outcome != OutcomeSucceeded && outcome != OutcomeFailed {
		return "", models.NewValidationError("status must be %q or %q", OutcomeSucceeded, OutcomeFailed)
	}

	// Existence check before the unconditional write.
	if _, err := s.orderRepo.GetByID(ctx, orderID); err != nil {
		return "", err
	}

	paymentStatus := models.PaymentStatusPaid
	recordStatus := models.PaymentRecordSucceeded
	if outcome == OutcomeFailed {
		paymentStatus = models.PaymentStatusFailed
		recordStatus = models.PaymentRecordFailed
	}

	if _, err := s.orderRepo.SetPaymentStatus(ctx, orderID, paymentStatus); err != nil {
		s.logger.Error("Failed to update order payment status", "order_id", orderID, "error", err)
		return "", err
	}

	// Cash orders have no payment record; everything else keeps the mock
	// provider's view in sync with the order.
	record, err := s.paymentRepo.GetByOrderID(ctx, orderID)
	switch {
	case err == nil:
		transactionID := record.TransactionID
		if recordStatus == models.PaymentRecordSucceeded && transactionID == "" {
			transactionID = uuid.NewString()
		}
		if _, err := s.paymentRepo.SetOutcome(ctx, record.ID, recordStatus, transactionID); err != nil {
			s.logger.Error("Failed to update payment record", "order_id", orderID, "error", err)
			return "", err
		}
	case errors.Is(err, models.ErrNotFound):
		s.logger.Debug("No payment record for order", "order_id", orderID)
	default:
		s.logger.Error("Failed to load payment record", "order_id", orderID, "error", err)
		return "", err
	}

	s.logger.Info("Mock payment confirmed",
		"order_id", orderID,
		"outcome", outcome,
		"payment_status", paymentStatus)
	return paymentStatus, nil
}
