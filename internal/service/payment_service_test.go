package service

import (
	"context"
	"errors"
	"testing"

	"smart-restaurant/models"
)

func seedOnlineOrder(t *testing.T, orderRepo *fakeOrderRepo, paymentRepo *fakePaymentRepo, amount float64) string {
	t.Helper()
	orderID, err := orderRepo.Create(context.Background(), &models.Order{
		TableID:       "t1",
		Subtotal:      amount,
		PaymentMethod: models.PaymentMethodOnline,
		Status:        models.OrderStatusPending,
		PaymentStatus: models.PaymentStatusPending,
	})
	if err != nil {
		t.Fatalf("seed order: %v", err)
	}
	_, err = paymentRepo.Create(context.Background(), &models.PaymentRecord{
		OrderID:  orderID,
		Provider: models.ProviderMock,
		Amount:   amount,
		Currency: "INR",
		Status:   models.PaymentRecordPending,
	})
	if err != nil {
		t.Fatalf("seed payment record: %v", err)
	}
	return orderID
}

func TestConfirmMockPayment_Succeeded(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	paymentRepo := newFakePaymentRepo()
	orderID := seedOnlineOrder(t, orderRepo, paymentRepo, 315.50)

	svc := NewPaymentService(orderRepo, paymentRepo, testLogger())

	status, err := svc.ConfirmMockPayment(context.Background(), orderID, OutcomeSucceeded)
	if err != nil {
		t.Fatalf("ConfirmMockPayment() error = %v", err)
	}
	if status != models.PaymentStatusPaid {
		t.Errorf("returned status = %q, want paid", status)
	}

	order, _ := orderRepo.GetByID(context.Background(), orderID)
	if order.PaymentStatus != models.PaymentStatusPaid {
		t.Errorf("order payment_status = %q, want paid", order.PaymentStatus)
	}

	record, err := paymentRepo.GetByOrderID(context.Background(), orderID)
	if err != nil {
		t.Fatalf("payment record lookup: %v", err)
	}
	if record.Status != models.PaymentRecordSucceeded {
		t.Errorf("record status = %q, want succeeded", record.Status)
	}
	if record.TransactionID == "" {
		t.Error("success should assign a transaction id")
	}
}

func TestConfirmMockPayment_Failed(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	paymentRepo := newFakePaymentRepo()
	orderID := seedOnlineOrder(t, orderRepo, paymentRepo, 80.00)

	svc := NewPaymentService(orderRepo, paymentRepo, testLogger())

	status, err := svc.ConfirmMockPayment(context.Background(), orderID, OutcomeFailed)
	if err != nil {
		t.Fatalf("ConfirmMockPayment() error = %v", err)
	}
	if status != models.PaymentStatusFailed {
		t.Errorf("returned status = %q, want failed", status)
	}

	order, _ := orderRepo.GetByID(context.Background(), orderID)
	if order.PaymentStatus != models.PaymentStatusFailed {
		t.Errorf("order payment_status = %q, want failed", order.PaymentStatus)
	}

	record, _ := paymentRepo.GetByOrderID(context.Background(), orderID)
	if record.Status != models.PaymentRecordFailed {
		t.Errorf("record status = %q, want failed", record.Status)
	}
	if record.TransactionID != "" {
		t.Errorf("failed outcome should not assign a transaction id, got %q", record.TransactionID)
	}
}

func TestConfirmMockPayment_RepeatKeepsTransactionID(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	paymentRepo := newFakePaymentRepo()
	orderID := seedOnlineOrder(t, orderRepo, paymentRepo, 50.00)

	svc := NewPaymentService(orderRepo, paymentRepo, testLogger())

	if _, err := svc.ConfirmMockPayment(context.Background(), orderID, OutcomeSucceeded); err != nil {
		t.Fatalf("first confirm: %v", err)
	}
	record, _ := paymentRepo.GetByOrderID(context.Background(), orderID)
	first := record.TransactionID

	if _, err := svc.ConfirmMockPayment(context.Background(), orderID, OutcomeSucceeded); err != nil {
		t.Fatalf("second confirm: %v", err)
	}
	record, _ = paymentRepo.GetByOrderID(context.Background(), orderID)
	if record.TransactionID != first {
		t.Errorf("repeat changed transaction id: %q -> %q", first, record.TransactionID)
	}
	order, _ := orderRepo.GetByID(context.Background(), orderID)
	if order.PaymentStatus != models.PaymentStatusPaid {
		t.Errorf("payment_status after repeat = %q, want paid", order.PaymentStatus)
	}
}

func TestConfirmMockPayment_CashOrderWithoutRecord(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	paymentRepo := newFakePaymentRepo()
	orderID, _ := orderRepo.Create(context.Background(), &models.Order{
		TableID:       "t2",
		PaymentMethod: models.PaymentMethodCash,
		Status:        models.OrderStatusPending,
		PaymentStatus: models.PaymentStatusUnpaid,
	})

	svc := NewPaymentService(orderRepo, paymentRepo, testLogger())

	status, err := svc.ConfirmMockPayment(context.Background(), orderID, OutcomeSucceeded)
	if err != nil {
		t.Fatalf("ConfirmMockPayment() error = %v", err)
	}
	if status != models.PaymentStatusPaid {
		t.Errorf("returned status = %q, want paid", status)
	}
	order, _ := orderRepo.GetByID(context.Background(), orderID)
	if order.PaymentStatus != models.PaymentStatusPaid {
		t.Errorf("order payment_status = %q, want paid", order.PaymentStatus)
	}
}

func TestConfirmMockPayment_Errors(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	paymentRepo := newFakePaymentRepo()
	orderID := seedOnlineOrder(t, orderRepo, paymentRepo, 20.00)

	svc := NewPaymentService(orderRepo, paymentRepo, testLogger())

	if _, err := svc.ConfirmMockPayment(context.Background(), "missing", OutcomeSucceeded); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("unknown order error = %v, want ErrNotFound", err)
	}

	var validation *models.ValidationError
	if _, err := svc.ConfirmMockPayment(context.Background(), orderID, "approved"); !errors.As(err, &validation) {
		t.Errorf("bad outcome error = %v, want ValidationError", err)
	}
}
