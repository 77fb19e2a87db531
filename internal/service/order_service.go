package service

import (
	"context"
	"fmt"
	"math"

	"smart-restaurant/internal/repositories"
	"smart-restaurant/models"
	"smart-restaurant/pkg/logger"
)

type CreateOrderRequest struct {
	TableID       string               `json:"table_id"`
	Items         []OrderItemRequest   `json:"items"`
	PaymentMethod models.PaymentMethod `json:"payment_method"`
	Notes         string               `json:"notes,omitempty"`
}

type OrderItemRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

type CreateOrderResponse struct {
	OrderID  string                `json:"order_id"`
	Subtotal float64               `json:"subtotal"`
	Payment  *models.PaymentRecord `json:"payment"`
}

type OrderServiceInterface interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*CreateOrderResponse, error)
	GetOrderByID(ctx context.Context, id string) (*models.Order, error)
	ListOrders(ctx context.Context, tableID string, limit int64) ([]*models.Order, error)
	SetOrderStatus(ctx context.Context, id string, status models.OrderStatus) error
}

type OrderService struct {
	orderRepo   repositories.OrderRepositoryInterface
	menuRepo    repositories.MenuRepositoryInterface
	paymentRepo repositories.PaymentRepositoryInterface
	logger      *logger.Logger
}

func NewOrderService(orderRepo repositories.OrderRepositoryInterface, menuRepo repositories.MenuRepositoryInterface, paymentRepo repositories.PaymentRepositoryInterface, log *logger.Logger) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		menuRepo:    menuRepo,
		paymentRepo: paymentRepo,
		logger:      log.WithComponent("order_service"),
	}
}

// CreateOrder prices the requested items against the current menu, persists
// the order, and for online payment persists a pending mock payment record.
// Prices come from the store, never from the client; any item id that does
// not resolve aborts the whole operation before anything is written.
func (s *OrderService) CreateOrder(ctx context.Context, req CreateOrderRequest) (*CreateOrderResponse, error) {
	if err := s.validateCreateOrder(req); err != nil {
		s.logger.Warn("Rejected order request", "table_id", req.TableID, "error", err)
		return nil, err
	}

	// One query for every distinct item referenced by the request.
	distinct := distinctItemIDs(req.Items)
	menuItems, err := s.menuRepo.GetByIDs(ctx, distinct)
	if err != nil {
		s.logger.Error("Failed to resolve menu items", "error", err)
		return nil, err
	}

	prices := make(map[string]float64, len(menuItems))
	names := make(map[string]string, len(menuItems))
	for _, item := range menuItems {
		prices[item.ID] = item.Price
		names[item.ID] = item.Name
	}

	lines := make([]models.OrderItem, 0, len(req.Items))
	var subtotal float64
	for _, it := range req.Items {
		price, ok := prices[it.ItemID]
		if !ok {
			s.logger.Warn("Order references unknown menu item", "item_id", it.ItemID)
			return nil, &models.InvalidItemError{ItemID: it.ItemID}
		}

		lineTotal := roundCurrency(price * float64(it.Quantity))
		subtotal += lineTotal
		lines = append(lines, models.OrderItem{
			ItemID:    it.ItemID,
			Name:      names[it.ItemID],
			Price:     price,
			Quantity:  it.Quantity,
			LineTotal: lineTotal,
		})
	}
	subtotal = roundCurrency(subtotal)

	paymentStatus := models.PaymentStatusUnpaid
	if req.PaymentMethod == models.PaymentMethodOnline {
		paymentStatus = models.PaymentStatusPending
	}

	order := &models.Order{
		TableID:       req.TableID,
		Items:         lines,
		Subtotal:      subtotal,
		PaymentMethod: req.PaymentMethod,
		Status:        models.OrderStatusPending,
		PaymentStatus: paymentStatus,
		Notes:         req.Notes,
	}

	orderID, err := s.orderRepo.Create(ctx, order)
	if err != nil {
		s.logger.Error("Failed to persist order", "table_id", req.TableID, "error", err)
		return nil, err
	}

	resp := &CreateOrderResponse{OrderID: orderID, Subtotal: subtotal}

	if req.PaymentMethod == models.PaymentMethodOnline {
		record := &models.PaymentRecord{
			OrderID:  orderID,
			Provider: models.ProviderMock,
			Amount:   subtotal,
			Currency: "INR",
			Status:   models.PaymentRecordPending,
		}

		// TODO: wrap the order and payment inserts in a session transaction
		// once the deployment runs a replica set; a failure here leaves an
		// online order without its payment record.
		paymentID, err := s.paymentRepo.Create(ctx, record)
		if err != nil {
			s.logger.Error("Failed to persist payment record", "order_id", orderID, "error", err)
			return nil, err
		}
		record.ID = paymentID
		resp.Payment = record
	}

	s.logger.Info("Created order",
		"order_id", orderID,
		"table_id", req.TableID,
		"items", len(lines),
		"subtotal", subtotal,
		"payment_method", req.PaymentMethod)
	return resp, nil
}

func (s *OrderService) GetOrderByID(ctx context.Context, id string) (*models.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

func (s *OrderService) ListOrders(ctx context.Context, tableID string, limit int64) ([]*models.Order, error) {
	orders, err := s.orderRepo.List(ctx, tableID, limit)
	if err != nil {
		s.logger.Error("Failed to list orders", "table_id", tableID, "error", err)
		return nil, err
	}
	return orders, nil
}

// SetOrderStatus applies any of the five known statuses unconditionally;
// there is no transition graph.
func (s *OrderService) SetOrderStatus(ctx context.Context, id string, status models.OrderStatus) error {
	if !status.Valid() {
		return models.NewValidationError("unknown order status %q", status)
	}

	found, err := s.orderRepo.SetStatus(ctx, id, status)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("order %s: %w", id, models.ErrNotFound)
	}
	return nil
}

func (s *OrderService) validateCreateOrder(req CreateOrderRequest) error {
	if req.TableID == "" {
		return models.NewValidationError("table_id is required")
	}
	if len(req.Items) == 0 {
		return models.NewValidationError("order must contain at least one item")
	}
	for i, it := range req.Items {
		if it.ItemID == "" {
			return models.NewValidationError("items[%d]: item_id is required", i)
		}
		if it.Quantity < 1 {
			return models.NewValidationError("items[%d]: quantity must be at least 1", i)
		}
	}
	if !req.PaymentMethod.Valid() {
		return models.NewValidationError("payment_method must be %q or %q",
			models.PaymentMethodOnline, models.PaymentMethodCash)
	}
	return nil
}

func distinctItemIDs(items []OrderItemRequest) []string {
	seen := make(map[string]struct{}, len(items))
	ids := make([]string, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it.ItemID]; ok {
			continue
		}
		seen[it.ItemID] = struct{}{}
		ids = append(ids, it.ItemID)
	}
	return ids
}

// roundCurrency rounds to currency-minor-unit precision (2 decimals).
func roundCurrency(v float64) float64 {
	return math.Round(v*100) / 100
}
