package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"smart-restaurant/models"
	"smart-restaurant/pkg/logger"
)

type OrderRepositoryInterface interface {
	Create(ctx context.Context, order *models.Order) (string, error)
	GetByID(ctx context.Context, id string) (*models.Order, error)
	List(ctx context.Context, tableID string, limit int64) ([]*models.Order, error)
	SetStatus(ctx context.Context, id string, status models.OrderStatus) (bool, error)
	SetPaymentStatus(ctx context.Context, id string, status models.PaymentStatus) (bool, error)
}

type OrderRepository struct {
	logger *logger.Logger
	docs   DocumentStoreInterface
}

func NewOrderRepository(log *logger.Logger, docs DocumentStoreInterface) *OrderRepository {
	return &OrderRepository{
		logger: log.WithComponent("order_repository"),
		docs:   docs,
	}
}

func (r *OrderRepository) Create(ctx context.Context, order *models.Order) (string, error) {
	id, err := r.docs.Create(ctx, CollectionOrders, order)
	if err != nil {
		return "", err
	}
	r.logger.Info("Created order", "id", id, "table_id", order.TableID, "subtotal", order.Subtotal)
	return id, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	doc, err := r.docs.GetByID(ctx, CollectionOrders, id)
	if err != nil {
		return nil, err
	}

	order := &models.Order{}
	if err := decodeDocument(doc, order); err != nil {
		return nil, fmt.Errorf("failed to decode order %s: %w", id, err)
	}
	return order, nil
}

// List returns orders newest first, optionally filtered by table and capped.
func (r *OrderRepository) List(ctx context.Context, tableID string, limit int64) ([]*models.Order, error) {
	filter := bson.M{}
	if tableID != "" {
		filter["table_id"] = tableID
	}

	docs, err := r.docs.List(ctx, CollectionOrders, filter, &ListOptions{
		Sort:  bson.D{{Key: "created_at", Value: -1}},
		Limit: limit,
	})
	if err != nil {
		return nil, err
	}

	orders := make([]*models.Order, 0, len(docs))
	for _, doc := range docs {
		order := &models.Order{}
		if err := decodeDocument(doc, order); err != nil {
			return nil, fmt.Errorf("failed to decode order: %w", err)
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (r *OrderRepository) SetStatus(ctx context.Context, id string, status models.OrderStatus) (bool, error) {
	found, err := r.docs.Update(ctx, CollectionOrders, id, bson.M{"status": status})
	if err != nil {
		return false, err
	}
	if found {
		r.logger.Info("Updated order status", "id", id, "status", status)
	}
	return found, nil
}

func (r *OrderRepository) SetPaymentStatus(ctx context.Context, id string, status models.PaymentStatus) (bool, error) {
	found, err := r.docs.Update(ctx, CollectionOrders, id, bson.M{"payment_status": status})
	if err != nil {
		return false, err
	}
	if found {
		r.logger.Info("Updated order payment status", "id", id, "payment_status", status)
	}
	return found, nil
}
