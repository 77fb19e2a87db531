package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"smart-restaurant/models"
	"smart-restaurant/pkg/database"
	"smart-restaurant/pkg/logger"
)

// OrderStats holds raw aggregate figures over the order collection.
type OrderStats struct {
	TotalOrders int64
	PaidOrders  int64
	PaidSales   float64
}

type AggregationRepositoryInterface interface {
	OrderStats(ctx context.Context) (*OrderStats, error)
}

// AggregationRepository runs aggregate queries directly against the store;
// counting and summing server-side beats pulling every order document back.
type AggregationRepository struct {
	logger *logger.Logger
	db     *database.DB
}

func NewAggregationRepository(log *logger.Logger, db *database.DB) *AggregationRepository {
	return &AggregationRepository{
		logger: log.WithComponent("aggregation_repository"),
		db:     db,
	}
}

func (r *AggregationRepository) OrderStats(ctx context.Context) (*OrderStats, error) {
	if r.db == nil {
		return nil, models.ErrStoreUnavailable
	}

	coll := r.db.Collection(CollectionOrders)

	total, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		r.logger.Error("Failed to count orders", "error", err)
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	pipeline := []bson.M{
		{"$match": bson.M{"payment_status": models.PaymentStatusPaid}},
		{"$group": bson.M{
			"_id":   nil,
			"count": bson.M{"$sum": 1},
			"sales": bson.M{"$sum": "$subtotal"},
		}},
	}

	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		r.logger.Error("Failed to aggregate paid orders", "error", err)
		return nil, fmt.Errorf("failed to aggregate paid orders: %w", err)
	}
	defer cursor.Close(ctx)

	stats := &OrderStats{TotalOrders: total}

	var rows []struct {
		Count int64   `bson:"count"`
		Sales float64 `bson:"sales"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		r.logger.Error("Failed to decode paid order aggregate", "error", err)
		return nil, fmt.Errorf("failed to decode paid order aggregate: %w", err)
	}
	if len(rows) > 0 {
		stats.PaidOrders = rows[0].Count
		stats.PaidSales = rows[0].Sales
	}

	r.logger.Debug("Computed order stats",
		"total_orders", stats.TotalOrders,
		"paid_orders", stats.PaidOrders,
		"paid_sales", stats.PaidSales)
	return stats, nil
}
