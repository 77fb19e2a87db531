package service

import (
	"context"

	"smart-restaurant/internal/repositories"
	"smart-restaurant/pkg/logger"
)

type AdminStats struct {
	TotalOrders int64   `json:"total_orders"`
	PaidOrders  int64   `json:"paid_orders"`
	TotalSales  float64 `json:"total_sales"`
}

type AggregationServiceInterface interface {
	GetAdminStats(ctx context.Context) (*AdminStats, error)
}

type AggregationService struct {
	aggregationRepo repositories.AggregationRepositoryInterface
	logger          *logger.Logger
}

func NewAggregationService(aggregationRepo repositories.AggregationRepositoryInterface, log *logger.Logger) *AggregationService {
	return &AggregationService{
		aggregationRepo: aggregationRepo,
		logger:          log.WithComponent("aggregation_service"),
	}
}

// GetAdminStats reports order counts and total sales over paid orders.
func (s *AggregationService) GetAdminStats(ctx context.Context) (*AdminStats, error) {
	stats, err := s.aggregationRepo.OrderStats(ctx)
	if err != nil {
		s.logger.Error("Failed to compute admin stats", "error", err)
		return nil, err
	}

	return &AdminStats{
		TotalOrders: stats.TotalOrders,
		PaidOrders:  stats.PaidOrders,
		TotalSales:  roundCurrency(stats.PaidSales),
	}, nil
}
