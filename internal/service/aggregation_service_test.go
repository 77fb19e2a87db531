package service

import (
	"context"
	"errors"
	"testing"

	"smart-restaurant/internal/repositories"
	"smart-restaurant/models"
)

type fakeAggregationRepo struct {
	stats *repositories.OrderStats
	err   error
}

func (f *fakeAggregationRepo) OrderStats(context.Context) (*repositories.OrderStats, error) {
	return f.stats, f.err
}

func TestGetAdminStats(t *testing.T) {
	repo := &fakeAggregationRepo{stats: &repositories.OrderStats{
		TotalOrders: 12,
		PaidOrders:  7,
		PaidSales:   0.1 + 0.2, // accumulated float noise from summed subtotals
	}}
	svc := NewAggregationService(repo, testLogger())

	stats, err := svc.GetAdminStats(context.Background())
	if err != nil {
		t.Fatalf("GetAdminStats() error = %v", err)
	}
	if stats.TotalOrders != 12 {
		t.Errorf("total_orders = %d, want 12", stats.TotalOrders)
	}
	if stats.PaidOrders != 7 {
		t.Errorf("paid_orders = %d, want 7", stats.PaidOrders)
	}
	if stats.TotalSales != 0.3 {
		t.Errorf("total_sales = %v, want 0.3 after rounding", stats.TotalSales)
	}
}

func TestGetAdminStats_StoreUnavailable(t *testing.T) {
	repo := &fakeAggregationRepo{err: models.ErrStoreUnavailable}
	svc := NewAggregationService(repo, testLogger())

	if _, err := svc.GetAdminStats(context.Background()); !errors.Is(err, models.ErrStoreUnavailable) {
		t.Errorf("GetAdminStats() error = %v, want ErrStoreUnavailable", err)
	}
}
