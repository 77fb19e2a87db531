package handler_test

import (
	"context"
	"fmt"
	"net/http"

	"smart-restaurant/internal/handler"
	"smart-restaurant/internal/router"
	"smart-restaurant/internal/service"
	"smart-restaurant/models"
	"smart-restaurant/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: logger.LevelError, Format: "text", Output: "stderr"})
}

// Fake services backing the handler tests. Each is a thin map or canned
// response; the real behavior lives in the service package's own tests.

type fakeOrderService struct {
	createResp *service.CreateOrderResponse
	createErr  error
	orders     map[string]*models.Order
	listErr    error
	statusErr  error
}

func (f *fakeOrderService) CreateOrder(_ context.Context, _ service.CreateOrderRequest) (*service.CreateOrderResponse, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createResp, nil
}

func (f *fakeOrderService) GetOrderByID(_ context.Context, id string) (*models.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, fmt.Errorf("order %s: %w", id, models.ErrNotFound)
	}
	return order, nil
}

func (f *fakeOrderService) ListOrders(_ context.Context, tableID string, limit int64) ([]*models.Order, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []*models.Order{}
	for _, order := range f.orders {
		if tableID != "" && order.TableID != tableID {
			continue
		}
		out = append(out, order)
	}
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeOrderService) SetOrderStatus(_ context.Context, id string, status models.OrderStatus) error {
	if f.statusErr != nil {
		return f.statusErr
	}
	order, ok := f.orders[id]
	if !ok {
		return fmt.Errorf("order %s: %w", id, models.ErrNotFound)
	}
	order.Status = status
	return nil
}

type fakeMenuService struct {
	items     []*models.MenuItem
	listErr   error
	createID  string
	createErr error
	updateErr error
	deleteErr error
}

func (f *fakeMenuService) ListMenu(_ context.Context, category string) ([]*models.MenuItem, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []*models.MenuItem{}
	for _, item := range f.items {
		if category != "" && item.Category != category {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeMenuService) CreateMenuItem(_ context.Context, _ service.CreateMenuItemRequest) (string, error) {
	return f.createID, f.createErr
}

func (f *fakeMenuService) UpdateMenuItem(_ context.Context, _ string, _ service.UpdateMenuItemRequest) error {
	return f.updateErr
}

func (f *fakeMenuService) DeleteMenuItem(_ context.Context, _ string) error {
	return f.deleteErr
}

type fakePaymentService struct {
	status models.PaymentStatus
	err    error
}

func (f *fakePaymentService) ConfirmMockPayment(_ context.Context, _, _ string) (models.PaymentStatus, error) {
	return f.status, f.err
}

type fakeAggregationService struct {
	stats *service.AdminStats
	err   error
}

func (f *fakeAggregationService) GetAdminStats(context.Context) (*service.AdminStats, error) {
	return f.stats, f.err
}

type testServices struct {
	order   *fakeOrderService
	menu    *fakeMenuService
	payment *fakePaymentService
	agg     *fakeAggregationService
}

func defaultServices() *testServices {
	return &testServices{
		order:   &fakeOrderService{orders: map[string]*models.Order{}},
		menu:    &fakeMenuService{},
		payment: &fakePaymentService{status: models.PaymentStatusPaid},
		agg:     &fakeAggregationService{stats: &service.AdminStats{}},
	}
}

// newTestRouter builds the real route table over fake services.
func newTestRouter(svcs *testServices) http.Handler {
	log := testLogger()
	return router.NewRouter(
		handler.NewSystemHandler(nil, log),
		handler.NewMenuHandler(svcs.menu, log),
		handler.NewOrderHandler(svcs.order, log),
		handler.NewPaymentHandler(svcs.payment, log),
		handler.NewAdminHandler(svcs.order, svcs.agg, log),
		handler.NewQRHandler("http://localhost:8000", log),
	)
}
