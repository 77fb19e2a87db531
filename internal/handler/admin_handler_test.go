package handler_test

import (
	"net/http"
	"testing"

	"smart-restaurant/internal/service"
	"smart-restaurant/models"
)

func TestAdminListOrdersEndpoint(t *testing.T) {
	svcs := defaultServices()
	svcs.order.orders["order-1"] = &models.Order{ID: "order-1", TableID: "t1"}
	svcs.order.orders["order-2"] = &models.Order{ID: "order-2", TableID: "t2"}
	svcs.order.orders["order-3"] = &models.Order{ID: "order-3", TableID: "t3"}
	h := newTestRouter(svcs)

	rec := doRequest(t, h, http.MethodGet, "/api/admin/orders", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp struct {
		Orders []models.Order `json:"orders"`
	}
	decodeBody(t, rec, &resp)
	if len(resp.Orders) != 3 {
		t.Errorf("got %d orders, want all 3", len(resp.Orders))
	}

	rec = doRequest(t, h, http.MethodGet, "/api/admin/orders?limit=2", "")
	decodeBody(t, rec, &resp)
	if len(resp.Orders) != 2 {
		t.Errorf("got %d orders with limit=2, want 2", len(resp.Orders))
	}

	// A garbage limit falls back to "no limit" instead of failing.
	rec = doRequest(t, h, http.MethodGet, "/api/admin/orders?limit=abc", "")
	if rec.Code != http.StatusOK {
		t.Errorf("status with bad limit = %d, want 200", rec.Code)
	}
}

func TestAdminStatsEndpoint(t *testing.T) {
	svcs := defaultServices()
	svcs.agg.stats = &service.AdminStats{TotalOrders: 20, PaidOrders: 12, TotalSales: 4815.50}
	h := newTestRouter(svcs)

	rec := doRequest(t, h, http.MethodGet, "/api/admin/stats", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp struct {
		TotalOrders int64   `json:"total_orders"`
		PaidOrders  int64   `json:"paid_orders"`
		TotalSales  float64 `json:"total_sales"`
	}
	decodeBody(t, rec, &resp)
	if resp.TotalOrders != 20 || resp.PaidOrders != 12 || resp.TotalSales != 4815.50 {
		t.Errorf("stats = %+v", resp)
	}
}

func TestAdminStatsEndpoint_StoreUnavailable(t *testing.T) {
	svcs := defaultServices()
	svcs.agg.stats = nil
	svcs.agg.err = models.ErrStoreUnavailable
	h := newTestRouter(svcs)

	rec := doRequest(t, h, http.MethodGet, "/api/admin/stats", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}
