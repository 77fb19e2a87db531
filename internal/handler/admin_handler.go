package handler

import (
	"net/http"

	"smart-restaurant/internal/service"
	"smart-restaurant/pkg/logger"
)

type AdminHandler struct {
	orderService       service.OrderServiceInterface
	aggregationService service.AggregationServiceInterface
	logger             *logger.Logger
}

func NewAdminHandler(orderService service.OrderServiceInterface, aggregationService service.AggregationServiceInterface, log *logger.Logger) *AdminHandler {
	return &AdminHandler{
		orderService:       orderService,
		aggregationService: aggregationService,
		logger:             log.WithComponent("admin_handler"),
	}
}

// ListOrders handles GET /api/admin/orders?limit=
func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	orders, err := h.orderService.ListOrders(r.Context(), "", parseLimit(r))
	if err != nil {
		fail(h.logger, w, reqCtx, err)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, map[string]interface{}{"orders": orders})
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}

// GetStats handles GET /api/admin/stats
func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	stats, err := h.aggregationService.GetAdminStats(r.Context())
	if err != nil {
		fail(h.logger, w, reqCtx, err)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, stats)
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}
