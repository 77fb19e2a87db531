package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"smart-restaurant/internal/service"
	"smart-restaurant/models"
	"smart-restaurant/pkg/logger"
)

type OrderHandler struct {
	orderService service.OrderServiceInterface
	logger       *logger.Logger
}

func NewOrderHandler(orderService service.OrderServiceInterface, log *logger.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		logger:       log.WithComponent("order_handler"),
	}
}

// CreateOrder handles POST /api/order
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	var createReq service.CreateOrderRequest
	if err := parseRequestBody(r, &createReq); err != nil {
		fail(h.logger, w, reqCtx, models.NewValidationError("invalid request body"))
		return
	}

	resp, err := h.orderService.CreateOrder(r.Context(), createReq)
	if err != nil {
		fail(h.logger, w, reqCtx, err)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusCreated, resp)
	reqCtx.StatusCode = http.StatusCreated
	h.logger.LogResponse(reqCtx)
}

// GetOrder handles GET /api/order/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	id := mux.Vars(r)["id"]

	order, err := h.orderService.GetOrderByID(r.Context(), id)
	if err != nil {
		fail(h.logger, w, reqCtx, err)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, order)
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}

// ListOrders handles GET /api/orders?table_id=
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	tableID := r.URL.Query().Get("table_id")

	orders, err := h.orderService.ListOrders(r.Context(), tableID, 0)
	if err != nil {
		fail(h.logger, w, reqCtx, err)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, map[string]interface{}{"orders": orders})
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}

type orderStatusUpdateRequest struct {
	Status models.OrderStatus `json:"status"`
}

// UpdateOrderStatus handles PATCH /api/order/{id}/status
func (h *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	id := mux.Vars(r)["id"]

	var statusReq orderStatusUpdateRequest
	if err := parseRequestBody(r, &statusReq); err != nil {
		fail(h.logger, w, reqCtx, models.NewValidationError("invalid request body"))
		return
	}

	if err := h.orderService.SetOrderStatus(r.Context(), id, statusReq.Status); err != nil {
		fail(h.logger, w, reqCtx, err)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, map[string]bool{"success": true})
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}

// parseLimit reads an optional positive integer limit query parameter.
func parseLimit(r *http.Request) int64 {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0
	}
	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}
