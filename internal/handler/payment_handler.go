package handler

import (
	"net/http"

	"smart-restaurant/internal/service"
	"smart-restaurant/models"
	"smart-restaurant/pkg/logger"
)

type PaymentHandler struct {
	paymentService service.PaymentServiceInterface
	logger         *logger.Logger
}

func NewPaymentHandler(paymentService service.PaymentServiceInterface, log *logger.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		logger:         log.WithComponent("payment_handler"),
	}
}

type paymentConfirmRequest struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

// ConfirmMockPayment handles POST /api/payment/mock/confirm
func (h *PaymentHandler) ConfirmMockPayment(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	var confirmReq paymentConfirmRequest
	if err := parseRequestBody(r, &confirmReq); err != nil {
		fail(h.logger, w, reqCtx, models.NewValidationError("invalid request body"))
		return
	}
	if confirmReq.OrderID == "" {
		fail(h.logger, w, reqCtx, models.NewValidationError("order_id is required"))
		return
	}

	paymentStatus, err := h.paymentService.ConfirmMockPayment(r.Context(), confirmReq.OrderID, confirmReq.Status)
	if err != nil {
		fail(h.logger, w, reqCtx, err)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, map[string]interface{}{
		"success":        true,
		"order_id":       confirmReq.OrderID,
		"payment_status": paymentStatus,
	})
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}
