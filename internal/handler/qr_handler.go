package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	qrcode "github.com/skip2/go-qrcode"

	"smart-restaurant/models"
	"smart-restaurant/pkg/logger"
)

const qrImageSize = 256

// QRHandler renders table QR codes pointing at the ordering frontend.
type QRHandler struct {
	baseURL string
	logger  *logger.Logger
}

func NewQRHandler(baseURL string, log *logger.Logger) *QRHandler {
	return &QRHandler{
		baseURL: baseURL,
		logger:  log.WithComponent("qr_handler"),
	}
}

// GenerateQR handles GET /api/qr/{table_number}
func (h *QRHandler) GenerateQR(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	tableNumber, err := strconv.Atoi(mux.Vars(r)["table_number"])
	if err != nil {
		fail(h.logger, w, reqCtx, models.NewValidationError("table_number must be an integer"))
		return
	}

	target := fmt.Sprintf("%s/?table=%d", h.baseURL, tableNumber)

	png, err := qrcode.Encode(target, qrcode.Medium, qrImageSize)
	if err != nil {
		h.logger.Error("Failed to encode QR code", "table_number", tableNumber, "error", err)
		writeErrorResponse(h.logger, w, http.StatusInternalServerError, "failed to generate QR code")
		reqCtx.StatusCode = http.StatusInternalServerError
		h.logger.LogResponse(reqCtx)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		h.logger.Error("Failed to write QR image", "error", err)
	}

	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}
