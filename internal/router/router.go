package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"smart-restaurant/internal/handler"
)

// NewRouter wires every endpoint to its handler.
func NewRouter(
	systemHandler *handler.SystemHandler,
	menuHandler *handler.MenuHandler,
	orderHandler *handler.OrderHandler,
	paymentHandler *handler.PaymentHandler,
	adminHandler *handler.AdminHandler,
	qrHandler *handler.QRHandler,
) *mux.Router {
	r := mux.NewRouter()

	// Liveness and store probe
	r.HandleFunc("/", systemHandler.Root).Methods(http.MethodGet)
	r.HandleFunc("/test", systemHandler.TestStore).Methods(http.MethodGet)

	// Menu
	r.HandleFunc("/api/menu", menuHandler.ListMenu).Methods(http.MethodGet)
	r.HandleFunc("/api/menu", menuHandler.CreateMenuItem).Methods(http.MethodPost)
	r.HandleFunc("/api/menu/{id}", menuHandler.UpdateMenuItem).Methods(http.MethodPut)
	r.HandleFunc("/api/menu/{id}", menuHandler.DeleteMenuItem).Methods(http.MethodDelete)

	// Orders
	r.HandleFunc("/api/order", orderHandler.CreateOrder).Methods(http.MethodPost)
	r.HandleFunc("/api/order/{id}/status", orderHandler.UpdateOrderStatus).Methods(http.MethodPatch)
	r.HandleFunc("/api/order/{id}", orderHandler.GetOrder).Methods(http.MethodGet)
	r.HandleFunc("/api/orders", orderHandler.ListOrders).Methods(http.MethodGet)

	// Mock payments
	r.HandleFunc("/api/payment/mock/confirm", paymentHandler.ConfirmMockPayment).Methods(http.MethodPost)

	// Admin
	r.HandleFunc("/api/admin/orders", adminHandler.ListOrders).Methods(http.MethodGet)
	r.HandleFunc("/api/admin/stats", adminHandler.GetStats).Methods(http.MethodGet)

	// Table QR codes
	r.HandleFunc("/api/qr/{table_number}", qrHandler.GenerateQR).Methods(http.MethodGet)

	return r
}
