package handler

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"smart-restaurant/internal/service"
	"smart-restaurant/models"
	"smart-restaurant/pkg/logger"
)

type MenuHandler struct {
	menuService service.MenuServiceInterface
	logger      *logger.Logger
}

func NewMenuHandler(menuService service.MenuServiceInterface, log *logger.Logger) *MenuHandler {
	return &MenuHandler{
		menuService: menuService,
		logger:      log.WithComponent("menu_handler"),
	}
}

// ListMenu handles GET /api/menu?category=
func (h *MenuHandler) ListMenu(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	category := r.URL.Query().Get("category")

	items, err := h.menuService.ListMenu(r.Context(), category)
	if err != nil {
		fail(h.logger, w, reqCtx, err)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, map[string]interface{}{"items": items})
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}

// CreateMenuItem handles POST /api/menu
func (h *MenuHandler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	var createReq service.CreateMenuItemRequest
	if err := parseRequestBody(r, &createReq); err != nil {
		fail(h.logger, w, reqCtx, models.NewValidationError("invalid request body"))
		return
	}

	id, err := h.menuService.CreateMenuItem(r.Context(), createReq)
	if err != nil {
		fail(h.logger, w, reqCtx, err)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusCreated, map[string]string{"id": id})
	reqCtx.StatusCode = http.StatusCreated
	h.logger.LogResponse(reqCtx)
}

// UpdateMenuItem handles PUT /api/menu/{id}
func (h *MenuHandler) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	id := mux.Vars(r)["id"]

	var updateReq service.UpdateMenuItemRequest
	if err := parseRequestBody(r, &updateReq); err != nil {
		fail(h.logger, w, reqCtx, models.NewValidationError("invalid request body"))
		return
	}

	if err := h.menuService.UpdateMenuItem(r.Context(), id, updateReq); err != nil {
		fail(h.logger, w, reqCtx, err)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, map[string]bool{"success": true})
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}

// DeleteMenuItem handles DELETE /api/menu/{id}
func (h *MenuHandler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	id := mux.Vars(r)["id"]

	if err := h.menuService.DeleteMenuItem(r.Context(), id); err != nil {
		fail(h.logger, w, reqCtx, err)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, map[string]bool{"success": true})
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}

func newRequestContext(r *http.Request) *logger.RequestContext {
	return &logger.RequestContext{
		Method:     r.Method,
		Path:       r.URL.Path,
		RemoteAddr: r.RemoteAddr,
		StartTime:  time.Now(),
	}
}
