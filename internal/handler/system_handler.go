package handler

import (
	"net/http"

	"smart-restaurant/pkg/database"
	"smart-restaurant/pkg/envconfig"
	"smart-restaurant/pkg/logger"
)

// SystemHandler serves the liveness and store-connectivity probes. Unlike
// the data endpoints it must answer even when the store is unconfigured,
// so it holds the (possibly nil) connection directly.
type SystemHandler struct {
	db     *database.DB
	logger *logger.Logger
}

func NewSystemHandler(db *database.DB, log *logger.Logger) *SystemHandler {
	return &SystemHandler{
		db:     db,
		logger: log.WithComponent("system_handler"),
	}
}

// Root handles GET /
func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(h.logger, w, http.StatusOK, map[string]string{
		"message": "Smart Restaurant API running",
	})
}

// TestStore handles GET /test
func (h *SystemHandler) TestStore(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	envSet := func(key string) string {
		if envconfig.GetEnv(key, "") != "" {
			return "set"
		}
		return "not set"
	}

	resp := map[string]interface{}{
		"backend":           "running",
		"database":          "not available",
		"database_url":      envSet("DATABASE_URL"),
		"database_name":     envSet("DATABASE_NAME"),
		"connection_status": "not connected",
		"collections":       []string{},
	}

	if h.db != nil {
		if names, err := h.db.ListCollections(r.Context()); err != nil {
			h.logger.Error("Store connectivity probe failed", "error", err)
			resp["database"] = "error: " + err.Error()
		} else {
			resp["database"] = "connected"
			resp["connection_status"] = "connected"
			resp["collections"] = names
		}
	}

	writeJSONResponse(h.logger, w, http.StatusOK, resp)
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}
