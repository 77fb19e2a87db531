package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"smart-restaurant/models"
	"smart-restaurant/pkg/logger"
)

// writeJSONResponse writes a JSON response with the given status code.
func writeJSONResponse(log *logger.Logger, w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Error("Failed to encode JSON response", "error", err)
		}
	}
}

// writeErrorResponse writes an error payload with the given status code.
func writeErrorResponse(log *logger.Logger, w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	resp := map[string]string{"error": message}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Error("Failed to encode error response", "error", err)
	}
}

// parseRequestBody parses a JSON request body into the target struct.
func parseRequestBody(r *http.Request, target interface{}) error {
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(target)
}

// statusForError maps the error taxonomy onto HTTP status codes and a
// client-safe message. Server faults keep a generic message.
func statusForError(err error) (int, string) {
	var invalidItem *models.InvalidItemError
	var validation *models.ValidationError

	switch {
	case errors.Is(err, models.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, models.ErrStoreUnavailable.Error()
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, models.ErrInvalidID):
		return http.StatusBadRequest, err.Error()
	case errors.As(err, &invalidItem):
		return http.StatusBadRequest, invalidItem.Error()
	case errors.As(err, &validation):
		return http.StatusBadRequest, validation.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// fail logs err, writes the mapped error response, and records the status
// on the request context for the completion log line.
func fail(log *logger.Logger, w http.ResponseWriter, reqCtx *logger.RequestContext, err error) {
	statusCode, message := statusForError(err)
	if statusCode >= 500 {
		log.Error("Request failed", "error", err)
	} else {
		log.Warn("Request rejected", "status", statusCode, "error", err)
	}
	writeErrorResponse(log, w, statusCode, message)
	reqCtx.StatusCode = statusCode
	log.LogResponse(reqCtx)
}
