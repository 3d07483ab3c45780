package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"smartclub/api/internal/service"
)

type errorResponse struct {
	Error     string `json:"error"`
	ProductID int    `json:"product_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeCheckoutError maps the service error taxonomy to transport status
// codes. Unexpected storage errors stay opaque to the caller.
func writeCheckoutError(w http.ResponseWriter, err error) {
	var invalid *service.InvalidRequestError
	var notFound *service.NotFoundError
	var noStock *service.InsufficientStockError

	switch {
	case errors.As(err, &invalid):
		writeError(w, http.StatusBadRequest, invalid.Reason)
	case errors.Is(err, service.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.As(err, &notFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: notFound.Error(), ProductID: notFound.ProductID})
	case errors.As(err, &noStock):
		writeJSON(w, http.StatusConflict, errorResponse{Error: noStock.Error(), ProductID: noStock.ProductID})
	default:
		// Log error internally in production
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
