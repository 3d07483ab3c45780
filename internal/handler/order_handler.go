package handler

import (
	"encoding/json"
	"net/http"

	"smartclub/api/internal/model"
)

func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "no token provided")
		return
	}

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	items := make([]model.CheckoutItem, 0, len(req.Items))
	for _, line := range req.Items {
		items = append(items, model.CheckoutItem{
			ProductID: int(line.ProductID),
			Quantity:  int(line.Quantity),
		})
	}

	result, err := h.checkoutSvc.Checkout(r.Context(), userID, items)
	if err != nil {
		writeCheckoutError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

func (h *Handler) MyOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "no token provided")
		return
	}

	orders, err := h.orderSvc.History(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, orders)
}
