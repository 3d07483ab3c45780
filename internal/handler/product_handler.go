package handler

import "net/http"

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogSvc.ListProducts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, products)
}
