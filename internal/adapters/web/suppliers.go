package web

import (
	"net/http"

	"khata-backend/internal/app"
)

func (h *Handler) listSuppliers(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.svc.ListSuppliers(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, suppliers)
}

// addSupplier merges into an existing supplier when the posted name matches
// one on file, so repeated submissions update the same row.
func (h *Handler) addSupplier(w http.ResponseWriter, r *http.Request) {
	var body app.SupplierRequest
	if !decodeJSON(w, r, &body) {
		return
	}
	supplier, err := h.svc.AddSupplier(r.Context(), body)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, supplier)
}

func (h *Handler) updateSupplier(w http.ResponseWriter, r *http.Request) {
	var body app.SupplierRequest
	if !decodeJSON(w, r, &body) {
		return
	}
	if err := h.svc.UpdateSupplier(r.Context(), urlID(r), body); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteSupplier(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteSupplier(r.Context(), urlID(r)); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
