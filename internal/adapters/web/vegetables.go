package web

import (
	"net/http"

	"khata-backend/internal/app"
)

func (h *Handler) listVegetableNames(w http.ResponseWriter, r *http.Request) {
	names, err := h.svc.ListVegetableNames(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, names)
}

func (h *Handler) addVegetableName(w http.ResponseWriter, r *http.Request) {
	var body app.VegetableNameRequest
	if !decodeJSON(w, r, &body) {
		return
	}
	name, err := h.svc.AddVegetableName(r.Context(), body)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, name)
}

func (h *Handler) updateVegetableName(w http.ResponseWriter, r *http.Request) {
	var body app.VegetableNameRequest
	if !decodeJSON(w, r, &body) {
		return
	}
	if err := h.svc.UpdateVegetableName(r.Context(), urlID(r), body); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteVegetableName(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteVegetableName(r.Context(), urlID(r)); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listVegetables(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.ListVegetables(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, rows)
}

func (h *Handler) addVegetable(w http.ResponseWriter, r *http.Request) {
	var body app.VegetableRequest
	if !decodeJSON(w, r, &body) {
		return
	}
	row, err := h.svc.AddVegetable(r.Context(), body)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, row)
}

// updateVegetable records sold quantity and price for a purchase row.
func (h *Handler) updateVegetable(w http.ResponseWriter, r *http.Request) {
	var body app.VegetableUpdateRequest
	if !decodeJSON(w, r, &body) {
		return
	}
	if err := h.svc.UpdateVegetable(r.Context(), urlID(r), body); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteVegetable(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteVegetable(r.Context(), urlID(r)); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
