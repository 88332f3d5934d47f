package web

import (
	"net/http"

	"khata-backend/internal/app"
)

// listSalaries handles GET /api/salaries?month=YYYY-MM.
func (h *Handler) listSalaries(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.ListSalaries(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, records)
}

func (h *Handler) addSalary(w http.ResponseWriter, r *http.Request) {
	var body app.SalaryRequest
	if !decodeJSON(w, r, &body) {
		return
	}
	record, err := h.svc.AddSalary(r.Context(), body)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, record)
}

func (h *Handler) updateSalary(w http.ResponseWriter, r *http.Request) {
	var body app.SalaryUpdateRequest
	if !decodeJSON(w, r, &body) {
		return
	}
	if err := h.svc.UpdateSalary(r.Context(), urlID(r), body); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteSalary(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteSalary(r.Context(), urlID(r)); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
