package web

import (
	"net/http"

	"khata-backend/internal/app"
)

func (h *Handler) listChickenRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.ListChickenRecords(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, records)
}

func (h *Handler) addChickenRecord(w http.ResponseWriter, r *http.Request) {
	var body app.ChickenRecordRequest
	if !decodeJSON(w, r, &body) {
		return
	}
	record, err := h.svc.AddChickenRecord(r.Context(), body)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, record)
}

func (h *Handler) deleteChickenRecord(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteChickenRecord(r.Context(), urlID(r)); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
