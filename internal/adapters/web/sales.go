package web

import (
	"net/http"

	"khata-backend/internal/app"
)

// dailySheet handles GET /api/daily-sales?date= and returns the opening
// balance row plus all sale lines for the date.
func (h *Handler) dailySheet(w http.ResponseWriter, r *http.Request) {
	sheet, err := h.svc.GetDailySheet(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, sheet)
}

func (h *Handler) saveDayOpening(w http.ResponseWriter, r *http.Request) {
	var body app.DayOpeningRequest
	if !decodeJSON(w, r, &body) {
		return
	}
	if err := h.svc.SaveDayOpening(r.Context(), body); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) addDailySale(w http.ResponseWriter, r *http.Request) {
	var body app.DailySaleRequest
	if !decodeJSON(w, r, &body) {
		return
	}
	sale, err := h.svc.AddDailySale(r.Context(), body)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, sale)
}

func (h *Handler) deleteDailySale(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteDailySale(r.Context(), urlID(r)); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.svc.ListCustomers(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, customers)
}
