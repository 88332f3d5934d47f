package web

import "net/http"

// dailyReport handles GET /api/reports/daily?date=.
func (h *Handler) dailyReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.DailyReport(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, report)
}

// dashboardSummary handles GET /api/dashboard?date=.
func (h *Handler) dashboardSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.DashboardSummary(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, summary)
}
