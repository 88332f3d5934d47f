package web

import (
	"net/http"

	"khata-backend/internal/app"
)

func (h *Handler) listCylinderTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.svc.ListCylinderTypes(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, types)
}

func (h *Handler) addCylinderType(w http.ResponseWriter, r *http.Request) {
	var body app.CylinderTypeRequest
	if !decodeJSON(w, r, &body) {
		return
	}
	ct, err := h.svc.AddCylinderType(r.Context(), body)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, ct)
}

func (h *Handler) updateCylinderType(w http.ResponseWriter, r *http.Request) {
	var body app.CylinderTypeRequest
	if !decodeJSON(w, r, &body) {
		return
	}
	if err := h.svc.UpdateCylinderType(r.Context(), urlID(r), body); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteCylinderType(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteCylinderType(r.Context(), urlID(r)); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listAssignments(w http.ResponseWriter, r *http.Request) {
	assignments, err := h.svc.ListAssignments(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, assignments)
}

func (h *Handler) assignCylinders(w http.ResponseWriter, r *http.Request) {
	var body app.AssignRequest
	if !decodeJSON(w, r, &body) {
		return
	}
	if err := h.svc.AssignCylinders(r.Context(), body); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) updateAssignment(w http.ResponseWriter, r *http.Request) {
	var body app.UpdateAssignmentRequest
	if !decodeJSON(w, r, &body) {
		return
	}
	if err := h.svc.UpdateAssignment(r.Context(), urlID(r), body); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteAssignment(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteAssignment(r.Context(), urlID(r)); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
