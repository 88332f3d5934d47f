package web

import (
	"net/http"

	"khata-backend/internal/app"
)

func (h *Handler) listClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.svc.ListClients(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, clients)
}

func (h *Handler) addClient(w http.ResponseWriter, r *http.Request) {
	var body app.ClientRequest
	if !decodeJSON(w, r, &body) {
		return
	}
	client, err := h.svc.AddClient(r.Context(), body)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, client)
}

func (h *Handler) updateClient(w http.ResponseWriter, r *http.Request) {
	var body app.ClientRequest
	if !decodeJSON(w, r, &body) {
		return
	}
	if err := h.svc.UpdateClient(r.Context(), urlID(r), body); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteClient(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteClient(r.Context(), urlID(r)); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listClientItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListClientItems(r.Context(), urlID(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, items)
}

func (h *Handler) addClientItem(w http.ResponseWriter, r *http.Request) {
	var body app.ClientItemRequest
	if !decodeJSON(w, r, &body) {
		return
	}
	item, err := h.svc.AddClientItem(r.Context(), body)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, item)
}

func (h *Handler) deleteClientItem(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteClientItem(r.Context(), urlID(r)); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
