package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"khata-backend/internal/app"

	"github.com/go-chi/chi/v5"
)

// Handler holds the ApplicationService and the chi router.
type Handler struct {
	svc       app.ApplicationService
	router    chi.Router
	jwtSecret string
}

// NewHandler creates and wires the chi router with all routes.
func NewHandler(svc app.ApplicationService, allowedOrigins, jwtSecret string) http.Handler {
	h := &Handler{
		svc:       svc,
		jwtSecret: jwtSecret,
	}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(Recoverer)
	r.Use(CORS(allowedOrigins))

	// Public endpoints.
	r.Get("/api/health", h.health)
	r.Post("/api/auth/login", h.login)
	r.Post("/api/auth/logout", h.logout)

	// Everything else requires a valid session.
	r.Group(func(r chi.Router) {
		r.Use(h.RequireAuth)
		r.Use(RequestBodyLimit(1 << 20)) // 1 MB

		r.Get("/api/auth/me", h.me)

		// Cylinder type catalog and stock.
		r.Get("/api/cylinder-types", h.listCylinderTypes)
		r.Post("/api/cylinder-types", h.addCylinderType)
		r.Put("/api/cylinder-types/{id}", h.updateCylinderType)
		r.Delete("/api/cylinder-types/{id}", h.deleteCylinderType)

		// Cylinder assignments to clients.
		r.Get("/api/assignments", h.listAssignments)
		r.Post("/api/assignments", h.assignCylinders)
		r.Put("/api/assignments/{id}", h.updateAssignment)
		r.Delete("/api/assignments/{id}", h.deleteAssignment)

		// Daily sales sheet and customer khata.
		r.Get("/api/daily-sales", h.dailySheet)
		r.Post("/api/daily-sales/sheet", h.saveDayOpening)
		r.Post("/api/daily-sales", h.addDailySale)
		r.Delete("/api/daily-sales/{id}", h.deleteDailySale)
		r.Get("/api/customers", h.listCustomers)

		// Salaries.
		r.Get("/api/salaries", h.listSalaries)
		r.Post("/api/salaries", h.addSalary)
		r.Put("/api/salaries/{id}", h.updateSalary)
		r.Delete("/api/salaries/{id}", h.deleteSalary)

		// Suppliers.
		r.Get("/api/suppliers", h.listSuppliers)
		r.Post("/api/suppliers", h.addSupplier)
		r.Put("/api/suppliers/{id}", h.updateSupplier)
		r.Delete("/api/suppliers/{id}", h.deleteSupplier)

		// Clients and their item sub-ledger.
		r.Get("/api/clients", h.listClients)
		r.Post("/api/clients", h.addClient)
		r.Put("/api/clients/{id}", h.updateClient)
		r.Delete("/api/clients/{id}", h.deleteClient)
		r.Get("/api/clients/{id}/items", h.listClientItems)
		r.Post("/api/client-items", h.addClientItem)
		r.Delete("/api/client-items/{id}", h.deleteClientItem)

		// Vegetable catalog and per-date rows.
		r.Get("/api/vegetable-names", h.listVegetableNames)
		r.Post("/api/vegetable-names", h.addVegetableName)
		r.Put("/api/vegetable-names/{id}", h.updateVegetableName)
		r.Delete("/api/vegetable-names/{id}", h.deleteVegetableName)
		r.Get("/api/vegetables", h.listVegetables)
		r.Post("/api/vegetables", h.addVegetable)
		r.Put("/api/vegetables/{id}", h.updateVegetable)
		r.Delete("/api/vegetables/{id}", h.deleteVegetable)

		// Chicken records.
		r.Get("/api/chicken-records", h.listChickenRecords)
		r.Post("/api/chicken-records", h.addChickenRecord)
		r.Delete("/api/chicken-records/{id}", h.deleteChickenRecord)

		// Reporting.
		r.Get("/api/reports/daily", h.dailyReport)
		r.Get("/api/dashboard", h.dashboardSummary)
	})

	h.router = r
	return r
}

// health returns service status.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	type response struct {
		Status string `json:"status"`
	}
	writeJSON(w, response{Status: "ok"})
}

// urlID extracts the {id} URL parameter as the raw string; the application
// layer owns all parsing.
func urlID(r *http.Request) string {
	return chi.URLParam(r, "id")
}

// decodeJSON decodes the request body into v and returns false + writes an
// appropriate error response on failure. Returns HTTP 413 when the body
// exceeds the size limit set by RequestBodyLimit middleware; HTTP 400 for all
// other decode errors.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, r, "request body too large", "REQUEST_TOO_LARGE", http.StatusRequestEntityTooLarge)
			return false
		}
		writeError(w, r, "invalid JSON body: "+err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return false
	}
	return true
}
