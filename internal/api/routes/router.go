package routes

import (
	"net/http"

	"github.com/zatekoja/physiodesk/backend/internal/api/handlers"
	"github.com/zatekoja/physiodesk/backend/internal/api/middleware"
	"github.com/zatekoja/physiodesk/backend/internal/application/services"
	"github.com/zatekoja/physiodesk/backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	patientHandler     *handlers.PatientHandler
	appointmentHandler *handlers.AppointmentHandler
	sessionHandler     *handlers.SessionHandler
	paymentHandler     *handlers.PaymentHandler
	requestHandler     *handlers.RequestHandler
	settingsHandler    *handlers.SettingsHandler
	dashboardHandler   *handlers.DashboardHandler
	exportHandler      *handlers.ExportHandler

	allowedOrigins []string
	metrics        *observability.Metrics
}

// NewRouter creates a router serving every clinic service. metrics may be nil.
func NewRouter(clinic *services.Clinic, allowedOrigins []string, metrics *observability.Metrics) *Router {
	return &Router{
		mux: http.NewServeMux(),

		patientHandler:     handlers.NewPatientHandler(clinic.Patients),
		appointmentHandler: handlers.NewAppointmentHandler(clinic.Appointments),
		sessionHandler:     handlers.NewSessionHandler(clinic.Sessions),
		paymentHandler:     handlers.NewPaymentHandler(clinic.Payments),
		requestHandler:     handlers.NewRequestHandler(clinic.Requests),
		settingsHandler:    handlers.NewSettingsHandler(clinic.Settings),
		dashboardHandler:   handlers.NewDashboardHandler(clinic.Dashboard),
		exportHandler:      handlers.NewExportHandler(clinic.Export),

		allowedOrigins: allowedOrigins,
		metrics:        metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Patient endpoints
	r.mux.HandleFunc("GET /api/patients", r.patientHandler.List)
	r.mux.HandleFunc("POST /api/patients", r.patientHandler.Create)
	r.mux.HandleFunc("GET /api/patients/{id}", r.patientHandler.Get)
	r.mux.HandleFunc("PATCH /api/patients/{id}", r.patientHandler.Update)
	r.mux.HandleFunc("DELETE /api/patients/{id}", r.patientHandler.Delete)

	// Appointment endpoints
	r.mux.HandleFunc("GET /api/appointments", r.appointmentHandler.List)
	r.mux.HandleFunc("POST /api/appointments", r.appointmentHandler.Create)
	r.mux.HandleFunc("GET /api/appointments/week", r.appointmentHandler.Week)
	r.mux.HandleFunc("GET /api/appointments/{id}", r.appointmentHandler.Get)
	r.mux.HandleFunc("PATCH /api/appointments/{id}", r.appointmentHandler.Update)
	r.mux.HandleFunc("DELETE /api/appointments/{id}", r.appointmentHandler.Delete)

	// Session endpoints
	r.mux.HandleFunc("GET /api/sessions", r.sessionHandler.List)
	r.mux.HandleFunc("POST /api/sessions", r.sessionHandler.Create)
	r.mux.HandleFunc("GET /api/sessions/{id}", r.sessionHandler.Get)
	r.mux.HandleFunc("PATCH /api/sessions/{id}", r.sessionHandler.Update)
	r.mux.HandleFunc("DELETE /api/sessions/{id}", r.sessionHandler.Delete)

	// Payment endpoints
	r.mux.HandleFunc("GET /api/payments", r.paymentHandler.List)
	r.mux.HandleFunc("POST /api/payments", r.paymentHandler.Create)
	r.mux.HandleFunc("GET /api/payments/totals", r.paymentHandler.Totals)
	r.mux.HandleFunc("GET /api/payments/{id}", r.paymentHandler.Get)
	r.mux.HandleFunc("PATCH /api/payments/{id}", r.paymentHandler.Update)
	r.mux.HandleFunc("DELETE /api/payments/{id}", r.paymentHandler.Delete)
	r.mux.HandleFunc("POST /api/payments/{id}/paid", r.paymentHandler.MarkPaid)

	// Appointment request endpoints
	r.mux.HandleFunc("GET /api/requests", r.requestHandler.List)
	r.mux.HandleFunc("POST /api/requests", r.requestHandler.Create)
	r.mux.HandleFunc("GET /api/requests/counts", r.requestHandler.Counts)
	r.mux.HandleFunc("GET /api/requests/{id}", r.requestHandler.Get)
	r.mux.HandleFunc("PATCH /api/requests/{id}", r.requestHandler.Update)
	r.mux.HandleFunc("DELETE /api/requests/{id}", r.requestHandler.Delete)
	r.mux.HandleFunc("POST /api/requests/{id}/approve", r.requestHandler.Approve)
	r.mux.HandleFunc("POST /api/requests/{id}/reject", r.requestHandler.Reject)

	// Settings endpoints
	r.mux.HandleFunc("GET /api/settings", r.settingsHandler.Get)
	r.mux.HandleFunc("PUT /api/settings", r.settingsHandler.Replace)
	r.mux.HandleFunc("PATCH /api/settings", r.settingsHandler.Update)
	r.mux.HandleFunc("DELETE /api/settings", r.settingsHandler.Reset)

	r.mux.HandleFunc("GET /api/dashboard", r.dashboardHandler.Get)
	r.mux.HandleFunc("GET /api/export.xlsx", r.exportHandler.Workbook)

	// Apply middleware in reverse order (last middleware wraps first)
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)

	// CORS wraps everything so preflight requests never reach the mux
	handler = middleware.CORSMiddleware(r.allowedOrigins)(handler)

	return handler
}
