package router

import (
	"net/http"

	"clinic-api/app/controllers"
	"clinic-api/app/middleware"
)

// New builds the route table. Auth endpoints are public (register/login pass
// through the credential throttle); everything else requires a bearer access
// token.
func New(
	auth *controllers.AuthController,
	users *controllers.UserController,
	doctors *controllers.DoctorController,
	patients *controllers.PatientController,
	appointments *controllers.AppointmentController,
	mw *middleware.Auth,
	throttle *middleware.Throttle,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /ping", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("pong"))
	})

	// public
	mux.Handle("POST /api/auth/register", throttle.Wrap(http.HandlerFunc(auth.Register)))
	mux.Handle("POST /api/auth/login", throttle.Wrap(http.HandlerFunc(auth.Login)))
	mux.HandleFunc("POST /api/auth/refresh", auth.Refresh)
	mux.HandleFunc("POST /api/auth/logout", auth.Logout)

	protected := func(h http.HandlerFunc) http.Handler { return mw.RequireAuth(h) }

	mux.Handle("GET /api/users", protected(users.List))
	mux.Handle("GET /api/users/me", protected(users.Me))
	mux.Handle("GET /api/users/{id}", protected(users.Get))
	mux.Handle("PATCH /api/users/{id}", protected(users.Update))
	mux.Handle("DELETE /api/users/{id}", protected(users.Delete))

	mux.Handle("GET /api/doctors", protected(doctors.List))
	mux.Handle("GET /api/doctors/{id}", protected(doctors.Get))
	mux.Handle("POST /api/doctors", protected(doctors.Create))
	mux.Handle("PATCH /api/doctors/{id}", protected(doctors.Update))
	mux.Handle("DELETE /api/doctors/{id}", protected(doctors.Delete))

	mux.Handle("GET /api/patients", protected(patients.List))
	mux.Handle("GET /api/patients/{id}", protected(patients.Get))
	mux.Handle("POST /api/patients", protected(patients.Create))
	mux.Handle("PATCH /api/patients/{id}", protected(patients.Update))
	mux.Handle("DELETE /api/patients/{id}", protected(patients.Delete))

	mux.Handle("POST /api/appointments", protected(appointments.Create))
	mux.Handle("GET /api/appointments", protected(appointments.List))
	mux.Handle("GET /api/appointments/{id}", protected(appointments.Get))
	mux.Handle("PATCH /api/appointments/{id}/status", protected(appointments.UpdateStatus))
	mux.Handle("DELETE /api/appointments/{id}", protected(appointments.Delete))

	return mux
}
