package web

import (
	"net/http"

	"mandir/internal/adapters/http/middleware"
)

// registerRoutes attaches all API handlers to the mux. Routes under
// /api/ except login and health require an authenticated session.
func registerRoutes(mux *http.ServeMux) {
	authed := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireAuth(h)
	}

	mux.HandleFunc("/healthz", handleHealthz)

	mux.HandleFunc("/api/login", handleAPILogin)
	mux.HandleFunc("/api/signup", handleAPISignup)
	mux.Handle("/api/logout", authed(handleAPILogout))
	mux.Handle("/api/session", authed(handleAPISession))
	mux.Handle("/api/change-password", authed(handleAPIChangePassword))

	mux.Handle("/api/overview", authed(handleAPIOverview))

	mux.Handle("/api/sevas", authed(handleAPISevas))
	mux.Handle("/api/sevas/", authed(handleAPISevaBookings))

	mux.Handle("/api/events", authed(handleAPIEvents))
	mux.Handle("/api/events/", authed(handleAPIEventDetails))

	mux.Handle("/api/volunteers", authed(handleAPIVolunteers))
	mux.Handle("/api/volunteers/assign", authed(handleAPIAssign))
	mux.Handle("/api/volunteers/unassign", authed(handleAPIUnassign))
	mux.Handle("/api/volunteers/leave", authed(handleAPIMarkOnLeave))
	mux.Handle("/api/volunteers/available", authed(handleAPIMarkAvailable))

	mux.Handle("/api/donations", authed(handleAPIDonations))
	mux.Handle("/api/reports", authed(handleAPIReports))
	mux.Handle("/api/settings", authed(handleAPISettings))
}
