package httpapi

import (
	"github.com/go-chi/cors"

	"github.com/barberbook/barberbook/internal/logging"
	"github.com/barberbook/barberbook/internal/server/auth"
	"github.com/barberbook/barberbook/internal/server/repositories/clients"
)

// NewRouter mounts the full API surface. Everything except login sits behind
// the token check.
func NewRouter(authSvc *auth.Service, clientsRepo clients.Repository, log logging.Logger) *Mux {
	mux := NewMux(log)

	mux.Router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	authHandler := NewAuthHandler(authSvc, log)
	clientsHandler := NewClientsHandler(clientsRepo)

	mux.Route("/api", func(r *Mux) {
		r.Post("/login", authHandler.LoginHandler)

		r.Group(func(r *Mux) {
			r.Router.Use(requireAuth(authSvc))
			r.Get("/session", authHandler.SessionHandler)
			r.Post("/logout", authHandler.LogoutHandler)
			r.Get("/clients", clientsHandler.ListHandler)
			r.Put("/clients/{clientID}", clientsHandler.UpdateHandler)
			r.Delete("/clients/{clientID}", clientsHandler.DeleteHandler)
		})
	})

	return mux
}
