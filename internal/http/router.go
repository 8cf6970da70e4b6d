package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/razoraze123/flux/internal/http/client"
	"github.com/razoraze123/flux/internal/http/debt"
	"github.com/razoraze123/flux/internal/http/finance"
	"github.com/razoraze123/flux/internal/http/invoice"
	"github.com/razoraze123/flux/internal/http/recurring"
)

func New(
	clientsV1 *client.Handler,
	financeV1 *finance.Handler,
	invoicesV1 *invoice.Handler,
	debtsV1 *debt.Handler,
	recurringV1 *recurring.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/clients", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			clientsV1.Routes(r)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			financeV1.Routes(r)
		})

		r.Route("/invoices", invoicesV1.Routes)

		r.Route("/debts", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			debtsV1.Routes(r)
		})

		r.Route("/recurring", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			recurringV1.Routes(r)
		})
	})

	return router
}
