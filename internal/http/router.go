package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/lwhitworth8/ngi-ledger/internal/http/account"
	"github.com/lwhitworth8/ngi-ledger/internal/http/entity"
	"github.com/lwhitworth8/ngi-ledger/internal/http/entry"
	"github.com/lwhitworth8/ngi-ledger/internal/http/middleware"
	"github.com/lwhitworth8/ngi-ledger/internal/http/report"
)

func New(
	entitiesV1 *entity.Handler,
	accountsV1 *account.Handler,
	entriesV1 *entry.Handler,
	reportsV1 *report.Handler,
	jwtSecret string,
) http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(jwtSecret))

		r.Route("/entities", func(r chi.Router) {
			r.Use(chimiddleware.AllowContentType("application/json"))
			entitiesV1.Routes(r)
		})

		r.Route("/accounts", func(r chi.Router) {
			r.Use(chimiddleware.AllowContentType("application/json"))
			accountsV1.Routes(r)
		})

		r.Route("/entries", func(r chi.Router) {
			r.Use(chimiddleware.AllowContentType("application/json"))
			entriesV1.Routes(r)
		})

		r.Route("/reports", reportsV1.Routes)
	})

	return router
}
