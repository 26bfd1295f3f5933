package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dydtjq94/lycon-engine/internal/http/auth"
	calculatorHandler "github.com/dydtjq94/lycon-engine/internal/http/calculator"
	importHandler "github.com/dydtjq94/lycon-engine/internal/http/importcsv"
	instrumentHandler "github.com/dydtjq94/lycon-engine/internal/http/instrument"
	profileHandler "github.com/dydtjq94/lycon-engine/internal/http/profile"
	simulationHandler "github.com/dydtjq94/lycon-engine/internal/http/simulation"
)

func New(
	profilesV1 *profileHandler.Handler,
	instrumentsV1 *instrumentHandler.Handler,
	simulationV1 *simulationHandler.Handler,
	calculatorV1 *calculatorHandler.Handler,
	importV1 *importHandler.Handler,
	allowedOrigins []string,
	authSecret string,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		// The standalone calculator page is public.
		r.Route("/calculator", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			calculatorV1.Routes(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(authSecret))

			r.Route("/profiles", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.AllowContentType("application/json"))
					profilesV1.Routes(r)
				})

				r.Route("/{id}/instruments", func(r chi.Router) {
					r.Use(middleware.AllowContentType("application/json"))
					instrumentsV1.Routes(r)
				})

				simulationV1.Routes(r)

				r.Route("/{id}/import", importV1.Routes)
			})
		})
	})

	return router
}
