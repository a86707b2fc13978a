// Package http is the REST delivery layer of the bookmarks service: routing,
// bearer token authentication, request decoding and the mapping of use case
// errors to status codes.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/vadimbarashkov/bookmarks/internal/entity"
	"github.com/vadimbarashkov/bookmarks/pkg/middleware/recoverer"

	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter initializes a chi router with the middleware chain and all API routes.
func NewRouter(
	logger *httplog.Logger,
	tokens tokenVerifier,
	authUseCase authUseCase,
	bookmarkUseCase bookmarkUseCase,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"POST", "GET", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           84600,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httplog.RequestLogger(logger))
	r.Use(recoverer.New(logger.Logger))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/swagger.yml"),
	))

	r.Get("/docs/swagger.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./docs/swagger.yml")
	})

	validate := newValidator()
	authH := newAuthHandler(authUseCase, validate)
	bookmarkH := newBookmarkHandler(bookmarkUseCase, validate)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/ping", handlePing)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authH.register)
			r.Post("/login", authH.login)
			r.Post("/token/refresh", authH.refresh)
			r.With(requireToken(tokens, entity.TokenAccess)).Get("/me", authH.me)
		})

		r.Route("/bookmarks", func(r chi.Router) {
			r.Use(requireToken(tokens, entity.TokenAccess))

			r.Get("/", bookmarkH.list)
			r.Post("/", bookmarkH.create)
			r.Get("/stats", bookmarkH.stats)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", bookmarkH.get)
				r.Put("/", bookmarkH.update)
				r.Patch("/", bookmarkH.update)
				r.Delete("/", bookmarkH.remove)
			})
		})
	})

	r.Get("/{shortURL}", bookmarkH.visit)

	return r
}
