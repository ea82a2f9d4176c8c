package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/laplogger/internal/middleware"
	"github.com/laplogger/internal/repository"
	"github.com/laplogger/internal/service"
)

// NewRouter собирает маршруты хранилища результатов: /api/auth/* открыты, остальное за BearerAuth.
// corsOrigin пустой: "*".
func NewRouter(repo *repository.Store, authSvc *service.AuthService, corsOrigin string) http.Handler {
	if corsOrigin == "" {
		corsOrigin = "*"
	}
	authH := NewAuthHandler(authSvc)
	swimmerH := NewSwimmerHandler(repo)
	timeH := NewTimeHandler(repo)
	refH := NewReferenceHandler(repo)

	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(middleware.RecoverJSON)
	r.Use(middleware.RequestLog)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{corsOrigin},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", authH.Register)
		r.Post("/auth/login", authH.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.BearerAuth(authSvc))
			r.Get("/swimmers", swimmerH.GetSwimmers)
			r.Post("/swimmers", swimmerH.CreateSwimmer)
			r.Get("/swimmers/{id}", swimmerH.GetSwimmer)
			r.Get("/times", timeH.GetAllTimes)
			r.Post("/times", timeH.CreateTime)
			r.Get("/times/{swimmerID}", timeH.GetTimesBySwimmer)
			r.Get("/strokes", refH.GetStrokes)
			r.Get("/events", refH.GetEvents)
		})
	})
	return r
}
