// internal/wire/wire.go
package wire

import (
	"github.com/Thanchanok1900/FinalWorkshopAjRoyle/internal/adaptor"
	"github.com/Thanchanok1900/FinalWorkshopAjRoyle/internal/data/repository"
	"github.com/Thanchanok1900/FinalWorkshopAjRoyle/internal/usecase"
	"github.com/Thanchanok1900/FinalWorkshopAjRoyle/pkg/middleware"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds all top-level dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, logger *zap.Logger) *App {
	// Initialize services and handlers
	service := usecase.NewService(repo, logger)
	handler := adaptor.NewHandler(service, logger)

	// Setup router
	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.Metrics)
	r.Use(middleware.CORS())

	// Apply routes
	wireMovie(r, handler.Movie)
	wireReview(r, handler.Review)

	// Root welcome endpoint
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Welcome to the Movie Reviews API"))
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	return r
}
