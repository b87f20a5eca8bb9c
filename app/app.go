package app

import (
	"context"
	"errors"
	"fmt"
	"hbnb-api/config"
	"hbnb-api/db"
	"hbnb-api/handler"
	"hbnb-api/logger"
	"hbnb-api/model"
	"hbnb-api/repository"
	"hbnb-api/router"
	"hbnb-api/service"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
)

// App is a fully wired HTTP application.
type App struct {
	Config     *config.Config
	Router     *mux.Router
	Handler    http.Handler
	Extensions *Extensions

	users *service.UserService
}

// New builds an application for the given profile ("" means development).
// Configuration is loaded first, then the extensions are bound, then the
// routes and the error handlers are registered.
func New(profile string) (*App, error) {
	cfg, err := config.Load(profile, ".")
	if err != nil {
		return nil, err
	}
	logger.Init(cfg.LogLevel)

	a := &App{Config: cfg, Router: mux.NewRouter()}
	a.Router.StrictSlash(false)

	if err := NewExtensions().InitApp(a); err != nil {
		return nil, err
	}

	handlers := a.wire()
	router.RegisterRoutes(a.Router, handlers, handler.NewAuthMiddleware(a.Extensions.JWT))
	router.RegisterErrorHandlers(a.Router)

	a.Handler = a.Extensions.CORS.Handler(handler.RequestLogger(router.TrimTrailingSlash(a.Router)))

	logger.Log.WithField("profile", cfg.Profile).Info("Application created")
	return a, nil
}

func (a *App) wire() router.Handlers {
	ext := a.Extensions

	var cache service.ICacheClient
	if ext.Redis != nil {
		cache = ext.Redis
	}

	userRepo := repository.NewUserRepository(ext.DB)
	cityRepo := repository.NewCityRepository(ext.DB)
	amenityRepo := repository.NewAmenityRepository(ext.DB)
	placeRepo := repository.NewPlaceRepository(ext.DB)
	reviewRepo := repository.NewReviewRepository(ext.DB)

	authService := service.NewAuthService(userRepo, ext.Bcrypt, ext.JWT)
	userService := service.NewUserService(userRepo, reviewRepo, ext.Bcrypt, cache)
	countryService := service.NewCountryService(cityRepo)
	cityService := service.NewCityService(cityRepo, countryService, cache)
	amenityService := service.NewAmenityService(amenityRepo, cache)
	placeService := service.NewPlaceService(placeRepo, cityRepo, amenityRepo, cache)
	reviewService := service.NewReviewService(reviewRepo, placeRepo)
	a.users = userService

	return router.Handlers{
		Users:     handler.NewUserHandler(userService),
		Countries: handler.NewCountryHandler(countryService),
		Cities:    handler.NewCityHandler(cityService),
		Places:    handler.NewPlaceHandler(placeService, reviewService),
		Amenities: handler.NewAmenityHandler(amenityService),
		Reviews:   handler.NewReviewHandler(reviewService),
		Auth:      handler.NewAuthHandler(authService, userService),
	}
}

func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.Handler.ServeHTTP(w, r)
}

// Prepare checks the backing services and creates the entity tables.
func (a *App) Prepare(ctx context.Context) error {
	if err := db.Ping(ctx, a.Extensions.DB); err != nil {
		return err
	}
	if a.Extensions.Redis != nil {
		if err := db.PingRedis(ctx, a.Extensions.Redis); err != nil {
			return err
		}
	}
	return db.SyncSchema(a.Extensions.DB)
}

// CreateAdmin registers an administrator. An already registered email is
// returned unchanged with created set to false.
func (a *App) CreateAdmin(ctx context.Context, email, password string) (*model.User, bool, error) {
	return a.users.EnsureAdmin(ctx, email, password)
}

func (a *App) Close() error {
	return a.Extensions.Close()
}

// Run serves the application until SIGINT or SIGTERM.
func Run(profile string) error {
	a, err := New(profile)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = a.Prepare(ctx)
	cancel()
	if err != nil {
		return err
	}

	port := a.Config.Server.Port
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           a,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-quit:
	}

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Log.Info("Server exited properly")
	return nil
}
