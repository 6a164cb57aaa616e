package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/Lelo88/items-web-golang/internal/config"
	"github.com/Lelo88/items-web-golang/internal/db"
	"github.com/Lelo88/items-web-golang/internal/docs"
	"github.com/Lelo88/items-web-golang/internal/health"
	"github.com/Lelo88/items-web-golang/internal/httpx"
	"github.com/Lelo88/items-web-golang/internal/items"
	"github.com/Lelo88/items-web-golang/internal/logger"
	"github.com/Lelo88/items-web-golang/internal/web"
)

// appPool es lo que la app necesita del pool de conexiones.
type appPool interface {
	items.DB
	health.Pinger
	Close()
}

// appDeps agrupa las dependencias de run para poder testearlo.
type appDeps struct {
	loadConfig     func() (config.Config, error)
	newLogger      func(level string) (*zap.Logger, error)
	newPool        func(ctx context.Context, databaseURL string) (appPool, error)
	listenAndServe func(addr string, handler http.Handler) error
}

func defaultDeps() appDeps {
	return appDeps{
		loadConfig: config.Load,
		newLogger:  logger.New,
		newPool: func(ctx context.Context, databaseURL string) (appPool, error) {
			pool, err := db.NewPool(ctx, databaseURL)
			if err != nil {
				return nil, err
			}
			return pool, nil
		},
		listenAndServe: http.ListenAndServe,
	}
}

func main() {
	if err := run(context.Background(), defaultDeps()); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, deps appDeps) error {
	cfg, err := deps.loadConfig()
	if err != nil {
		return err
	}

	logg, err := deps.newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logg.Sync() }()

	// Pool único para todo el proceso; si falla, el arranque aborta.
	pool, err := deps.newPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("acquire pool: %w", err)
	}
	defer pool.Close()

	router, err := newRouter(logg, pool)
	if err != nil {
		return err
	}

	addr := cfg.Addr()
	logg.Info("listening", zap.String("addr", addr))
	return deps.listenAndServe(addr, router)
}

func newRouter(logg *zap.Logger, pool appPool) (chi.Router, error) {
	r := chi.NewRouter()

	// Middlewares base para trazabilidad y estabilidad.
	r.Use(middleware.RealIP)
	r.Use(httpx.RequestID)
	r.Use(httpx.Logger(logg))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(10 * time.Second))

	// Errores de routing se manejan a nivel router.
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		httpx.Fail(w, req, http.StatusNotFound, "not_found", "resource not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		httpx.Fail(w, req, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})

	repository := items.NewRepository(pool)
	service := items.NewService(repository)

	// API JSON y vistas HTML comparten el mismo service.
	items.RegisterRoutes(r, items.NewHandler(service))

	webHandler, err := web.NewHandler(service, logg)
	if err != nil {
		return nil, err
	}
	web.RegisterRoutes(r, webHandler)

	healthHandler := health.New(pool)
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)

	docs.RegisterRoutes(r)

	return r, nil
}
