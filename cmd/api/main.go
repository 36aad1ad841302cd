package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/videogames-portal/internal/api/http"
	"github.com/spec-kit/videogames-portal/internal/api/http/handlers"
	"github.com/spec-kit/videogames-portal/internal/catalog"
	"github.com/spec-kit/videogames-portal/internal/config"
	"github.com/spec-kit/videogames-portal/internal/observability"
	"github.com/spec-kit/videogames-portal/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	store, storePing, err := newStore(cfg, logger)
	if err != nil {
		logger.Fatal("failed to open session store", zap.Error(err))
	}

	issuer := session.NewIssuer(store, cfg.Session)
	provider := catalog.NewStaticProvider(cfg.Catalog)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:  handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, storePing),
		Auth:    handlers.NewAuthHandler(issuer, store),
		Catalog: handlers.NewCatalogHandler(provider),
		Guard:   httptransport.NewRouteGuard(store),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

// newStore selects the session store backing per configuration.
func newStore(cfg *config.Config, logger *zap.Logger) (session.Store, handlers.Pinger, error) {
	switch cfg.Session.StoreKind {
	case "redis":
		store := session.NewRedisStore(cfg.Redis, logger)
		return store, store, nil
	case "memory":
		return session.NewMemoryStore(), nil, nil
	default:
		store, err := session.NewFileStore(cfg.Session.FileDir)
		return store, nil, err
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
