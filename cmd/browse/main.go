package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spec-kit/videogames-portal/internal/browser"
	"github.com/spec-kit/videogames-portal/internal/catalog"
	"github.com/spec-kit/videogames-portal/internal/client"
	"github.com/spec-kit/videogames-portal/internal/config"
	"github.com/spec-kit/videogames-portal/internal/session"
)

// The browser runs fully local by default, with simulated latency
// standing in for the network. Setting PORTAL_API_URL points it at a
// running portal API instead; the same views run over the HTTP client.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	store, err := session.NewFileStore(cfg.Session.FileDir)
	if err != nil {
		log.Fatalf("failed to open session store: %v", err)
	}

	var (
		issuer   browser.TokenIssuer
		provider catalog.Provider
	)
	if cfg.Client.APIBaseURL != "" {
		api := client.New(cfg.Client.APIBaseURL, store)
		issuer = api
		provider = api
	} else {
		issuer = session.NewIssuer(store, cfg.Session)
		provider = catalog.NewStaticProvider(cfg.Catalog)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	b := browser.New(store, issuer, provider, os.Stdin, os.Stdout)
	if err := b.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("browser failed: %v", err)
	}
}
