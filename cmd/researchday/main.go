// Command researchday serves the Research Day scoring API.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vetmed/research-day/infrastructure/api"
	"github.com/vetmed/research-day/infrastructure/leaderboard"
	"github.com/vetmed/research-day/infrastructure/storage"
	"github.com/vetmed/research-day/internal/application"
	"github.com/vetmed/research-day/internal/ports"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config (empty for defaults)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		log.Fatalf("researchday: %v", err)
	}
}

func run(configPath string) error {
	cfg, err := application.LoadConfig(configPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := storage.Open(ctx, storage.Driver(cfg.Database.Driver), cfg.Database.DSN)
	if err != nil {
		return err
	}
	defer db.Close()
	store := storage.NewSQLStore(db, storage.Driver(cfg.Database.Driver))

	var lb ports.Leaderboard
	if cfg.Redis.Enabled {
		rlb := leaderboard.New(cfg.Redis.Addr)
		defer rlb.Close()
		lb = rlb
		log.Printf("leaderboard mirror enabled at %s", cfg.Redis.Addr)
	}

	svc := application.NewService(store, store, store, lb, cfg.AwardCategories())
	router := api.NewRouter(svc, cfg.Server, prometheus.NewRegistry())

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s (driver=%s)", cfg.Server.Addr, cfg.Database.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
