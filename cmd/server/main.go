// @title        User Directory API
// @version      1.0
// @description  Fetches users.json once and serves it as an HTML table and as JSON.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/99minutos/user-directory/internal/api"
	"github.com/99minutos/user-directory/internal/core/store"
	"github.com/99minutos/user-directory/internal/infrastructure/usersapi"
	"github.com/99minutos/user-directory/internal/pkg/config"
	"github.com/99minutos/user-directory/internal/view"
	"github.com/99minutos/user-directory/pkg/logger"
)

const serviceName = "user-directory"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", serviceName, err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: serviceName,
	})

	st := store.New(store.Reduce, logger.Component(log, "store"))
	container := view.NewContainer(
		st,
		usersapi.NewClient(nil),
		cfg.BaseURL,
		logger.Component(log, "container"),
	)
	e := api.NewRouter(st, container, logger.Component(log, "http"))

	container.Mount(ctx)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Str("users_uri", container.URI()).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		return shutdown(e, container, cfg.ShutdownTimeout, log)
	})

	return g.Wait()
}

type echoServer interface {
	Shutdown(ctx context.Context) error
}

// shutdown unmounts the container, dropping any in-flight fetch, then drains
// the HTTP server.
func shutdown(srv echoServer, container *view.Container, timeout time.Duration, log zerolog.Logger) error {
	log.Info().Msg("shutting down")
	container.Unmount()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
