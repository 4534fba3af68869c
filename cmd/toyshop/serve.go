package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/toyshop/internal/domain"
	"github.com/kahvecikaan/toyshop/internal/events"
	"github.com/kahvecikaan/toyshop/internal/images"
	"github.com/kahvecikaan/toyshop/internal/service"
	httpTransport "github.com/kahvecikaan/toyshop/internal/transport/http"
	websocketTransport "github.com/kahvecikaan/toyshop/internal/transport/websocket"
	"github.com/spf13/cobra"
)

const (
	shutdownTimeout = 30 * time.Second
	maxImageBytes   = 5 << 20
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	// Create a standard logger for the HTTP server
	standardLogger := logger.StandardLogger(&hclog.StandardLoggerOptions{InferLevels: true})

	st, err := openStores(cfg, logger)
	if err != nil {
		logger.Error("Unable to open store", "store", cfg.Store, "error", err)
		return err
	}
	defer st.Close()

	if cfg.Seed {
		if err := seed(cmd.Context(), st, logger); err != nil {
			logger.Error("Unable to seed demo catalog", "error", err)
			return err
		}
	}

	// Shared between the services and the websocket stream
	eventBus := events.NewEventBus[any]()

	ts := service.NewToyService(st.toys, st.categories, eventBus, logger.Named("toy-service"))
	cs := service.NewCategoryService(st.categories, st.toys, eventBus, logger.Named("category-service"))

	validator := domain.NewValidation()

	th := httpTransport.NewToyHandler(ts, logger.Named("toy-handler"))
	ch := httpTransport.NewCategoryHandler(cs, logger.Named("category-handler"))
	sh := httpTransport.NewSystemHandler(st.pinger, logger.Named("system-handler"))

	imageStore, err := images.NewLocal(cfg.ImagePath, maxImageBytes)
	if err != nil {
		logger.Error("Unable to create image store", "path", cfg.ImagePath, "error", err)
		return err
	}
	ih := httpTransport.NewImageHandler(imageStore, ts, logger.Named("image-handler"))

	wh := websocketTransport.NewHandler(logger.Named("websocket-handler"), eventBus)

	cors := httpTransport.DefaultCORSConfig()
	cors.AllowedOrigins = cfg.CORSOrigins

	router := httpTransport.NewRouter(th, ch, sh, ih, validator, logger.Named("http"), wh, cors)

	server := &http.Server{
		Addr:         cfg.BindAddress,
		Handler:      router,
		ErrorLog:     standardLogger,
		IdleTimeout:  120 * time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "bind_address", cfg.BindAddress, "store", cfg.Store)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		logger.Error("Error starting server", "error", err)
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error shutting down server", "error", err)
		return err
	}
	return nil
}
