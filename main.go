package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"cancerdash/internal"
	"cancerdash/internal/config"
	"cancerdash/internal/dashboard"
	"cancerdash/ui"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.NewLogger(internal.ParseLogLevel(appConfig.Log.Level))
	gin.SetMode(appConfig.Server.GinMode)

	// The dataset is read once; a missing or malformed file stops startup.
	state, err := dashboard.LoadState(appConfig, logger)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	server, err := ui.NewServer(state, logger)
	if err != nil {
		log.Fatalf("Failed to create UI server: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, appConfig, server.Handler(), logger); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
	logger.Info("Server stopped")
}

// serve runs the HTTP server until ctx is cancelled, then shuts it down
// within the configured timeout.
func serve(ctx context.Context, appConfig *config.Config, handler http.Handler, logger *internal.Logger) error {
	httpServer := &http.Server{
		Addr:    appConfig.Addr(),
		Handler: handler,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting dashboard on %s", appConfig.Addr())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), appConfig.Server.ShutdownTimeout)
		defer cancel()
		logger.Info("Shutting down (timeout %s)", appConfig.Server.ShutdownTimeout)
		return httpServer.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
