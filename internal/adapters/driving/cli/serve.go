package cli

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/subashshanmugmam/Document-Similarity-Checker/internal/adapters/driving/httpapi"
)

var serveListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Serves the document and analysis API over HTTP. The process runs until
interrupted; SIGINT or SIGTERM triggers a graceful shutdown that waits
for in-flight analyses to finish.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "Listen address (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if analyzerService == nil || documentService == nil {
		return errors.New("services not configured")
	}

	listen := serveListen
	if listen == "" {
		listen = appConfig.API.Listen
	}

	logger := newSlogLogger(appConfig.LogLevel, appConfig.LogFormat)

	apiCfg := &httpapi.Config{
		MaxRequestBody:    appConfig.API.MaxRequestBody,
		RequestsPerMinute: appConfig.API.RequestsPerMinute,
		DefaultThreshold:  appConfig.Analysis.DefaultThreshold,
		IncludeAllPairs:   appConfig.Analysis.IncludeAllPairs,
	}

	handler, cleanup := httpapi.Handler(analyzerService, documentService, apiCfg, logger)
	defer cleanup()

	srv := &http.Server{
		Addr:         listen,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  120 * time.Second,
		BaseContext:  func(_ net.Listener) context.Context { return context.Background() },
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "listen", listen)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-done:
	}

	logger.Info("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}

	// Let running analyses record their results before the store closes.
	analyzerService.Wait()
	logger.Info("server stopped")
	return nil
}

// newSlogLogger builds the server logger from the configured level and
// format.
func newSlogLogger(level, format string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(handler)
}
