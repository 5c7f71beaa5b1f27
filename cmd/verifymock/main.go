package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"github.com/ecotrack-app/ecotrack/internal/logging"
	"github.com/ecotrack-app/ecotrack/internal/verifymock"
)

func main() {

	addr := flag.String("a", ":8000", "address to listen on")
	flag.Parse()

	logger := logging.NewSlogLogger(slog.New(logging.NewColorHandler(os.Stdout, nil)))

	ctx := context.Background()

	srv := verifymock.NewServer(*addr, verifymock.NewHandler(logger), logger)

	errCh := make(chan error, 1)
	srv.Start(ctx, errCh)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)

	select {
	case err := <-errCh:
		logger.Error(ctx, "server failed", "error", err)
		os.Exit(1)
	case <-stop:
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error(ctx, "shutdown error", "error", err)
			os.Exit(1)
		}
	}
}
