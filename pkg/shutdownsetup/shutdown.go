package shutdownsetup

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smart-restaurant/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// SetupGracefulShutdown blocks until SIGINT/SIGTERM, then drains the HTTP
// server within a bounded timeout.
func SetupGracefulShutdown(server *http.Server, log *logger.Logger) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	sig := <-stop
	log.Info("Shutdown signal received", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown failed", "error", err)
		return
	}

	log.Info("Server exited gracefully")
}
