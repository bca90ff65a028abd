/*
main.go - HTTP server entry point

PURPOSE:
  Starts the FC60 engine HTTP API. Loads configuration, builds the
  handler and router, and shuts down gracefully.

STARTUP SEQUENCE:
  1. Load configuration from the environment
  2. Apply command-line flag overrides
  3. Create API handler and router
  4. Run self-test vectors once and log the result
  5. Start server with graceful shutdown

ENVIRONMENT:
  FC60_PORT            HTTP server port (default: 8080)
  FC60_CORS_ORIGINS    Comma-separated allowed origins (default: *)
  FC60_DEFAULT_SYSTEM  Numerology system for requests without one
                       (default: pythagorean)
  FC60_DEFAULT_TZ      UTC offset for moments without one (default: +00:00)

COMMAND-LINE FLAGS:
  -port     Overrides FC60_PORT
  -system   Overrides FC60_DEFAULT_SYSTEM
  -tz       Overrides FC60_DEFAULT_TZ

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Exit

SEE ALSO:
  - api/server.go: Router configuration
  - config/config.go: Environment settings
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/warp/fc60/api"
	"github.com/warp/fc60/config"
	"github.com/warp/fc60/fc60"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Flags override the environment
	flag.IntVar(&cfg.Port, "port", cfg.Port, "HTTP server port")
	flag.StringVar(&cfg.SystemTag, "system", cfg.SystemTag, "default numerology system")
	flag.StringVar(&cfg.TZ, "tz", cfg.TZ, "default UTC offset, e.g. +08:00")
	flag.Parse()
	if err := cfg.Resolve(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	selfTest := fc60.RunSelfTest()
	for _, res := range selfTest.Results {
		if !res.Pass {
			log.Printf("Self-test %s: want %s, got %s", res.Name, res.Want, res.Got)
		}
	}
	if !selfTest.OK() {
		log.Fatalf("Self-test failed: %d vector(s)", selfTest.Failed)
	}

	handler := api.NewHandler(cfg.System, cfg.TZOffsetMinutes)
	router := api.NewRouter(handler, cfg.CORSOrigins)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on http://localhost:%d (system=%s, tz=%s)", cfg.Port, cfg.System, fc60.FormatOffset(cfg.TZOffsetMinutes))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
