// Command webbio-server provides a REST API for sequence alignment.
//
// Usage:
//
//	webbio-server [options]
//
// Options:
//
//	-port         Port to listen on (default: 8080)
//	-host         Host to bind to (default: localhost)
//	-timeout      Per-request timeout (default: 60s)
//	-max-length   Longest accepted sequence (default: 10000)
//	-max-cells    Largest (len1+1)*(len2+1) of an aligned pair (default: 4000000)
//	-max-targets  Most targets of a batch request (default: 1000)
//	-workers      Alignments of one batch computed at once (default: number of CPUs)
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

	"github.com/aria-lang/webbio-go/api"
	"github.com/dustin/go-humanize"
)

func main() {
	cfg := api.DefaultConfig()
	flag.IntVar(&cfg.Port, "port", cfg.Port, "Port to listen on")
	flag.StringVar(&cfg.Host, "host", cfg.Host, "Host to bind to")
	flag.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Per-request timeout")
	flag.IntVar(&cfg.Limits.MaxLength, "max-length", cfg.Limits.MaxLength, "Longest accepted sequence")
	flag.IntVar(&cfg.Limits.MaxCells, "max-cells", cfg.Limits.MaxCells, "Largest (len1+1)*(len2+1) of an aligned pair")
	flag.IntVar(&cfg.Limits.MaxTargets, "max-targets", cfg.Limits.MaxTargets, "Most targets of a batch request")
	flag.IntVar(&cfg.Limits.Workers, "workers", cfg.Limits.Workers, "Alignments of one batch computed at once")
	flag.Parse()

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      api.NewRouter(cfg),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Timeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan bool, 1)
	quit := make(chan os.Signal, 1)

	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		server.SetKeepAlivesEnabled(false)
		if err := server.Shutdown(ctx); err != nil {
			log.Fatalf("Could not gracefully shutdown: %v\n", err)
		}
		close(done)
	}()

	cells := uint64(cfg.Limits.MaxLength+1) * uint64(cfg.Limits.MaxLength+1)
	if cfg.Limits.MaxCells > 0 && uint64(cfg.Limits.MaxCells) < cells {
		cells = uint64(cfg.Limits.MaxCells)
	}
	log.Printf("webbio API server starting on http://%s (max length %s, up to %s of matrices per alignment)\n",
		addr, humanize.Comma(int64(cfg.Limits.MaxLength)), humanize.Bytes(3*8*cells))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on %s: %v\n", addr, err)
	}

	<-done
	log.Println("Server stopped")
}
