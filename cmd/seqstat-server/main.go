// Command seqstat-server provides a REST API for FASTA/FASTQ statistics.
//
// Usage:
//
//	seqstat-server [options]
//
// Options:
//
//	-config   YAML config file (default: $SEQSTAT_CONFIG)
//	-port     Port to listen on (overrides the config)
//	-host     Host to bind to (overrides the config)
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/aria-lang/seqstat-go/api/handlers"
	"github.com/aria-lang/seqstat-go/api/middleware"
	"github.com/aria-lang/seqstat-go/internal/config"
	"github.com/aria-lang/seqstat-go/internal/logging"
)

func main() {
	configPath := flag.String("config", os.Getenv(config.EnvPath), "YAML config file")
	port := flag.Int("port", 0, "Port to listen on")
	host := flag.String("host", "", "Host to bind to")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("loading config", "err", err)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *host != "" {
		cfg.Server.Host = *host
	}

	logger := logging.New(os.Stderr, cfg.LogLevel)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      newRouter(logger, cfg),
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan struct{})
	quit := make(chan os.Signal, 1)

	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("server is shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		server.SetKeepAlivesEnabled(false)
		if err := server.Shutdown(ctx); err != nil {
			logger.Fatal("could not gracefully shutdown", "err", err)
		}
		close(done)
	}()

	logger.Info("seqstat API server starting", "addr", "http://"+server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("could not listen", "addr", server.Addr, "err", err)
	}

	<-done
	logger.Info("server stopped")
}

func newRouter(logger *log.Logger, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	handlers.Register(r, logger, cfg.Server.MaxBodyBytes)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(homePage))
	})

	return r
}

const homePage = `<!DOCTYPE html>
<html>
<head>
    <title>seqstat API</title>
    <style>
        body { font-family: system-ui, sans-serif; max-width: 800px; margin: 2rem auto; padding: 0 1rem; }
        pre { background: #f3f4f6; padding: 1rem; border-radius: 0.5rem; overflow-x: auto; }
        .endpoint { margin: 1rem 0; padding: 1rem; border: 1px solid #e5e7eb; border-radius: 0.5rem; }
        .method { display: inline-block; padding: 0.25rem 0.5rem; background: #10b981; color: white; border-radius: 0.25rem; font-size: 0.875rem; }
    </style>
</head>
<body>
    <h1>seqstat API</h1>
    <p>Length, GC and N50 statistics for FASTA and FASTQ files.</p>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/stats/{fasta|fa|fastq|fq}</code>
        <p>Send the raw file as the request body. Query parameters:
        <code>min_length</code>, <code>max_length</code> (0 = unbounded),
        <code>records=true</code>, <code>sequences=true</code>, <code>name</code>.</p>
        <pre>curl --data-binary @reads.fq 'localhost:8080/api/stats/fastq?min_length=50'</pre>
    </div>
</body>
</html>`
