package main

import (
	"context"
	"embed"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goliatone/go-datagen/components/bankdata"
	"github.com/goliatone/go-datagen/components/payloads"
)

//go:embed public
var publicFS embed.FS

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	addrFlag := flag.String("addr", defaultAddr(), "listen address")
	shutdownGrace := flag.Duration("shutdown-grace", 10*time.Second, "graceful shutdown timeout")
	devFlag := flag.Bool("dev", false, "use development logging")
	flag.Parse()

	logger, err := buildLogger(*devFlag)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	mux := http.NewServeMux()

	dataRoutes, err := bankdata.RegisterRoutes(mux, "/", bankdata.WithLogger(logger))
	if err != nil {
		logger.Fatal("register bank data routes", zap.Error(err))
	}
	payloadRoutes, err := payloads.RegisterRoutes(mux, "/api/payloads", payloads.WithLogger(logger))
	if err != nil {
		logger.Fatal("register payload routes", zap.Error(err))
	}

	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", rootHandler())

	httpServer := &http.Server{
		Addr:              *addrFlag,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("listening",
		zap.String("addr", *addrFlag),
		zap.Strings("data_routes", dataRoutes),
		zap.Strings("payload_routes", payloadRoutes),
	)

	errChan := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errChan:
		logger.Fatal("listen", zap.Error(err))
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), *shutdownGrace)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
}

// rootHandler serves the landing page at "/" exactly and the JSON 404
// for every path no other route claimed.
func rootHandler() http.Handler {
	notFound := bankdata.NotFoundHandler()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			notFound.ServeHTTP(w, r)
			return
		}
		page, err := publicFS.ReadFile("public/index.html")
		if err != nil {
			notFound.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(page)
	})
}

func buildLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func defaultAddr() string {
	if addr := strings.TrimSpace(os.Getenv("DATAGEN_ADDR")); addr != "" {
		return addr
	}
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		return ":" + port
	}
	return ":3000"
}
