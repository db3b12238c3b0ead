package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/medilab/lab-api/internal/config"
	authHandler "github.com/medilab/lab-api/internal/handler/auth"
	catalogHandler "github.com/medilab/lab-api/internal/handler/catalog"
	"github.com/medilab/lab-api/internal/handler/health"
	paymentHandler "github.com/medilab/lab-api/internal/handler/payment"
	resultHandler "github.com/medilab/lab-api/internal/handler/result"
	"github.com/medilab/lab-api/internal/repository"
	"github.com/medilab/lab-api/internal/repository/mongodb"
	"github.com/medilab/lab-api/internal/router"
	authService "github.com/medilab/lab-api/internal/service/auth"
	catalogService "github.com/medilab/lab-api/internal/service/catalog"
	paymentService "github.com/medilab/lab-api/internal/service/payment"
	resultService "github.com/medilab/lab-api/internal/service/result"
	"github.com/medilab/lab-api/pkg/logger"
)

func main() {
	log := logger.NewLogger(nil)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err, "failed to load configuration")
	}

	// Initialize the document store. A missing or unreachable store is
	// not fatal: the service keeps serving and reports the condition on
	// the diagnostic endpoint, while data operations answer 503.
	var store repository.Store = repository.NewUnavailableStore()
	var diag health.Diagnoser

	if cfg.Database.URL != "" {
		ms, err := mongodb.New(context.Background(), cfg.Database)
		if err != nil {
			log.Warn(err, "failed to initialize store")
		} else {
			store = ms
			diag = ms

			pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := ms.Ping(pingCtx); err != nil {
				log.Warn(err, "store not reachable at startup")
			}
			cancel()

			defer func() {
				if err := ms.Close(context.Background()); err != nil {
					log.Warn(err, "failed to close store connection")
				}
			}()
		}
	} else {
		log.Warn(nil, "DATABASE_URL not set, running without a store")
	}

	// Initialize services
	authSvc := authService.NewService(store)
	catalogSvc := catalogService.NewService(store)
	paymentSvc := paymentService.NewService(store)
	resultSvc := resultService.NewService(store)

	// Setup router
	r := router.New(
		router.DefaultConfig(),
		health.NewHandler(diag, cfg.Database),
		authHandler.NewHandler(authSvc),
		catalogHandler.NewHandler(catalogSvc),
		paymentHandler.NewHandler(paymentSvc),
		resultHandler.NewHandler(resultSvc),
	)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		log.WithFields(map[string]interface{}{"port": cfg.Server.Port}).Info("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err, "failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal(err, "server forced to shutdown")
	}

	log.Info("server exited properly")
}
