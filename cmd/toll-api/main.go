// README: Entry point; loads config, wires the toll service and serves the HTTP API until signalled.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"tollcalc/internal/config"
	httptransport "tollcalc/internal/http"
	"tollcalc/internal/logger"
	"tollcalc/internal/modules/toll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	appLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer appLogger.Sync()

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tollSvc := toll.NewService(appLogger,
		toll.WithCurrency(cfg.Toll.Currency),
		toll.WithLocation(cfg.Toll.Location),
	)

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Toll:   tollSvc,
		Logger: appLogger,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler.Routes()}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		appLogger.Info("starting server",
			zap.String("addr", cfg.HTTP.Addr),
			zap.String("env", cfg.Env),
			zap.String("timezone", cfg.Toll.Timezone),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		appLogger.Fatal("server exited with error", zap.Error(err))
	}
	appLogger.Info("server exiting")
}
