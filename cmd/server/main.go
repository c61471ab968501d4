// Command server runs a local sandbox of the gateway's Block endpoint.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"go-payture-block/internal/api/handlers"
	"go-payture-block/internal/config"
	"go-payture-block/internal/errors"
	"go-payture-block/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	lgr := logger.New(cfg.LogLevel)
	lgr.Info("Starting sandbox Block gateway", map[string]interface{}{
		"environment": cfg.AppEnv,
	}, logger.ChannelSystem)

	errorHandler := errors.New(lgr, cfg.IsDevelopment())

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	store := handlers.NewBlockStore(cfg.DuplicateOrderID)
	router := handlers.NewRouter(cfg, lgr, errorHandler, store)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.AppPort),
		Handler: router,
	}

	go func() {
		lgr.Info("Server starting", map[string]interface{}{
			"port":       cfg.AppPort,
			"block_path": handlers.BlockPath,
		}, logger.ChannelSystem)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			lgr.Critical("Failed to start server", map[string]interface{}{
				"error": err.Error(),
			}, logger.ChannelSystem)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	lgr.Info("Server shutting down...", nil, logger.ChannelSystem)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		lgr.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		}, logger.ChannelSystem)
	}

	lgr.Info("Server exited", nil, logger.ChannelSystem)
}
