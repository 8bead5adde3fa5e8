package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/verigle/wandb/internal/adapters/primary/http/handlers"
	"github.com/verigle/wandb/internal/adapters/primary/http/middleware"
	"github.com/verigle/wandb/internal/adapters/secondary/graphql"
	"github.com/verigle/wandb/internal/config"
	"github.com/verigle/wandb/internal/core/services"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warnf("load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	// ============================================================================
	// Hexagonal Architecture Wiring
	// ============================================================================

	// Secondary Adapter (Output Port - GraphQL transport)
	client := graphql.NewGraphQLClient(&cfg.API, &cfg.Retry)
	defer client.Close()
	log.WithField("url", cfg.API.URL).Info("graphql client initialized")

	// Core Services (Application Layer)
	artifactSvc := services.NewArtifactService(client)

	// Primary Adapter (HTTP Handlers)
	h := handlers.New(artifactSvc)

	// Setup router
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())

	api := router.Group("/api/v1/artifacts")
	h.RegisterRoutes(api)

	// Health check reports an open circuit breaker as unhealthy
	router.GET("/healthz", func(c *gin.Context) {
		if client.Tripped() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": "tracking server circuit open"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
