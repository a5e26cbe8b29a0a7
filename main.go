// File: campusbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campusbook/config"
	"campusbook/cron"
	"campusbook/database"
	commitmentRepo "campusbook/database/repository/commitment"
	workspaceRepo "campusbook/database/repository/workspace"
	"campusbook/handlers"
	"campusbook/middleware"
	"campusbook/routes"
	"campusbook/services/availability"
	"campusbook/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	commitRepo := commitmentRepo.NewMongoCommitmentRepo()
	wsRepo := workspaceRepo.NewMongoWorkspaceRepo()

	// engine and handlers.
	busyCache := availability.NewBusyCache()
	engine := &availability.DefaultAvailabilityEngine{
		Repo:  commitRepo,
		Cache: busyCache,
		Rules: availability.RulesFromConfig(),
	}

	availHandler := handlers.NewAvailabilityHandler(engine, logger)
	bookingHandler := handlers.NewBookingHandler(engine, utils.GetSessionCacheClient(), logger)
	workspaceHandler := handlers.NewWorkspaceHandler(wsRepo, logger)

	routes.RegisterRoutes(router, availHandler, bookingHandler, workspaceHandler)

	// Background workers.
	cron.InitCacheSweeper(busyCache)
	utils.StartHealthMonitor(utils.GetSessionCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
