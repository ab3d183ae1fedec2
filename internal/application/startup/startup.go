// Package startup prepares the application server
package startup

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BaillieLodges/beckons-go/config"
	"github.com/BaillieLodges/beckons-go/internal/application/container"
	"github.com/BaillieLodges/beckons-go/internal/presentation/http/server"
	"github.com/gin-gonic/gin"
)

// Initialize performs the complete startup sequence
func Initialize() error {
	setupLogging()

	start := time.Now().UTC()

	log.Println("Initializing...")
	appContainer, err := container.NewContainer()
	if err != nil {
		return fmt.Errorf("failed to create container: %w", err)
	}

	logger := appContainer.Logger
	logger.Startup().Info("Container initialization complete - switching to channeled logging")

	// Warm the content-type cache so the first page render skips the lookup
	// round trips. Failures are tolerated; the cache fills lazily on demand.
	warmStart := time.Now()
	warmCtx, cancelWarm := context.WithTimeout(context.Background(), config.CMSRequestTimeout)
	appContainer.ContentService.WarmContentTypeCache(warmCtx)
	cancelWarm()
	logger.Startup().Info("Content-type cache warmed",
		"entries", appContainer.CacheManager.ContentTypes().Len(),
		"duration", time.Since(warmStart))

	// Live preview fan-out loop
	go appContainer.Broadcaster.Run()

	logger.Startup().Info("Starting HTTP server...")
	port := config.Port
	httpServer := server.New(port, appContainer)

	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.System().Info("Starting HTTP server", "address", ":"+port)
		if err := httpServer.Start(); err != nil {
			logger.System().Error("HTTP server failed", "error", err.Error())
		}
	}()

	logger.Startup().Info("Application startup complete",
		"totalDuration", time.Since(start),
		"port", port)

	<-gracefulShutdown
	logger.Shutdown().Info("Shutdown signal received, starting graceful shutdown...")

	shutdownStart := time.Now()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger.Shutdown().Info("Stopping HTTP server...")
	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Shutdown().Error("Error during server shutdown", "error", err.Error())
	} else {
		logger.Shutdown().Info("HTTP server stopped successfully")
	}

	logger.Shutdown().Info("Closing infrastructure...")
	if err := appContainer.Close(); err != nil {
		logger.Shutdown().Error("Error closing infrastructure", "error", err.Error())
	}

	logger.Shutdown().Info("Application shutdown complete",
		"totalUptime", time.Since(start),
		"shutdownDuration", time.Since(shutdownStart))

	return nil
}

// setupLogging configures application logging
func setupLogging() {
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}
