package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ict_forex_app_go/config"
	"ict_forex_app_go/handlers"
	"ict_forex_app_go/logger"
	"ict_forex_app_go/metrics"
	"ict_forex_app_go/middleware"
	"ict_forex_app_go/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	})

	// Cache-busting hashes for static assets
	middleware.InitAssetVersions("static")

	relay := services.NewContactRelay(cfg)
	if !cfg.EmailTestMode && cfg.ResendAPIKey == "" {
		log.Warn("RESEND_API_KEY is not set; contact submissions will fail until it is configured")
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			entry := logger.WithComponent("http").WithFields(logrus.Fields{
				"method":    v.Method,
				"uri":       v.URI,
				"status":    v.Status,
				"latency":   v.Latency.String(),
				"remote_ip": v.RemoteIP,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Error("request failed")
				return nil
			}
			entry.Info("request")
			return nil
		},
	}))
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType},
	}))
	e.Use(middleware.CSPNonce())

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	// Static files
	e.Static("/static", "static")

	// Public routes
	e.GET("/", handlers.LandingHandler)
	e.GET("/sitemap.xml", handlers.GetSitemapHandler)

	// API
	e.Any("/api/contact", handlers.ContactHandler(relay), middleware.ContactRateLimiter.Middleware())
	e.GET("/api/health", handlers.HealthHandler)

	backtest := e.Group("/api/backtest", middleware.APIRateLimiter.Middleware())
	backtest.GET("", handlers.BacktestHandler)
	backtest.GET("/chart.svg", handlers.BacktestChartHandler)
	backtest.GET("/export.xlsx", handlers.BacktestExportHandler)

	e.GET("/ws/backtest", handlers.BacktestStreamHandler)

	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	go func() {
		log.Infof("Server starting on port %s", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Errorf("Graceful shutdown failed: %v", err)
	}
}
