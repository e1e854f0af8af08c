package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/marian079/crusty-kiosk/internal/config"
	"github.com/marian079/crusty-kiosk/internal/db"
	"github.com/marian079/crusty-kiosk/internal/repository"
	"github.com/marian079/crusty-kiosk/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	// ======================
	// STORAGE
	// ======================
	var (
		categoryStore services.CategoryStore
		productStore  services.ProductStore
		orderStore    services.OrderStore
	)

	if cfg.DatabaseURL != "" {
		if err := db.Migrate(cfg.DatabaseURL, cfg.MigrationsDir); err != nil {
			log.WithError(err).Fatal("Failed to run migrations")
		}
		pool, err := db.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.WithError(err).Fatal("Failed to connect to database")
		}
		defer pool.Close()

		categoryStore = repository.NewCategoryRepository(pool)
		productStore = repository.NewProductRepository(pool)
		orderStore = repository.NewOrderRepository(pool)
		log.Info("Using Postgres storage")
	} else {
		store := repository.NewMemStore()
		if err := store.Seed(repository.DefaultCatalog()); err != nil {
			log.WithError(err).Fatal("Failed to seed catalog")
		}
		categoryStore = store
		productStore = store
		orderStore = store
		log.Info("DATABASE_URL not set, using seeded in-memory storage")
	}

	// ======================
	// SERVICES
	// ======================
	catalogSvc := services.NewCatalogService(categoryStore, productStore)
	orderSvc := services.NewOrderService(orderStore)

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	api := e.Group("/api")

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	registerCategoryRoutes(api, catalogSvc)
	registerProductRoutes(api, catalogSvc)
	registerOrderRoutes(api, orderSvc)

	// ======================
	// SERVER
	// ======================
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			log.WithError(err).Info("Server stopped")
		}
	}()
	log.WithFields(log.Fields{"port": cfg.Port}).Info("Kiosk API started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Graceful shutdown failed")
	}
}
