package main

import (
	"log"

	"github.com/labstack/echo/v4"

	"github.com/velmari/museum-tickets/internal/config"
	"github.com/velmari/museum-tickets/internal/database"
	"github.com/velmari/museum-tickets/internal/handler"
	"github.com/velmari/museum-tickets/internal/middleware"
	"github.com/velmari/museum-tickets/internal/monitoring"
	"github.com/velmari/museum-tickets/internal/queue"
	"github.com/velmari/museum-tickets/internal/repository"
	"github.com/velmari/museum-tickets/internal/router"
	"github.com/velmari/museum-tickets/internal/service"
	"github.com/velmari/museum-tickets/internal/view"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(database.Config{
		User: cfg.DBUser,
		Pass: cfg.DBPass,
		Host: cfg.DBHost,
		Port: cfg.DBPort,
		Name: cfg.DBName,
	})
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	contentRepo := repository.NewContentRepo(db)
	sessionRepo := repository.NewSessionRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	bookingRepo := repository.NewBookingRepo(db)
	orderRepo := repository.NewOrderRepo(db)

	checkoutStore := repository.NewCheckoutStore(db, sessionRepo, categoryRepo, bookingRepo, orderRepo)
	checkout := service.NewCheckout(checkoutStore)

	renderer, err := view.NewRenderer()
	if err != nil {
		log.Fatalf("templates: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Use(monitoring.RequestDuration())
	e.Static("/static", "static")

	// Redis is optional; without it the limiter and cache are no-ops.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; rate limiting and page cache disabled")
	}
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	public := handler.NewPublicHandler(contentRepo, sessionRepo, categoryRepo, orderRepo)
	checkoutHandler := handler.NewCheckoutHandler(checkout, cfg.AMQPURL)
	adminAuth := handler.NewAdminAuthHandler(cfg)
	adminContent := handler.NewAdminContentHandler(contentRepo, cfg.UploadDir)
	adminOrders := handler.NewAdminOrderHandler(orderRepo)

	router.RegisterPublic(e, public, cache)
	router.RegisterCheckout(e, checkoutHandler, limiter)
	router.RegisterAdmin(e, adminAuth, adminContent, adminOrders, cfg.SessionSecret)

	if cfg.AMQPURL != "" {
		go queue.StartOrderConsumer(cfg.AMQPURL)
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
