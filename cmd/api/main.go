package main

import (
	"context"
	"log"

	"marketplace-settlement/internal/core/cache"
	"marketplace-settlement/internal/core/config"
	"marketplace-settlement/internal/core/database"
	"marketplace-settlement/internal/core/events"
	"marketplace-settlement/internal/core/logger"
	"marketplace-settlement/internal/core/server"
	announcementadapters "marketplace-settlement/internal/features/announcements/adapters"
	announcementhandler "marketplace-settlement/internal/features/announcements/handler"
	announcementservice "marketplace-settlement/internal/features/announcements/service"
	catalogadapters "marketplace-settlement/internal/features/catalog/adapters"
	cataloghandler "marketplace-settlement/internal/features/catalog/handler"
	catalogservice "marketplace-settlement/internal/features/catalog/service"
	orderadapters "marketplace-settlement/internal/features/orders/adapters"
	orderhandler "marketplace-settlement/internal/features/orders/handler"
	orderservice "marketplace-settlement/internal/features/orders/service"
	purchaseadapters "marketplace-settlement/internal/features/purchases/adapters"
	purchasehandler "marketplace-settlement/internal/features/purchases/handler"
	purchaseservice "marketplace-settlement/internal/features/purchases/service"
	walletadapters "marketplace-settlement/internal/features/wallet/adapters"
	wallethandler "marketplace-settlement/internal/features/wallet/handler"
	walletservice "marketplace-settlement/internal/features/wallet/service"

	"go.uber.org/zap"
)

// @title Marketplace Settlement API
// @version 1.0
// @description Checkout-to-settlement core for a multi-seller marketplace: orders, reseller purchase obligations, and the withdrawal gate.
// @contact.name API Support
// @contact.email support@marketplace-settlement.dev
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	db, err := database.Connect(cfg.Database)
	if err != nil {
		l.Fatal("MySQL connection failed", zap.Error(err))
	}

	var models []interface{}
	models = append(models, catalogadapters.CatalogModels()...)
	models = append(models, orderadapters.OrderModels()...)
	models = append(models, purchaseadapters.PurchaseModels()...)
	models = append(models, walletadapters.WalletModels()...)
	if err := database.Migrate(db, models...); err != nil {
		l.Fatal("Migration failed", zap.Error(err))
	}

	redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL)
	if err != nil {
		l.Fatal("Redis connection failed", zap.Error(err))
	}
	defer redisCache.Close()

	publisher, err := events.NewAMQPPublisher(cfg.Broker.URL, cfg.Broker.Exchange)
	if err != nil {
		l.Fatal("AMQP connection failed", zap.Error(err))
	}
	defer publisher.Close()

	// Catalog
	productRepo := catalogadapters.NewGormProductRepository(db)
	sellerRepo := catalogadapters.NewGormSellerRepository(db)
	catalogSvc := catalogservice.NewCatalogService(productRepo, sellerRepo, redisCache)
	catalogHdl := cataloghandler.NewCatalogHandler(catalogSvc)

	if cfg.Catalog.SyncURL != "" {
		storefront := catalogadapters.NewStorefrontAdapter(cfg.Catalog.SyncURL)
		if err := storefront.HealthCheck(context.Background()); err != nil {
			l.Fatal("Storefront health check failed", zap.Error(err))
		}
		if err := catalogSvc.Sync(context.Background(), storefront); err != nil {
			l.Fatal("Catalog sync failed", zap.Error(err))
		}
		l.Info("Catalog synced", zap.String("source", cfg.Catalog.SyncURL))
	}

	// Purchases
	purchaseRepo := purchaseadapters.NewGormPurchaseRepository(db)
	purchaseSvc := purchaseservice.NewPurchaseService(purchaseRepo, publisher)
	purchaseHdl := purchasehandler.NewPurchaseHandler(purchaseSvc)

	// Orders
	orderRepo := orderadapters.NewGormOrderRepository(db)
	orderSvc := orderservice.NewOrderService(orderRepo, catalogSvc, publisher, cfg.Catalog.WholesaleMargin)
	orderHdl := orderhandler.NewOrderHandler(orderSvc)

	// Wallet
	walletRepo := walletadapters.NewGormWalletRepository(db)
	walletSvc := walletservice.NewWalletService(walletRepo, purchaseSvc, publisher)
	walletHdl := wallethandler.NewWalletHandler(walletSvc)

	// Announcements
	announcementRepo := announcementadapters.NewRedisAnnouncementRepository(redisCache)
	announcementSvc := announcementservice.NewAnnouncementService(announcementRepo)
	announcementHdl := announcementhandler.NewAnnouncementHandler(announcementSvc)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Get("/products", catalogHdl.ListProducts)
	srv.App.Get("/products/:id", catalogHdl.GetProduct)
	srv.App.Get("/sellers", catalogHdl.ListSellers)
	srv.App.Post("/orders", orderHdl.Checkout)
	srv.App.Get("/orders/:id", orderHdl.GetOrder)
	srv.App.Get("/purchases", purchaseHdl.ListPurchases)
	srv.App.Post("/purchases/:id/complete", purchaseHdl.CompletePurchase)
	srv.App.Get("/wallet/:resellerId", walletHdl.GetEligibility)
	srv.App.Get("/wallet/:resellerId/withdrawals", walletHdl.ListWithdrawals)
	srv.App.Post("/wallet/:resellerId/withdrawals", walletHdl.Withdraw)
	srv.App.Post("/announcement", announcementHdl.SetAnnouncement)
	srv.App.Get("/announcement", announcementHdl.GetAnnouncement)
	srv.App.Delete("/announcement", announcementHdl.RemoveAnnouncement)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
