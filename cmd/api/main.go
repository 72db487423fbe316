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

	"github.com/NYTimes/gziphandler"

	"rajaprint-backend/config"
	"rajaprint-backend/internal/delivery/http/middleware"
	v1 "rajaprint-backend/internal/delivery/http/v1"
	"rajaprint-backend/internal/infrastructure/cache"
	sqlcrepo "rajaprint-backend/internal/repository/sqlc"
	"rajaprint-backend/internal/usecase"
	"rajaprint-backend/pkg/logger"
	"rajaprint-backend/pkg/utils"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		// logger is not configured yet; fall back to a console logger
		logger.Init("development", "info")
		logger.Get().Fatal().Err(err).Msg("Invalid configuration")
	}
	utils.SetSecret(cfg.JWTSecret)

	// Initialize Logger
	logger.Init(cfg.Env, cfg.LogLevel)
	log := logger.Get()

	// Initialize Database with pgx/sqlc
	pgxPool, err := sqlcrepo.NewPgxPool(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pgxPool.Close()
	log.Info().Msg("Successfully connected to PostgreSQL via pgx/sqlc")

	// Initialize Repositories
	zoneRepo := sqlcrepo.NewShippingZoneRepository(pgxPool)
	productRepo := sqlcrepo.NewProductRepository(pgxPool)
	orderRepo := sqlcrepo.NewOrderRepository(pgxPool)
	txManager := sqlcrepo.NewTransactionManager(pgxPool)

	// Zone reads and enums live in memory; every zone write drops them.
	memCache := cache.NewMemoryCache(cfg.CacheZoneTTL, 2*cfg.CacheZoneTTL)

	// --- Modules Initialization ---

	// Shipping Module
	shippingUC := usecase.NewShippingUsecase(zoneRepo, productRepo, orderRepo, txManager, memCache, cfg)
	shippingHandler := v1.NewShippingHandler(shippingUC)
	adminShippingHandler := v1.NewAdminShippingHandler(shippingUC)
	configHandler := v1.NewConfigHandler(shippingUC, cfg.CacheEnumsTTL)

	// Order Module
	orderUC := usecase.NewOrderUsecase(orderRepo, productRepo, shippingUC, txManager)
	orderHandler := v1.NewOrderHandler(orderUC)
	adminOrderHandler := v1.NewAdminOrderHandler(orderUC)

	// Set up Router
	mux := http.NewServeMux()

	// Config (Public)
	mux.HandleFunc("GET /api/v1/config/enums", configHandler.GetEnums)

	// Shipping (Public)
	mux.HandleFunc("POST /api/v1/shipping/calculate", shippingHandler.Calculate)
	mux.HandleFunc("GET /api/v1/shipping/check-availability", shippingHandler.CheckAvailability)

	// Orders (guest checkout allowed)
	mux.Handle("POST /api/v1/orders", middleware.OptionalAuth(http.HandlerFunc(orderHandler.PlaceOrder)))

	// Admin (Protected)
	adminMiddleware := func(h http.HandlerFunc) http.Handler {
		return middleware.AuthMiddleware(middleware.AdminMiddleware(h))
	}

	// Admin Shipping Zones
	mux.Handle("GET /api/v1/admin/shipping/zones", adminMiddleware(adminShippingHandler.ListZones))
	mux.Handle("POST /api/v1/admin/shipping/zones", adminMiddleware(adminShippingHandler.CreateZone))
	mux.Handle("GET /api/v1/admin/shipping/zones/{id}", adminMiddleware(adminShippingHandler.GetZone))
	mux.Handle("PUT /api/v1/admin/shipping/zones/{id}", adminMiddleware(adminShippingHandler.UpdateZone))
	mux.Handle("DELETE /api/v1/admin/shipping/zones/{id}", adminMiddleware(adminShippingHandler.DeleteZone))
	mux.Handle("PATCH /api/v1/admin/shipping/zones/{id}/toggle", adminMiddleware(adminShippingHandler.ToggleZone))
	mux.Handle("PATCH /api/v1/admin/shipping/zones/{id}/default", adminMiddleware(adminShippingHandler.SetDefaultZone))

	// Admin Orders
	mux.Handle("GET /api/v1/admin/orders", adminMiddleware(adminOrderHandler.ListOrders))
	mux.Handle("GET /api/v1/admin/orders/{id}", adminMiddleware(adminOrderHandler.GetOrder))
	mux.Handle("GET /api/v1/admin/orders/{id}/history", adminMiddleware(adminOrderHandler.GetHistory))
	mux.Handle("PATCH /api/v1/admin/orders/{id}/status", adminMiddleware(adminOrderHandler.UpdateStatus))

	// Health Check
	healthHandler := func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pgxPool.Ping(ctx); err != nil {
			utils.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded", "db": "unreachable"})
			return
		}
		utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok", "db": "connected"})
	}
	mux.HandleFunc("GET /api/v1/health", healthHandler)
	mux.HandleFunc("GET /health", healthHandler) // Support root health check for Load Balancers

	addr := fmt.Sprintf(":%s", cfg.Port)

	rateLimiter := middleware.NewRateLimiter(context.Background(), middleware.RateLimitOptions{
		RPS:           cfg.RateLimitRPS,
		Burst:         cfg.RateLimitBurst,
		CleanupPeriod: time.Minute,
		VisitorTTL:    3 * time.Minute,
		ExemptPaths:   []string{"/health", "/api/v1/health"},
	})

	// Apply CORS (with config injection), Request Logger, Rate Limit, and Gzip
	handler := middleware.NewCORSMiddleware(cfg)(mux)
	handler = middleware.RequestLogger(handler)
	handler = rateLimiter.Middleware()(handler)
	handler = gziphandler.GzipHandler(handler)

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful Shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	logger.ServiceStart("rajaprint-api", cfg.Port)

	// Wait for interrupt signal via channel
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Server shutting down...")

	rateLimiter.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.ServiceStop("rajaprint-api")
}
