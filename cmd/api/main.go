package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"labbooking/internal/config"
	"labbooking/internal/database"
	"labbooking/internal/middleware"
	"labbooking/internal/modules/assistant"
	"labbooking/internal/modules/auth"
	"labbooking/internal/modules/booking"
	"labbooking/internal/modules/equipment"
	"labbooking/internal/notification"
	jwtsvc "labbooking/internal/pkg/jwt"
	"labbooking/internal/pkg/logger"
	"labbooking/internal/repository"
	"labbooking/internal/snapshot"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load("")
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatal(err)
	}
	defer zl.Sync()

	db, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		zl.Fatal("database connection failed", zap.Error(err))
	}
	if err := repository.AutoMigrate(db); err != nil {
		zl.Fatal("migration failed", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(db)
	equipmentRepo := repository.NewEquipmentRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	j := jwtsvc.New(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL)

	notifier := notification.NewService(notificationRepo, zl)
	notificationHandler := notification.NewHandler(notifier)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	equipmentService := equipment.NewService(equipmentRepo)
	equipmentHandler := equipment.NewHandler(equipmentService)

	bookingService := booking.NewService(bookingRepo, equipmentRepo, userRepo, notifier)
	bookingHandler := booking.NewHandler(bookingService)

	var provider assistant.Provider
	if cfg.Assistant.APIKey != "" {
		provider = assistant.NewGeminiClient(cfg.Assistant.APIURL, cfg.Assistant.APIKey)
	}
	assistantService := assistant.NewService(equipmentRepo, bookingService, provider, cfg.Assistant.Timeout, zl)
	assistantHandler := assistant.NewHandler(assistantService)
	assistantWS := assistant.NewWSHandler(assistantService, j, zl)

	snapshotService := snapshot.NewService(userRepo, bookingRepo, equipmentRepo, zl)
	snapshotHandler := snapshot.NewHandler(snapshotService)

	go sweepElapsed(bookingService, zl)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(zl))
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		equipmentHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j, userRepo))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			notificationHandler.RegisterRoutes(protected)
			assistantHandler.RegisterRoutes(protected)
			assistantWS.RegisterRoutes(protected)

			admin := protected.Group("/admin")
			admin.Use(middleware.AdminOnly())
			{
				authHandler.RegisterAdminRoutes(admin)
				equipmentHandler.RegisterAdminRoutes(admin)
				bookingHandler.RegisterAdminRoutes(admin)
				snapshotHandler.RegisterAdminRoutes(admin)
			}
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	zl.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}

// sweepElapsed periodically moves approved bookings past their return time
// to completed.
func sweepElapsed(bookings *booking.Service, zl *zap.Logger) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for now := range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		n, err := bookings.CompleteElapsed(ctx, now)
		cancel()
		if err != nil {
			zl.Warn("completion sweep failed", zap.Error(err))
			continue
		}
		if n > 0 {
			zl.Info("bookings completed", zap.Int64("count", n))
		}
	}
}
