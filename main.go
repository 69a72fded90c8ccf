package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	firebase "firebase.google.com/go"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/HenryHan168/FlowerStudio/cloudsync"
	"github.com/HenryHan168/FlowerStudio/config"
	orderControllers "github.com/HenryHan168/FlowerStudio/controllers/order"
	"github.com/HenryHan168/FlowerStudio/middleware"
	"github.com/HenryHan168/FlowerStudio/models"
	"github.com/HenryHan168/FlowerStudio/notify"
	"github.com/HenryHan168/FlowerStudio/routes"
	"github.com/HenryHan168/FlowerStudio/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := newLogger(cfg.LogLevel)
	defer logger.Sync()

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect DB: %v", err)
	}

	if err := db.AutoMigrate(
		&models.FlowerProduct{},
		&models.CartItem{},
		&models.Order{},
		&models.Contact{},
		&models.StudioInfo{},
		&models.BusinessHour{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	if err := ensureStudioInfo(db, cfg.MerchantPassword); err != nil {
		log.Fatalf("Failed to initialize studio info: %v", err)
	}

	dispatcher, syncer := buildFirebase(cfg, logger)

	cartService := services.NewCartService(db, logger)
	orderService := services.NewOrderService(db, dispatcher, syncer, logger)
	authService := services.NewAuthService(db, cfg.JWTSecret, logger)
	contactService := services.NewContactService(db, logger)
	hub := orderControllers.NewHub(logger)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, routes.Deps{
		DB:       db,
		Carts:    cartService,
		Orders:   orderService,
		Auth:     authService,
		Contacts: contactService,
		Hub:      hub,
		Logger:   logger,
	})

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info("Server running", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}
	logger.Info("Server stopped")
}

func newLogger(level string) *zap.Logger {
	var logger *zap.Logger
	var err error
	if level == "debug" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	return logger
}

// buildFirebase wires the notification dispatcher and cloud syncer. Without
// Firebase credentials the service runs with log-only notifications and no
// cloud sync.
func buildFirebase(cfg *config.Config, logger *zap.Logger) (services.Dispatcher, services.Syncer) {
	if !cfg.FirebaseEnabled() {
		logger.Warn("Firebase not configured, notifications are log-only")
		return notify.NewLogDispatcher(logger), cloudsync.NewDisabledSyncer(logger)
	}

	ctx := context.Background()
	app, err := firebase.NewApp(ctx,
		&firebase.Config{ProjectID: cfg.FirebaseProjectID},
		option.WithCredentialsFile(cfg.FirebaseCredentialsFile),
	)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	dispatcher, err := notify.NewFCMDispatcher(ctx, app, logger)
	if err != nil {
		log.Fatalf("Failed to initialize FCM: %v", err)
	}
	syncer, err := cloudsync.NewFirestoreSyncer(ctx, app, logger)
	if err != nil {
		log.Fatalf("Failed to initialize Firestore: %v", err)
	}
	return dispatcher, syncer
}

// ensureStudioInfo creates the studio record on first boot: public contact
// details, default opening hours and the initial merchant credential.
func ensureStudioInfo(db *gorm.DB, merchantPassword string) error {
	var count int64
	if err := db.Model(&models.StudioInfo{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hours := make([]models.BusinessHour, 0, 7)
	for day := time.Sunday; day <= time.Saturday; day++ {
		hours = append(hours, models.BusinessHour{
			DayOfWeek: day,
			OpenHour:  9,
			CloseHour: 18,
			IsClosed:  day == time.Sunday,
		})
	}

	now := time.Now()
	studio := models.StudioInfo{
		Name:               "FlowerStudio",
		Description:        "Floral design studio for every important moment",
		Phone:              "0920663393",
		Address:            "No. 12, Ln. 20, Sec. 4, Zhongshan Rd., Luodong Township, Yilan County",
		DeliveryAvailable:  true,
		DeliveryRange:      "Luodong and surrounding areas",
		MinimumOrderAmount: 500,
		BusinessHours:      hours,
		MerchantPassword:   merchantPassword,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	return db.Create(&studio).Error
}
