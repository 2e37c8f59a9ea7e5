package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/eonerhime/easy-shoppers-hub/cart"
	"github.com/eonerhime/easy-shoppers-hub/checkout"
	"github.com/eonerhime/easy-shoppers-hub/config"
	productcontroller "github.com/eonerhime/easy-shoppers-hub/controllers/product"
	"github.com/eonerhime/easy-shoppers-hub/email"
	"github.com/eonerhime/easy-shoppers-hub/events"
	"github.com/eonerhime/easy-shoppers-hub/models"
	"github.com/eonerhime/easy-shoppers-hub/routes"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	// Init DB
	db := initDatabase(cfg)

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Services
	carts := cart.NewService(cart.NewGormRepository(db))
	images := productcontroller.NewImageStore(cfg.UploadsDir, cfg.PublicBaseURL)

	var mailer email.Mailer = email.NoopMailer{}
	if cfg.EmailEnabled() {
		mailer = email.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.EmailFrom)
	} else {
		log.Println("⚠️ SMTP not configured, confirmation emails disabled")
	}

	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.AMQPURL != "" {
		amqpPublisher, err := events.NewAMQPPublisher(cfg.AMQPURL)
		if err != nil {
			log.Fatalf("❌ Failed to connect to RabbitMQ: %v", err)
		}
		defer amqpPublisher.Close()
		publisher = amqpPublisher
	} else {
		log.Println("⚠️ AMQP_URL not set, order events disabled")
	}

	orders := checkout.NewService(
		carts,
		checkout.NewGormOrderRepository(db),
		mailer,
		publisher,
		cfg.TaxRate,
		cfg.Currency,
	)

	// Gin setup
	r := gin.Default()

	// Product image uploads
	r.MaxMultipartMemory = 32 << 20 // 32MB

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded images
	r.Static("/uploads", cfg.UploadsDir)

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		DB:       db,
		Cfg:      cfg,
		Carts:    carts,
		Checkout: orders,
		Images:   images,
	})

	// Prune expired sessions at 2 AM daily
	go startDailySessionPruneAtFixedTime(db, 2, 0)

	// Start server
	log.Printf("🚀 Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		// Surfaces unique violations as gorm.ErrDuplicatedKey, which the
		// checkout workflow relies on for order-number collisions.
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}

// startDailySessionPruneAtFixedTime deletes expired sessions daily at a fixed hour
func startDailySessionPruneAtFixedTime(db *gorm.DB, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		log.Printf("⏳ Next session prune scheduled at: %s", next.Format("2006-01-02 15:04:05"))
		time.Sleep(next.Sub(now))

		result := db.Where("expires_at < ?", time.Now()).Delete(&models.Session{})
		if result.Error != nil {
			log.Printf("❌ Failed to prune sessions: %v", result.Error)
		} else {
			log.Printf("🗑️ Pruned %d expired sessions", result.RowsAffected)
		}
	}
}
