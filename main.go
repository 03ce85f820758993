package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/naismart/naismart-backend/database"
	"github.com/naismart/naismart-backend/internal/config"
	"github.com/naismart/naismart-backend/internal/models"
	"github.com/naismart/naismart-backend/internal/routes"
	"github.com/naismart/naismart-backend/internal/services"
	"github.com/naismart/naismart-backend/internal/storage"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found - checking environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize storage
	var store storage.Store
	if cfg.UseMemoryStore {
		log.Println("⚠️  Using in-memory storage (not for production!)")
		store = storage.NewMemoryStore()
	} else {
		log.Println("📦 Connecting to PostgreSQL database...")
		database.Connect(cfg)

		log.Println("🔄 Running database migrations...")
		err := database.DB.AutoMigrate(
			&models.Customer{},
			&models.Booking{},
			&models.PublicBooking{},
			&models.Feedback{},
		)
		if err != nil {
			log.Fatal("Failed to migrate database:", err)
		}
		log.Println("✅ Database migrations completed!")

		store = storage.NewDatabaseStore(database.DB)
	}
	storage.SetStore(store)

	// Mail is best-effort; without a server configured we log instead of send
	var mailer services.Mailer
	if smtp, err := services.NewSMTPMailer(cfg); err != nil {
		log.Println("⚠️  Mail server not configured - emails will be logged only")
		mailer = services.LogMailer{}
	} else {
		log.Println("✅ Mail service initialized")
		mailer = smtp
	}

	// SMS is optional
	sms, err := services.NewTwilioService(cfg)
	if err != nil {
		log.Println("⚠️  Twilio credentials not found - SMS notifications disabled")
		sms = nil
	} else {
		log.Println("✅ Twilio service initialized")
	}

	notifier := services.NewNotifier(mailer, sms, cfg.AdminEmail)
	sessions := services.NewSessionManager(cfg.SessionCookie)
	mpesa := services.NewMpesaService(cfg)

	// Create fiber app
	app := fiber.New(fiber.Config{
		AppName: "Naismart Backend v1.0.0",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	routes.SetupRoutes(app, store, sessions, notifier, mpesa)

	// Handle graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("\n🛑 Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	log.Println("========================================")
	log.Printf("🚀 Naismart Backend starting on port %s", cfg.Port)
	log.Printf("📊 Storage: %s", storageType(cfg))
	log.Printf("📧 Mail: %s", mailStatus(cfg))
	log.Println("========================================")

	log.Fatal(app.Listen(":" + cfg.Port))
}

func storageType(cfg config.App) string {
	if cfg.UseMemoryStore {
		return "In-Memory (Testing)"
	}
	return "PostgreSQL Database"
}

func mailStatus(cfg config.App) string {
	if cfg.MailServer == "" {
		return "Not configured"
	}
	return "Configured"
}
