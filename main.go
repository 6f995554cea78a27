package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"lapak/internal/handlers"
	"lapak/internal/middleware"
	"lapak/internal/models"
	"lapak/internal/repositories"
	"lapak/internal/services"
	"lapak/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_DSN", "") // empty: fall back to SQLite
	viper.SetDefault("SQLITE_PATH", "lapak.db")
	viper.SetDefault("JWT_SECRET", "lapak-dev-secret")
	viper.SetDefault("RABBITMQ_URL", "") // empty: messaging disabled
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	jwtSecret := viper.GetString("JWT_SECRET")

	// --- Database ---
	db, err := openDatabase()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Shop{}, &models.Product{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- RabbitMQ (optional) ---
	var mqClient *rabbitmq.Client
	if rabbitMQURL := viper.GetString("RABBITMQ_URL"); rabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Printf("Warning: RabbitMQ unavailable, lifecycle events disabled: %v", err)
			mqClient = nil
		} else {
			defer mqClient.Close()
		}
	}
	var publisher services.EventPublisher
	if mqClient != nil {
		publisher = mqClient
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	shopRepo := repositories.NewGORMShopRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)

	// --- Services ---
	authService := services.NewAuthService(userRepo, jwtSecret)
	shopService := services.NewShopService(shopRepo, publisher)
	productService := services.NewProductService(productRepo, shopRepo, publisher)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	shopHandler := handlers.NewShopHandler(shopService)
	productHandler := handlers.NewProductHandler(productService)

	// --- Fiber App ---
	app := fiber.New()
	app.Use(logger.New())

	authRequired := middleware.AuthRequired(authService)
	authHandler.RegisterRoutes(app, authRequired)
	shopHandler.RegisterRoutes(app, authRequired)
	productHandler.RegisterRoutes(app, authRequired)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Lifecycle-event consumer ---
	// Logs shop/product lifecycle events so cascade cleanups leave a trace.
	if mqClient != nil {
		if consumerErr := mqClient.ConsumeShopEvents(func(msg amqp.Delivery) error {
			log.Printf("Received %s event: %s", msg.Type, string(msg.Body))
			return nil
		}); consumerErr != nil {
			log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
		}
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// openDatabase opens Postgres when DATABASE_DSN is configured and falls back
// to a local SQLite file otherwise. TranslateError normalizes driver errors
// so unique-index violations surface as gorm.ErrDuplicatedKey on both.
func openDatabase() (*gorm.DB, error) {
	cfg := &gorm.Config{TranslateError: true}
	if dsn := viper.GetString("DATABASE_DSN"); dsn != "" {
		return gorm.Open(postgres.Open(dsn), cfg)
	}
	return gorm.Open(sqlite.Open(viper.GetString("SQLITE_PATH")), cfg)
}
