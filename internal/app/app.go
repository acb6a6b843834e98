package app

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"photo-backend/internal/db"
	"photo-backend/internal/handlers"
	"photo-backend/internal/services"
	"photo-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// New builds the fiber app with all routes wired against the given database
// handle, token issuer and audit recorder. Kept separate from Run so tests can
// drive the full router without a real server or Postgres.
func New(database *gorm.DB, tokens *services.TokenIssuer, auditService *services.AuditService) *fiber.App {
	userService := services.NewUserService(database)
	photoService := services.NewPhotoService(database)

	app := fiber.New()

	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	protected := handlers.AuthMiddleware(tokens)

	user := app.Group("/user")
	user.Post("/register", handlers.RegisterHandler(userService, auditService))
	user.Post("/login", handlers.LoginHandler(userService, tokens, auditService))
	user.Put("/edit", protected, handlers.EditEmailHandler(userService, auditService))
	user.Delete("/delete", protected, handlers.DeleteUserHandler(userService))

	photos := app.Group("/photos", protected)
	photos.Post("/add", handlers.AddPhotoHandler(photoService, auditService))
	photos.Delete("/delete/:photo_id", handlers.DeletePhotoHandler(photoService, auditService))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	return app
}

func Run() {
	// Load Env
	if err := utils.LoadEnv(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Init DB
	connString := utils.GetEnv("DATABASE_URL", "")
	if connString == "" {
		// Fallback to individual vars
		connString = "postgres://" + utils.GetEnv("POSTGRES_USER", "postgres") + ":" +
			utils.GetEnv("POSTGRES_PASSWORD", "postgres") + "@" +
			utils.GetEnv("POSTGRES_HOST", "localhost") + ":" +
			utils.GetEnv("POSTGRES_PORT", "5432") + "/" +
			utils.GetEnv("POSTGRES_DB", "photodb") + "?sslmode=disable"
	}

	database, err := db.Connect(connString)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close(database)

	tokenTTL := time.Duration(utils.GetEnvInt("JWT_TTL_HOURS", 72)) * time.Hour
	tokens := services.NewTokenIssuer(utils.GetEnv("JWT_SECRET", "secret"), tokenTTL)
	audit := services.NewAuditService(database)

	app := New(database, tokens, audit)

	// Start Server
	port := utils.GetEnv("PORT", "3001")
	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Graceful Shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c // Block until signal
	log.Println("Gracefully shutting down...")
	_ = app.Shutdown()
	audit.Wait()
	log.Println("Server shutdown complete")
}
