package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"resume-analyzer/internal/config"
	"resume-analyzer/internal/handlers"
	"resume-analyzer/internal/models"
	"resume-analyzer/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize LLM backend; a missing API key is a startup error,
	// not something to discover on the first request.
	llmService, err := services.NewLLMService(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize LLM service: %v", err)
	}
	log.Printf("✅ LLM service initialized (provider: %s)", cfg.LLM.Provider)

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	extractorService := services.NewExtractorService(cfg.Fetch.Timeout)
	analyzerService := services.NewAnalyzerService(llmService, services.DefaultKeywordCatalog())
	log.Println("✅ Services initialized successfully")

	// Initialize handlers
	analyzeHandler := handlers.NewAnalyzeHandler(
		analyzerService,
		extractorService,
		storageService,
		cfg.Storage.MaxFileSize,
	)
	healthHandler := handlers.NewHealthHandler()
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "AI Resume Analyzer API",
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	app.Get("/", healthHandler.HandleRoot)
	app.Get("/health", healthHandler.HandleHealth)

	api := app.Group("/api")
	api.Post("/ats-score", analyzeHandler.HandleATSScore)
	api.Post("/jd-match", analyzeHandler.HandleJDMatch)
	api.Post("/compare-jds", analyzeHandler.HandleCompareJDs)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(models.Error(err.Error()))
}
