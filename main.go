package main

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/whenkunda-blip/c-coach/ai"
	"github.com/whenkunda-blip/c-coach/database"
	"github.com/whenkunda-blip/c-coach/handlers"
	"github.com/whenkunda-blip/c-coach/scraper"
	"github.com/whenkunda-blip/c-coach/taxonomy"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values")
	}

	// A broken taxonomy table is a data bug; refuse to start on one.
	if err := taxonomy.Validate(); err != nil {
		log.Fatal("Invalid taxonomy tables: ", err)
	}

	dbPath := getenv("DATABASE_PATH", "career_coach.db")
	db, err := database.InitDB(dbPath)
	if err != nil {
		log.Fatal("Failed to initialize database: ", err)
	}
	defer db.Close()
	log.Println("Database initialized and migrated successfully")

	jobFetcher := scraper.NewFetcher()
	coach := ai.NewCoach(os.Getenv("OPENAI_API_KEY"))
	uploadDir := getenv("UPLOAD_DIR", "uploads")
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		log.Fatal("Failed to create upload directory: ", err)
	}

	// Initialize template engine
	engine := html.New("./templates", ".html")

	app := fiber.New(fiber.Config{
		Views:     engine,
		BodyLimit: 16 * 1024 * 1024, // 16MB max upload
	})

	// Middleware
	app.Use(logger.New())

	// Inject dependencies
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("db", db)
		c.Locals("fetcher", jobFetcher)
		c.Locals("coach", coach)
		c.Locals("uploadDir", uploadDir)
		return c.Next()
	})

	setupRoutes(app)

	startUploadSweep(uploadDir)

	port := getenv("PORT", "3000")
	log.Printf("🚀 Career Coach started on http://localhost:%s", port)
	log.Fatal(app.Listen(":" + port))
}

func setupRoutes(app *fiber.App) {
	app.Get("/", handlers.HomeHandler)
	app.Get("/upload", handlers.UploadPageHandler)
	app.Post("/upload", handlers.UploadHandler)
	app.Get("/analysis/:id", handlers.AnalysisHandler)
	app.Get("/action-plan/:id", handlers.ActionPlanHandler)
	app.Get("/generate-action-plan/:id", handlers.GenerateActionPlanHandler)
	app.Post("/complete-task/:id/:taskID", handlers.CompleteTaskHandler)
	app.Post("/coach-note/:id", handlers.CoachNoteHandler)
	app.Get("/health", handlers.HealthHandler)

	// API routes
	app.Get("/api/analysis/:id", handlers.APIAnalysisHandler)
	app.Get("/api/action-plan/:id", handlers.APIActionPlanHandler)
}

// startUploadSweep removes stale files left behind in the upload directory
// when a request crashed between save and cleanup.
func startUploadSweep(uploadDir string) {
	c := cron.New()

	c.AddFunc("@hourly", func() {
		removed, err := sweepUploads(uploadDir, time.Hour)
		if err != nil {
			log.Printf("❌ Upload sweep failed: %v", err)
			return
		}
		if removed > 0 {
			log.Printf("🧹 Upload sweep removed %d stale files", removed)
		}
	})

	c.Start()
}

func sweepUploads(uploadDir string, maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(uploadDir)
	if err != nil {
		return 0, err
	}

	removed := 0
	cutoff := time.Now().Add(-maxAge)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(uploadDir, entry.Name())); err == nil {
				removed++
			}
		}
	}
	return removed, nil
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
