package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"mosb-portal/core/config"
	"mosb-portal/core/database"
	"mosb-portal/core/loader"
	"mosb-portal/core/logger"
	"mosb-portal/core/middleware/auth"
	"mosb-portal/core/middleware/rayid"
	"mosb-portal/core/storage"

	"mosb-portal/feature/batchscan"
	"mosb-portal/feature/history"
	"mosb-portal/feature/matching"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "mosb-portal/docs/swagger"
)

// @title MOSB Portal API
// @version 1.0
// @description Gate-entry API for LPO reconciliation and batch scanning.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the portal server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database (Optional)
		// Without a database the matching feature is disabled and the scan
		// history lives in memory only.
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
			logg = logg.With(zap.String("site", cfg.Server.Site))
			logg.Info("Connected to portal database")
		}

		// 3. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 3. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		// 4. Scan History Store
		var medium history.Medium = history.NewMemoryMedium()
		if db != nil {
			if m, err := history.NewGormMedium(db); err != nil {
				logg.Warn("Falling back to in-memory scan history", zap.Error(err))
			} else {
				medium = m
			}
		}
		hist, err := history.NewStore(medium, cfg.History.MaxSize)
		if err != nil {
			logg.Fatal("Failed to load scan history", zap.Error(err))
		}

		// 5. Initialize Feature Loader
		mgr := loader.NewManager()

		// Register Features
		mgr.Register(matching.NewFeature(db, cfg.Matching, logg))
		mgr.Register(batchscan.NewFeature(hist, store, cfg.Storage.Bucket, cfg.Scan, logg))
		mgr.Register(history.NewFeature(hist, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			// Log error if happened
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 2.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 5. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
