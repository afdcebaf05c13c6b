package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"video-id-finder/core/config"
	"video-id-finder/core/loader"
	"video-id-finder/core/logger"
	"video-id-finder/core/middleware/auth"
	"video-id-finder/core/middleware/rayid"
	"video-id-finder/feature/integrity"
	"video-id-finder/feature/videoid"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "video-id-finder/docs/swagger"
)

// @title Video ID Finder API
// @version 1.0
// @description API for reconciling transcription vendor files with curriculum video ids.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the video id finder server",
	Long:  `Starts the HTTP server that triggers reconciliation runs and serves their reports.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		db, err := connectCurriculum(cfg)
		if err != nil {
			logg.Fatal("Curriculum database unavailable", zap.Error(err))
		}

		remote, err := buildClients(cfg)
		if err != nil {
			logg.Fatal("Failed to create API clients", zap.Error(err))
		}
		spec := buildSpec(cfg, db, remote, logg)

		store, err := buildStorage(context.Background(), cfg, cfg.Storage.Enabled)
		if err != nil {
			logg.Fatal("Failed to initialize report archive", zap.Error(err))
		}
		archive := buildArchive(store, cfg)

		svc := videoid.NewService(spec, cfg.Reconcile.Threshold, archive, logg)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager()
		mgr.Register(videoid.NewFeature(svc))
		mgr.Register(integrity.NewFeature(integrity.Deps{
			DB:         db,
			Storage:    store,
			Bucket:     cfg.Storage.Bucket,
			Region:     cfg.Storage.Region,
			Batches:    remote.vendor,
			Attributes: remote.attributes,
		}, logg))

		// RayID must be first to trace everything
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger stays public
		app.Get("/swagger/*", swagger.HandlerDefault)

		if !cfg.Server.AuthEnabled() {
			logg.Warn("SERVER_API_KEY is empty, the API is unprotected")
		}
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server", zap.String("address", cfg.Server.Address()))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

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
