package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"blob-manager/core/loader"
	"blob-manager/core/logger"
	"blob-manager/core/middleware/auth"
	"blob-manager/core/middleware/rayid"
	"blob-manager/feature/buckets"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP gateway",
	Long:  `Starts the HTTP gateway exposing bucket and blob operations over REST.`,
	Run: func(cmd *cobra.Command, args []string) {
		e := setup()
		logg := e.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		mgr := loader.NewManager()
		mgr.Register(buckets.NewFeature(e.client, e.jrnl, logg))

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
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 3. Auth (Protect API)
		if e.cfg.Server.RequiresAuth() {
			app.Use(auth.New(auth.Config{ApiKey: e.cfg.Server.ApiKey}))
		} else {
			logg.Warn("No API key configured, gateway is unauthenticated")
		}

		// 4. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 5. Start Server
		go func() {
			logg.Info("Starting gateway",
				zap.String("port", e.cfg.Server.Port),
				zap.String("project", e.client.Project()),
			)
			if err := app.Listen(":" + e.cfg.Server.Port); err != nil {
				logg.Fatal("Gateway failed to start", zap.Error(err))
			}
		}()

		// 6. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down gateway...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
