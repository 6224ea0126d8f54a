package cmd

import (
	"context"
	"fmt"
	"time"

	"line-counter/core/fault"
	"line-counter/core/job"
	"line-counter/core/loader"
	"line-counter/core/logger"
	"line-counter/core/middleware/auth"
	"line-counter/core/middleware/rayid"
	"line-counter/feature/linecount"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve line counts over HTTP",
	Long:  `Starts the HTTP API. GET /count counts the configured object, or ?key=... in the configured bucket.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		factory := clientFactory(cfg.Storage)
		checkBucket(cmd.Context(), factory, cfg.S3, logg)

		app := newApp(logg, cfg.Server.ApiKey)

		mgr := loader.NewManager()
		svc := linecount.NewService(cfg.S3, factory, linecount.NewOptions(cfg), logg)
		mgr.Register(linecount.NewFeature(svc, logg))
		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port), zap.Bool("auth", cfg.Server.AuthEnabled()))
			errCh <- app.Listen(cfg.Server.Addr())
		}()

		select {
		case err := <-errCh:
			return fmt.Errorf("server failed: %w", err)
		case <-cmd.Context().Done():
		}

		logg.Info("Shutting down server...")
		return app.ShutdownWithTimeout(10 * time.Second)
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}

// newApp builds the Fiber application with the global middleware and the health route.
func newApp(logg *zap.Logger, apiKey string) *fiber.App {
	json := jsoniter.ConfigCompatibleWithStandardLibrary
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
	})

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

	// Health stays public
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Use(auth.New(auth.Config{ApiKey: apiKey}))
	return app
}

// checkBucket warns early when the bucket is unreachable. The server starts regardless.
func checkBucket(ctx context.Context, factory linecount.ClientFactory, settings job.Settings, logg *zap.Logger) {
	j, err := settings.Build()
	if err != nil {
		logg.Warn("Default object not fully configured", zap.Error(err))
		return
	}

	client, err := factory(j.Credentials())
	if err != nil {
		logg.Warn("Storage client unavailable", zap.Error(err))
		return
	}

	bucket := j.Location().Bucket
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	exists, err := client.BucketExists(ctx, bucket)
	switch {
	case err != nil:
		logg.Warn("Bucket check failed", zap.String("bucket", bucket), zap.String("kind", fault.Kind(err)), zap.Error(err))
	case !exists:
		logg.Warn("Bucket does not exist", zap.String("bucket", bucket))
	default:
		logg.Info("Bucket reachable", zap.String("bucket", bucket))
	}
}
