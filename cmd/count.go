package cmd

import (
	"fmt"

	"line-counter/core/config"
	"line-counter/core/fault"
	"line-counter/core/logger"
	"line-counter/feature/linecount"

	"github.com/spf13/cobra"
)

// clientFactory builds storage clients; tests replace it.
var clientFactory = linecount.StorageClientFactory

// countCmd represents the count command
var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Count the lines of the configured object",
	Long: `Reads s3.protocol, s3.accessKey, s3.accessSecret, s3.bucketName and s3.filePath
from the environment, .env or application.properties, streams the object and prints its line count.`,
	Args: cobra.NoArgs,
	RunE: runCount,
}

func init() {
	RootCmd.AddCommand(countCmd)
}

func runCount(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("%w: failed to create logger: %w", fault.ErrConfiguration, err)
	}
	defer logg.Sync()

	var reporter linecount.Reporter = linecount.BannerReporter{Out: cmd.OutOrStdout()}
	if jsonFlag {
		reporter = linecount.JSONReporter{Out: cmd.OutOrStdout()}
	}

	runner := linecount.NewRunner(clientFactory(cfg.Storage), linecount.NewOptions(cfg), logg, reporter)
	_, err = runner.Run(cmd.Context(), cfg.S3)
	return err
}

// loadConfig loads the configuration and applies command line overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load config: %w", fault.ErrConfiguration, err)
	}
	if !cfg.Storage.IsValidProvider() {
		return nil, fault.Configuration("storage.provider", fmt.Sprintf("%q is not supported", cfg.Storage.Provider))
	}

	if keyFlag != "" {
		cfg.S3.FilePath = keyFlag
	}
	if bucketFlag != "" {
		cfg.S3.BucketName = bucketFlag
	}
	return cfg, nil
}
