package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"line-counter/core/config"
	"line-counter/core/fault"
	"line-counter/core/logger"
	"line-counter/feature/linecount"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configDir  string
	keyFlag    string
	bucketFlag string
	jsonFlag   bool
)

// RootCmd represents the base command when called without any subcommands.
// Without a subcommand it counts the configured object.
var RootCmd = &cobra.Command{
	Use:   "line-counter",
	Short: "Count the lines of an object in S3-compatible storage",
	Long: `Line Counter streams one text object from an S3-compatible bucket and prints
its number of lines. Compressed objects (.gz, .zst, .bz2) are decoded on the fly.`,
	Args:          cobra.NoArgs,
	RunE:          runCount,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits with its status.
// SIGINT and SIGTERM cancel the run in progress.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := Run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}

// Run executes the command line in args and returns the process exit status:
// 0 on success, 1 on any failure. Failures are logged once, with their kind.
func Run(ctx context.Context, args []string) int {
	RootCmd.SetArgs(args)
	err := RootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	l, logErr := failureLogger()
	if logErr != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	l.Error("command failed", errorFields(err)...)
	_ = l.Sync()
	return 1
}

// failureLogger builds the logger for the final error line from log.level and
// log.format. When the configuration itself is what failed it falls back to
// info-level console output.
func failureLogger() (*zap.Logger, error) {
	fallback := logger.Config{Level: "info", Format: "console"}

	cfg := fallback
	if loaded, err := config.LoadConfig(configDir); err == nil {
		cfg = loaded.Log
	}

	l, err := logger.New(&cfg)
	if err != nil {
		return logger.New(&fallback)
	}
	return l, nil
}

// errorFields describes a failure without ever touching credentials.
func errorFields(err error) []zap.Field {
	fields := []zap.Field{zap.String("kind", fault.Kind(err))}
	var runErr *linecount.RunError
	if errors.As(err, &runErr) {
		fields = append(fields,
			zap.Stringer("phase", runErr.Phase),
			zap.String("location", runErr.Location),
		)
	}
	return append(fields, zap.Error(err))
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "Directory holding .env and application.properties")
	RootCmd.PersistentFlags().StringVar(&keyFlag, "key", "", "Object key, overrides s3.filePath")
	RootCmd.PersistentFlags().StringVar(&bucketFlag, "bucket", "", "Bucket name, overrides s3.bucketName")
	RootCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "Print the result as JSON")
}
