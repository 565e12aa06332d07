package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"bankocr/internal/config"
	"bankocr/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	configPath string
	inputPath  string
	outputPath string
	workers    int

	// Resolved configuration
	cfg *config.Config

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "bankocr",
	Short: "Decode OCR account scans and validate their checksums",
	Long: `bankocr reads a scanner output file made of 3-row glyph bands, decodes
each band into a 9-digit account number and appends one line per account:

  <account> OK    checksum valid
  <account> ERR   checksum invalid
  <account> ILL   at least one digit could not be read ('?')

Running without a subcommand is the same as "bankocr process".`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		cfg, err = resolveConfig(cmd)
		if err != nil {
			return err
		}

		if err := logging.Initialize(cfg.Logging.Dir, logging.Config{
			DebugMode:  cfg.Logging.DebugMode,
			Level:      cfg.Logging.Level,
			JSONFormat: cfg.Logging.IsJSON(),
			Categories: cfg.Logging.Categories,
		}); err != nil {
			logger.Warn("file logging disabled", zap.Error(err))
		}
		if logging.IsDebugMode() {
			logger.Debug("category logs enabled", zap.String("dir", cfg.Logging.Dir))
		}
		logger.Debug("configuration resolved",
			zap.String("input", cfg.Input),
			zap.String("output", cfg.Output),
			zap.Int("workers", cfg.Processing.Workers))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.CloseAll()
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runProcess,
}

// resolveConfig loads the config file, then applies flags the user set.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	c, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("input") {
		c.Input = inputPath
	}
	if flags.Changed("output") {
		c.Output = outputPath
	}
	if flags.Changed("workers") {
		c.Processing.Workers = workers
	}
	if verbose {
		c.Logging.Level = "debug"
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return c, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "bankocr.yaml", "Config file (YAML); defaults apply when absent")
	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "", "Input file of OCR glyph bands ('-' for stdin)")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Output file to append results to ('-' for stdout)")
	rootCmd.PersistentFlags().IntVarP(&workers, "workers", "w", 1, "Number of concurrent decode workers")

	rootCmd.AddCommand(processCmd, decodeCmd, checkCmd, encodeCmd, watchCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		stop()
		os.Exit(1)
	}
}
