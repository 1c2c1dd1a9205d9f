package cmd

import (
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/nivandosoares/portfolio/pkg/config"
	"github.com/nivandosoares/portfolio/pkg/observability"
)

//nolint:gochecknoglobals // Cobra boilerplate
var verbose bool

//nolint:gochecknoglobals // Cobra boilerplate
var settings = config.New()

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio site with CV export",
	Long: `portfolio serves a single-page personal portfolio and renders the same
content into a paginated A4 CV on demand.

Configuration comes from the environment (and a .env file when present);
flags override it.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output (debug logging)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (env LOG_LEVEL)")
	rootCmd.PersistentFlags().String("log-format", "", "log format: text or json (env LOG_FORMAT)")
	rootCmd.PersistentFlags().String("data", "", "portfolio data file, YAML or JSON (env PORTFOLIO_DATA)")

	bindFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
	bindFlag(config.KeyLogFormat, rootCmd.PersistentFlags().Lookup("log-format"))
	bindFlag(config.KeyDataPath, rootCmd.PersistentFlags().Lookup("data"))
}

// setup resolves the configuration and installs the default logger.
func setup() (cfg config.Config, logger *slog.Logger, err error) {
	cfg, err = config.Load(settings)
	if err != nil {
		return cfg, nil, err
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	logger, err = observability.NewLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: os.Stderr,
	})
	if err != nil {
		err = errors.Wrap(err, "failed to create logger")
		return cfg, nil, err
	}
	slog.SetDefault(logger)
	return cfg, logger, err
}
