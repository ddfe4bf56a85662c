package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	internalconfig "github.com/getlawrence/stenum/internal/config"
	"github.com/getlawrence/stenum/internal/logger"
	"github.com/getlawrence/stenum/internal/ui"
)

type contextKey string

// Context key for configuration
const ConfigKey contextKey = "config"

var (
	configFile string
	verbose    bool
	noColor    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "stenum",
	Short: "Strongly typed enum class generator for C# and VB.NET",
	Long: `Stenum converts a plain C# or VB.NET enum declaration into a strongly
typed enum class: a sealed set of static instances with string, database
tag and underlying value conversions, optionally ordered.

Options come from flags, then a .stenum.yaml (or .json/.toml) config file
found in the working or home directory, then built-in defaults.`,
	Version:           Version,
	SilenceUsage:      true,
	PersistentPreRunE: loadAppConfig,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(ctx context.Context) error {
	app := NewAppConfig(logger.NewUILogger())
	ctx = context.WithValue(ctx, ConfigKey, app)
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default .stenum.yaml in the working or home directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

func loadAppConfig(cmd *cobra.Command, _ []string) error {
	app := appConfigFrom(cmd)

	cfg, err := internalconfig.LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Output.Verbose = verbose
	}
	if noColor {
		cfg.Output.Color = false
	}
	ui.SetColor(cfg.Output.Color)

	app.Config = cfg
	app.ConfigPath = internalconfig.GetConfigPath(configFile)
	return nil
}

// appConfigFrom returns the shared configuration, creating one when the
// command runs without Execute, as in tests
func appConfigFrom(cmd *cobra.Command) *AppConfig {
	if ctx := cmd.Context(); ctx != nil {
		if app, ok := ctx.Value(ConfigKey).(*AppConfig); ok {
			return app
		}
	}
	app := NewAppConfig(&logger.StdoutLogger{Out: cmd.ErrOrStderr()})
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, ConfigKey, app))
	return app
}
