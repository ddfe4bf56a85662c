package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	internalconfig "github.com/getlawrence/stenum/internal/config"
	"github.com/getlawrence/stenum/internal/logger"
	"github.com/getlawrence/stenum/internal/syntax"
	"github.com/getlawrence/stenum/internal/templates"
)

// AppConfig holds all the shared configuration and dependencies
type AppConfig struct {
	Config     *internalconfig.Config
	ConfigPath string
	Logger     logger.Logger
}

// NewAppConfig creates a new configuration instance
func NewAppConfig(log logger.Logger) *AppConfig {
	return &AppConfig{
		Config: internalconfig.DefaultConfig(),
		Logger: log,
	}
}

// Verbose returns the logger, dropping progress lines unless verbose output is on
func (a *AppConfig) Verbose() logger.Logger {
	return logger.Verbose{Logger: a.Logger, Enabled: a.Config.Output.Verbose}
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the stenum configuration file",
}

var (
	configForce  bool
	configFormat string
)

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the effective configuration to a file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd, configShowCmd)

	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing file")
	configShowCmd.Flags().StringVarP(&configFormat, "format", "f", "yaml", "output format (yaml, json, toml)")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	app := appConfigFrom(cmd)

	path := ".stenum.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !configForce {
		return fmt.Errorf("config file %s already exists, use --force to overwrite", path)
	}

	if err := internalconfig.SaveConfig(app.Config, path); err != nil {
		return err
	}

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		if err := prependConfigHeader(path); err != nil {
			return err
		}
	}

	app.Logger.Logf("Wrote %s\n", path)
	return nil
}

func prependConfigHeader(path string) error {
	engine, err := templates.NewTemplateEngine()
	if err != nil {
		return err
	}
	var versions []string
	for _, v := range syntax.All() {
		versions = append(versions, v.String())
	}
	header, err := engine.GenerateConfigHeader(templates.ConfigHeaderData{Path: path, Versions: versions})
	if err != nil {
		return err
	}

	body, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := os.WriteFile(path, append([]byte(header+"\n"), body...), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app := appConfigFrom(cmd)

	data, err := internalconfig.Marshal(app.Config, configFormat)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
