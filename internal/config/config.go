package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/getlawrence/stenum/internal/codegen/types"
	"github.com/getlawrence/stenum/internal/parser"
	"github.com/getlawrence/stenum/internal/syntax"
)

// ErrInvalidConfig is returned when a configuration fails validation
var ErrInvalidConfig = errors.New("invalid configuration")

const configBaseName = ".stenum"

// Config represents the stenum configuration
type Config struct {
	// Generator settings, mirrored by the gen command flags
	Generator GeneratorConfig `json:"generator" yaml:"generator" toml:"generator"`

	// Output settings
	Output OutputConfig `json:"output" yaml:"output" toml:"output"`
}

// GeneratorConfig contains the generation options
type GeneratorConfig struct {
	// members or properties
	AdditionPriority string `json:"addition_priority" yaml:"addition_priority" toml:"addition_priority" validate:"required,oneof=members properties"`

	// Target C# version, e.g. "C# 7.0" or "7"
	SyntaxVersion string `json:"syntax_version" yaml:"syntax_version" toml:"syntax_version" validate:"required,syntax_version"`

	DbValue             bool `json:"db_value" yaml:"db_value" toml:"db_value"`
	UnderlyingValue     bool `json:"underlying_value" yaml:"underlying_value" toml:"underlying_value"`
	ImplementComparable bool `json:"implement_comparable" yaml:"implement_comparable" toml:"implement_comparable"`

	// internal or public
	Visibility string `json:"visibility" yaml:"visibility" toml:"visibility" validate:"required,oneof=internal public"`

	// Wrap fragment groups in #region blocks
	Regions bool `json:"regions" yaml:"regions" toml:"regions"`

	// Input dialect, detected per file when empty
	Dialect string `json:"dialect,omitempty" yaml:"dialect,omitempty" toml:"dialect,omitempty" validate:"omitempty,oneof=csharp vb"`
}

// OutputConfig contains output settings
type OutputConfig struct {
	// Directory receiving <Name>.cs files, stdout when empty
	Directory string `json:"directory,omitempty" yaml:"directory,omitempty" toml:"directory,omitempty"`

	// Whether to colorize output
	Color bool `json:"color" yaml:"color" toml:"color"`

	// Whether to log per file progress
	Verbose bool `json:"verbose" yaml:"verbose" toml:"verbose"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("syntax_version", func(fl validator.FieldLevel) bool {
		_, err := syntax.Parse(fl.Field().String())
		return err == nil
	})
	return v
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	opts := types.DefaultOptions()
	return &Config{
		Generator: GeneratorConfig{
			AdditionPriority:    string(opts.AdditionPriority),
			SyntaxVersion:       opts.SyntaxVersion.String(),
			DbValue:             opts.DbValue,
			UnderlyingValue:     opts.UnderlyingValue,
			ImplementComparable: opts.ImplementComparable,
			Visibility:          string(opts.Visibility),
			Regions:             opts.Regions,
		},
		Output: OutputConfig{
			Color: true,
		},
	}
}

// Validate checks every field of the configuration
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var valErrs validator.ValidationErrors
	if errors.As(err, &valErrs) {
		messages := make([]string, 0, len(valErrs))
		for _, ve := range valErrs {
			messages = append(messages, fmt.Sprintf("%s: %s", ve.Namespace(), formatValidationError(ve)))
		}
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(messages, "; "))
	}
	return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
}

func formatValidationError(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s], got %q", ve.Param(), ve.Value())
	case "syntax_version":
		return fmt.Sprintf("unknown syntax version %q", ve.Value())
	default:
		return fmt.Sprintf("failed %s validation", ve.Tag())
	}
}

// Options converts the generator settings to generation options
func (c *Config) Options() (types.GeneratorOptions, error) {
	g := c.Generator
	priority, err := types.ParseAdditionPriority(g.AdditionPriority)
	if err != nil {
		return types.GeneratorOptions{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	version, err := syntax.Parse(g.SyntaxVersion)
	if err != nil {
		return types.GeneratorOptions{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	opts := types.GeneratorOptions{
		AdditionPriority:    priority,
		SyntaxVersion:       version,
		DbValue:             g.DbValue,
		UnderlyingValue:     g.UnderlyingValue,
		ImplementComparable: g.ImplementComparable,
		Visibility:          types.Visibility(g.Visibility),
		Regions:             g.Regions,
	}
	if err := opts.Validate(); err != nil {
		return types.GeneratorOptions{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return opts, nil
}

// InputDialect returns the configured dialect, empty when it should be detected
func (c *Config) InputDialect() (parser.Dialect, error) {
	if c.Generator.Dialect == "" {
		return "", nil
	}
	d, err := parser.ParseDialect(c.Generator.Dialect)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return d, nil
}

// LoadConfig loads configuration from a file
func LoadConfig(configPath string) (*Config, error) {
	// Start with default config
	config := DefaultConfig()

	// If no config file specified, try to find one
	if configPath == "" {
		configPath = findConfigFile()
	}

	// If still no config file, return default
	if configPath == "" {
		return config, nil
	}

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := unmarshal(configPath, data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig saves configuration to a file, YAML unless the extension says otherwise
func SaveConfig(config *Config, configPath string) error {
	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := Marshal(config, formatOf(configPath))
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Marshal encodes the configuration as yaml, json or toml
func Marshal(config *Config, format string) ([]byte, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(config, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case "toml":
		return toml.Marshal(config)
	case "yaml", "yml", "":
		return yaml.Marshal(config)
	default:
		return nil, fmt.Errorf("unsupported config format %q", format)
	}
}

func unmarshal(path string, data []byte, config *Config) error {
	switch formatOf(path) {
	case "json":
		return json.Unmarshal(data, config)
	case "toml":
		return toml.Unmarshal(data, config)
	default:
		return yaml.Unmarshal(data, config)
	}
}

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".toml":
		return "toml"
	default:
		return "yaml"
	}
}

func candidateNames() []string {
	return []string{
		configBaseName + ".yaml",
		configBaseName + ".yml",
		configBaseName + ".json",
		configBaseName + ".toml",
	}
}

// findConfigFile looks for config files in common locations
func findConfigFile() string {
	// Current directory
	for _, candidate := range candidateNames() {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	// Home directory
	homeDir, err := os.UserHomeDir()
	if err == nil {
		for _, name := range candidateNames() {
			candidate := filepath.Join(homeDir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate
			}
		}
	}

	return ""
}

// GetConfigPath returns the config file path to use
func GetConfigPath(explicitPath string) string {
	if explicitPath != "" {
		return explicitPath
	}

	found := findConfigFile()
	if found != "" {
		return found
	}

	// Default location
	return configBaseName + ".yaml"
}
