// Package config provides configuration loading and validation for tally.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"

	"github.com/Sumatoshi-tech/tally/pkg/tally"
)

// Sentinel validation errors.
var (
	ErrInvalidKind      = errors.New("invalid engine kind")
	ErrInvalidFormat    = errors.New("invalid export format")
	ErrInvalidLogLevel  = errors.New("invalid log level")
	ErrInvalidLogFormat = errors.New("invalid log format")
	ErrInvalidMaxSize   = errors.New("invalid input max size")
	ErrInvalidWidth     = errors.New("report width must not be negative")
)

// EnvPrefix prefixes every environment override, e.g. TALLY_ENGINE_KIND.
const EnvPrefix = "TALLY"

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// Config holds all configuration for tally.
type Config struct {
	Engine        EngineConfig        `mapstructure:"engine"`
	Input         InputConfig         `mapstructure:"input"`
	Export        ExportConfig        `mapstructure:"export"`
	Report        ReportConfig        `mapstructure:"report"`
	Logging       LoggingConfig       `mapstructure:"logging"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

// EngineConfig selects the counting engine variant.
type EngineConfig struct {
	Kind string `mapstructure:"kind"`
}

// InputConfig bounds dataset loading.
type InputConfig struct {
	// MaxSize is a human-readable byte size such as "16MB".
	MaxSize     string `mapstructure:"max_size"`
	SchemaCheck bool   `mapstructure:"schema_check"`
}

// ExportConfig holds export defaults.
type ExportConfig struct {
	Format    string `mapstructure:"format"`
	Directory string `mapstructure:"directory"`
	Compress  bool   `mapstructure:"compress"`
}

// ReportConfig holds text report settings.
type ReportConfig struct {
	// Width of the report in columns. Zero detects the terminal width.
	Width         int  `mapstructure:"width"`
	NoColor       bool `mapstructure:"no_color"`
	ShowBenchmark bool `mapstructure:"show_benchmark"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ObservabilityConfig holds OpenTelemetry and diagnostics settings.
type ObservabilityConfig struct {
	OTLPEndpoint    string `mapstructure:"otlp_endpoint"`
	OTLPHeaders     string `mapstructure:"otlp_headers"`
	DiagnosticsAddr string `mapstructure:"diagnostics_addr"`
	OTLPInsecure    bool   `mapstructure:"otlp_insecure"`
}

// MaxSizeBytes returns Input.MaxSize in bytes.
func (c InputConfig) MaxSizeBytes() (uint64, error) {
	size, err := humanize.ParseBytes(c.MaxSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMaxSize, c.MaxSize)
	}

	return size, nil
}

// EngineKind returns the parsed engine kind.
func (c EngineConfig) EngineKind() tally.Kind {
	kind, err := tally.ParseKind(c.Kind)
	if err != nil {
		return tally.KindBasic
	}

	return kind
}

// LoadConfig loads configuration from file and environment variables.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("tally")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("./config")
		viperCfg.AddConfigPath("/etc/tally")
	}

	viperCfg.SetEnvPrefix(EnvPrefix)
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := validateConfig(&config)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("engine.kind", DefaultEngineKind)

	viperCfg.SetDefault("input.max_size", DefaultInputMaxSize)
	viperCfg.SetDefault("input.schema_check", DefaultInputSchemaCheck)

	viperCfg.SetDefault("export.format", DefaultExportFormat)
	viperCfg.SetDefault("export.compress", DefaultExportCompress)
	viperCfg.SetDefault("export.directory", DefaultExportDirectory)

	viperCfg.SetDefault("report.width", DefaultReportWidth)
	viperCfg.SetDefault("report.no_color", DefaultReportNoColor)
	viperCfg.SetDefault("report.show_benchmark", DefaultReportShowBenchmark)

	viperCfg.SetDefault("logging.level", DefaultLogLevel)
	viperCfg.SetDefault("logging.format", DefaultLogFormat)

	viperCfg.SetDefault("observability.otlp_endpoint", "")
	viperCfg.SetDefault("observability.otlp_headers", "")
	viperCfg.SetDefault("observability.otlp_insecure", false)
	viperCfg.SetDefault("observability.diagnostics_addr", "")
}

func validateConfig(config *Config) error {
	_, kindErr := tally.ParseKind(config.Engine.Kind)
	if kindErr != nil {
		return fmt.Errorf("%w: %q", ErrInvalidKind, config.Engine.Kind)
	}

	_, formatErr := tally.ParseFormat(config.Export.Format)
	if formatErr != nil {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, config.Export.Format)
	}

	if !slices.Contains(logLevels, strings.ToLower(config.Logging.Level)) {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, config.Logging.Level)
	}

	if !slices.Contains(logFormats, strings.ToLower(config.Logging.Format)) {
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, config.Logging.Format)
	}

	_, sizeErr := config.Input.MaxSizeBytes()
	if sizeErr != nil {
		return sizeErr
	}

	if config.Report.Width < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWidth, config.Report.Width)
	}

	return nil
}
