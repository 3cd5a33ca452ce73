package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/aquarium/internal/logger"
)

// Config holds the settings of the aquarium server.
type Config struct {
	// HTTPAddress is the listen address of the REST API.
	HTTPAddress string `yaml:"http_address" env:"AQUARIUM_HTTP_ADDRESS"`
	// GRPCAddress is the listen address of the gRPC health endpoint.
	// An empty value disables the endpoint.
	GRPCAddress string `yaml:"grpc_address" env:"AQUARIUM_GRPC_ADDRESS"`
	// DatabasePath is the SQLite database file.
	DatabasePath string `yaml:"database_path" env:"AQUARIUM_DATABASE_PATH"`
	// StatsInterval is the period of the hunger/health/clearness update (one simulated minute).
	StatsInterval time.Duration `yaml:"stats_interval" env:"AQUARIUM_STATS_INTERVAL"`
	// AgingInterval is the period of the age update (one simulated day).
	AgingInterval time.Duration `yaml:"aging_interval" env:"AQUARIUM_AGING_INTERVAL"`
	// Timeout bounds HTTP reads/writes and graceful shutdown.
	Timeout time.Duration `yaml:"timeout" env:"AQUARIUM_TIMEOUT"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" env:"AQUARIUM_LOG_LEVEL"`
	// LogEncoding is console or json.
	LogEncoding string `yaml:"log_encoding" env:"AQUARIUM_LOG_ENCODING"`
}

const (
	// DefaultConfigFilename is the default filename for server settings.
	DefaultConfigFilename = "aquarium-settings.yaml"

	// DefaultEnvFilename is the optional dotenv file read before the environment.
	DefaultEnvFilename = ".env"

	// DefaultHTTPAddress is the default REST listen address.
	DefaultHTTPAddress = ":8080"

	// DefaultDatabasePath is the default SQLite database file.
	DefaultDatabasePath = "data/aquarium.db"

	// DefaultStatsInterval is one simulated minute.
	DefaultStatsInterval = time.Minute

	// DefaultAgingInterval is one simulated day.
	DefaultAgingInterval = 24 * time.Hour

	// DefaultTimeout is the default duration for network operations.
	DefaultTimeout = 5 * time.Second

	// DefaultLogLevel is the default minimum log level.
	DefaultLogLevel = "info"

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errIntervalNotPositive is returned when a simulation interval is zero or negative.
	errIntervalNotPositive = errors.New("interval must be positive")
	// errUnknownLogLevel is returned for an unparsable log level.
	errUnknownLogLevel = errors.New("unknown log level")
	// errUnknownLogEncoding is returned for an unsupported log encoding.
	errUnknownLogEncoding = errors.New("unknown log encoding")
)

// Default returns a configuration with every field set to its default.
func Default() *Config {
	return &Config{
		HTTPAddress:   DefaultHTTPAddress,
		DatabasePath:  DefaultDatabasePath,
		StatsInterval: DefaultStatsInterval,
		AgingInterval: DefaultAgingInterval,
		Timeout:       DefaultTimeout,
		LogLevel:      DefaultLogLevel,
		LogEncoding:   string(logger.EncodingConsole),
	}
}

// Load reads configuration from the provided path, applies AQUARIUM_* environment
// overrides and validates the result. A missing file is not an error: defaults
// and the environment are used instead.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	cfg := Default()

	contents, err := os.ReadFile(filepath.Clean(path))

	switch {
	case err == nil:
		if err := yaml.Unmarshal(contents, cfg); err != nil {
			return nil, fmt.Errorf("unmarshal settings: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		// Keep defaults.
	default:
		return nil, fmt.Errorf("read settings: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDotEnv exports variables from a dotenv file into the process environment.
// Variables already set are kept. A missing file is ignored.
func LoadDotEnv(path string) error {
	if path == "" {
		path = DefaultEnvFilename
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load dotenv: %w", err)
	}

	return nil
}

// Save writes Config to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings and fills in defaults for empty fields.
func Validate(settings *Config) error {
	if settings == nil {
		return errConfigIsNotSet
	}

	if settings.HTTPAddress == "" {
		settings.HTTPAddress = DefaultHTTPAddress
	}

	if _, _, err := net.SplitHostPort(settings.HTTPAddress); err != nil {
		return fmt.Errorf("invalid http address: %w", err)
	}

	if settings.GRPCAddress != "" {
		if _, _, err := net.SplitHostPort(settings.GRPCAddress); err != nil {
			return fmt.Errorf("invalid grpc address: %w", err)
		}
	}

	if settings.DatabasePath == "" {
		settings.DatabasePath = DefaultDatabasePath
	}

	if settings.StatsInterval < 0 || settings.AgingInterval < 0 {
		return errIntervalNotPositive
	}

	if settings.StatsInterval == 0 {
		settings.StatsInterval = DefaultStatsInterval
	}

	if settings.AgingInterval == 0 {
		settings.AgingInterval = DefaultAgingInterval
	}

	// Set default timeout if not specified
	if settings.Timeout <= 0 {
		settings.Timeout = DefaultTimeout
	}

	if settings.LogLevel == "" {
		settings.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(settings.LogLevel); !ok {
		return fmt.Errorf("%w: %q", errUnknownLogLevel, settings.LogLevel)
	}

	switch logger.Encoding(settings.LogEncoding) {
	case "":
		settings.LogEncoding = string(logger.EncodingConsole)
	case logger.EncodingConsole, logger.EncodingJSON:
	default:
		return fmt.Errorf("%w: %q", errUnknownLogEncoding, settings.LogEncoding)
	}

	return nil
}
