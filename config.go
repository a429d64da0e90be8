// FILE: lixenwraith/simplelog/config.go
package log

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/lixenwraith/config"
	"gopkg.in/yaml.v3"
)

// Config holds all logger configuration values
type Config struct {
	// Basic settings
	Level     Level  `toml:"level" yaml:"level"`
	Name      string `toml:"name" yaml:"name"` // Base name for log files
	Directory string `toml:"directory" yaml:"directory"`
	Format    string `toml:"format" yaml:"format"` // "txt" or "json"

	// Formatting
	TimestampFormat string `toml:"timestamp_format" yaml:"timestamp_format"` // Plain text timestamp layout

	// File output; RollingLog selects one file per calendar day,
	// OverwriteOnStart truncates the static file at startup
	RollingLog       bool  `toml:"rolling_log" yaml:"rolling_log"`
	OverwriteOnStart bool  `toml:"overwrite_on_start" yaml:"overwrite_on_start"`
	EnableFile       bool  `toml:"enable_file" yaml:"enable_file"`
	Async            bool  `toml:"async" yaml:"async"`
	FlushIntervalMs  int64 `toml:"flush_interval_ms" yaml:"flush_interval_ms"` // Periodic fsync of the async writer

	// Console output
	EnableConsole bool   `toml:"enable_console" yaml:"enable_console"`
	ConsoleColor  bool   `toml:"console_color" yaml:"console_color"`
	ConsoleTarget string `toml:"console_target" yaml:"console_target"` // "stdout" or "stderr"
}

// defaultConfig is the single source for all configurable default values
var defaultConfig = Config{
	// Basic settings
	Level:     LevelInfo,
	Name:      "log",
	Directory: "", // resolved by DefaultConfig
	Format:    FormatTxt,

	// Formatting
	TimestampFormat: DefaultTimestampFormat,

	// File output
	RollingLog:       false,
	OverwriteOnStart: false,
	EnableFile:       true,
	Async:            true,
	FlushIntervalMs:  100,

	// Console output
	EnableConsole: false,
	ConsoleColor:  true,
	ConsoleTarget: TargetStdout,
}

// DefaultConfig returns a copy of the default configuration
func DefaultConfig() *Config {
	// Create a copy to prevent modifications to the original
	copiedConfig := defaultConfig
	copiedConfig.Directory = defaultDirectory()
	return &copiedConfig
}

// defaultDirectory is a "Logs" folder next to the executable
func defaultDirectory() string {
	exe, err := os.Executable()
	if err != nil {
		return filepath.Join(".", "Logs")
	}
	return filepath.Join(filepath.Dir(exe), "Logs")
}

// NewConfigFromFile loads configuration from a TOML or YAML file and returns a validated Config.
// Settings live under the "log" section; absent keys keep their defaults.
func NewConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := loadYAML(path, cfg); err != nil {
			return nil, err
		}
	default:
		if err := loadTOML(path, cfg); err != nil {
			return nil, err
		}
	}

	// Validate the loaded configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadTOML uses lixenwraith/config as a loader
func loadTOML(path string, cfg *Config) error {
	loader := config.New()

	// Register the struct to enable proper unmarshaling
	if err := loader.RegisterStruct("log.", *cfg); err != nil {
		return fmtErrorf("failed to register config struct: %w", err)
	}

	// Load from file (handles file not found gracefully)
	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return fmtErrorf("failed to load config from %s: %w", path, err)
	}

	// Extract values into our Config struct
	if err := extractConfig(loader, "log.", cfg); err != nil {
		return fmtErrorf("failed to extract config values: %w", err)
	}
	return nil
}

// loadYAML decodes a "log:" mapping over the defaults already in cfg
func loadYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmtErrorf("failed to read config file %s: %w", path, err)
	}

	doc := struct {
		Log *Config `yaml:"log"`
	}{Log: cfg}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmtErrorf("failed to parse YAML config %s: %w", path, err)
	}
	return nil
}

// extractConfig extracts values from lixenwraith/config into our Config struct
func extractConfig(loader *config.Config, prefix string, cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		// Get the toml tag to determine the config key
		tomlTag := field.Tag.Get("toml")
		if tomlTag == "" {
			continue
		}

		key := prefix + tomlTag

		// Get value from loader
		val, found := loader.Get(key)
		if !found {
			continue // Use default value
		}

		// Set the field value with type conversion
		if err := setFieldValue(fieldValue, val); err != nil {
			return fmt.Errorf("failed to set field %s: %w", field.Name, err)
		}
	}

	return nil
}

var levelType = reflect.TypeOf(Level(0))

// setFieldValue sets a reflect.Value with proper type conversion
func setFieldValue(field reflect.Value, value any) error {
	// Levels may be given by name
	if field.Type() == levelType {
		switch v := value.(type) {
		case string:
			lvl, err := ParseLevel(v)
			if err != nil {
				return err
			}
			field.SetInt(int64(lvl))
			return nil
		case Level:
			field.SetInt(int64(v))
			return nil
		}
	}

	switch field.Kind() {
	case reflect.String:
		strVal, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		field.SetString(strVal)

	case reflect.Int64:
		switch v := value.(type) {
		case int64:
			field.SetInt(v)
		case int:
			field.SetInt(int64(v))
		default:
			return fmt.Errorf("expected int64, got %T", value)
		}

	case reflect.Bool:
		boolVal, ok := value.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", value)
		}
		field.SetBool(boolVal)

	default:
		return fmt.Errorf("unsupported field type: %v", field.Kind())
	}

	return nil
}

// Validate performs validation on the configuration
func (c *Config) Validate() error {
	// String validations
	if strings.TrimSpace(c.Name) == "" {
		return fmtErrorf("log name cannot be empty")
	}

	if strings.ContainsAny(c.Name, `/\`) {
		return fmtErrorf("log name must not contain path separators: '%s'", c.Name)
	}

	if strings.TrimSpace(c.Directory) == "" {
		return fmtErrorf("log directory cannot be empty")
	}

	if c.Format != FormatTxt && c.Format != FormatJSON {
		return fmtErrorf("invalid format: '%s' (use txt or json)", c.Format)
	}

	if strings.TrimSpace(c.TimestampFormat) == "" {
		return fmtErrorf("timestamp_format cannot be empty")
	}

	if c.ConsoleTarget != TargetStdout && c.ConsoleTarget != TargetStderr {
		return fmtErrorf("invalid console_target: '%s' (use stdout or stderr)", c.ConsoleTarget)
	}

	// Numeric validations
	if !knownLevel(c.Level) {
		return fmtErrorf("invalid level: %d", int64(c.Level))
	}

	if c.FlushIntervalMs <= 0 {
		return fmtErrorf("flush_interval_ms must be positive: %d", c.FlushIntervalMs)
	}

	return nil
}

// Clone creates a deep copy of the configuration
func (c *Config) Clone() *Config {
	copiedConfig := *c
	return &copiedConfig
}

// fileExtension is the extension implied by the output format
func (c *Config) fileExtension() string {
	if c.Format == FormatJSON {
		return ".json"
	}
	return ".txt"
}
