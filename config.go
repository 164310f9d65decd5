package logx

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/lixenwraith/config"
)

// Config holds all logger configuration values
type Config struct {
	// Basic settings
	Level     Level  `toml:"level"`
	Name      string `toml:"name"` // Base name for the active log file
	Directory string `toml:"directory"`
	Extension string `toml:"extension"`

	// Formatting
	TimestampFormat string `toml:"timestamp_format"` // Time format for record timestamps

	// Size and rate limits
	MaxSizeKB  int64 `toml:"max_size_kb"`  // Rotation threshold for the active file
	MaxLogRate int64 `toml:"max_log_rate"` // Max records per second, 0 = unlimited

	// Sink settings
	EnableFile    bool   `toml:"enable_file"`    // Append records to the log file
	EnableConsole bool   `toml:"enable_console"` // Mirror records to the console
	ConsoleTarget string `toml:"console_target"` // "stdout" or "stderr"
}

// defaultConfig is the single source for all configurable default values.
// The file defaults reproduce the original surface: LogX.log in the
// invoking user's home directory, rotated at 10 MiB.
var defaultConfig = Config{
	Level:     LevelAll,
	Name:      "LogX",
	Directory: defaultDirectory(),
	Extension: "log",

	TimestampFormat: defaultTimestampLayout,

	MaxSizeKB:  defaultMaxSizeKB,
	MaxLogRate: 0,

	EnableFile:    true,
	EnableConsole: true,
	ConsoleTarget: "stdout",
}

// defaultDirectory resolves the invoking user's home directory
func defaultDirectory() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

// DefaultConfig returns a copy of the default configuration
func DefaultConfig() *Config {
	copiedConfig := defaultConfig
	return &copiedConfig
}

// NewConfigFromFile loads configuration from a TOML file and returns a validated Config
func NewConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	// Use lixenwraith/config as a loader
	loader := config.New()

	// Register the struct to enable proper unmarshaling
	if err := loader.RegisterStruct("logx.", *cfg); err != nil {
		return nil, fmt.Errorf("failed to register config struct: %w", err)
	}

	// Load from file (handles file not found gracefully)
	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	// Extract values into our Config struct
	if err := extractConfig(loader, "logx.", cfg); err != nil {
		return nil, fmt.Errorf("failed to extract config values: %w", err)
	}

	// Validate the loaded configuration
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
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

// setFieldValue sets a reflect.Value with proper type conversion
func setFieldValue(field reflect.Value, value any) error {
	// Level fields accept names as well as numeric constants, matching the
	// override surface
	if field.Type() == reflect.TypeOf(LevelAll) {
		if strVal, ok := value.(string); ok {
			level, err := ParseLevel(strVal)
			if err != nil {
				return err
			}
			field.SetInt(int64(level))
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
		// The loader echoes registered defaults back with their named type
		// (Level), so convert any integer-kinded value
		rv := reflect.ValueOf(value)
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			field.Set(rv.Convert(field.Type()))
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

// validate performs validation on the configuration
func (c *Config) validate() error {
	// String validations
	if strings.TrimSpace(c.Name) == "" {
		return fmtErrorf("log name cannot be empty")
	}

	if strings.HasPrefix(c.Extension, ".") {
		return fmtErrorf("extension should not start with dot: %s", c.Extension)
	}

	if strings.TrimSpace(c.TimestampFormat) == "" {
		return fmtErrorf("timestamp_format cannot be empty")
	}

	if c.ConsoleTarget != "stdout" && c.ConsoleTarget != "stderr" {
		return fmtErrorf("invalid console_target: '%s' (use stdout or stderr)", c.ConsoleTarget)
	}

	// Numeric validations
	if !c.Level.valid() {
		return fmtErrorf("invalid level: %d", c.Level)
	}

	if c.MaxSizeKB <= 0 {
		return fmtErrorf("max_size_kb must be positive: %d", c.MaxSizeKB)
	}

	if c.MaxLogRate < 0 {
		return fmtErrorf("max_log_rate cannot be negative: %d", c.MaxLogRate)
	}

	return nil
}

// Clone creates a deep copy of the configuration
func (c *Config) Clone() *Config {
	copiedConfig := *c
	return &copiedConfig
}

// maxBytes returns the rotation threshold in bytes
func (c *Config) maxBytes() int64 {
	return c.MaxSizeKB * sizeMultiplier
}

// logFilePath returns the full path to the active log file
func (c *Config) logFilePath() string {
	return logFilePath(c.Directory, c.Name, c.Extension)
}

// samePath reports whether two configs target the same active log file
func (c *Config) samePath(other *Config) bool {
	return c.Directory == other.Directory &&
		c.Name == other.Name &&
		c.Extension == other.Extension
}
