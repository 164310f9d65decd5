package logx

import (
	"fmt"
	"strconv"
	"strings"
)

// ApplyOverride applies string key-value overrides to the logger's current
// configuration. Each override should be in the format "key=value".
// The configuration is cloned before modification to ensure thread safety.
//
// Example:
//
//	logger := logx.NewLogger()
//	err := logger.ApplyOverride(
//	    "directory=/var/log/app",
//	    "level=warn",
//	    "max_size_kb=2048",
//	)
func (l *Logger) ApplyOverride(overrides ...string) error {
	cfg := l.getConfig().Clone()

	var errs []error

	for _, override := range overrides {
		key, value, err := parseKeyValue(override)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if err := applyConfigField(cfg, key, value); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return combineConfigErrors(errs)
	}

	return l.ApplyConfig(cfg)
}

// applyConfigField sets a single configuration field from its string value
func applyConfigField(cfg *Config, key, value string) error {
	switch strings.ToLower(key) {
	case "level":
		// Accept both numeric constants and level names
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			cfg.Level = Level(n)
			return nil
		}
		level, err := ParseLevel(value)
		if err != nil {
			return err
		}
		cfg.Level = level

	case "name":
		cfg.Name = value

	case "directory":
		cfg.Directory = value

	case "extension":
		cfg.Extension = value

	case "timestamp_format":
		cfg.TimestampFormat = value

	case "max_size_kb":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid max_size_kb value '%s': %w", value, err)
		}
		cfg.MaxSizeKB = n

	case "max_log_rate":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid max_log_rate value '%s': %w", value, err)
		}
		cfg.MaxLogRate = n

	case "enable_file":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid enable_file value '%s': %w", value, err)
		}
		cfg.EnableFile = b

	case "enable_console":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid enable_console value '%s': %w", value, err)
		}
		cfg.EnableConsole = b

	case "console_target":
		cfg.ConsoleTarget = value

	default:
		return fmtErrorf("unknown config key: %s", key)
	}

	return nil
}

// combineConfigErrors combines multiple configuration errors into a single error
func combineConfigErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}

	var sb strings.Builder
	sb.WriteString("logx: multiple configuration errors:")
	for _, err := range errs {
		sb.WriteString("\n  - ")
		sb.WriteString(strings.TrimPrefix(err.Error(), "logx: "))
	}
	return fmt.Errorf("%s", sb.String())
}
