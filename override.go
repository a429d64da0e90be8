// FILE: override.go
package log

import (
	"fmt"
	"strconv"
	"strings"
)

// ApplyOverride applies string key-value overrides to the configuration and validates the result.
// Each override should be in the format "key=value". On any error the configuration is left unchanged.
//
// Example:
//
//	cfg := log.DefaultConfig()
//	err := cfg.ApplyOverride(
//	    "directory=/var/log/app",
//	    "level=debug",
//	    "format=json",
//	)
func (c *Config) ApplyOverride(overrides ...string) error {
	updated := c.Clone()

	var errors []error

	for _, override := range overrides {
		key, value, err := parseKeyValue(override)
		if err != nil {
			errors = append(errors, err)
			continue
		}

		if err := applyConfigField(updated, key, value); err != nil {
			errors = append(errors, err)
		}
	}

	if len(errors) > 0 {
		return combineConfigErrors(errors)
	}

	if err := updated.Validate(); err != nil {
		return err
	}

	*c = *updated
	return nil
}

// combineConfigErrors combines multiple configuration errors into a single error.
func combineConfigErrors(errors []error) error {
	if len(errors) == 0 {
		return nil
	}
	if len(errors) == 1 {
		return errors[0]
	}

	var sb strings.Builder
	sb.WriteString("log: multiple configuration errors:")
	for i, err := range errors {
		// Remove "log: " prefix from individual errors to avoid duplication
		errMsg := strings.TrimPrefix(err.Error(), "log: ")
		sb.WriteString(fmt.Sprintf("\n  %d. %s", i+1, errMsg))
	}
	return fmt.Errorf("%s", sb.String())
}

// applyConfigField applies a single key-value override to a Config.
func applyConfigField(cfg *Config, key, value string) error {
	switch key {
	// Basic settings
	case "level":
		levelVal, err := ParseLevel(value)
		if err != nil {
			return fmtErrorf("invalid level value '%s': %w", value, err)
		}
		cfg.Level = levelVal
	case "name":
		cfg.Name = value
	case "directory":
		cfg.Directory = value
	case "format":
		cfg.Format = strings.ToLower(value)

	// Formatting
	case "timestamp_format":
		cfg.TimestampFormat = value

	// File output
	case "rolling_log":
		return parseBoolField(key, value, &cfg.RollingLog)
	case "overwrite_on_start":
		return parseBoolField(key, value, &cfg.OverwriteOnStart)
	case "enable_file":
		return parseBoolField(key, value, &cfg.EnableFile)
	case "async":
		return parseBoolField(key, value, &cfg.Async)
	case "flush_interval_ms":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for flush_interval_ms '%s': %w", value, err)
		}
		cfg.FlushIntervalMs = intVal

	// Console output
	case "enable_console":
		return parseBoolField(key, value, &cfg.EnableConsole)
	case "console_color":
		return parseBoolField(key, value, &cfg.ConsoleColor)
	case "console_target":
		cfg.ConsoleTarget = strings.ToLower(value)

	default:
		return fmtErrorf("unknown configuration key '%s'", key)
	}

	return nil
}

func parseBoolField(key, value string, dst *bool) error {
	boolVal, err := strconv.ParseBool(value)
	if err != nil {
		return fmtErrorf("invalid boolean value for %s '%s': %w", key, value, err)
	}
	*dst = boolVal
	return nil
}
