package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"oggify/internal/filterchain"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateConversion(); err != nil {
		return err
	}
	if err := c.validateFilters(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateConversion() error {
	if c.Conversion.Workers < 1 {
		return errors.New("conversion.workers must be at least 1")
	}
	speed := c.Conversion.Speed
	if math.IsNaN(speed) || math.IsInf(speed, 0) || speed <= 0 {
		return errors.New("conversion.speed must be a positive number")
	}
	if c.Conversion.TimeoutSeconds < 0 {
		return errors.New("conversion.timeout_seconds must not be negative")
	}
	if strings.TrimSpace(c.Conversion.Codec) == "" {
		return errors.New("conversion.codec must be set")
	}
	if strings.TrimSpace(c.Conversion.FFmpegBinary) == "" {
		return errors.New("conversion.ffmpeg_binary must be set")
	}
	return nil
}

func (c *Config) validateFilters() error {
	if unknown := c.Filters.Unknown(); len(unknown) > 0 {
		return fmt.Errorf("filters: unknown filter %q (supported: %s)", unknown[0], strings.Join(filterchain.Order(), ", "))
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
