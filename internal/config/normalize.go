package config

import (
	"fmt"
	"os"
	"strings"

	"oggify/internal/filterchain"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeConversion()
	c.normalizeFilters()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	c.Paths.LogDir = strings.TrimSpace(c.Paths.LogDir)
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeConversion() {
	c.Conversion.Codec = strings.TrimSpace(c.Conversion.Codec)
	if c.Conversion.Codec == "" {
		c.Conversion.Codec = defaultCodec
	}
	c.Conversion.FFmpegBinary = strings.TrimSpace(c.Conversion.FFmpegBinary)
	if value, ok := os.LookupEnv("OGGIFY_FFMPEG"); ok && strings.TrimSpace(value) != "" {
		c.Conversion.FFmpegBinary = strings.TrimSpace(value)
	}
	if c.Conversion.FFmpegBinary == "" {
		c.Conversion.FFmpegBinary = defaultFFmpegBinary
	}
}

func (c *Config) normalizeFilters() {
	if c.Filters == nil {
		c.Filters = filterchain.Spec{}
		return
	}
	normalized := make(filterchain.Spec, len(c.Filters))
	for name, setting := range c.Filters {
		setting.Params = strings.TrimSpace(setting.Params)
		normalized[strings.ToLower(strings.TrimSpace(name))] = setting
	}
	c.Filters = normalized
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
