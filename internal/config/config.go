// SPDX-License-Identifier: EPL-2.0

// Package config holds the settings shared by the command line tools.
// Values come from the environment and may be overridden by flags.
package config

import (
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/ik5/wavecodec/formats/wav"
)

// Config is the tool configuration.
type Config struct {
	// Bits is the output depth for convert.
	Bits int

	LogLevel  string
	LogFormat string
}

// Load reads WAVTOOL_* environment variables with defaults and validates
// the result.
func Load() (*Config, error) {
	cfg := &Config{
		Bits:      getEnvInt("WAVTOOL_BITS", 16),
		LogLevel:  getEnvString("WAVTOOL_LOG_LEVEL", "info"),
		LogFormat: getEnvString("WAVTOOL_LOG_FORMAT", "text"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the settings every command uses. Bits is only needed by
// convert, which checks it with ValidateBits.
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.LogLevel] {
		return errors.New("WAVTOOL_LOG_LEVEL must be one of: debug, info, warn, error")
	}

	validLogFormats := map[string]bool{"text": true, "json": true}
	if !validLogFormats[c.LogFormat] {
		return errors.New("WAVTOOL_LOG_FORMAT must be one of: text, json")
	}

	return nil
}

// ValidateBits checks an output depth taken from WAVTOOL_BITS or -bits.
func ValidateBits(bits int) error {
	if !wav.SupportedBitDepth(bits) {
		return errors.Wrapf(wav.ErrUnsupportedBitDepth, "WAVTOOL_BITS/-bits must be 8, 16 or 32, got %d", bits)
	}
	return nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt ignores values that do not parse.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
