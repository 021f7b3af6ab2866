// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"testing"

	"github.com/ik5/wavecodec/formats/wav"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("WAVTOOL_BITS", "")
	t.Setenv("WAVTOOL_LOG_LEVEL", "")
	t.Setenv("WAVTOOL_LOG_FORMAT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Bits != 16 {
		t.Errorf("Bits = %d, want 16", cfg.Bits)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %s, want info", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %s, want text", cfg.LogFormat)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("WAVTOOL_BITS", "8")
	t.Setenv("WAVTOOL_LOG_LEVEL", "debug")
	t.Setenv("WAVTOOL_LOG_FORMAT", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Bits != 8 || cfg.LogLevel != "debug" || cfg.LogFormat != "json" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoad_UnparsableIntFallsBack(t *testing.T) {
	t.Setenv("WAVTOOL_BITS", "sixteen")
	t.Setenv("WAVTOOL_LOG_LEVEL", "")
	t.Setenv("WAVTOOL_LOG_FORMAT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Bits != 16 {
		t.Errorf("Bits = %d, want default 16", cfg.Bits)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Bits: 32, LogLevel: "warn", LogFormat: "text"}, false},
		{"24-bit is left to convert", Config{Bits: 24, LogLevel: "info", LogFormat: "text"}, false},
		{"bad level", Config{Bits: 16, LogLevel: "trace", LogFormat: "text"}, true},
		{"bad format", Config{Bits: 16, LogLevel: "info", LogFormat: "xml"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := tt.cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_BadBitsDoesNotFailLoad(t *testing.T) {
	t.Setenv("WAVTOOL_BITS", "24")
	t.Setenv("WAVTOOL_LOG_LEVEL", "")
	t.Setenv("WAVTOOL_LOG_FORMAT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := ValidateBits(cfg.Bits); !errors.Is(err, wav.ErrUnsupportedBitDepth) {
		t.Errorf("ValidateBits(%d) = %v, want ErrUnsupportedBitDepth", cfg.Bits, err)
	}
}

func TestValidateBits(t *testing.T) {
	t.Parallel()

	for _, bits := range []int{8, 16, 32} {
		if err := ValidateBits(bits); err != nil {
			t.Errorf("ValidateBits(%d) = %v", bits, err)
		}
	}
	for _, bits := range []int{0, 12, 24, 65552} {
		if err := ValidateBits(bits); err == nil {
			t.Errorf("ValidateBits(%d) = nil, want error", bits)
		}
	}
}
