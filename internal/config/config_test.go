package config

import (
	"strings"
	"testing"
)

// TestParseDefaults tests that parsing with no arguments yields the defaults
func TestParseDefaults(t *testing.T) {
	cfg, err := Parse("minifetch", nil)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.NoColor {
		t.Error("NoColor = true, want false by default")
	}
	if cfg.Compact {
		t.Error("Compact = true, want false by default")
	}
	if cfg.NoBanner {
		t.Error("NoBanner = true, want false by default")
	}
	if cfg.Font != "slant" {
		t.Errorf("Font = %q, want \"slant\"", cfg.Font)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want \"warn\"", cfg.LogLevel)
	}
}

// TestParseFlags tests individual flag handling
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		check   func(*Config) bool
		wantErr bool
		errText string
	}{
		{
			name:  "no-color",
			args:  []string{"--no-color"},
			check: func(c *Config) bool { return c.NoColor },
		},
		{
			name:  "compact",
			args:  []string{"--compact"},
			check: func(c *Config) bool { return c.Compact },
		},
		{
			name:  "no-banner",
			args:  []string{"--no-banner"},
			check: func(c *Config) bool { return c.NoBanner },
		},
		{
			name:  "custom font",
			args:  []string{"--font", "standard"},
			check: func(c *Config) bool { return c.Font == "standard" },
		},
		{
			name:  "log level debug",
			args:  []string{"--log-level", "debug"},
			check: func(c *Config) bool { return c.LogLevel == "debug" },
		},
		{
			name:  "version shorthand",
			args:  []string{"-V"},
			check: func(c *Config) bool { return c.ShowVersion },
		},
		{
			name:    "unknown flag",
			args:    []string{"--frobnicate"},
			wantErr: true,
		},
		{
			name:    "positional argument",
			args:    []string{"extra"},
			wantErr: true,
			errText: "unexpected argument",
		},
		{
			name:    "invalid log level",
			args:    []string{"--log-level", "loud"},
			wantErr: true,
			errText: "invalid log level",
		},
		{
			name:    "empty font",
			args:    []string{"--font", ""},
			wantErr: true,
			errText: "font must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse("minifetch", tt.args)

			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				if tt.errText != "" && !strings.Contains(err.Error(), tt.errText) {
					t.Errorf("error = %v, want error containing %q", err, tt.errText)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !tt.check(cfg) {
				t.Errorf("flag not applied: %+v", cfg)
			}
		})
	}
}
