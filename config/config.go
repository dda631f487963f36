// Package config loads engine and shell settings.
//
// Settings come from built-in defaults overlaid by an optional plh.yaml,
// searched in the user config directory and the current directory, or an
// explicit path. Everything has a working default; a missing config file is
// not an error.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"xdao.co/plh/entropy"
	"xdao.co/plh/payload"
)

// Config carries every tunable of the engine and the demo shell.
type Config struct {
	CellSize        int      `mapstructure:"cell_size"`
	SurfaceWidth    int      `mapstructure:"surface_width"`
	SurfaceHeight   int      `mapstructure:"surface_height"`
	MaxPayloadBytes int64    `mapstructure:"max_payload_bytes"`
	ImageMIME       []string `mapstructure:"image_mime"`
	VideoMIME       []string `mapstructure:"video_mime"`
	TamperPolicy    string   `mapstructure:"tamper_policy"`
	Author          string   `mapstructure:"author"`
	InvisibleMode   bool     `mapstructure:"invisible_mode"`
	LogLevel        string   `mapstructure:"log_level"`
}

// TamperPolicy values accepted in configuration.
const (
	TamperPolicyOverrideOnly   = "override-only"
	TamperPolicyMutateMetadata = "mutate-metadata"
)

func defaults() map[string]any {
	rules := payload.DefaultIntakeRules()
	return map[string]any{
		"cell_size":         entropy.DefaultCellSize,
		"surface_width":     entropy.DefaultCellSize * 10,
		"surface_height":    entropy.DefaultCellSize * 10,
		"max_payload_bytes": rules.MaxBytes,
		"image_mime":        rules.ImageMIME,
		"video_mime":        rules.VideoMIME,
		"tamper_policy":     TamperPolicyOverrideOnly,
		"author":            "You",
		"invisible_mode":    false,
		"log_level":         "info",
	}
}

// Load reads configuration. explicitPath may be empty; when set it takes
// precedence over the search paths.
func Load(explicitPath string) (Config, error) {
	v := viper.New()
	for key, value := range defaults() {
		v.SetDefault(key, value)
	}

	v.SetConfigName("plh")
	v.SetConfigType("yaml")
	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(userConfigDir, "plh"))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		// A missing file in the search paths is fine: defaults apply. An
		// explicit path that cannot be read, or a malformed file, is not.
		var notFound viper.ConfigFileNotFoundError
		if explicitPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return c, nil
}

// IntakeRules projects the configured intake settings.
func (c Config) IntakeRules() payload.IntakeRules {
	return payload.IntakeRules{
		MaxBytes:  c.MaxPayloadBytes,
		ImageMIME: c.ImageMIME,
		VideoMIME: c.VideoMIME,
	}
}
