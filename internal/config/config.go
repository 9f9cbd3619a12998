package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/ripple/internal/icons"
	"github.com/llehouerou/ripple/internal/ui/panel"
)

type Config struct {
	DefaultFolder string `koanf:"default_folder"` // folder loaded into the playlist at startup
	Icons         string `koanf:"icons"`          // nerd, unicode or none (default: none)

	// Playlist navigation menu
	PlaylistMenu PanelConfig `koanf:"playlist_menu"`

	// Share panel
	SharePanel ShareConfig `koanf:"share_panel"`

	// Debug logging
	Log LogConfig `koanf:"log"`
}

// PanelConfig is the user layer for an auto-hiding panel.
type PanelConfig struct {
	HideDelay *int  `koanf:"hide_delay"` // milliseconds; -1 disables auto-hide (default: 3000)
	Hidden    *bool `koanf:"hidden"`     // start hidden (default: true)
}

// ShareConfig holds the share panel settings.
type ShareConfig struct {
	PanelConfig   `koanf:",squash"`
	BaseURL       string `koanf:"base_url"`       // e.g. "https://music.example.org"
	DesktopNotify bool   `koanf:"desktop_notify"` // desktop notification after sharing
}

// LogConfig controls the debug log file.
type LogConfig struct {
	Debug bool   `koanf:"debug"`
	Dir   string `koanf:"dir"` // default: XDG state dir
}

func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given TOML files in order, later files overriding earlier
// ones. Missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.DefaultFolder = expandPath(cfg.DefaultFolder)
	cfg.Log.Dir = expandPath(cfg.Log.Dir)
	cfg.SharePanel.BaseURL = strings.TrimSuffix(cfg.SharePanel.BaseURL, "/")

	return cfg, nil
}

// Validate rejects unknown icon styles and hide delays below the disabled
// sentinel.
func (c *Config) Validate() error {
	if !icons.Valid(c.Icons) {
		return fmt.Errorf("icons: unknown style %q", c.Icons)
	}
	if err := c.PlaylistMenu.Layer().Validate(); err != nil {
		return fmt.Errorf("playlist_menu: %w", err)
	}
	if err := c.SharePanel.Layer().Validate(); err != nil {
		return fmt.Errorf("share_panel: %w", err)
	}
	return nil
}

// Layer returns the settings as a panel configuration layer. Unset keys stay
// unset so the component defaults apply.
func (p PanelConfig) Layer() panel.Config {
	return panel.Config{
		Hidden:    p.Hidden,
		HideDelay: p.HideDelay,
	}
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/ripple/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "ripple", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
