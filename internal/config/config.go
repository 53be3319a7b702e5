package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/depeter/swipedeck/pager"
)

type Config struct {
	UI       UIConfig      `toml:"ui"`
	Demo     DemoConfig    `toml:"demo"`
	Pager    PagerConfig   `toml:"pager"`
	Keybinds KeybindConfig `toml:"keybinds"`
}

type UIConfig struct {
	Fullscreen bool `toml:"fullscreen"`
	Width      int  `toml:"width"`
	Height     int  `toml:"height"`
}

type DemoConfig struct {
	Pages int `toml:"pages"`
}

type PagerConfig struct {
	ScrollEnabled bool    `toml:"scroll_enabled"`
	Direction     string  `toml:"direction"`
	Orientation   string  `toml:"orientation"`
	InitialPage   int     `toml:"initial_page"`
	PageMargin    float64 `toml:"page_margin"`
	SettleDelayMS int     `toml:"settle_delay_ms"`
}

type KeybindConfig struct {
	NextPage       string `toml:"next_page"`
	PrevPage       string `toml:"prev_page"`
	FirstPage      string `toml:"first_page"`
	LastPage       string `toml:"last_page"`
	ToggleGestures string `toml:"toggle_gestures"`
}

func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Fullscreen: false,
			Width:      1280,
			Height:     720,
		},
		Demo: DemoConfig{
			Pages: 6,
		},
		Pager: PagerConfig{
			ScrollEnabled: true,
			Direction:     "ltr",
			Orientation:   "horizontal",
			InitialPage:   0,
			PageMargin:    24,
			SettleDelayMS: 120,
		},
		Keybinds: KeybindConfig{
			NextPage:       "Right",
			PrevPage:       "Left",
			FirstPage:      "Home",
			LastPage:       "End",
			ToggleGestures: "G",
		},
	}
}

// Engine converts the [pager] section into an engine configuration.
// Unknown direction and orientation strings fall back to the defaults.
func (p PagerConfig) Engine() pager.Config {
	cfg := pager.DefaultConfig()
	cfg.ScrollEnabled = p.ScrollEnabled
	if strings.EqualFold(p.Direction, "rtl") {
		cfg.Direction = pager.RTL
	}
	if strings.EqualFold(p.Orientation, "vertical") {
		cfg.Orientation = pager.Vertical
	}
	cfg.InitialPage = p.InitialPage
	cfg.PageMargin = p.PageMargin
	if p.SettleDelayMS > 0 {
		cfg.SettleDelay = time.Duration(p.SettleDelayMS) * time.Millisecond
	}
	return cfg
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "swipedeck"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func Load() (*Config, error) {
	cfg := DefaultConfig()

	path, err := ConfigPath()
	if err != nil {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}
