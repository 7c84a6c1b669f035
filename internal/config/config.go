package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server ServerConfig `yaml:"server"`
	Board  BoardConfig  `yaml:"board"`
	Demo   DemoConfig   `yaml:"demo"`
}

type ServerConfig struct {
	Port           int      `yaml:"port"`
	Host           string   `yaml:"host"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	StaticDir      string   `yaml:"static_dir"`
}

type BoardConfig struct {
	// Width and Height are the room-space extent clients size their
	// raster cache to; demo robots keep their strokes inside it.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// MaxEvents caps each room's event log; zero means unlimited.
	MaxEvents int `yaml:"max_events"`
}

type DemoConfig struct {
	Room     string        `yaml:"room"`
	Interval time.Duration `yaml:"interval"`
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 3000,
			Host: "0.0.0.0",
		},
		Board: BoardConfig{
			Width:     2048,
			Height:    2048,
			MaxEvents: 0,
		},
		Demo: DemoConfig{
			Room:     "demo",
			Interval: 50 * time.Millisecond,
		},
	}
}

// Load reads a YAML config, layering it over the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := defaults()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
