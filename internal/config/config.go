package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Data    DataConfig    `yaml:"data"`
	Viewer  ViewerConfig  `yaml:"viewer"`
	Contact ContactConfig `yaml:"contact"`
	Log     LogConfig     `yaml:"log"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

// DataConfig points at the fixture directory the stores are seeded from
type DataConfig struct {
	Dir string `yaml:"dir"`
}

// ViewerConfig identifies the session's current user. Fixture records refer
// to the viewer by this name in owner and person fields.
type ViewerConfig struct {
	Name      string `yaml:"name"`
	AvatarURL string `yaml:"avatar_url"`
}

// ContactConfig lists the deep-link schemes the contact action may open.
// Dropping a scheme simulates the target app being unavailable.
type ContactConfig struct {
	Schemes []string `yaml:"schemes"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Viewer.Name == "" {
		cfg.Viewer.Name = "You"
	}
	if cfg.Data.Dir == "" {
		cfg.Data.Dir = "data"
	}
	if len(cfg.Contact.Schemes) == 0 {
		cfg.Contact.Schemes = []string{"sms", "whatsapp"}
	}

	return &cfg, nil
}
