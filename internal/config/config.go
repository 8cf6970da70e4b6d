package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Flux"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	Mock struct {
		// Simulated network delay paid by every data access.
		Latency time.Duration `envconfig:"MOCK_LATENCY" default:"500ms"`
	}

	UI struct {
		ToastTTL time.Duration `envconfig:"TOAST_TTL" default:"4s"`
	}

	Gemini struct {
		APIKey string `envconfig:"GEMINI_API_KEY"`
		Model  string `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`
	}

	Settings struct {
		Path string `envconfig:"SETTINGS_PATH"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if cfg.Settings.Path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving home dir: %w", err)
		}

		cfg.Settings.Path = filepath.Join(home, ".flux", "settings.json")
	}

	return &cfg, nil
}
