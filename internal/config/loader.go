package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rozenlab/glosscard/internal/domain"
)

// BookConfigName is the per-book configuration file looked up inside each
// book directory.
const BookConfigName = "book.yaml"

// Load reads the application configuration from a YAML file and environment
// variables. Priority: ENV > YAML > defaults (via env-default tags). The
// file path comes from CONFIG_PATH (fallback "./config.yaml"); when the
// fallback file does not exist, configuration is loaded from ENV and
// defaults only.
func Load() (*Config, error) {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	explicitPath := path != ""
	if !explicitPath {
		path = "./config.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	return &cfg, nil
}

// LoadBook reads the book configuration from dir/book.yaml.
func LoadBook(dir string) (*BookConfig, error) {
	path := filepath.Join(dir, BookConfigName)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrConfigNotFound, path)
	}

	var cfg BookConfig
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("book config: read %s: %w", path, err)
	}

	if cfg.BookName == "" {
		cfg.BookName = filepath.Base(dir)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("book config: validate %s: %w", path, err)
	}

	return &cfg, nil
}
