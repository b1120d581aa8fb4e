package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mojolint/mojolint/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = ".mojolint.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .mojolint.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .mojolint.yaml from root. Returns DefaultConfig when the file
// does not exist; explicit values in the file override defaults, absent keys
// keep them.
func (l *YAMLLoader) Load(root string) (domain.CheckConfig, error) {
	data, err := os.ReadFile(filepath.Join(root, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.CheckConfig{}, err
	}

	cfg := domain.DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.CheckConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	if cfg.RetentionDays < 0 {
		return domain.CheckConfig{}, fmt.Errorf("invalid %s: retention_days must not be negative", fileName)
	}

	return cfg, nil
}
