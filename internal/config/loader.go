package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const reversiFile = "reversi.yaml"

// LoadReversi loads the configuration.
// Search order: customPath -> ~/.reversi/configs/reversi.yaml ->
// ./configs/reversi.yaml -> embedded default.
//
// Files are decoded on top of the defaults, so a file only needs the keys it
// changes. A custom path that cannot be read or parsed is an error; the other
// locations are skipped when missing or broken.
func LoadReversi(customPath string) (ReversiConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(reversiFile), filepath.Join("configs", reversiFile)} {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	return embeddedDefault(), nil
}

// loadFile reads and decodes one YAML file over the embedded defaults.
func loadFile(path string) (ReversiConfig, error) {
	cfg := embeddedDefault()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func embeddedDefault() ReversiConfig {
	var cfg ReversiConfig
	if err := yaml.Unmarshal(defaultReversiYAML, &cfg); err != nil {
		return DefaultReversiConfig()
	}
	return cfg
}

// userConfigPath returns the path to the user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".reversi", "configs", filename)
}

// Marshal renders cfg as YAML.
func Marshal(cfg ReversiConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}
