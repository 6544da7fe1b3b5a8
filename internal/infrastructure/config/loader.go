package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/calcli/internal/domain"
	"github.com/doeshing/calcli/internal/ports"
)

// FileLoader loads YAML configuration from ~/.calcli/config.yaml
// (overridable via CALCLI_CONFIG).
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.resolvePath()
	if err := ensureConfigDir(path); err != nil {
		return domain.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := defaultConfig()
			if err := writeDefault(path, cfg); err != nil {
				return domain.Config{}, err
			}
			return ensureDirs(cfg)
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, err
	}

	return ensureDirs(hydrateDefaults(cfg))
}

// Path returns the resolved config file location.
func (l *FileLoader) Path() string {
	return l.resolvePath()
}

func (l *FileLoader) resolvePath() string {
	if l.overridePath != "" {
		return l.overridePath
	}
	if custom := os.Getenv("CALCLI_CONFIG"); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(userHomeDir(), ".calcli", "config.yaml")
}

func ensureConfigDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, domain.DirectoryPermissions)
}

func writeDefault(path string, cfg domain.Config) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, domain.ConfigFilePermissions)
}

func defaultConfig() domain.Config {
	base := filepath.Join(userHomeDir(), ".calcli")
	return domain.Config{
		ConfigFormatVersion: "1",
		Logging: domain.LoggingSettings{
			Dir: filepath.Join(base, "logs"),
		},
		History: domain.HistorySettings{
			Dir:      filepath.Join(base, "history"),
			MaxSize:  domain.DefaultMaxHistorySize,
			AutoSave: true,
			Backend:  domain.DefaultBackend,
			Encoding: domain.DefaultEncoding,
		},
		Input: domain.InputSettings{
			Precision:     domain.DefaultPrecision,
			MaxInputValue: domain.DefaultMaxInputValue,
		},
	}
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	def := defaultConfig()
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = def.ConfigFormatVersion
	}
	if cfg.Logging.Dir == "" {
		cfg.Logging.Dir = def.Logging.Dir
	}
	if cfg.History.Dir == "" {
		cfg.History.Dir = def.History.Dir
	}
	if cfg.History.MaxSize == 0 {
		cfg.History.MaxSize = def.History.MaxSize
	}
	if cfg.History.Backend == "" {
		cfg.History.Backend = def.History.Backend
	}
	if cfg.History.Encoding == "" {
		cfg.History.Encoding = def.History.Encoding
	}
	if cfg.Input.Precision == 0 {
		cfg.Input.Precision = def.Input.Precision
	}
	if cfg.Input.MaxInputValue == 0 {
		cfg.Input.MaxInputValue = def.Input.MaxInputValue
	}
	return cfg
}

func ensureDirs(cfg domain.Config) (domain.Config, error) {
	for _, dir := range []string{cfg.Logging.Dir, cfg.History.Dir} {
		if err := os.MkdirAll(dir, domain.DirectoryPermissions); err != nil {
			return domain.Config{}, err
		}
	}
	return cfg, nil
}

func expandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if len(path) > 1 && path[:2] == "~/" {
		return filepath.Join(userHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

func userHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
