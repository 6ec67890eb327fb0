package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/cpy-helpers/assets"
	"github.com/doeshing/cpy-helpers/internal/domain"
	"github.com/doeshing/cpy-helpers/internal/pkg/filesystem"
	"github.com/doeshing/cpy-helpers/internal/ports"
)

// FileLoader loads YAML configuration from ~/.cpy-helpers/config.yaml
// (overridable via CPY_HELPERS_CONFIG). The file is never written.
type FileLoader struct {
	overridePath string
	getenv       func(string) string
}

// NewFileLoader builds a new loader. An empty path defers to the environment.
func NewFileLoader(path string, getenv func(string) string) *FileLoader {
	if getenv == nil {
		getenv = os.Getenv
	}
	return &FileLoader{overridePath: path, getenv: getenv}
}

// Load implements ports.ConfigProvider. A missing file yields the defaults.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.resolvePath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return domain.Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	return hydrateDefaults(cfg), nil
}

// Path returns the resolved config file path.
func (l *FileLoader) Path() string {
	return l.resolvePath()
}

// Exists reports whether a config file is present at the resolved path.
func (l *FileLoader) Exists() bool {
	info, err := os.Stat(l.resolvePath())
	return err == nil && info.Mode().IsRegular()
}

func (l *FileLoader) resolvePath() string {
	if l.overridePath != "" {
		return filesystem.ExpandPath(l.overridePath)
	}
	if custom := l.getenv(domain.ConfigEnvVar); custom != "" {
		return filesystem.ExpandPath(custom)
	}
	return filepath.Join(filesystem.UserHomeDir(), domain.ConfigDirName, "config.yaml")
}

// DefaultConfig returns the embedded defaults.
func DefaultConfig() domain.Config {
	var cfg domain.Config
	if err := yaml.Unmarshal(assets.DefaultConfigYAML, &cfg); err != nil {
		// Only reachable if the embedded file is broken.
		cfg = domain.Config{ConfigFormatVersion: "1"}
	}
	return hydrateDefaults(cfg)
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = "1"
	}
	if cfg.Probe.Prefer == "" {
		cfg.Probe.Prefer = string(domain.DefaultPreferredBoard)
	}
	if cfg.Probe.Backend == "" {
		cfg.Probe.Backend = domain.BackendAuto
	}
	// Negative values are left for ValidateConfig to reject.
	if cfg.Probe.TimeoutSeconds == 0 {
		cfg.Probe.TimeoutSeconds = int(domain.DefaultProbeTimeout.Seconds())
	}
	if cfg.Probe.SysfsRoot == "" {
		cfg.Probe.SysfsRoot = domain.DefaultSysfsRoot
	}
	return cfg
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
