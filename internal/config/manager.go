package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// AppName names the configuration directory and environment prefix.
const AppName = "diskview"

// Manager loads configuration through viper.
type Manager struct {
	config *Config
	viper  *viper.Viper
	mu     sync.RWMutex
}

// NewManager creates a manager searching the user config directory and
// the working directory on the OS filesystem.
func NewManager() (*Manager, error) {
	dir, err := ConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w", err)
	}
	return NewManagerWithFs(afero.NewOsFs(), dir, "."), nil
}

// NewManagerWithFs creates a manager reading from fs and searching the
// given directories in order.
func NewManagerWithFs(fs afero.Fs, dirs ...string) *Manager {
	v := viper.New()
	v.SetFs(fs)

	v.SetConfigName("config")
	v.SetConfigType("toml")
	for _, dir := range dirs {
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix(strings.ToUpper(AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	m := &Manager{viper: v}
	m.setDefaults()
	return m
}

// ConfigDir returns $XDG_CONFIG_HOME/diskview, falling back to the
// platform's user config directory.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName), nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, AppName), nil
}

func (m *Manager) setDefaults() {
	d := DefaultConfig()

	m.viper.SetDefault("logging.level", d.Logging.Level)
	m.viper.SetDefault("logging.format", d.Logging.Format)
	m.viper.SetDefault("logging.file", d.Logging.File)

	m.viper.SetDefault("ui.min_width", d.UI.MinWidth)
	m.viper.SetDefault("ui.min_height", d.UI.MinHeight)
	m.viper.SetDefault("ui.columns", d.UI.Columns)
	m.viper.SetDefault("ui.max_zoom", d.UI.MaxZoom)

	m.viper.SetDefault("scan.ignore", d.Scan.Ignore)
	m.viper.SetDefault("scan.workers", d.Scan.Workers)

	m.viper.SetDefault("input.keymap_file", d.Input.KeymapFile)
	m.viper.SetDefault("input.watch_keymap", d.Input.WatchKeymap)
	m.viper.SetDefault("input.redraw_on_mode_change", d.Input.RedrawOnModeChange)

	m.viper.SetDefault("delete.dry_run", d.Delete.DryRun)
}

// SetConfigFile uses path instead of searching. The file must exist.
func (m *Manager) SetConfigFile(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.viper.SetConfigFile(path)
}

// BindFlag lets a command line flag override the setting at key.
func (m *Manager) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("bind %s: nil flag", key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.viper.BindPFlag(key, flag)
}

// Load reads the configuration file and environment and validates the
// result.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			file := m.viper.ConfigFileUsed()
			return fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	cfg := &Config{}
	if err := m.viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", m.viper.ConfigFileUsed(), err)
	}

	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))

	if err := cfg.Validate(); err != nil {
		return err
	}

	m.config = cfg
	return nil
}

// Get returns a copy of the loaded configuration.
func (m *Manager) Get() (*Config, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return nil, ErrNotLoaded
	}
	c := *m.config
	return &c, nil
}

// ConfigFileUsed returns the path of the file read by Load, if any.
func (m *Manager) ConfigFileUsed() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.viper.ConfigFileUsed()
}
