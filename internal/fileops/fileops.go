package fileops

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kolibri/clippy/internal/logger"
)

// ErrConfigNotFound is returned when a configuration file does not exist
var ErrConfigNotFound = errors.New("configuration file not found")

// ConfigDirEnv overrides the config directory when set
const ConfigDirEnv = "CLIPPY_CONFIG_DIR"

// FileOps interface defines operations for managing files in the clippy config directory
type FileOps interface {
	// GetConfigDir returns the full path to the clippy config directory
	GetConfigDir() string

	// SaveConfig saves data to a file in the config directory
	SaveConfig(filename string, data []byte) error

	// LoadConfig loads data from a file in the config directory
	LoadConfig(filename string) ([]byte, error)

	// EnsureDirectories creates necessary directories if they don't exist
	EnsureDirectories() error

	// GetLogsDir returns the default directory for log files
	GetLogsDir() string
}

// DefaultFileOps implements FileOps interface
type DefaultFileOps struct {
	configDir string
}

// NewDefaultFileOps creates a DefaultFileOps rooted at the user config
// directory (%AppData%\clippy on Windows, ~/.config/clippy elsewhere), or at
// $CLIPPY_CONFIG_DIR when set.
func NewDefaultFileOps() (*DefaultFileOps, error) {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return NewFileOps(dir), nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}

	return NewFileOps(filepath.Join(base, "clippy")), nil
}

// NewFileOps creates a DefaultFileOps rooted at dir
func NewFileOps(dir string) *DefaultFileOps {
	return &DefaultFileOps{configDir: dir}
}

func (f *DefaultFileOps) GetConfigDir() string {
	return f.configDir
}

func (f *DefaultFileOps) GetLogsDir() string {
	return filepath.Join(f.configDir, "logs")
}

func (f *DefaultFileOps) SaveConfig(filename string, data []byte) error {
	path := filepath.Join(f.configDir, filename)
	logger.Debugf("fileops: writing %s", path)
	return os.WriteFile(path, data, 0o644)
}

func (f *DefaultFileOps) LoadConfig(filename string) ([]byte, error) {
	path := filepath.Join(f.configDir, filename)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, ErrConfigNotFound
	}
	return os.ReadFile(path)
}

func (f *DefaultFileOps) EnsureDirectories() error {
	if err := os.MkdirAll(f.configDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return nil
}
