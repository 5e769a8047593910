package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tsukasa-au/repoclone/internal/domain"
)

// Default values
const (
	// Root defaults
	DefaultRootSubdir = "Projects/src"

	// Git defaults
	BackendAuto  = "auto"
	BackendGit   = "git"
	BackendGoGit = "go-git"

	DefaultGitBackend = BackendAuto
	DefaultGitBinary  = "git"

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"
)

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".repoclone"
	}
	return filepath.Join(home, ".repoclone")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// DefaultRoot computes the default destination root, $HOME/Projects/src.
// A missing home directory is an environment error, not a silent default.
func DefaultRoot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrHomeNotSet, err)
	}
	return filepath.Join(home, filepath.FromSlash(DefaultRootSubdir)), nil
}

// BinDir returns the personal bin directory used by the link subcommand.
func BinDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrHomeNotSet, err)
	}
	return filepath.Join(home, "bin"), nil
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Git: GitConfig{
			Backend: DefaultGitBackend,
			Binary:  DefaultGitBinary,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Rewrites: map[string]map[string]string{},
	}
}
