package config

import (
	"fmt"
)

// Config represents the application configuration
type Config struct {
	// Root is the base of the destination tree. Defaults to
	// $HOME/Projects/src when unset.
	Root string `mapstructure:"root" yaml:"root"`

	Git     GitConfig     `mapstructure:"git" yaml:"git"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`

	// Rewrites maps a URL scheme to observed-domain -> canonical-domain
	// replacements applied after classification. Empty by default.
	Rewrites map[string]map[string]string `mapstructure:"rewrites" yaml:"rewrites"`
}

// GitConfig contains clone backend settings
type GitConfig struct {
	// Backend selects how clones run: "git" (subprocess), "go-git"
	// (in-process), or "auto" (subprocess when a git binary is on PATH,
	// go-git otherwise).
	Backend string `mapstructure:"backend" yaml:"backend"`

	// Binary is the git executable to spawn. Defaults to "git".
	Binary string `mapstructure:"binary" yaml:"binary"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate validates the configuration and applies defaults for unset
// values. The root directory is resolved separately in Load because it
// depends on the environment.
func (c *Config) Validate() error {
	if c.Git.Binary == "" {
		c.Git.Binary = DefaultGitBinary
	}
	switch c.Git.Backend {
	case "":
		c.Git.Backend = DefaultGitBackend
	case BackendAuto, BackendGit, BackendGoGit:
	default:
		return fmt.Errorf("invalid git.backend %q (want %s, %s or %s)",
			c.Git.Backend, BackendAuto, BackendGit, BackendGoGit)
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
	return nil
}
