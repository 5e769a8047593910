package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Load loads configuration from file, environment, and defaults
// Uses the global viper instance to access CLI flag bindings
func Load() (*Config, error) {
	return load(viper.GetViper())
}

// LoadWithViper loads configuration from a dedicated viper instance.
// Useful in tests, where the global instance is shared state.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	// Config file settings
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(ConfigDir())
	v.AddConfigPath(".")

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Environment variables (REPOCLONE_*)
	v.SetEnvPrefix("REPOCLONE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// The root is only computed from the environment when neither the
	// config file nor a flag supplied one.
	if cfg.Root == "" {
		root, err := DefaultRoot()
		if err != nil {
			return nil, err
		}
		cfg.Root = root
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Root default is empty: the environment-derived value is computed in
	// load, after file/env/flag layering. The key still needs registering
	// so AutomaticEnv covers it during Unmarshal.
	v.SetDefault("root", "")

	// Git defaults
	v.SetDefault("git.backend", DefaultGitBackend)
	v.SetDefault("git.binary", DefaultGitBinary)

	// Logging defaults
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
}

// EnsureConfigDir creates the config directory if it doesn't exist
func EnsureConfigDir() error {
	dir := ConfigDir()
	return os.MkdirAll(dir, 0755)
}
