package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	logcfg "github.com/charcoles/charcole/logging/logger/config"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding config keys,
// e.g. CHARCOLE_DEFAULTS_LANGUAGE.
const EnvPrefix = "CHARCOLE"

// Config represents the CLI configuration.
type Config struct {
	Defaults *Defaults
	Docs     *Docs
	Logger   *logcfg.Config
	// File is the config file that was read, empty when none was found.
	File  string
	Viper *viper.Viper
}

// LoadConfig loads the configuration. An explicit configPath must exist;
// without one the usual locations are searched and a missing file is not an error.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".charcole"))
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return &Config{
		Defaults: getDefaults(v),
		Docs:     getDocs(v),
		Logger:   logcfg.GetConfig(v),
		File:     v.ConfigFileUsed(),
		Viper:    v,
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("defaults.language", "ts")
	v.SetDefault("defaults.package_manager", "")
	v.SetDefault("defaults.install", true)
	v.SetDefault("defaults.git", true)
	v.SetDefault("docs.apis", []string{"src/**/*.ts", "src/**/*.js"})
	v.SetDefault("docs.addr", ":8080")
	v.SetDefault("docs.path", "/api-docs")
}
