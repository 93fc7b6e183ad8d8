package config

import (
	"github.com/spf13/viper"
)

// Config configuration struct
type Config struct {
	Level      string `json:"level" yaml:"level"`
	Format     string `json:"format" yaml:"format"`
	Output     string `json:"output" yaml:"output"`
	OutputFile string `json:"output_file" yaml:"output_file"`
}

// Default returns the configuration used when nothing is configured
func Default() *Config {
	return &Config{
		Level:  "info",
		Format: "text",
		Output: "stderr",
	}
}

// GetConfig returns the logger configuration
func GetConfig(v *viper.Viper) *Config {
	cfg := Default()
	if !v.IsSet("logger") {
		return cfg
	}

	if s := v.GetString("logger.level"); s != "" {
		cfg.Level = s
	}
	if s := v.GetString("logger.format"); s != "" {
		cfg.Format = s
	}
	if s := v.GetString("logger.output"); s != "" {
		cfg.Output = s
	}
	cfg.OutputFile = v.GetString("logger.output_file")

	return cfg
}
