// Package config loads service settings from an optional config.yaml plus the
// environment. Environment variables use the CALLGRADER_ prefix and override
// file values.
package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"callgrader-go/internal/document"
)

type Config struct {
	Port         string `mapstructure:"port"`
	OutputSuffix string `mapstructure:"output_suffix"`
	ColumnLimit  int    `mapstructure:"column_limit"`
	RubricPath   string `mapstructure:"rubric_path"`
}

// Load reads config.yaml when present; a missing file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load() // loads .env

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.SetEnvPrefix("callgrader")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("output_suffix", "_formatted.txt")
	v.SetDefault("column_limit", document.DefaultColumnLimit)
	v.SetDefault("rubric_path", "")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
