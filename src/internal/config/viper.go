package config

import (
	"strings"

	"github.com/spf13/viper"
)

// NewViper loads config.json from the working directory or the repo root,
// with environment variables taking precedence.
func NewViper() *viper.Viper {
	config := viper.New()

	config.SetConfigName("config")
	config.SetConfigType("json")
	config.AddConfigPath(".")
	config.AddConfigPath("./../../..")
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()

	// A missing file is fine; everything can come from the environment.
	_ = config.ReadInConfig()

	return config
}
