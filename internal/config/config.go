package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Data   DataConfig
	Logger LoggerConfig
	UI     UIConfig
}

// DataConfig locates the quiz library on disk.
type DataConfig struct {
	Directory string `yaml:"directory"`
}

type LoggerConfig struct {
	Level string `yaml:"level"`
	Env   string `yaml:"env"`
	File  string `yaml:"file"`
}

type UIConfig struct {
	NoColor bool `yaml:"no_color"`
}

// LoadConfig reads config.yaml when present and applies QUIZDESK_* environment
// overrides. A missing config file is not an error; the defaults describe a
// fully working zero-config setup.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if path := os.Getenv("QUIZDESK_CONFIG_PATH"); path != "" {
		viper.AddConfigPath(path)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.SetDefault("data.directory", "quizzes")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "production")
	viper.SetDefault("logger.file", "")
	viper.SetDefault("ui.no_color", false)

	viper.SetEnvPrefix("QUIZDESK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		Data: DataConfig{
			Directory: viper.GetString("data.directory"),
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
			File:  viper.GetString("logger.file"),
		},
		UI: UIConfig{
			NoColor: viper.GetBool("ui.no_color"),
		},
	}

	return config, nil
}
