package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// SettingsFileName is looked up in the config directory, without extension
const SettingsFileName = "rover"

// Settings holds application-level options for the command line tools
type Settings struct {
	LogLevel        string `mapstructure:"logLevel"`
	LogFormat       string `mapstructure:"logFormat"`
	ScenarioDir     string `mapstructure:"scenarioDir"`
	DefaultScenario string `mapstructure:"defaultScenario"`
}

// envBindings maps settings keys to environment variables
var envBindings = map[string]string{
	"logLevel":        "ROVER_LOG_LEVEL",
	"logFormat":       "ROVER_LOG_FORMAT",
	"scenarioDir":     "ROVER_SCENARIO_DIR",
	"defaultScenario": "ROVER_DEFAULT_SCENARIO",
}

// LoadSettings reads rover.json from configDir, if present, layered over
// defaults and under environment variables. A .env file in configDir is
// loaded into the environment first; variables already set win.
func LoadSettings(configDir string) (*Settings, error) {
	if err := loadDotEnv(configDir); err != nil {
		return nil, err
	}

	v := viper.New()

	// Set default values
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFormat", "console")
	v.SetDefault("scenarioDir", "configs")
	v.SetDefault("defaultScenario", DefaultScenarioName)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("error binding %s: %w", env, err)
		}
	}

	v.SetConfigName(SettingsFileName)
	v.SetConfigType("json")
	if configDir != "" {
		v.AddConfigPath(configDir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading settings file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("error decoding settings: %w", err)
	}
	return &s, nil
}

func loadDotEnv(configDir string) error {
	path := ".env"
	if configDir != "" {
		path = filepath.Join(configDir, ".env")
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("error loading %s: %w", path, err)
	}
	return nil
}
