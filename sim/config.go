// Package sim wires a scenario into a running world: config, mode
// registration, entities, the system schedule and prefab hot reload.
package sim

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config keys, shared by viper, flags and the MODESIM_ environment.
const (
	KeyTicks     = "ticks"
	KeyDBPath    = "db_path"
	KeyScenario  = "scenario"
	KeyWatch     = "watch"
	KeyPrefabDir = "prefab_dir"
	KeyLogLevel  = "log_level"
)

type Config struct {
	Ticks     int    `mapstructure:"ticks"`
	DBPath    string `mapstructure:"db_path"`
	Scenario  string `mapstructure:"scenario"`
	Watch     bool   `mapstructure:"watch"`
	PrefabDir string `mapstructure:"prefab_dir"`
	LogLevel  string `mapstructure:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		Ticks:     600,
		Scenario:  "meadow.yaml",
		PrefabDir: "prefabs",
		LogLevel:  "info",
	}
}

// NewViper returns a viper instance reading modesim.yaml from the working
// directory and MODESIM_* variables, seeded with the defaults.
func NewViper() *viper.Viper {
	v := viper.New()
	def := DefaultConfig()
	v.SetDefault(KeyTicks, def.Ticks)
	v.SetDefault(KeyDBPath, def.DBPath)
	v.SetDefault(KeyScenario, def.Scenario)
	v.SetDefault(KeyWatch, def.Watch)
	v.SetDefault(KeyPrefabDir, def.PrefabDir)
	v.SetDefault(KeyLogLevel, def.LogLevel)

	v.SetConfigName("modesim")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("MODESIM")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig reads the config file if there is one and decodes the merged
// settings.
func LoadConfig(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("sim: read config: %w", err)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("sim: decode config: %w", err)
	}
	return cfg, nil
}

// NewLogger builds the logger for cfg.LogLevel.
func (c Config) NewLogger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	log := logrus.New()
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return log, nil
}
