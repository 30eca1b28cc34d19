package config

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const Name = "config"

var Paths []string = []string{
	"/etc/codestore",
	"$HOME/.codestore",
	".",
}

// File, when set, is the only config file read. Paths are not searched.
var File string

var (
	ErrBindEnv         = errors.New("failed to bind env")
	ErrReadConfig      = errors.New("failed to read config")
	ErrUnmarshalConfig = errors.New("failed to unmarshal config")
	ErrInvalidConfig   = errors.New("invalid config")
)

var envs = map[string][]string{
	"base_url":  {"CODESTORE_BASE_URL"},
	"cookie":    {"CODESTORE_COOKIE"},
	"headers":   {"CODESTORE_HEADERS"},
	"log.level": {"CODESTORE_LOG_LEVEL", "LOG_LEVEL"},
}

type Logger struct {
	Level string `mapstructure:"level"`
}

type Config struct {
	BaseURL string            `mapstructure:"base_url"`
	Cookie  string            `mapstructure:"cookie"`
	Headers map[string]string `mapstructure:"headers"`
	Log     Logger            `mapstructure:"log"`
}

func Load() (*Config, error) {
	if File != "" {
		viper.SetConfigFile(File)
	} else {
		viper.SetConfigName(Name)
		for _, path := range Paths {
			viper.AddConfigPath(path)
		}
	}
	viper.AutomaticEnv()

	viper.SetDefault("log.level", "info")

	for envName, keys := range envs {
		binding := []string{envName}
		binding = append(binding, keys...)

		if err := viper.BindEnv(binding...); err != nil {
			return nil, errors.Join(ErrBindEnv, err)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Join(ErrReadConfig, err)
		}
	}

	var cfg Config
	hooks := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		stringToMapHookFunc(",", "="),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := viper.Unmarshal(&cfg, hooks); err != nil {
		return nil, errors.Join(ErrUnmarshalConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.BaseURL == "" {
		return nil
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("base_url %q: %w", c.BaseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url %q must be absolute", c.BaseURL)
	}

	return nil
}

// stringToMapHookFunc decodes "K=V,K2=V2" into a string map so that
// map-valued settings can come from a single environment variable.
func stringToMapHookFunc(sep, kv string) mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Map {
			return data, nil
		}

		raw := data.(string)
		result := make(map[string]string)
		if strings.TrimSpace(raw) == "" {
			return result, nil
		}

		for _, pair := range strings.Split(raw, sep) {
			key, value, ok := strings.Cut(pair, kv)
			if !ok {
				return nil, fmt.Errorf("malformed pair %q, want key%svalue", pair, kv)
			}
			result[strings.TrimSpace(key)] = strings.TrimSpace(value)
		}

		return result, nil
	}
}
