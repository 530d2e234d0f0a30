package config

import (
	"io"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

type Config struct {
	LogLevel string       `mapstructure:"log_level"`
	Encode   EncodeConfig `mapstructure:"encode"`
}

type EncodeConfig struct {
	Square     bool         `mapstructure:"square"`
	NoProgress bool         `mapstructure:"no_progress"`
	Resize     ResizeConfig `mapstructure:"resize"`
}

type ResizeConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Width   int    `mapstructure:"width"`
	Height  int    `mapstructure:"height"`
	Filter  string `mapstructure:"filter"`
}

func ReadConfig(r io.Reader) (*Config, error) {
	decoder := toml.NewDecoder(r)
	decoder.SetTagName("mapstructure")
	config := &Config{}
	if err := decoder.Decode(config); err != nil {
		return nil, errors.Wrap(err, "error decoding config file")
	}
	return config, nil
}
