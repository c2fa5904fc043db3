package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/newthinker/cryptrade/internal/core"
)

// EnvPrefix is prepended to every environment variable read by FromEnv.
const EnvPrefix = "CRYPTRADE_"

// envVars mirrors the environment variables cryptrade understands.
// Unset variables leave their pointer nil.
type envVars struct {
	ConfigPath *string `env:"CONFIG"`
	APIKey     *string `env:"API_KEY"`
	SecretKey  *string `env:"SECRET_KEY"`
}

// EnvLayer is the environment's contribution: the config file location
// and the credentials.
type EnvLayer struct {
	ConfigPath string
	Overrides  Overrides
}

// FromEnv reads CRYPTRADE_CONFIG, CRYPTRADE_API_KEY and CRYPTRADE_SECRET_KEY.
func FromEnv() (EnvLayer, error) {
	var e envVars
	if err := env.ParseWithOptions(&e, env.Options{Prefix: EnvPrefix}); err != nil {
		return EnvLayer{}, core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("error getting env configs: %w", err))
	}

	layer := EnvLayer{
		Overrides: Overrides{
			APIKey:    e.APIKey,
			SecretKey: e.SecretKey,
		},
	}
	if e.ConfigPath != nil {
		layer.ConfigPath = *e.ConfigPath
	}
	return layer, nil
}
