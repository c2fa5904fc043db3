package config

import (
	"github.com/spf13/pflag"
)

// Flag names
const (
	FlagConfig            = "config"
	FlagAPIKey            = "api-key"
	FlagSecretKey         = "secret-key"
	FlagLogPath           = "log-path"
	FlagDefaultQuoteAsset = "default-quote-asset"
)

// BindFlags registers the configuration flags on fs.
func BindFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "config file path (env "+EnvPrefix+"CONFIG)")
	fs.StringP(FlagAPIKey, "a", "", "API key (env "+EnvPrefix+"API_KEY)")
	fs.StringP(FlagSecretKey, "s", "", "secret key (env "+EnvPrefix+"SECRET_KEY)")
	fs.StringP(FlagLogPath, "l", "", "log output path")
	fs.StringP(FlagDefaultQuoteAsset, "d", DefaultQuoteAsset, "default quote asset to sell to")
}

// FromFlags returns the layer made of the flags the user actually set.
// A flag left at its default contributes nothing.
func FromFlags(fs *pflag.FlagSet) Overrides {
	return Overrides{
		SecretKey:         changed(fs, FlagSecretKey),
		APIKey:            changed(fs, FlagAPIKey),
		LogPath:           changed(fs, FlagLogPath),
		DefaultQuoteAsset: changed(fs, FlagDefaultQuoteAsset),
	}
}

// ConfigPathFlag returns the --config value if it was set.
func ConfigPathFlag(fs *pflag.FlagSet) (string, bool) {
	p := changed(fs, FlagConfig)
	if p == nil {
		return "", false
	}
	return *p, true
}

func changed(fs *pflag.FlagSet, name string) *string {
	if fs == nil || !fs.Changed(name) {
		return nil
	}
	v, err := fs.GetString(name)
	if err != nil {
		return nil
	}
	return ptr(v)
}
