// Package config resolves the effective cryptrade configuration from
// built-in defaults, an optional config file, the environment and
// command-line flags.
package config

import (
	"fmt"
	"strings"

	"github.com/newthinker/cryptrade/internal/core"
	"go.uber.org/zap/zapcore"
)

// DefaultQuoteAsset is the asset sells settle into when nothing else is configured.
const DefaultQuoteAsset = "USD"

// Field keys, shared by the file format, the flag names and source reporting.
const (
	KeySecretKey         = "secret_key"
	KeyAPIKey            = "api_key"
	KeyLogPath           = "log_path"
	KeyDefaultQuoteAsset = "default_quote_asset"
)

// Keys lists every configuration field in display order.
var Keys = []string{KeySecretKey, KeyAPIKey, KeyLogPath, KeyDefaultQuoteAsset}

type Config struct {
	SecretKey         string `mapstructure:"secret_key"`
	APIKey            string `mapstructure:"api_key"`
	LogPath           string `mapstructure:"log_path"` // empty means no log file
	DefaultQuoteAsset string `mapstructure:"default_quote_asset"`
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		SecretKey:         "",
		APIKey:            "",
		LogPath:           "",
		DefaultQuoteAsset: DefaultQuoteAsset,
	}
}

// Overrides is one configuration layer. A nil field was not supplied by
// the layer and leaves the value below it untouched.
type Overrides struct {
	SecretKey         *string `mapstructure:"secret_key"`
	APIKey            *string `mapstructure:"api_key"`
	LogPath           *string `mapstructure:"log_path"`
	DefaultQuoteAsset *string `mapstructure:"default_quote_asset"`
}

// IsEmpty reports whether the layer supplies no values at all.
func (o Overrides) IsEmpty() bool {
	return len(o.Keys()) == 0
}

// Keys returns the keys the layer supplies, in display order.
func (o Overrides) Keys() []string {
	var keys []string
	if o.SecretKey != nil {
		keys = append(keys, KeySecretKey)
	}
	if o.APIKey != nil {
		keys = append(keys, KeyAPIKey)
	}
	if o.LogPath != nil {
		keys = append(keys, KeyLogPath)
	}
	if o.DefaultQuoteAsset != nil {
		keys = append(keys, KeyDefaultQuoteAsset)
	}
	return keys
}

// Apply copies every supplied value of o onto c.
func (c *Config) Apply(o Overrides) {
	if o.SecretKey != nil {
		c.SecretKey = *o.SecretKey
	}
	if o.APIKey != nil {
		c.APIKey = *o.APIKey
	}
	if o.LogPath != nil {
		c.LogPath = *o.LogPath
	}
	if o.DefaultQuoteAsset != nil {
		c.DefaultQuoteAsset = *o.DefaultQuoteAsset
	}
}

// Get returns the value of the field named by key.
func (c Config) Get(key string) (string, bool) {
	switch key {
	case KeySecretKey:
		return c.SecretKey, true
	case KeyAPIKey:
		return c.APIKey, true
	case KeyLogPath:
		return c.LogPath, true
	case KeyDefaultQuoteAsset:
		return c.DefaultQuoteAsset, true
	}
	return "", false
}

// QuoteAsset returns the default quote asset in normalised form.
func (c Config) QuoteAsset() core.Asset {
	return core.NewAsset(c.DefaultQuoteAsset)
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	if strings.TrimSpace(c.DefaultQuoteAsset) == "" {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("%s cannot be empty", KeyDefaultQuoteAsset))
	}
	if !c.QuoteAsset().IsValid() {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("%s %q is not an asset code", KeyDefaultQuoteAsset, c.DefaultQuoteAsset))
	}
	return nil
}

// Redacted returns a copy safe to print or log: credentials keep only
// their last four characters.
func (c Config) Redacted() Config {
	c.SecretKey = mask(c.SecretKey)
	c.APIKey = mask(c.APIKey)
	return c
}

func mask(s string) string {
	const visible = 4
	r := []rune(s)
	if len(r) <= visible {
		return strings.Repeat("*", len(r))
	}
	return strings.Repeat("*", len(r)-visible) + string(r[len(r)-visible:])
}

// MarshalLogObject implements zapcore.ObjectMarshaler. Credentials are
// always redacted.
func (c Config) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	r := c.Redacted()
	enc.AddString(KeySecretKey, r.SecretKey)
	enc.AddString(KeyAPIKey, r.APIKey)
	enc.AddString(KeyLogPath, r.LogPath)
	enc.AddString(KeyDefaultQuoteAsset, r.DefaultQuoteAsset)
	return nil
}

func ptr(s string) *string {
	return &s
}
