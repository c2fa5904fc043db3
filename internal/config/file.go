package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/newthinker/cryptrade/internal/core"
	"github.com/spf13/viper"
)

// DefaultFileType is used when the file extension does not name a format.
const DefaultFileType = "toml"

// DefaultPath returns the config file location used when none is given:
// cryptrade/config.toml under the user config directory. It returns ""
// when the platform has no such directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "cryptrade", "config.toml")
}

// LoadFile reads the config file at path into a layer. Keys missing from
// the file stay nil; unknown keys are ignored.
//
// A file that cannot be read fails with core.ErrConfigUnreadable. A file
// that cannot be parsed, or whose values do not fit the expected shape,
// fails with core.ErrConfigInvalidFormat.
func LoadFile(path string) (Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Overrides{}, core.WrapError(core.ErrConfigUnreadable, err)
	}
	return parseFile(data, fileType(path))
}

func parseFile(data []byte, typ string) (Overrides, error) {
	v := viper.New()
	v.SetConfigType(typ)

	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return Overrides{}, core.WrapError(core.ErrConfigInvalidFormat,
			fmt.Errorf("reading config: %w", err))
	}

	var o Overrides
	if err := v.Unmarshal(&o); err != nil {
		return Overrides{}, core.WrapError(core.ErrConfigInvalidFormat,
			fmt.Errorf("unmarshaling config: %w", err))
	}

	expandEnv(&o)
	return o, nil
}

// expandEnv replaces values of the form ${NAME} with the environment
// variable NAME, so credentials can stay out of the file.
func expandEnv(o *Overrides) {
	for _, p := range []*string{o.SecretKey, o.APIKey, o.LogPath, o.DefaultQuoteAsset} {
		if p == nil {
			continue
		}
		if strings.HasPrefix(*p, "${") && strings.HasSuffix(*p, "}") {
			envKey := strings.TrimSuffix(strings.TrimPrefix(*p, "${"), "}")
			*p = os.Getenv(envKey)
		}
	}
}

func fileType(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "toml", "yaml", "yml", "json":
		return ext
	}
	return DefaultFileType
}

// isNotExist reports whether err means the file is simply absent.
func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
