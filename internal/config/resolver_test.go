package config

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/newthinker/cryptrade/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// newTestResolver builds a resolver over args with no default config path
// and a clean CRYPTRADE_ environment. Tests that exercise the environment
// set it after calling this.
func newTestResolver(t *testing.T, args []string, opts ...Option) *Resolver {
	t.Helper()
	clearEnv(t)
	opts = append([]Option{WithDefaultPath("")}, opts...)
	return NewResolver(newFlagSet(t, args...), opts...)
}

func TestResolve_DefaultsOnly(t *testing.T) {
	cfg, err := newTestResolver(t, nil).Resolve(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Defaults(), cfg)
}

func TestResolve_FileSubsetKeepsDefaults(t *testing.T) {
	path := writeFile(t, "config.toml", `
API_KEY = "fk"
log_path = "/tmp/cryptrade.log"
`)

	cfg, err := newTestResolver(t, []string{"--config", path}).Resolve(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Config{
		SecretKey:         "",
		APIKey:            "fk",
		LogPath:           "/tmp/cryptrade.log",
		DefaultQuoteAsset: "USD",
	}, cfg)
}

func TestResolve_FileAndFlag(t *testing.T) {
	path := writeFile(t, "config.toml", `API_KEY = "fk"`)

	res, err := newTestResolver(t, []string{"-c", path, "--secret-key", "sk"}).Explain(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "fk", res.Config.APIKey)
	assert.Equal(t, "sk", res.Config.SecretKey)
	assert.Equal(t, "USD", res.Config.DefaultQuoteAsset)
	assert.Empty(t, res.Config.LogPath)

	assert.Equal(t, path, res.FilePath)
	assert.Equal(t, LayerFile, res.Source(KeyAPIKey))
	assert.Equal(t, LayerFlag, res.Source(KeySecretKey))
	assert.Equal(t, LayerDefault, res.Source(KeyDefaultQuoteAsset))
	assert.Equal(t, LayerDefault, res.Source(KeyLogPath))
}

func TestResolve_FlagBeatsFile(t *testing.T) {
	path := writeFile(t, "config.toml", `
API_KEY = "fk"
SECRET_KEY = "fsk"
default_quote_asset = "EUR"
`)

	cfg, err := newTestResolver(t, []string{
		"-c", path, "-a", "cli-api", "-d", "USDT",
	}).Resolve(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "cli-api", cfg.APIKey)
	assert.Equal(t, "fsk", cfg.SecretKey)
	assert.Equal(t, "USDT", cfg.DefaultQuoteAsset)
}

func TestResolve_FlagDefaultDoesNotBeatFile(t *testing.T) {
	path := writeFile(t, "config.toml", `default_quote_asset = "EUR"`)

	cfg, err := newTestResolver(t, []string{"-c", path}).Resolve(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "EUR", cfg.DefaultQuoteAsset, "unset --default-quote-asset must not clobber the file")
}

func TestResolve_MissingFile(t *testing.T) {
	obs, logs := observer.New(zap.DebugLevel)
	path := filepath.Join(t.TempDir(), "absent.toml")

	res, err := newTestResolver(t, []string{"-c", path, "-s", "sk"}, WithLogger(zap.New(obs))).
		Explain(context.Background())
	require.NoError(t, err)

	want := Defaults()
	want.SecretKey = "sk"
	assert.Equal(t, want, res.Config)
	assert.Empty(t, res.FilePath)
	assert.Equal(t, 1, logs.FilterMessage("config file unreadable, using defaults").Len())
	require.Len(t, res.Notices, 1)
	assert.Equal(t, "config file unreadable, using defaults", res.Notices[0].Message)
}

func TestResolve_MissingDefaultPathIsQuiet(t *testing.T) {
	obs, logs := observer.New(zap.DebugLevel)
	path := filepath.Join(t.TempDir(), "cryptrade", "config.toml")

	clearEnv(t)
	r := NewResolver(newFlagSet(t), WithDefaultPath(path), WithLogger(zap.New(obs)))
	cfg, err := r.Resolve(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Defaults(), cfg)
	assert.Equal(t, 0, logs.FilterLevelExact(zap.WarnLevel).Len())
	assert.Equal(t, 1, logs.FilterMessage("no config file").Len())
}

func TestResolve_DefaultPathIsRead(t *testing.T) {
	path := writeFile(t, "config.toml", `API_KEY = "default-path"`)

	clearEnv(t)
	r := NewResolver(newFlagSet(t), WithDefaultPath(path))
	cfg, err := r.Resolve(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "default-path", cfg.APIKey)
}

func TestResolve_InvalidFileAborts(t *testing.T) {
	path := writeFile(t, "config.toml", `API_KEY = `)

	_, err := newTestResolver(t, []string{"-c", path}).Resolve(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrConfigInvalidFormat))
	assert.Contains(t, err.Error(), path)
}

func TestResolve_EnvLayer(t *testing.T) {
	path := writeFile(t, "config.toml", `
API_KEY = "fk"
SECRET_KEY = "fsk"
`)
	r := newTestResolver(t, []string{"--secret-key", "cli-secret"})
	t.Setenv("CRYPTRADE_CONFIG", path)
	t.Setenv("CRYPTRADE_API_KEY", "env-api")
	t.Setenv("CRYPTRADE_SECRET_KEY", "env-secret")

	res, err := r.Explain(context.Background())
	require.NoError(t, err)

	assert.Equal(t, path, res.FilePath, "CRYPTRADE_CONFIG names the file")
	assert.Equal(t, "env-api", res.Config.APIKey, "env beats file")
	assert.Equal(t, "cli-secret", res.Config.SecretKey, "flag beats env")
	assert.Equal(t, LayerEnv, res.Source(KeyAPIKey))
	assert.Equal(t, LayerFlag, res.Source(KeySecretKey))
}

func TestResolve_ConfigFlagBeatsEnvPath(t *testing.T) {
	envPath := writeFile(t, "env.toml", `API_KEY = "from-env-file"`)
	flagPath := writeFile(t, "flag.toml", `API_KEY = "from-flag-file"`)
	r := newTestResolver(t, []string{"-c", flagPath})
	t.Setenv("CRYPTRADE_CONFIG", envPath)

	cfg, err := r.Resolve(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "from-flag-file", cfg.APIKey)
}

func TestResolve_FileWins(t *testing.T) {
	path := writeFile(t, "config.toml", `
API_KEY = "fk"
default_quote_asset = "EUR"
`)

	res, err := newTestResolver(t,
		[]string{"-c", path, "-a", "cli-api", "-s", "cli-secret", "-d", "USDT"},
		WithPrecedence(PrecedenceFileWins),
	).Explain(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "fk", res.Config.APIKey)
	assert.Equal(t, "EUR", res.Config.DefaultQuoteAsset)
	assert.Equal(t, "cli-secret", res.Config.SecretKey, "flags still fill keys the file lacks")
	assert.Equal(t, LayerFile, res.Source(KeyAPIKey))
	assert.Equal(t, LayerFlag, res.Source(KeySecretKey))
}

func TestResolve_ValidationFailure(t *testing.T) {
	_, err := newTestResolver(t, []string{"-d", "BTC/USD"}).Resolve(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrConfigInvalid))
}

func TestResolve_EmptyQuoteAssetFallsBack(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		file  string
		layer Layer
	}{
		{name: "flag", args: []string{"-d", ""}, layer: LayerFlag},
		{name: "blank flag", args: []string{"-d", "  "}, layer: LayerFlag},
		{name: "file", file: `default_quote_asset = ""`, layer: LayerFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := tt.args
			if tt.file != "" {
				args = append(args, "-c", writeFile(t, "config.toml", tt.file))
			}
			obs, logs := observer.New(zap.DebugLevel)

			res, err := newTestResolver(t, args, WithLogger(zap.New(obs))).Explain(context.Background())
			require.NoError(t, err)

			assert.Equal(t, DefaultQuoteAsset, res.Config.DefaultQuoteAsset)
			assert.Equal(t, LayerDefault, res.Source(KeyDefaultQuoteAsset))

			warned := logs.FilterMessage("empty default quote asset, using built-in default")
			require.Equal(t, 1, warned.Len())
			assert.Equal(t, string(tt.layer), warned.All()[0].ContextMap()["source"])
			require.Len(t, res.Notices, 1)
		})
	}
}

func TestResolve_CanceledContext(t *testing.T) {
	path := writeFile(t, "config.toml", `API_KEY = "fk"`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestResolver(t, []string{"-c", path}).Resolve(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPrecedence_String(t *testing.T) {
	assert.Equal(t, "flags-win", PrecedenceFlagsWin.String())
	assert.Equal(t, "file-wins", PrecedenceFileWins.String())
	assert.Equal(t, "precedence(7)", Precedence(7).String())
}
