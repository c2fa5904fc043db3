package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestFromFlags_NothingSet(t *testing.T) {
	fs := newFlagSet(t)

	o := FromFlags(fs)
	assert.True(t, o.IsEmpty(), "flag defaults must not count as overrides")

	v, err := fs.GetString(FlagDefaultQuoteAsset)
	require.NoError(t, err)
	assert.Equal(t, "USD", v, "flag still carries its own default")
}

func TestFromFlags_LongAndShort(t *testing.T) {
	fs := newFlagSet(t, "--secret-key", "sk", "-a", "ak", "-l", "/tmp/x.log", "-d", "EUR")

	o := FromFlags(fs)
	require.NotNil(t, o.SecretKey)
	require.NotNil(t, o.APIKey)
	require.NotNil(t, o.LogPath)
	require.NotNil(t, o.DefaultQuoteAsset)
	assert.Equal(t, "sk", *o.SecretKey)
	assert.Equal(t, "ak", *o.APIKey)
	assert.Equal(t, "/tmp/x.log", *o.LogPath)
	assert.Equal(t, "EUR", *o.DefaultQuoteAsset)
}

func TestFromFlags_ExplicitDefaultValueCounts(t *testing.T) {
	fs := newFlagSet(t, "--default-quote-asset", "USD")

	o := FromFlags(fs)
	require.NotNil(t, o.DefaultQuoteAsset, "explicitly passing the default is still explicit")
	assert.Equal(t, "USD", *o.DefaultQuoteAsset)
}

func TestFromFlags_NilFlagSet(t *testing.T) {
	assert.True(t, FromFlags(nil).IsEmpty())
}

func TestConfigPathFlag(t *testing.T) {
	_, ok := ConfigPathFlag(newFlagSet(t))
	assert.False(t, ok)

	p, ok := ConfigPathFlag(newFlagSet(t, "-c", "/etc/cryptrade.toml"))
	assert.True(t, ok)
	assert.Equal(t, "/etc/cryptrade.toml", p)
}
