package config

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/newthinker/cryptrade/internal/core"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// Layer names where a configuration value came from.
type Layer string

const (
	LayerDefault Layer = "default"
	LayerFile    Layer = "file"
	LayerEnv     Layer = "env"
	LayerFlag    Layer = "flag"
)

// Precedence selects the order in which layers are applied. Later layers win.
type Precedence int

const (
	// PrecedenceFlagsWin applies defaults, file, env, flags.
	PrecedenceFlagsWin Precedence = iota
	// PrecedenceFileWins applies defaults, env, flags, file.
	PrecedenceFileWins
)

func (p Precedence) String() string {
	switch p {
	case PrecedenceFlagsWin:
		return "flags-win"
	case PrecedenceFileWins:
		return "file-wins"
	}
	return fmt.Sprintf("precedence(%d)", int(p))
}

func (p Precedence) order() []Layer {
	if p == PrecedenceFileWins {
		return []Layer{LayerEnv, LayerFlag, LayerFile}
	}
	return []Layer{LayerFile, LayerEnv, LayerFlag}
}

// Resolution is the outcome of a resolve: the effective configuration and
// the layer that supplied each field.
type Resolution struct {
	Config   Config
	Sources  map[string]Layer
	FilePath string // empty when no file was read
	Notices  []Notice
}

// Notice is a non-fatal problem met while resolving. It has already been
// logged once; callers that switch loggers afterwards can replay it.
type Notice struct {
	Message string
	Fields  []zap.Field
}

// Source returns the layer that supplied key.
func (r Resolution) Source(key string) Layer {
	if l, ok := r.Sources[key]; ok {
		return l
	}
	return LayerDefault
}

// Resolver merges the configuration layers for one process invocation.
type Resolver struct {
	flags       *pflag.FlagSet
	precedence  Precedence
	defaultPath string
	log         *zap.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithPrecedence sets the layer order.
func WithPrecedence(p Precedence) Option {
	return func(r *Resolver) {
		r.precedence = p
	}
}

// WithDefaultPath overrides the config file tried when neither the flag
// nor the environment names one. An empty path disables the fallback.
func WithDefaultPath(path string) Option {
	return func(r *Resolver) {
		r.defaultPath = path
	}
}

// WithLogger sets the logger used to trace resolution.
func WithLogger(log *zap.Logger) Option {
	return func(r *Resolver) {
		if log != nil {
			r.log = log
		}
	}
}

// NewResolver creates a resolver reading flags from fs. fs may be nil.
func NewResolver(fs *pflag.FlagSet, opts ...Option) *Resolver {
	r := &Resolver{
		flags:       fs,
		precedence:  PrecedenceFlagsWin,
		defaultPath: DefaultPath(),
		log:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the effective configuration.
func (r *Resolver) Resolve(ctx context.Context) (Config, error) {
	res, err := r.Explain(ctx)
	if err != nil {
		return Config{}, err
	}
	return res.Config, nil
}

// Explain resolves the configuration and reports where each value came from.
//
// An unreadable or missing config file is logged and skipped. A file that
// exists but cannot be parsed aborts resolution with
// core.ErrConfigInvalidFormat.
func (r *Resolver) Explain(ctx context.Context) (Resolution, error) {
	res := Resolution{
		Config:  Defaults(),
		Sources: make(map[string]Layer, len(Keys)),
	}

	envs, err := FromEnv()
	if err != nil {
		return res, err
	}

	path, explicit := r.configPath(envs)

	layers := map[Layer]Overrides{
		LayerEnv:  envs.Overrides,
		LayerFlag: FromFlags(r.flags),
	}

	if path != "" {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		fileLayer, err := LoadFile(path)
		switch {
		case err == nil:
			layers[LayerFile] = fileLayer
			res.FilePath = path
			r.log.Debug("config from file",
				zap.String("path", path),
				zap.Strings("keys", fileLayer.Keys()),
			)
		case errors.Is(err, core.ErrConfigUnreadable):
			if explicit || !isNotExist(err) {
				r.warn(&res, "config file unreadable, using defaults",
					zap.String("path", path), zap.Error(err))
			} else {
				r.log.Debug("no config file", zap.String("path", path))
			}
		default:
			return res, fmt.Errorf("loading %s: %w", path, err)
		}
	}

	for _, layer := range r.precedence.order() {
		o := layers[layer]
		res.Config.Apply(o)
		for _, key := range o.Keys() {
			res.Sources[key] = layer
		}
	}

	if strings.TrimSpace(res.Config.DefaultQuoteAsset) == "" {
		r.warn(&res, "empty default quote asset, using built-in default",
			zap.String("source", string(res.Source(KeyDefaultQuoteAsset))),
			zap.String("default", DefaultQuoteAsset),
		)
		res.Config.DefaultQuoteAsset = DefaultQuoteAsset
		res.Sources[KeyDefaultQuoteAsset] = LayerDefault
	}

	r.log.Debug("config resolved",
		zap.Stringer("precedence", r.precedence),
		zap.Object("config", res.Config),
	)

	if err := res.Config.Validate(); err != nil {
		return res, fmt.Errorf("config validation failed: %w", err)
	}
	return res, nil
}

func (r *Resolver) warn(res *Resolution, msg string, fields ...zap.Field) {
	r.log.Warn(msg, fields...)
	res.Notices = append(res.Notices, Notice{Message: msg, Fields: fields})
}

// configPath picks the config file: the --config flag, then
// CRYPTRADE_CONFIG, then the default path. explicit is false only for the
// default path, whose absence is unremarkable.
func (r *Resolver) configPath(e EnvLayer) (path string, explicit bool) {
	if p, ok := ConfigPathFlag(r.flags); ok {
		return p, true
	}
	if e.ConfigPath != "" {
		return e.ConfigPath, true
	}
	return r.defaultPath, false
}
