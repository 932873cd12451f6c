package jstype

import (
	"log/slog"

	"github.com/tanema/jstype/src/conf"
	"github.com/tanema/jstype/src/schema"
	"github.com/tanema/jstype/src/walk"
)

// Option configures a transform.
type Option func(*Options)

// Options holds all configuration for a transform.
type Options struct {
	// AdditionalProperties is the catch-all for objects that declare neither
	// additionalProperties nor unevaluatedProperties.
	AdditionalProperties bool
	// MaxDepth limits how deep the schema is walked, zero means unlimited.
	MaxDepth int
	Logger   *slog.Logger

	// Decoding
	Repair bool
	YAML   bool
}

// DefaultOptions returns the default configuration.
func DefaultOptions() *Options {
	return &Options{
		AdditionalProperties: true,
		MaxDepth:             conf.MAXDEPTH,
	}
}

// EnvOptions returns the options described by the environment settings.
func EnvOptions(env conf.Env) []Option {
	return []Option{
		WithAdditionalProperties(env.AdditionalProperties),
		WithMaxDepth(env.MaxDepth),
		WithRepair(env.Repair),
	}
}

// WithAdditionalProperties sets whether objects are open by default.
func WithAdditionalProperties(allow bool) Option {
	return func(o *Options) {
		o.AdditionalProperties = allow
	}
}

// WithMaxDepth sets the nesting limit of the walk.
func WithMaxDepth(depth int) Option {
	return func(o *Options) {
		o.MaxDepth = depth
	}
}

// WithLogger sets the logger that receives walk diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithRepair enables repairing malformed JSON before giving up on it.
func WithRepair(enable bool) Option {
	return func(o *Options) {
		o.Repair = enable
	}
}

// WithYAML decodes sources as YAML regardless of their name.
func WithYAML(enable bool) Option {
	return func(o *Options) {
		o.YAML = enable
	}
}

func buildOptions(opts []Option) *Options {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

func (o *Options) walker() *walk.Walker {
	return walk.New(walk.Config{
		AdditionalProperties: o.AdditionalProperties,
		MaxDepth:             o.MaxDepth,
		Logger:               o.Logger,
	})
}

func (o *Options) mode() schema.Mode {
	mode := schema.ModeJSON
	if o.YAML {
		mode |= schema.ModeYAML
	}
	if o.Repair {
		mode |= schema.ModeRepair
	}
	return mode
}
