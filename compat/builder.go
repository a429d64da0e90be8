package compat

import (
	"errors"
	"fmt"
	"time"

	log "github.com/lixenwraith/simplelog"
	"go.uber.org/zap"
)

var (
	// ErrNilLogger is returned when WithLogger is given a nil logger
	ErrNilLogger = errors.New("compat: logger is nil")
	// ErrSharedOverride is returned when overrides are combined with a caller-owned logger
	ErrSharedOverride = errors.New("compat: overrides cannot be applied to a logger passed to WithLogger")
)

// Builder hands out gnet, fasthttp and zap adapters that all write through one
// *log.Logger. The logger is either supplied by the caller, or built once from a
// *log.Builder (defaults when none is given) plus key=value overrides.
// Close shuts the logger down only when the Builder built it.
type Builder struct {
	source    *log.Builder
	overrides []string

	logger *log.Logger
	owned  bool
	err    error
}

// NewBuilder creates an adapter builder with no logger resolved yet
func NewBuilder() *Builder {
	return &Builder{}
}

// WithLogger shares an existing logger with every adapter
func (b *Builder) WithLogger(l *log.Logger) *Builder {
	if l == nil {
		b.err = ErrNilLogger
		return b
	}
	b.logger, b.owned = l, false
	return b
}

// FromBuilder sets the logger configuration used when no logger was given
func (b *Builder) FromBuilder(lb *log.Builder) *Builder {
	b.source = lb
	return b
}

// Override adds key=value settings applied on top of the source configuration
func (b *Builder) Override(overrides ...string) *Builder {
	b.overrides = append(b.overrides, overrides...)
	return b
}

// Logger returns the shared logger, building it on first use
func (b *Builder) Logger() (*log.Logger, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.logger != nil {
		if !b.owned && len(b.overrides) > 0 {
			return nil, ErrSharedOverride
		}
		return b.logger, nil
	}

	source := b.source
	if source == nil {
		source = log.NewBuilder()
	}
	cfg, err := source.Config()
	if err != nil {
		return nil, fmt.Errorf("compat: logger configuration: %w", err)
	}
	if err := cfg.ApplyOverride(b.overrides...); err != nil {
		return nil, fmt.Errorf("compat: logger overrides: %w", err)
	}

	l, err := log.NewLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("compat: create logger: %w", err)
	}
	b.logger, b.owned = l, true
	return l, nil
}

// Close shuts down a logger this Builder created; a shared logger is left running
func (b *Builder) Close(timeout ...time.Duration) error {
	if !b.owned || b.logger == nil {
		return nil
	}
	return b.logger.Shutdown(timeout...)
}

// BuildGnet creates a gnet adapter over the shared logger
func (b *Builder) BuildGnet(opts ...GnetOption) (*GnetAdapter, error) {
	l, err := b.Logger()
	if err != nil {
		return nil, err
	}
	return NewGnetAdapter(l, opts...), nil
}

// BuildFastHTTP creates a fasthttp adapter over the shared logger
func (b *Builder) BuildFastHTTP(opts ...FastHTTPOption) (*FastHTTPAdapter, error) {
	l, err := b.Logger()
	if err != nil {
		return nil, err
	}
	return NewFastHTTPAdapter(l, opts...), nil
}

// BuildZap creates a *zap.Logger whose core writes to the shared logger
func (b *Builder) BuildZap(opts ...ZapOption) (*zap.Logger, error) {
	l, err := b.Logger()
	if err != nil {
		return nil, err
	}
	return zap.New(NewZapCore(l, opts...)), nil
}

// Usage:
//
//	adapters := compat.NewBuilder().
//		FromBuilder(log.NewBuilder().Directory("./logs").Format("json")).
//		Override("level=debug")
//	defer adapters.Close(time.Second)
//
//	gnetLogger, err := adapters.BuildGnet(compat.WithGnetCategory(log.CategoryNone, "edge"))
//	if err != nil { /* handle error */ }
//	go gnet.Run(events, "tcp://:9000", gnet.WithLogger(gnetLogger))
//
//	httpLogger, err := adapters.BuildFastHTTP(compat.WithDefaultLevel(log.LevelDebug))
//	if err != nil { /* handle error */ }
//	go (&fasthttp.Server{Handler: handler, Logger: httpLogger}).ListenAndServe(":8080")
//
//	// Every adapter above shares one file and one background writer
//	zl, err := adapters.BuildZap()
//	if err != nil { /* handle error */ }
//	zl.Named("db").Info("connected", zap.String("host", "localhost"))
