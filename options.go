package vorolath

import (
	"github.com/katalvlaran/vorolath/clip"
	"github.com/katalvlaran/vorolath/geom"
)

// AllocatorHook is invoked immediately before each new arena block is
// materialized (never per record, per spec.md §6.2). Returning a non-nil
// error fails that block allocation, which Generate surfaces wrapped in
// arena.ErrBlockAlloc — this is how tests induce the "allocation
// exhaustion" path from spec.md §7 without exhausting host memory.
type AllocatorHook func() error

// generateConfig holds Generate's resolved configuration. Mirrors the
// teacher's builderConfig (builder/config.go): a private struct with
// defaults applied by newGenerateConfig, then customized by GenerateOption
// values in the order given.
type generateConfig struct {
	rect       *geom.Rect
	clipper    clip.Clipper
	allocHook  AllocatorHook
	err        error
}

// GenerateOption customizes a Generate call. Option constructors never
// panic; for WithClipper a nil input is a no-op, matching builder's
// WithIDScheme/WithWeightFn/WithRand contract. WithRect with an empty
// rectangle and WithAllocator(nil) are misuses the caller should learn
// about rather than have silently ignored — see ErrEmptyRect and
// ErrNilAllocator.
type GenerateOption func(cfg *generateConfig)

func newGenerateConfig() *generateConfig {
	return &generateConfig{}
}

// WithRect fixes the clip rectangle explicitly, overriding the
// bounding-box-of-input derivation in spec.md §4.9 step 4. If min and max
// do not describe a positive-area rectangle, Generate returns ErrEmptyRect
// rather than ignoring the option.
func WithRect(min, max Point) GenerateOption {
	return func(cfg *generateConfig) {
		r := geom.Rect{Min: min, Max: max}
		cfg.rect = &r
	}
}

// WithClipper overrides the default box clipper with c. A nil c (the
// untyped interface nil) is a no-op, leaving any previously configured
// clipper (or the eventual default) in place. A typed-nil pointer built
// outside NewBoxClipper/NewConvexPolygonClipper (e.g. (*clip.BoxClipper)(nil))
// is not caught here — that check would need reflection on an arbitrary
// Clipper implementation — but both built-in clippers' Bounds() tolerate a
// nil receiver, so sanitizeInput's Bounds().Empty() check still turns it
// into ErrInvalidClipper instead of a panic.
func WithClipper(c clip.Clipper) GenerateOption {
	return func(cfg *generateConfig) {
		if c != nil {
			cfg.clipper = c
		}
	}
}

// WithAllocator installs hook to observe or fault-inject arena block
// allocations. Unlike WithClipper, a nil hook is not a silent
// no-op: passing one supplies no usable hook while claiming to configure
// one, so Generate reports ErrNilAllocator instead of proceeding as if the
// option had never been given.
func WithAllocator(hook AllocatorHook) GenerateOption {
	return func(cfg *generateConfig) {
		if hook == nil {
			cfg.err = ErrNilAllocator
			return
		}
		cfg.allocHook = hook
	}
}
