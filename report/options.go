package report

import "go.uber.org/zap"

// ============================================================================
// REPORT OPTIONS — Functional options for Run()
// ============================================================================

// Option configures report behavior via functional options pattern.
type Option func(*config)

type config struct {
	Log            *zap.Logger
	Measure        string  // measure key to aggregate
	GoldTier       string  // membership value treated as premium
	SpendThreshold float64 // per-user spend cutoff (strictly greater than)
	BoutiqueCutoff int     // restaurant qualifies with fewer orders than this
}

// WithLogger sets the logger for per-question diagnostics.
func WithLogger(log *zap.Logger) Option {
	return func(c *config) {
		if log != nil {
			c.Log = log
		}
	}
}

// WithSpendThreshold overrides the per-user spend cutoff used by the
// big-spender count.
func WithSpendThreshold(threshold float64) Option {
	return func(c *config) { c.SpendThreshold = threshold }
}

// WithBoutiqueCutoff overrides the order-count ceiling below which a
// restaurant counts as boutique.
func WithBoutiqueCutoff(cutoff int) Option {
	return func(c *config) { c.BoutiqueCutoff = cutoff }
}

// applyOptions creates a config from functional options.
func applyOptions(opts []Option) *config {
	cfg := &config{
		Log:            zap.NewNop(),
		Measure:        "total_amount",
		GoldTier:       "Gold",
		SpendThreshold: 1000,
		BoutiqueCutoff: 20,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
