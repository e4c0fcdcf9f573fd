package fmath

import "github.com/cwbudde/algo-fastmath/internal/parallel"

const (
	defaultTableBits = 12
	minTableBits     = 4
	maxTableBits     = 24
)

// TableSource selects how the sine lookup table is populated.
type TableSource int

const (
	// TableSourceReference builds the table from math.Sin.
	TableSourceReference TableSource = iota

	// TableSourceTaylor builds the table from a 5th-order Taylor series
	// around zero. Less accurate toward the end of the period; intended for
	// environments where the reference path is unavailable or too costly at
	// startup.
	TableSourceTaylor
)

// Option configures an Engine.
type Option func(*config)

type config struct {
	tableBits   int
	tableSource TableSource
	executor    parallel.Executor
}

func defaultEngineConfig() config {
	return config{
		tableBits:   defaultTableBits,
		tableSource: TableSourceReference,
		executor:    parallel.Sequential{},
	}
}

// WithTableBits sets the sine table resolution to 2^bits samples.
// Larger tables are more accurate and use more memory. Values outside
// [4, 24] are clamped.
func WithTableBits(bits int) Option {
	return func(cfg *config) {
		if bits < minTableBits {
			bits = minTableBits
		}
		if bits > maxTableBits {
			bits = maxTableBits
		}
		cfg.tableBits = bits
	}
}

// WithTableSource selects the sine table population method.
func WithTableSource(src TableSource) Option {
	return func(cfg *config) {
		cfg.tableSource = src
	}
}

// WithExecutor injects the loop executor used by the block kernels.
func WithExecutor(ex parallel.Executor) Option {
	return func(cfg *config) {
		if ex != nil {
			cfg.executor = ex
		}
	}
}

// WithWorkers enables data-parallel block dispatch across n worker
// goroutines. n below 1 selects one worker per CPU.
func WithWorkers(n int) Option {
	return func(cfg *config) {
		cfg.executor = parallel.NewPool(n)
	}
}
