package fmath

import (
	"math"
	"sync"
)

const (
	pi     = 3.14159265358979323846
	twoPi  = 6.28318530717958647692
	halfPi = 0.5 * pi
	ln2    = 0.69314718055994530942
	invLn2 = 1.4426950408889634074 // log2(e)
)

// Engine holds the approximation state: the sine lookup table and the
// configuration it was built with. The zero value is not usable; create
// engines with New.
//
// The table is built at most once per Engine, on the first trig call or via
// Init, and is read-only afterwards. All methods are safe for concurrent
// use.
type Engine struct {
	cfg config

	tableOnce  sync.Once
	sinTable   []float32
	tableMask  int32
	indexScale float32
}

// New returns an Engine configured by the given options.
func New(opts ...Option) *Engine {
	cfg := defaultEngineConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Engine{cfg: cfg}
}

// Init builds the sine lookup table eagerly. It is idempotent and safe to
// call from multiple goroutines; trig kernels call it implicitly on first
// use.
func (e *Engine) Init() {
	e.ensureTable()
}

// TableSize returns the number of samples in the sine lookup table.
func (e *Engine) TableSize() int {
	return 1 << e.cfg.tableBits
}

func (e *Engine) ensureTable() {
	e.tableOnce.Do(e.buildTable)
}

func (e *Engine) buildTable() {
	n := 1 << e.cfg.tableBits
	table := make([]float32, n)
	step := twoPi / float64(n)

	switch e.cfg.tableSource {
	case TableSourceTaylor:
		// sin(x) ≈ x - x³/6 + x⁵/120, evaluated in float32 like the
		// reference-free builds. Accuracy drops toward the end of [π, 2π).
		for i := range table {
			x := float32(step * float64(i))
			x2 := x * x
			x3 := x2 * x
			x5 := x3 * x2
			table[i] = x - x3*(1.0/6.0) + x5*(1.0/120.0)
		}
	default:
		for i := range table {
			table[i] = float32(math.Sin(step * float64(i)))
		}
	}

	e.sinTable = table
	e.tableMask = int32(n - 1)
	e.indexScale = float32(float64(n) / twoPi)
}
