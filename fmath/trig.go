package fmath

import "math"

// Sin returns an approximation of sin(x) for x in radians.
//
// The input is mapped to table-index space and wrapped by bitmask; no
// modulo-2π reduction of x itself takes place, so accuracy degrades for
// large |x| (see the package documentation). NaN propagates; an infinite
// input yields a meaningless finite value.
func (e *Engine) Sin(x float32) float32 {
	e.ensureTable()
	return e.lookupSin(x * e.indexScale)
}

// Cos returns an approximation of cos(x) for x in radians, computed as
// sin(x + π/2) through the same table. The limitations of Sin apply.
func (e *Engine) Cos(x float32) float32 {
	e.ensureTable()
	return e.lookupSin((x + halfPi) * e.indexScale)
}

// lookupSin interpolates the sine table at the fractional index indexF.
// Callers must have built the table.
func (e *Engine) lookupSin(indexF float32) float32 {
	idxFloor := floorf(indexF)
	i0 := int32(idxFloor) & e.tableMask
	i1 := (i0 + 1) & e.tableMask
	t := indexF - idxFloor
	s0 := e.sinTable[i0]
	s1 := e.sinTable[i1]
	return s0 + t*(s1-s0)
}

// floorf is floor for float32. Going through float64 is faster than a
// hand-rolled float32 floor and keeps the edge cases right.
func floorf(x float32) float32 {
	return float32(math.Floor(float64(x)))
}
