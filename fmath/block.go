package fmath

// Block kernels apply one scalar kernel to every element of src, writing
// results to the same index of dst. dst and src must have equal length and
// may be the same slice: each output depends only on the same-index input,
// so the transform is safe in place. Empty slices are a no-op.
//
// With the default sequential executor the elements are processed in order
// on the calling goroutine. With a pool executor the index range is
// partitioned into contiguous chunks processed concurrently; the call
// returns only after every chunk has finished. Element independence means
// no ordering is observable either way.

// SinBlock computes dst[i] = Sin(src[i]) for every element.
func (e *Engine) SinBlock(dst, src []float32) {
	checkBlockLen(dst, src)
	e.ensureTable()
	scale := e.indexScale
	e.cfg.executor.For(len(src), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = e.lookupSin(src[i] * scale)
		}
	})
}

// CosBlock computes dst[i] = Cos(src[i]) for every element.
func (e *Engine) CosBlock(dst, src []float32) {
	checkBlockLen(dst, src)
	e.ensureTable()
	scale := e.indexScale
	e.cfg.executor.For(len(src), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = e.lookupSin((src[i] + halfPi) * scale)
		}
	})
}

// ExpBlock computes dst[i] = Exp(src[i]) for every element.
func (e *Engine) ExpBlock(dst, src []float32) {
	checkBlockLen(dst, src)
	e.cfg.executor.For(len(src), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = expKernel(src[i])
		}
	})
}

// LogBlock computes dst[i] = Log(src[i]) for every element.
func (e *Engine) LogBlock(dst, src []float32) {
	checkBlockLen(dst, src)
	e.cfg.executor.For(len(src), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = logKernel(src[i])
		}
	})
}

// SqrtBlock computes dst[i] = Sqrt(src[i]) for every element.
func (e *Engine) SqrtBlock(dst, src []float32) {
	checkBlockLen(dst, src)
	e.cfg.executor.For(len(src), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = sqrtKernel(src[i])
		}
	})
}

// RsqrtBlock computes dst[i] = Rsqrt(src[i]) for every element.
func (e *Engine) RsqrtBlock(dst, src []float32) {
	checkBlockLen(dst, src)
	e.cfg.executor.For(len(src), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = rsqrtKernel(src[i])
		}
	})
}

// RcpBlock computes dst[i] = Rcp(src[i]) for every element.
func (e *Engine) RcpBlock(dst, src []float32) {
	checkBlockLen(dst, src)
	e.cfg.executor.For(len(src), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = rcpKernel(src[i])
		}
	})
}

func checkBlockLen(dst, src []float32) {
	if len(dst) != len(src) {
		panic("fmath: slice length mismatch")
	}
}
