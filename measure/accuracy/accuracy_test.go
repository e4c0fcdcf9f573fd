package accuracy

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-fastmath/fmath"
)

func refSin(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

func TestSweepLUTSine(t *testing.T) {
	e := fmath.New()
	res := Sweep(e.Sin, math.Sin, 0, 2*math.Pi, 8192)

	if res.MaxAbsError == 0 {
		t.Fatal("sweep reported zero error for an approximation")
	}
	if res.MaxAbsError > 1e-4 {
		t.Fatalf("LUT sine max abs error %v, want < 1e-4", res.MaxAbsError)
	}
	if res.RMSError <= 0 || res.RMSError > res.MaxAbsError {
		t.Fatalf("RMS error %v inconsistent with max %v", res.RMSError, res.MaxAbsError)
	}
	if w := float64(res.WorstInput); w < 0 || w > 2*math.Pi {
		t.Fatalf("worst input %v outside sweep interval", w)
	}
}

func TestSweepSkipsNonFinite(t *testing.T) {
	e := fmath.New()
	// Interval includes 0, where the reference is -Inf; the sweep must skip
	// it rather than poison the statistics.
	res := Sweep(e.Log, math.Log, 0, 10, 1000)
	if math.IsInf(res.MaxAbsError, 0) || math.IsNaN(res.MaxAbsError) {
		t.Fatalf("sweep statistics not finite: %+v", res)
	}
}

func TestSweepDegenerate(t *testing.T) {
	e := fmath.New()
	if res := Sweep(e.Sin, math.Sin, 0, 1, 1); res.MaxAbsError != 0 {
		t.Fatalf("degenerate sweep produced %+v", res)
	}
}

func TestLogSweepRsqrt(t *testing.T) {
	e := fmath.New()
	res := LogSweep(e.Rsqrt, func(x float64) float64 { return 1 / math.Sqrt(x) }, 1e-6, 1e6, 4000)

	if res.MaxRelError == 0 {
		t.Fatal("log sweep reported zero relative error")
	}
	if res.MaxRelError > 2e-3 {
		t.Fatalf("rsqrt max rel error %v, want < 2e-3", res.MaxRelError)
	}
}

func TestDistortionReferenceSine(t *testing.T) {
	res, err := Distortion(refSin, 4096, 17)
	if err != nil {
		t.Fatal(err)
	}
	if res.FundamentalLevel <= 0 {
		t.Fatalf("fundamental level %v, want > 0", res.FundamentalLevel)
	}
	// Only float32 argument quantization contributes here.
	if res.THDN > 1e-4 {
		t.Fatalf("reference sine THD+N %v, want < 1e-4", res.THDN)
	}
}

func TestDistortionLUTSine(t *testing.T) {
	e := fmath.New()
	res, err := Distortion(e.Sin, 4096, 17)
	if err != nil {
		t.Fatal(err)
	}
	if res.THDN <= 0 {
		t.Fatal("LUT sine reported zero distortion")
	}
	if res.THDN > 1e-2 {
		t.Fatalf("LUT sine THD+N %v, want < 1e-2", res.THDN)
	}
	if res.THDNdB >= -40 {
		t.Fatalf("LUT sine THD+N %v dB, want < -40 dB", res.THDNdB)
	}
}

func TestDistortionRanksTableSources(t *testing.T) {
	ref, err := Distortion(fmath.New().Sin, 4096, 17)
	if err != nil {
		t.Fatal(err)
	}
	taylor, err := Distortion(fmath.New(fmath.WithTableSource(fmath.TableSourceTaylor)).Sin, 4096, 17)
	if err != nil {
		t.Fatal(err)
	}
	if taylor.THDN <= ref.THDN {
		t.Fatalf("taylor table THD+N %v not worse than reference %v", taylor.THDN, ref.THDN)
	}
}

func TestDistortionRejectsBadCycles(t *testing.T) {
	if _, err := Distortion(refSin, 1024, 0); err == nil {
		t.Fatal("expected error for zero cycles")
	}
	if _, err := Distortion(refSin, 1024, 512); err == nil {
		t.Fatal("expected error for cycles at Nyquist")
	}
}
