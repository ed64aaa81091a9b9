package rng_test

import (
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/stat"

	"github.com/nozzle/randist/rng"
)

// countingSource wraps an engine and counts uniform draws. It doubles as a
// check that NormalSampler works against any Source, not just *Engine.
type countingSource struct {
	*rng.Engine
	draws int
}

func (c *countingSource) Uniform() float64 {
	c.draws++
	return c.Engine.Uniform()
}

func TestSampleCalibration(t *testing.T) {
	n := rng.NewNormalSampler(rng.NewEngineSeed(42))
	const count = 100_000
	draws := make([]float64, count)
	for i := range draws {
		draws[i] = n.Sample()
	}

	mean := stat.Mean(draws, nil)
	variance := stat.Variance(draws, nil)
	fmt.Printf("normal mean=%.6f variance=%.6f over %d draws\n", mean, variance, count)

	if math.Abs(mean) > 0.01 {
		t.Errorf("sample mean too far from 0: %v", mean)
	}
	if math.Abs(variance-1) > 0.02 {
		t.Errorf("sample variance too far from 1: %v", variance)
	}
}

func TestCachedPathDrawsNothing(t *testing.T) {
	e := rng.NewEngineSeed(42)
	n := rng.NewNormalSampler(e)

	before := e.State()
	n.Sample()
	afterFirst := e.State()
	if afterFirst == before {
		t.Fatal("first Sample performed no draws")
	}

	// The second call must come from the cache: zero engine draws.
	n.Sample()
	if e.State() != afterFirst {
		t.Fatalf("second Sample advanced the engine: %d -> %d", afterFirst, e.State())
	}

	n.Sample()
	if e.State() == afterFirst {
		t.Fatal("third Sample performed no draws")
	}
}

func TestSetSeedClearsCache(t *testing.T) {
	e := rng.NewEngineSeed(42)
	n := rng.NewNormalSampler(e)
	n.Sample() // populates the cache

	e.SetSeed(7)

	// With the cache cleared, the stream must be indistinguishable from a
	// fresh sampler on a fresh engine with the new seed.
	fresh := rng.NewNormalSampler(rng.NewEngineSeed(7))
	for i := 0; i < 10; i++ {
		got, want := n.Sample(), fresh.Sample()
		if got != want {
			t.Fatalf("draw %d after reseed: got %v, want %v (stale cache leaked)", i, got, want)
		}
	}
}

func TestRestartClearsCache(t *testing.T) {
	e := rng.NewEngineSeed(42)
	n := rng.NewNormalSampler(e)
	first := n.Sample()

	e.Restart()
	if got := n.Sample(); got != first {
		t.Fatalf("after restart: got %v, want %v (the pair draw must replay)", got, first)
	}
}

func TestRejectionRate(t *testing.T) {
	src := &countingSource{Engine: rng.NewEngineSeed(42)}
	n := rng.NewNormalSampler(src)

	const count = 100_000
	for iter := 0; iter < count; iter++ {
		n.Sample()
	}

	// Each accepted pair yields two variates from two draws, and the
	// acceptance probability is pi/4, so the expected draws per variate is
	// 4/pi ~ 1.273.
	perVariate := float64(src.draws) / count
	fmt.Printf("uniform draws per normal variate: %.4f (expected %.4f)\n", perVariate, 4/math.Pi)
	if perVariate < 1.2 || perVariate > 1.35 {
		t.Errorf("draws per variate = %v, expected about %v", perVariate, 4/math.Pi)
	}
}

func TestNilSourceGetsOwnEngine(t *testing.T) {
	prev := rng.SetSeedSource(func() uint64 { return 5 })
	defer rng.SetSeedSource(prev)

	a := rng.NewNormalSampler(nil)
	b := rng.NewNormalSampler(nil)
	for i := 0; i < 100; i++ {
		if va, vb := a.Sample(), b.Sample(); va != vb {
			t.Fatalf("draw %d differs under a pinned ambient seed: %v vs %v", i, va, vb)
		}
	}
}
