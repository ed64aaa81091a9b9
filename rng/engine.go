// Package rng implements the deterministic pseudorandom engine that every
// distribution sampler in randist draws from.
//
// The Engine is a 64-bit linear congruential generator. It is not
// cryptographically secure: given the seed, the whole stream is
// reconstructible, and that reconstructibility is the point. Two engines
// built from the same seed produce bit-identical streams forever.
//
// An Engine is exclusively owned by one logical caller. Concurrent draws from
// a shared engine are not synchronized and destroy reproducibility; use one
// independently seeded engine per goroutine instead.
package rng

import (
	"math"
	"time"
)

// LCG constants for full-period behavior modulo 2^64. Fixed, not
// configurable, so that streams reproduce across implementations.
const (
	multiplier uint64 = 6364136223846793005
	increment  uint64 = 1
)

// invMaxUint64 scales a raw state word into [0, 1]. float64(math.MaxUint64)
// rounds to 2^64, so this constant is exactly 2^-64 and the largest state
// word scales to exactly 1.0.
const invMaxUint64 = 1.0 / float64(math.MaxUint64)

// Source is the capability a distribution sampler needs from a random
// engine: uniform draws plus seed administration. Engine is the canonical
// implementation; callers may substitute their own.
type Source interface {
	// Uniform returns the next pseudorandom value in [0, 1].
	Uniform() float64

	// Seed returns the seed the stream started from.
	Seed() uint64

	// SetSeed replaces the seed and rewinds the stream to it.
	SetSeed(seed uint64)

	// Restart rewinds the stream to its seed, reproducing the sequence a
	// freshly constructed source with that seed would emit.
	Restart()

	// Epoch increments on every SetSeed or Restart. Anything caching a value
	// derived from the stream must discard it once the epoch changes,
	// otherwise stale draws leak across the reset boundary.
	Epoch() uint64
}

// SeedSource produces seeds for engines constructed without an explicit one.
type SeedSource func() uint64

// TimeSeed seeds from the wall clock at nanosecond resolution. Two engines
// created within the same clock tick receive the same seed and therefore
// produce identical streams; callers that need distinct streams must seed
// explicitly. This is a documented limitation, not a defect.
func TimeSeed() uint64 {
	return uint64(time.Now().UnixNano())
}

var ambientSeed SeedSource = TimeSeed

// SetSeedSource replaces the ambient seed source consulted by NewEngine and
// returns the previous one. Tests substitute a fixed source here to make
// time-seeded constructors reproducible.
func SetSeedSource(src SeedSource) SeedSource {
	prev := ambientSeed
	ambientSeed = src
	return prev
}

// Engine is a 64-bit linear congruential generator. The zero value is a
// valid engine with seed 0; prefer the constructors.
type Engine struct {
	seed  uint64
	state uint64
	epoch uint64
}

var _ Source = (*Engine)(nil)

// NewEngine returns an engine seeded from the ambient seed source.
func NewEngine() *Engine {
	return NewEngineSeed(ambientSeed())
}

// NewEngineSeed returns an engine with an explicit seed. Equal seeds give
// bit-identical streams.
func NewEngineSeed(seed uint64) *Engine {
	return &Engine{seed: seed, state: seed}
}

// next advances the recurrence and returns the new state word.
func (e *Engine) next() uint64 {
	e.state = e.state*multiplier + increment
	return e.state
}

// Uniform advances the generator and returns the new state scaled to [0, 1].
// Both endpoints are reachable: a zero state word scales to 0.0 and the
// all-ones word to 1.0.
func (e *Engine) Uniform() float64 {
	return float64(e.next()) * invMaxUint64
}

// Seed returns the seed the current sequence started from.
func (e *Engine) Seed() uint64 {
	return e.seed
}

// SetSeed replaces both seed and state, so subsequent draws behave as if the
// engine were freshly constructed with seed.
func (e *Engine) SetSeed(seed uint64) {
	e.seed = seed
	e.state = seed
	e.epoch++
}

// Restart rewinds the state to the seed.
func (e *Engine) Restart() {
	e.state = e.seed
	e.epoch++
}

// Epoch reports how many times the engine has been reseeded or restarted.
func (e *Engine) Epoch() uint64 {
	return e.epoch
}

// State exposes the current state word. It exists for snapshotting and for
// tests that need to prove a code path performed no draws.
func (e *Engine) State() uint64 {
	return e.state
}
