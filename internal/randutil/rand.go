// Package randutil derives reproducible random sources for hands.
package randutil

import (
	"math/rand/v2"

	"github.com/coder/quartz"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand whose sequence depends only on seed.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Seed picks a fresh seed from the clock. Callers log it so a hand can be
// replayed with New.
func Seed(clock quartz.Clock) int64 {
	return int64(mix(uint64(clock.Now().UnixNano())) >> 1)
}

// Derive returns the seed for the n-th hand of a run started from base.
func Derive(base int64, n int) int64 {
	return int64(mix(uint64(base)+uint64(n)*goldenRatio64) >> 1)
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
