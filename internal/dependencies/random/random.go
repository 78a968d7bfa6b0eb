package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"
)

// Random provides random number generation that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int
}

// SeededRandom implements Random with a PCG source. It is seeded once
// from crypto/rand unless a fixed seed is given
type SeededRandom struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a SeededRandom with a fresh seed
func New() *SeededRandom {
	var seed [16]byte
	if _, err := crand.Read(seed[:]); err != nil {
		// crypto/rand.Read does not fail on supported platforms
		panic(err)
	}
	return NewWithSeed(binary.LittleEndian.Uint64(seed[:8]), binary.LittleEndian.Uint64(seed[8:]))
}

// NewWithSeed creates a SeededRandom with a fixed seed for reproducible runs
func NewWithSeed(seed1, seed2 uint64) *SeededRandom {
	return &SeededRandom{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

// Intn returns a random int in [0, n), or 0 when n <= 0
func (r *SeededRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(n)
}
