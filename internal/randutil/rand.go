// Package randutil centralises how random generators are seeded so runs can be
// replayed from a single int64.
package randutil

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	rand "math/rand/v2"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewSeed draws a non-zero seed from crypto/rand, for runs that were not given one.
func NewSeed() (int64, error) {
	var b [8]byte
	for {
		if _, err := crand.Read(b[:]); err != nil {
			return 0, fmt.Errorf("read random seed: %w", err)
		}
		// zero means "unset" to callers
		if seed := int64(binary.LittleEndian.Uint64(b[:])); seed != 0 {
			return seed, nil
		}
	}
}

// Pick returns k distinct indexes in [0, n), in random order. Every k-subset
// and every ordering of it is equally likely. It panics if k is outside [0, n].
func Pick(rng *rand.Rand, n, k int) []int {
	if k < 0 || k > n {
		panic(fmt.Sprintf("randutil: cannot pick %d of %d", k, n))
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	// partial Fisher-Yates; only the first k slots are settled
	for i := 0; i < k; i++ {
		j := i + rng.IntN(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:k]
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
