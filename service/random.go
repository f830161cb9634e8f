package service

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"
)

// Random is the subset of *rand.Rand the ledger draws from.
// Implementations are called from concurrent commands and must be safe for concurrent use.
type Random interface {
	IntN(n int) int
	Float64() float64
}

// cryptoSource adapts crypto/rand to a math/rand/v2 Source
type cryptoSource struct{}

func (cryptoSource) Uint64() uint64 {
	var b [8]byte
	// crypto/rand.Read does not return an error on supported platforms
	_, _ = crand.Read(b[:])
	return binary.LittleEndian.Uint64(b[:])
}

// NewCryptoRandom returns a Random backed by the operating system CSPRNG.
// Used for game outcomes.
func NewCryptoRandom() Random {
	return rand.New(cryptoSource{})
}

// lockedRandom serializes draws from a stateful generator
type lockedRandom struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRandom) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

func (l *lockedRandom) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

// NewPseudoRandom returns a fast seeded Random, safe for concurrent use.
// Used for payout multipliers and work earnings.
func NewPseudoRandom(seed uint64) Random {
	return &lockedRandom{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// uniform returns a value in [lo, hi)
func uniform(r Random, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
