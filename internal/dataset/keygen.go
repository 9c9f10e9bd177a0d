package dataset

import (
	"math"
	"math/bits"

	"lookup-bench/internal/core/ports"

	"pgregory.net/rand"
)

const (
	// Alphanumeric is the default key alphabet.
	Alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	DefaultMinKeyLen = 5
	DefaultMaxKeyLen = 14
)

// NewRand returns a seeded random source. A zero seed yields a source seeded
// from the runtime, so every run differs.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New()
	}
	return rand.New(seed)
}

// KeyGenerator produces random keys. It does not guarantee uniqueness.
type KeyGenerator struct {
	rnd      ports.Rand
	alphabet string
	minLen   int
	maxLen   int
}

// KeyOption configures a KeyGenerator.
type KeyOption func(*KeyGenerator)

// WithAlphabet sets the characters keys are drawn from.
func WithAlphabet(alphabet string) KeyOption {
	return func(g *KeyGenerator) {
		if alphabet != "" {
			g.alphabet = alphabet
		}
	}
}

// WithLength sets the inclusive key length bounds.
func WithLength(minLen, maxLen int) KeyOption {
	return func(g *KeyGenerator) {
		if minLen >= 1 && maxLen >= minLen {
			g.minLen = minLen
			g.maxLen = maxLen
		}
	}
}

// NewKeyGenerator creates a generator drawing from rnd.
func NewKeyGenerator(rnd ports.Rand, opts ...KeyOption) *KeyGenerator {
	g := &KeyGenerator{
		rnd:      rnd,
		alphabet: Alphanumeric,
		minLen:   DefaultMinKeyLen,
		maxLen:   DefaultMaxKeyLen,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Next returns a key whose length is uniform in [minLen, maxLen] and whose
// characters are uniform over the alphabet.
func (g *KeyGenerator) Next() string {
	n := g.minLen + g.rnd.Intn(g.maxLen-g.minLen+1)
	b := make([]byte, n)
	for i := range b {
		b[i] = g.alphabet[g.rnd.Intn(len(g.alphabet))]
	}
	return string(b)
}

// KeySpace returns how many distinct keys Next can produce, saturating at
// math.MaxUint64.
func (g *KeyGenerator) KeySpace() uint64 {
	base := uint64(len(g.alphabet))
	var total uint64
	for l := g.minLen; l <= g.maxLen; l++ {
		p := pow(base, l)
		sum, carry := bits.Add64(total, p, 0)
		if carry != 0 {
			return math.MaxUint64
		}
		total = sum
	}
	return total
}

func pow(base uint64, exp int) uint64 {
	result := uint64(1)
	for i := 0; i < exp; i++ {
		hi, lo := bits.Mul64(result, base)
		if hi != 0 {
			return math.MaxUint64
		}
		result = lo
	}
	return result
}
