// Package primegen searches for primes valid as a cipher modulus: p ≡ 2
// (mod 3) and p > 2^16. The cipher core only consumes p by contract; a
// cryptographically-seeded search for one lives here rather than inside
// `cipher`.
package primegen

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"yuscipher/field"
)

// minBits is the smallest candidate width worth searching at: p must
// exceed 2^16, so anything narrower can never satisfy the validity
// predicate.
const minBits = 17

// Generate returns a cryptographically random prime of the given bit
// length satisfying p ≡ 2 (mod 3) and p > 2^16. bits must be >= 17 and
// <= 64.
func Generate(bits int) (uint64, error) {
	if bits < minBits || bits > 64 {
		return 0, fmt.Errorf("primegen: bits must be in [%d,64], got %d", minBits, bits)
	}
	for {
		cand, err := rand.Prime(rand.Reader, bits)
		if err != nil {
			return 0, fmt.Errorf("primegen: %w", err)
		}
		if !cand.IsUint64() {
			continue
		}
		p := cand.Uint64()
		if field.IsTwoMod3(p) && p > 1<<16 {
			return p, nil
		}
	}
}

// NextValid returns the smallest prime >= p that satisfies p ≡ 2 (mod 3)
// and p > 2^16.
func NextValid(p uint64) uint64 {
	c := new(big.Int).SetUint64(p)
	one := big.NewInt(1)
	for ; ; c.Add(c, one) {
		if !c.ProbablyPrime(20) {
			continue
		}
		if !c.IsUint64() {
			panic("primegen: search exceeded 64 bits")
		}
		v := c.Uint64()
		if field.IsTwoMod3(v) && v > 1<<16 {
			return v
		}
	}
}
