// Package field implements modular arithmetic over F_p for the primes QPSC
// operates over (p ≡ 2 mod 3, p > 2^16), plus the byte-boundary conversions
// the round schedule and key/nonce plumbing need.
package field

import (
	"encoding/binary"
	"math/big"
	"math/bits"
)

// Elem is a field element in [0, q). The useful prime range is 17-64 bits,
// so a machine word is sufficient for the arithmetic hot path; only the
// byte-conversion boundary needs arbitrary precision (see ElemFromBytes).
type Elem = uint64

// Field carries the modulus for a set of arithmetic operations. It holds
// no other state and is cheap to construct per call, per call site.
type Field struct {
	q uint64
}

// New returns a Field over modulus q. Callers are responsible for q's
// primality and p ≡ 2 (mod 3) validity; Field itself performs no such
// check since it is pure arithmetic, reused by both the cipher core and
// by callers (e.g. sbox construction) that validate q before use.
func New(q uint64) Field {
	return Field{q: q}
}

// Q returns the modulus.
func (f Field) Q() uint64 { return f.q }

// Add returns (a+b) mod q.
func (f Field) Add(a, b Elem) Elem {
	s := a + b
	if s >= f.q || s < a {
		s -= f.q
	}
	return s
}

// Sub returns (a-b) mod q, canonicalized to [0, q).
func (f Field) Sub(a, b Elem) Elem {
	if a >= b {
		return a - b
	}
	return a + f.q - b
}

// Neg returns (-a) mod q.
func (f Field) Neg(a Elem) Elem {
	return f.Sub(0, a)
}

// Mul returns (a*b) mod q using a 128-bit intermediate product so q may
// use the full 64-bit range without overflow.
func (f Field) Mul(a, b Elem) Elem {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, f.q)
	return rem
}

// ElemFromBytes8 interprets b as a big-endian unsigned 64-bit integer and
// reduces it mod q. This is the fast path used by the round-constant
// schedule (spec §4.E), which always hands it exactly 8 bytes.
func (f Field) ElemFromBytes8(b [8]byte) Elem {
	return binary.BigEndian.Uint64(b[:]) % f.q
}

// ElemFromBytes interprets b (of arbitrary length) as a big-endian
// unsigned integer and reduces it mod q. This is the width-agnostic
// conversion boundary: b.SetBytes/Bytes on math/big.Int already implement
// the same "most significant byte first" convention as the reference
// implementation's mpz_import/mpz_export with order=1, so the two paths
// agree bit-for-bit on any input that also fits ElemFromBytes8.
func (f Field) ElemFromBytes(b []byte) Elem {
	x := new(big.Int).SetBytes(b)
	m := new(big.Int).SetUint64(f.q)
	x.Mod(x, m)
	return x.Uint64()
}

// BytesFromElem renders e as a minimal-length big-endian byte string
// (the inverse direction of ElemFromBytes, sharing its convention).
func BytesFromElem(e Elem) []byte {
	return new(big.Int).SetUint64(e).Bytes()
}

// IsTwoMod3 reports whether p ≡ 2 (mod 3), the validity condition that
// makes x ↦ x³ a bijection on F_p and therefore the algebraic basis for
// the S-box being a permutation (spec §3, §4.C).
func IsTwoMod3(p uint64) bool {
	return p%3 == 2
}
