// Package cipher implements the keystream engine: per-block counter
// injection, whitening, R full rounds, final diffusion, and truncation.
package cipher

import (
	"errors"
	"fmt"

	"yuscipher/field"
	"yuscipher/linear"
	"yuscipher/sbox"
	"yuscipher/schedule"
)

// SecurityLevel selects the number of full rounds R.
type SecurityLevel int

const (
	SEC80  SecurityLevel = 5 // 80-bit security target: R = 5 rounds
	SEC128 SecurityLevel = 6 // 128-bit security target: R = 6 rounds
)

// Sentinel errors for the cipher's failure kinds.
var (
	ErrInvalidPrime      = errors.New("cipher: invalid prime modulus")
	ErrInvalidShape      = errors.New("cipher: vector must have 36 elements")
	ErrInvalidTruncation = errors.New("cipher: truncation width m must be in [0,36]")
	ErrNotInitialized    = errors.New("cipher: GenerateKeystream called before Init")
	ErrInvalidSecurity   = errors.New("cipher: unsupported security level")
)

// Cipher is the keystream generator's public surface: New, Init,
// GenerateKeystream, and the Seek/GenerateBlock pair for random access
// (Seek repositions the internal block counter; GenerateBlock is
// stateless). A Cipher is logically owned by one caller at a time; concurrent
// Init + GenerateKeystream on the same instance is undefined. Concurrent
// use of distinct instances is safe.
type Cipher struct {
	p     uint64
	f     field.Field
	level SecurityLevel
	m     int

	sbox   sbox.SBox
	linear linear.Layer

	key      []field.Elem // nil until Init; length 36 once set
	nonce    []byte
	blockCtr uint32 // next block index GenerateKeystream will emit
}

// New constructs a Cipher over F_p at security level, truncating m
// leading elements per block. It validates p ≡ 2 (mod 3), p > 2^16, and
// m <= 36; primality of p is the caller's responsibility.
func New(p uint64, level SecurityLevel, m int) (*Cipher, error) {
	if !field.IsTwoMod3(p) || p <= 1<<16 {
		return nil, ErrInvalidPrime
	}
	if level != SEC80 && level != SEC128 {
		return nil, ErrInvalidSecurity
	}
	if m < 0 || m > 36 {
		return nil, ErrInvalidTruncation
	}
	sb, err := sbox.New(p)
	if err != nil {
		return nil, fmt.Errorf("cipher: %w", err)
	}
	return &Cipher{
		p:      p,
		f:      field.New(p),
		level:  level,
		m:      m,
		sbox:   sb,
		linear: linear.New(),
	}, nil
}

// Init stores the master key and nonce and resets the internal block
// counter to 0. K must have exactly 36 elements.
func (c *Cipher) Init(key []field.Elem, nonce []byte) error {
	if len(key) != 36 {
		return ErrInvalidShape
	}
	k := make([]field.Elem, 36)
	copy(k, key)
	n := make([]byte, len(nonce))
	copy(n, nonce)
	c.key = k
	c.nonce = n
	c.blockCtr = 0
	return nil
}

// Seek repositions the internal block counter without touching the
// key/nonce, so the next GenerateKeystream call starts at block j.
func (c *Cipher) Seek(j uint32) error {
	if c.key == nil {
		return ErrNotInitialized
	}
	c.blockCtr = j
	return nil
}

// GenerateKeystream emits n consecutive blocks starting at the internal
// block counter, then advances the counter by n so a subsequent call
// continues without repeating positions. The result has exactly
// n*(36-m) elements.
func (c *Cipher) GenerateKeystream(n int) ([]field.Elem, error) {
	if c.key == nil {
		return nil, ErrNotInitialized
	}
	out := make([]field.Elem, 0, n*(36-c.m))
	for i := 0; i < n; i++ {
		block, err := c.GenerateBlock(c.blockCtr + uint32(i))
		if err != nil {
			return nil, err
		}
		out = append(out, block...)
	}
	c.blockCtr += uint32(n)
	return out, nil
}

// GenerateBlock computes the truncated output of block j as a pure
// function of the cipher's (key, nonce, p, level, m); it does not read or
// modify the internal block counter, so it is safe to call for random
// access into the keystream (e.g. to reconstruct a mid-stream block
// during seekable decryption) without disturbing GenerateKeystream's
// sequential position.
func (c *Cipher) GenerateBlock(j uint32) ([]field.Elem, error) {
	if c.key == nil {
		return nil, ErrNotInitialized
	}

	// Counter vector CV_j[i] = ((i+1) + j) mod p.
	cv := make([]field.Elem, 36)
	for i := range cv {
		cv[i] = c.f.Add(field.Elem(i+1)%c.p, field.Elem(j)%c.p)
	}

	// Whitening: state <- AK(CV_j, K ⊙ rc^(0,j)).
	rc0, err := schedule.RoundConstant(c.nonce, j, 0, c.f)
	if err != nil {
		return nil, err
	}
	rk0, err := schedule.RoundKey(c.key, rc0, c.f)
	if err != nil {
		return nil, err
	}
	state, err := schedule.AddRoundKey(cv, rk0, c.f)
	if err != nil {
		return nil, err
	}

	// R full rounds: state <- AK(LP(SL(state)), rk^(r,j)).
	rounds := int(c.level)
	for r := 1; r <= rounds; r++ {
		rc, err := schedule.RoundConstant(c.nonce, j, uint32(r), c.f)
		if err != nil {
			return nil, err
		}
		rk, err := schedule.RoundKey(c.key, rc, c.f)
		if err != nil {
			return nil, err
		}

		var sIn [36]field.Elem
		copy(sIn[:], state)
		sOut := c.sbox.ApplyLayer(sIn)

		lOut, err := c.linear.ApplyFourRussians(sOut[:], c.f)
		if err != nil {
			return nil, err
		}
		state, err = schedule.AddRoundKey(lOut, rk, c.f)
		if err != nil {
			return nil, err
		}
	}

	// Final diffusion.
	state, err = c.linear.ApplyFourRussians(state, c.f)
	if err != nil {
		return nil, err
	}

	// Truncate: emit state[m:36].
	return append([]field.Elem(nil), state[c.m:]...), nil
}
