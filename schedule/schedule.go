// Package schedule implements the round-constant and round-key
// derivation that drives each round of the cipher.
package schedule

import (
	"encoding/binary"
	"errors"
	"fmt"

	"yuscipher/field"
	"yuscipher/xof"
)

// ErrInvalidShape is returned when an input vector does not have exactly
// 36 elements where 36 is required.
var ErrInvalidShape = errors.New("schedule: vector must have 36 elements")

// RoundConstant derives rc^(r,j) = the 36 field elements obtained from
// SHAKE128(N || j_LE32 || r_LE32), consumed as 36 consecutive big-endian
// uint64 limbs reduced mod p, each replaced by 1 if it reduces to 0. j is
// the block index, r the round index.
func RoundConstant(nonce []byte, j, r uint32, f field.Field) ([]field.Elem, error) {
	var jb, rb [4]byte
	binary.LittleEndian.PutUint32(jb[:], j)
	binary.LittleEndian.PutUint32(rb[:], r)

	out, err := xof.Expand(36*8, nonce, jb[:], rb[:])
	if err != nil {
		return nil, fmt.Errorf("schedule: round constant: %w", err)
	}

	rc := make([]field.Elem, 36)
	for k := 0; k < 36; k++ {
		var limb [8]byte
		copy(limb[:], out[k*8:(k+1)*8])
		v := f.ElemFromBytes8(limb)
		if v == 0 {
			v = 1
		}
		rc[k] = v
	}
	return rc, nil
}

// RoundKey derives rk_i = (K_i * rc_i) mod p for i in [0,36). Both inputs
// must have exactly 36 elements.
func RoundKey(key, rc []field.Elem, f field.Field) ([]field.Elem, error) {
	if len(key) != 36 || len(rc) != 36 {
		return nil, ErrInvalidShape
	}
	rk := make([]field.Elem, 36)
	for i := range rk {
		rk[i] = f.Mul(key[i], rc[i])
	}
	return rk, nil
}

// AddRoundKey computes state_i + rk_i mod p element-wise. Both inputs
// must have exactly 36 elements.
func AddRoundKey(state, rk []field.Elem, f field.Field) ([]field.Elem, error) {
	if len(state) != 36 || len(rk) != 36 {
		return nil, ErrInvalidShape
	}
	out := make([]field.Elem, 36)
	for i := range out {
		out[i] = f.Add(state[i], rk[i])
	}
	return out, nil
}
