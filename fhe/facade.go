// Package fhe is a boundary-only homomorphic-evaluation facade:
// downstream consumers that want to evaluate the cipher homomorphically
// wrap keystream elements as Ciphertexts under a Backend and drive
// Add/MulRelin themselves. Nothing in package cipher depends on this
// package — the core keystream engine never touches ciphertexts.
package fhe

import "errors"

// ErrSchemeMismatch is returned when a Ciphertext produced by one Backend
// is passed to another.
var ErrSchemeMismatch = errors.New("fhe: ciphertext was not produced by this backend")

// Ciphertext wraps a scheme-specific lattigo ciphertext behind an opaque
// handle so callers can pass values between Backend methods without
// importing lattigo themselves. The concrete type underneath inner is
// *rlwe.Ciphertext for both the BGV and the BFV backend.
type Ciphertext struct {
	inner any
	from  Backend
}

// Backend is the evaluation surface a scheme adapter must provide:
// encrypt a vector of field elements, decrypt back, and the two
// homomorphic operations the cipher's linear-plus-cubic round structure
// needs — addition for the round-key mix, multiply-with-relinearization
// for the S-box's cross terms.
type Backend interface {
	// EncryptVector packs values (already reduced mod the backend's
	// plaintext modulus) into one or more ciphertext slots and encrypts
	// them under the backend's public key.
	EncryptVector(values []uint64) (Ciphertext, error)

	// Decrypt recovers the plaintext vector under the backend's secret
	// key. The encrypted values come first; the lattigo backends return
	// every plaintext slot (the ring degree N), not only len(values).
	Decrypt(ct Ciphertext) ([]uint64, error)

	// Add returns a ciphertext encrypting the slot-wise sum.
	Add(a, b Ciphertext) (Ciphertext, error)

	// MulRelin returns a ciphertext encrypting the slot-wise product,
	// relinearized back down to a two-component ciphertext so the
	// result composes with further Add/MulRelin calls.
	MulRelin(a, b Ciphertext) (Ciphertext, error)

	// PlaintextModulus is the backend's slot modulus; callers reduce
	// field elements into this modulus before EncryptVector.
	PlaintextModulus() uint64
}
