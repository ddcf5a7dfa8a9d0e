package fhe

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v4/bfv"
	"github.com/tuneinsight/lattigo/v4/rlwe"
)

// BFVBackend evaluates under lattigo/v4's BFV scheme.
type BFVBackend struct {
	params    bfv.Parameters
	encoder   bfv.Encoder
	encryptor rlwe.Encryptor
	decryptor rlwe.Decryptor
	evaluator bfv.Evaluator
}

// BFVConfig holds the ring degree, plaintext modulus, and ciphertext
// modulus chain needed to build a BFV context.
type BFVConfig struct {
	LogN             int
	PlaintextModulus uint64
	LogQ             []int
	LogP             []int
}

// NewBFVBackend builds a fresh BFV context, generates a key pair and
// relinearization key, and wires the encoder/encryptor/decryptor/
// evaluator quartet analogous to NewBGVBackend.
func NewBFVBackend(cfg BFVConfig) (*BFVBackend, error) {
	params, err := bfv.NewParametersFromLiteral(bfv.ParametersLiteral{
		LogN:             cfg.LogN,
		LogQ:             cfg.LogQ,
		LogP:             cfg.LogP,
		PlaintextModulus: cfg.PlaintextModulus,
	})
	if err != nil {
		return nil, fmt.Errorf("fhe: bfv params: %w", err)
	}

	kgen := bfv.NewKeyGenerator(params)
	sk, pk := kgen.GenKeyPairNew()
	rlk := kgen.GenRelinearizationKeyNew(sk)
	evk := rlwe.NewMemEvaluationKeySet(rlk)

	return &BFVBackend{
		params:    params,
		encoder:   bfv.NewEncoder(params),
		encryptor: bfv.NewEncryptor(params, pk),
		decryptor: bfv.NewDecryptor(params, sk),
		evaluator: bfv.NewEvaluator(params, evk),
	}, nil
}

func (b *BFVBackend) PlaintextModulus() uint64 { return b.params.T() }

func (b *BFVBackend) EncryptVector(values []uint64) (Ciphertext, error) {
	pt := bfv.NewPlaintext(b.params, b.params.MaxLevel())
	b.encoder.Encode(values, pt)
	ct, err := b.encryptor.EncryptNew(pt)
	if err != nil {
		return Ciphertext{}, fmt.Errorf("fhe: bfv encrypt: %w", err)
	}
	return Ciphertext{inner: ct, from: b}, nil
}

func (b *BFVBackend) Decrypt(ct Ciphertext) ([]uint64, error) {
	inner, err := b.unwrap(ct)
	if err != nil {
		return nil, err
	}
	pt := b.decryptor.DecryptNew(inner)
	values := make([]uint64, b.params.N())
	b.encoder.Decode(pt, values)
	return values, nil
}

func (b *BFVBackend) Add(a, c Ciphertext) (Ciphertext, error) {
	ia, err := b.unwrap(a)
	if err != nil {
		return Ciphertext{}, err
	}
	ic, err := b.unwrap(c)
	if err != nil {
		return Ciphertext{}, err
	}
	out, err := b.evaluator.AddNew(ia, ic)
	if err != nil {
		return Ciphertext{}, fmt.Errorf("fhe: bfv add: %w", err)
	}
	return Ciphertext{inner: out, from: b}, nil
}

func (b *BFVBackend) MulRelin(a, c Ciphertext) (Ciphertext, error) {
	ia, err := b.unwrap(a)
	if err != nil {
		return Ciphertext{}, err
	}
	ic, err := b.unwrap(c)
	if err != nil {
		return Ciphertext{}, err
	}
	out, err := b.evaluator.MulRelinNew(ia, ic)
	if err != nil {
		return Ciphertext{}, fmt.Errorf("fhe: bfv mul-relin: %w", err)
	}
	return Ciphertext{inner: out, from: b}, nil
}

func (b *BFVBackend) unwrap(ct Ciphertext) (*rlwe.Ciphertext, error) {
	if ct.from != b {
		return nil, ErrSchemeMismatch
	}
	inner, ok := ct.inner.(*rlwe.Ciphertext)
	if !ok {
		return nil, ErrSchemeMismatch
	}
	return inner, nil
}
