package fhe

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v4/bgv"
	"github.com/tuneinsight/lattigo/v4/rlwe"
)

// BGVBackend evaluates under lattigo/v4's BGV scheme.
type BGVBackend struct {
	params    bgv.Parameters
	encoder   *bgv.Encoder
	encryptor *rlwe.Encryptor
	decryptor *rlwe.Decryptor
	evaluator *bgv.Evaluator
}

// BGVConfig holds the ring degree, plaintext modulus (must satisfy
// field.IsTwoMod3), and ciphertext modulus chain (per-prime bit sizes)
// needed to build a BGV context.
type BGVConfig struct {
	LogN             int
	PlaintextModulus uint64
	LogQ             []int
	LogP             []int
}

// NewBGVBackend builds a fresh BGV context, generates a key pair and
// relinearization key, and wires the encoder/encryptor/decryptor/
// evaluator quartet around lattigo's own bgv.Parameters.
func NewBGVBackend(cfg BGVConfig) (*BGVBackend, error) {
	params, err := bgv.NewParametersFromLiteral(bgv.ParametersLiteral{
		LogN:             cfg.LogN,
		LogQ:             cfg.LogQ,
		LogP:             cfg.LogP,
		PlaintextModulus: cfg.PlaintextModulus,
	})
	if err != nil {
		return nil, fmt.Errorf("fhe: bgv params: %w", err)
	}

	kgen := bgv.NewKeyGenerator(params)
	sk, pk := kgen.GenKeyPairNew()
	rlk := kgen.GenRelinearizationKeyNew(sk)
	evk := rlwe.NewMemEvaluationKeySet(rlk)

	return &BGVBackend{
		params:    params,
		encoder:   bgv.NewEncoder(params),
		encryptor: bgv.NewEncryptor(params, pk),
		decryptor: bgv.NewDecryptor(params, sk),
		evaluator: bgv.NewEvaluator(params, evk),
	}, nil
}

func (b *BGVBackend) PlaintextModulus() uint64 { return b.params.PlaintextModulus() }

func (b *BGVBackend) EncryptVector(values []uint64) (Ciphertext, error) {
	pt := bgv.NewPlaintext(b.params, b.params.MaxLevel())
	if err := b.encoder.Encode(values, pt); err != nil {
		return Ciphertext{}, fmt.Errorf("fhe: bgv encode: %w", err)
	}
	ct, err := b.encryptor.EncryptNew(pt)
	if err != nil {
		return Ciphertext{}, fmt.Errorf("fhe: bgv encrypt: %w", err)
	}
	return Ciphertext{inner: ct, from: b}, nil
}

func (b *BGVBackend) Decrypt(ct Ciphertext) ([]uint64, error) {
	inner, err := b.unwrap(ct)
	if err != nil {
		return nil, err
	}
	pt := b.decryptor.DecryptNew(inner)
	values := make([]uint64, b.params.N())
	if err := b.encoder.Decode(pt, values); err != nil {
		return nil, fmt.Errorf("fhe: bgv decode: %w", err)
	}
	return values, nil
}

func (b *BGVBackend) Add(a, c Ciphertext) (Ciphertext, error) {
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
		return Ciphertext{}, fmt.Errorf("fhe: bgv add: %w", err)
	}
	return Ciphertext{inner: out, from: b}, nil
}

func (b *BGVBackend) MulRelin(a, c Ciphertext) (Ciphertext, error) {
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
		return Ciphertext{}, fmt.Errorf("fhe: bgv mul-relin: %w", err)
	}
	return Ciphertext{inner: out, from: b}, nil
}

func (b *BGVBackend) unwrap(ct Ciphertext) (*rlwe.Ciphertext, error) {
	if ct.from != b {
		return nil, ErrSchemeMismatch
	}
	inner, ok := ct.inner.(*rlwe.Ciphertext)
	if !ok {
		return nil, ErrSchemeMismatch
	}
	return inner, nil
}
