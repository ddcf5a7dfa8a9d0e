// Package config loads cipher parameters from JSON: decode, validate,
// and optionally resolve a path relative to this package's own source
// file.
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"yuscipher/cipher"
	"yuscipher/field"
)

// Params is the on-disk shape of a cipher configuration: the prime
// modulus, security level, and truncation width.
type Params struct {
	P     uint64 `json:"p"`
	Level int    `json:"level"`
	M     int    `json:"m"`
}

// Validate applies the same bounds New would, so a bad config file fails
// fast with a JSON-shaped error rather than surfacing as a cipher.New
// error deep in a caller's own logic.
func (p *Params) Validate() error {
	if p == nil {
		return fmt.Errorf("config: nil params")
	}
	if !field.IsTwoMod3(p.P) || p.P <= 1<<16 {
		return fmt.Errorf("config: p must satisfy p ≡ 2 mod 3 and p > 2^16, got %d", p.P)
	}
	if p.Level != int(cipher.SEC80) && p.Level != int(cipher.SEC128) {
		return fmt.Errorf("config: level must be %d or %d, got %d", cipher.SEC80, cipher.SEC128, p.Level)
	}
	if p.M < 0 || p.M > 36 {
		return fmt.Errorf("config: m must be in [0,36], got %d", p.M)
	}
	return nil
}

// NewCipher validates p and constructs a Cipher from the loaded params.
func (p *Params) NewCipher() (*cipher.Cipher, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return cipher.New(p.P, cipher.SecurityLevel(p.Level), p.M)
}

// Load decodes parameters from JSON and validates them.
func Load(r io.Reader) (*Params, error) {
	dec := json.NewDecoder(r)
	var p Params
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadFromFile opens path, decodes JSON parameters, and validates them.
func LoadFromFile(path string) (*Params, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// LoadDefault loads qpsc_params.json from this package's own directory,
// resolved relative to this source file via runtime.Caller so callers in
// any working directory still find the shipped default.
func LoadDefault() (*Params, error) {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return nil, fmt.Errorf("config: runtime.Caller failed")
	}
	dir := filepath.Dir(file)
	return LoadFromFile(filepath.Join(dir, "qpsc_params.json"))
}
