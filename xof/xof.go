// Package xof binds the extendable-output function the round schedule is
// built on: squeeze an arbitrary number of bytes from a labeled payload.
package xof

import (
	"fmt"

	"golang.org/x/crypto/sha3"
)

// Expand squeezes outLen bytes of SHAKE128 output from the concatenation
// of parts, in order. Each call constructs a fresh sponge, so callers
// never share digest state across invocations.
func Expand(outLen int, parts ...[]byte) ([]byte, error) {
	if outLen < 0 {
		return nil, fmt.Errorf("xof: negative output length %d", outLen)
	}
	h := sha3.NewShake128()
	for _, p := range parts {
		if _, err := h.Write(p); err != nil {
			return nil, fmt.Errorf("xof: write: %w", err)
		}
	}
	out := make([]byte, outLen)
	if _, err := h.Read(out); err != nil {
		return nil, fmt.Errorf("xof: squeeze: %w", err)
	}
	return out, nil
}
