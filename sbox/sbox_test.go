package sbox

import (
	"testing"

	"yuscipher/field"
)

const testPrime = 65579

// TestApplyKnownTriple checks the S-box on a known (1,2,3) input triple.
func TestApplyKnownTriple(t *testing.T) {
	s, err := New(testPrime)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := s.Apply([3]field.Elem{1, 2, 3})
	want := [3]field.Elem{1, 5, 4}
	if got != want {
		t.Fatalf("Apply(1,2,3)=%v want %v", got, want)
	}
}

// TestApplyLayerKnownState checks the layer applied to state [1..36],
// verifying the first triple's output.
func TestApplyLayerKnownState(t *testing.T) {
	s, err := New(testPrime)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var state [36]field.Elem
	for i := range state {
		state[i] = field.Elem(i + 1)
	}
	out := s.ApplyLayer(state)
	want := [3]field.Elem{1, 5, 4}
	got := [3]field.Elem{out[0], out[1], out[2]}
	if got != want {
		t.Fatalf("ApplyLayer triple0=%v want %v", got, want)
	}
}

func TestNewRejectsInvalidPrime(t *testing.T) {
	if _, err := New(97); err != ErrInvalidPrime {
		t.Fatalf("New(97) err=%v want ErrInvalidPrime", err)
	}
}

func TestIsPermutationLargeP(t *testing.T) {
	s, err := New(testPrime)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !s.IsPermutation() {
		t.Fatalf("IsPermutation() = false, want true")
	}
}

func TestIsPermutationSmallPExhaustive(t *testing.T) {
	// 11 ≡ 2 mod 3 and is prime, small enough for the exhaustive branch.
	s, err := New(11)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !s.IsPermutation() {
		t.Fatalf("IsPermutation() = false, want true for small p")
	}
}

func TestDifferentialUniformity(t *testing.T) {
	s, err := New(testPrime)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	du := s.DifferentialUniformity()
	if du.Uint64() != testPrime*testPrime {
		t.Fatalf("DifferentialUniformity=%v want %d", du, uint64(testPrime*testPrime))
	}
}

func TestApplyStaysInRange(t *testing.T) {
	s, err := New(testPrime)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	inputs := [][3]field.Elem{
		{0, 0, 0},
		{testPrime - 1, testPrime - 1, testPrime - 1},
		{1, testPrime - 1, 2},
	}
	for _, in := range inputs {
		out := s.Apply(in)
		for i, v := range out {
			if v >= testPrime {
				t.Fatalf("Apply(%v)[%d]=%d out of range", in, i, v)
			}
		}
	}
}
