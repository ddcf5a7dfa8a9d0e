package schedule

import (
	"testing"

	"yuscipher/field"
)

const testPrime = 65579

// TestAddRoundKeyElementwise checks AK([1]*36, [2]*36, p) == [3]*36.
func TestAddRoundKeyElementwise(t *testing.T) {
	f := field.New(testPrime)
	state := make([]field.Elem, 36)
	rk := make([]field.Elem, 36)
	for i := range state {
		state[i] = 1
		rk[i] = 2
	}
	out, err := AddRoundKey(state, rk, f)
	if err != nil {
		t.Fatalf("AddRoundKey: %v", err)
	}
	for i, v := range out {
		if v != 3 {
			t.Fatalf("out[%d]=%d want 3", i, v)
		}
	}
}

// TestRoundKeyIdentityMaster checks that with master=[1]*36, rk_i == rc_i
// for all i.
func TestRoundKeyIdentityMaster(t *testing.T) {
	f := field.New(testPrime)
	master := make([]field.Elem, 36)
	rc := make([]field.Elem, 36)
	for i := range master {
		master[i] = 1
		rc[i] = field.Elem(i + 7)
	}
	rk, err := RoundKey(master, rc, f)
	if err != nil {
		t.Fatalf("RoundKey: %v", err)
	}
	for i := range rk {
		if rk[i] != rc[i] {
			t.Fatalf("rk[%d]=%d want rc[%d]=%d", i, rk[i], i, rc[i])
		}
	}
}

func TestRoundConstantNeverZeroAndInRange(t *testing.T) {
	f := field.New(testPrime)
	nonce := []byte{1, 2, 3, 4}
	for j := uint32(0); j < 3; j++ {
		for r := uint32(0); r < 7; r++ {
			rc, err := RoundConstant(nonce, j, r, f)
			if err != nil {
				t.Fatalf("RoundConstant: %v", err)
			}
			if len(rc) != 36 {
				t.Fatalf("len(rc)=%d want 36", len(rc))
			}
			for i, v := range rc {
				if v == 0 {
					t.Fatalf("rc[%d]==0 for j=%d r=%d", i, j, r)
				}
				if v >= testPrime {
					t.Fatalf("rc[%d]=%d out of range for j=%d r=%d", i, v, j, r)
				}
			}
		}
	}
}

func TestRoundConstantDeterministic(t *testing.T) {
	f := field.New(testPrime)
	nonce := []byte{9, 9, 9, 9, 9, 9, 9, 9}
	a, err := RoundConstant(nonce, 3, 2, f)
	if err != nil {
		t.Fatalf("RoundConstant: %v", err)
	}
	b, err := RoundConstant(nonce, 3, 2, f)
	if err != nil {
		t.Fatalf("RoundConstant: %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("RoundConstant not deterministic at %d", i)
		}
	}
}

func TestShapeErrors(t *testing.T) {
	f := field.New(testPrime)
	short := make([]field.Elem, 10)
	full := make([]field.Elem, 36)
	if _, err := RoundKey(short, full, f); err != ErrInvalidShape {
		t.Fatalf("RoundKey short key err=%v want ErrInvalidShape", err)
	}
	if _, err := RoundKey(full, short, f); err != ErrInvalidShape {
		t.Fatalf("RoundKey short rc err=%v want ErrInvalidShape", err)
	}
	if _, err := AddRoundKey(short, full, f); err != ErrInvalidShape {
		t.Fatalf("AddRoundKey short state err=%v want ErrInvalidShape", err)
	}
}
