// Copyright (c) 2023 Colin McRae

package pauli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMul(t *testing.T) {
	assert.Equal(t, Z, Mul(X, Y))
	assert.Equal(t, X, Mul(Y, Z))
	assert.Equal(t, Y, Mul(Z, X))
	assert.Equal(t, I, Mul(X, X))
	assert.Equal(t, I, Mul(Y, Y))
	assert.Equal(t, I, Mul(Z, Z))
	assert.Equal(t, Y, Mul(Y, I))
	assert.Equal(t, Y, Mul(I, Y))
}

func TestPhaseExp(t *testing.T) {
	// XY = iZ, YZ = iX, ZX = iY
	assert.Equal(t, 1, PhaseExp(X, Y))
	assert.Equal(t, 1, PhaseExp(Y, Z))
	assert.Equal(t, 1, PhaseExp(Z, X))

	// Reversed products pick up -i
	assert.Equal(t, 3, PhaseExp(Y, X))
	assert.Equal(t, 3, PhaseExp(Z, Y))
	assert.Equal(t, 3, PhaseExp(X, Z))

	// Identity and self-products are phase-free
	for _, p := range []Pauli{I, X, Y, Z} {
		assert.Equal(t, 0, PhaseExp(p, p))
		assert.Equal(t, 0, PhaseExp(I, p))
		assert.Equal(t, 0, PhaseExp(p, I))
	}
}

func TestPhaseExpConsistentWithMul(t *testing.T) {
	// For anticommuting a, b the phases of ab and ba must differ by
	// i^2; for commuting pairs they must agree.
	all := []Pauli{I, X, Y, Z}
	for _, a := range all {
		for _, b := range all {
			diff := (PhaseExp(a, b) - PhaseExp(b, a) + 4) % 4
			anticommute := !a.IsIdentity() && !b.IsIdentity() && a != b
			if anticommute {
				assert.Equal(t, 2, diff, "%s,%s", a, b)
			} else {
				assert.Equal(t, 0, diff, "%s,%s", a, b)
			}
		}
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "I", I.String())
	assert.Equal(t, "X", X.String())
	assert.Equal(t, "Y", Y.String())
	assert.Equal(t, "Z", Z.String())
}
