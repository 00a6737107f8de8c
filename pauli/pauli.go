// Copyright (c) 2023 Colin McRae

// Package pauli implements the binary encoding of single-qubit Pauli
// operators and the phase arithmetic of their products.
package pauli

// Pauli is a single-qubit Pauli operator in the symplectic (x, z)
// encoding: I = (false, false), X = (true, false), Z = (false, true),
// Y = (true, true).
type Pauli struct {
	X bool
	Z bool
}

var (
	I = Pauli{}
	X = Pauli{X: true}
	Y = Pauli{X: true, Z: true}
	Z = Pauli{Z: true}
)

// Mul returns the Pauli part of the product ab, dropping the phase.
// Use PhaseExp for the phase.
func Mul(a, b Pauli) Pauli {
	return Pauli{X: a.X != b.X, Z: a.Z != b.Z}
}

// PhaseExp returns e such that a·b = i^e · Mul(a, b), with e in {0, 1, 3}.
// Products of a Pauli with itself or with the identity carry no phase;
// the cyclic products XY, YZ, ZX carry i and their reversals carry -i.
func PhaseExp(a, b Pauli) int {
	if a == I || b == I || a == b {
		return 0
	}
	if (a == X && b == Y) || (a == Y && b == Z) || (a == Z && b == X) {
		return 1
	}
	return 3
}

// IsIdentity reports whether p is the identity operator.
func (p Pauli) IsIdentity() bool {
	return !p.X && !p.Z
}

// String returns one of "I", "X", "Y", "Z".
func (p Pauli) String() string {
	switch p {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	default:
		return "I"
	}
}
