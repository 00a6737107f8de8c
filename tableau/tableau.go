// Copyright (c) 2023 Colin McRae

// Package tableau implements stabilizer tableaus for unitary Clifford
// operators. A tableau over n qubits records 2n signed Pauli strings:
// row i of the destabilizer block is the pullback of X_i through the
// operator, and row i of the stabilizer block is the pullback of Z_i.
// Together with a qubit-index bijection this determines the operator
// up to global phase.
package tableau

import (
	"fmt"
	"strings"

	"github.com/rmourey26/clifford/binmatrix"
	"github.com/rmourey26/clifford/circuit"
	"github.com/rmourey26/clifford/pauli"
)

// Tableau is a stabilizer tableau over a fixed, ordered set of qubits.
// The destabilizer and stabilizer blocks store the x- and z-parts of
// their rows as size-by-size binary matrices, with one sign bit per
// row.
type Tableau struct {
	size        int
	destabX     *binmatrix.Matrix
	destabZ     *binmatrix.Matrix
	stabX       *binmatrix.Matrix
	stabZ       *binmatrix.Matrix
	destabPhase []bool
	stabPhase   []bool
	order       []circuit.Qubit
	index       map[circuit.Qubit]int
}

// New returns the identity tableau over the given qubits, which must
// be distinct: destabilizer row i is +X_i and stabilizer row i is
// +Z_i.
func New(qubits []circuit.Qubit) (*Tableau, error) {
	size := len(qubits)
	destabX, err := binmatrix.NewIdentity(size)
	if err != nil {
		return nil, fmt.Errorf("New: %v", err)
	}
	stabZ, err := binmatrix.NewIdentity(size)
	if err != nil {
		return nil, fmt.Errorf("New: %v", err)
	}
	t := &Tableau{
		size:        size,
		destabX:     destabX,
		destabZ:     binmatrix.New(size, size),
		stabX:       binmatrix.New(size, size),
		stabZ:       stabZ,
		destabPhase: make([]bool, size),
		stabPhase:   make([]bool, size),
	}
	if err := t.setQubits(qubits); err != nil {
		return nil, fmt.Errorf("New: %v", err)
	}
	return t, nil
}

// NewFromBlocks builds a tableau from explicit blocks and phase
// vectors. All four matrices must be square with dimension matching
// the qubit count, and both phase vectors must have one entry per
// qubit. The inputs are copied.
func NewFromBlocks(
	qubits []circuit.Qubit,
	destabX, destabZ, stabX, stabZ *binmatrix.Matrix,
	destabPhase, stabPhase []bool,
) (*Tableau, error) {
	size := len(qubits)
	for name, m := range map[string]*binmatrix.Matrix{
		"destabX": destabX, "destabZ": destabZ, "stabX": stabX, "stabZ": stabZ,
	} {
		rows, cols := m.Dimensions()
		if rows != size || cols != size {
			return nil, fmt.Errorf(
				"NewFromBlocks: %s is %dx%d, expected %dx%d", name, rows, cols, size, size,
			)
		}
	}
	if len(destabPhase) != size || len(stabPhase) != size {
		return nil, fmt.Errorf(
			"NewFromBlocks: phase vectors have lengths %d and %d, expected %d",
			len(destabPhase), len(stabPhase), size,
		)
	}
	t := &Tableau{
		size:        size,
		destabX:     destabX.Copy(),
		destabZ:     destabZ.Copy(),
		stabX:       stabX.Copy(),
		stabZ:       stabZ.Copy(),
		destabPhase: append([]bool{}, destabPhase...),
		stabPhase:   append([]bool{}, stabPhase...),
	}
	if err := t.setQubits(qubits); err != nil {
		return nil, fmt.Errorf("NewFromBlocks: %v", err)
	}
	return t, nil
}

func (t *Tableau) setQubits(qubits []circuit.Qubit) error {
	t.order = append([]circuit.Qubit{}, qubits...)
	t.index = make(map[circuit.Qubit]int, len(qubits))
	for i, q := range qubits {
		if _, dup := t.index[q]; dup {
			return fmt.Errorf("duplicate qubit %v", q)
		}
		t.index[q] = i
	}
	return nil
}

// Copy returns a deep copy of t.
func (t *Tableau) Copy() *Tableau {
	c := &Tableau{
		size:        t.size,
		destabX:     t.destabX.Copy(),
		destabZ:     t.destabZ.Copy(),
		stabX:       t.stabX.Copy(),
		stabZ:       t.stabZ.Copy(),
		destabPhase: append([]bool{}, t.destabPhase...),
		stabPhase:   append([]bool{}, t.stabPhase...),
	}
	if err := c.setQubits(t.order); err != nil {
		panic(err)
	}
	return c
}

// Size returns the number of qubits.
func (t *Tableau) Size() int {
	return t.size
}

// Qubits returns the tableau's qubits in index order.
func (t *Tableau) Qubits() []circuit.Qubit {
	return append([]circuit.Qubit{}, t.order...)
}

// IndexOf returns the row/column index of q.
func (t *Tableau) IndexOf(q circuit.Qubit) (int, error) {
	i, ok := t.index[q]
	if !ok {
		return 0, fmt.Errorf("IndexOf: qubit %v not in tableau", q)
	}
	return i, nil
}

// QubitAt returns the qubit at the given index.
func (t *Tableau) QubitAt(i int) circuit.Qubit {
	if i < 0 || i >= t.size {
		panic(fmt.Sprintf("QubitAt: index %d out of range for %d qubits", i, t.size))
	}
	return t.order[i]
}

// DestabX returns a copy of the x-part of the destabilizer block.
func (t *Tableau) DestabX() *binmatrix.Matrix { return t.destabX.Copy() }

// DestabZ returns a copy of the z-part of the destabilizer block.
func (t *Tableau) DestabZ() *binmatrix.Matrix { return t.destabZ.Copy() }

// StabX returns a copy of the x-part of the stabilizer block.
func (t *Tableau) StabX() *binmatrix.Matrix { return t.stabX.Copy() }

// StabZ returns a copy of the z-part of the stabilizer block.
func (t *Tableau) StabZ() *binmatrix.Matrix { return t.stabZ.Copy() }

// DestabPhase returns the sign bit of destabilizer row i.
func (t *Tableau) DestabPhase(i int) bool {
	if i < 0 || i >= t.size {
		panic(fmt.Sprintf("DestabPhase: index %d out of range for %d qubits", i, t.size))
	}
	return t.destabPhase[i]
}

// StabPhase returns the sign bit of stabilizer row i.
func (t *Tableau) StabPhase(i int) bool {
	if i < 0 || i >= t.size {
		panic(fmt.Sprintf("StabPhase: index %d out of range for %d qubits", i, t.size))
	}
	return t.stabPhase[i]
}

// IsIdentity reports whether t is the tableau of the identity
// operator.
func (t *Tableau) IsIdentity() bool {
	for i := 0; i < t.size; i++ {
		if t.destabPhase[i] || t.stabPhase[i] {
			return false
		}
	}
	return t.destabX.IsIdentity() && t.stabZ.IsIdentity() &&
		t.destabZ.IsZero() && t.stabX.IsZero()
}

// Equal reports whether t and u have the same qubit order and the same
// rows, signs included.
func (t *Tableau) Equal(u *Tableau) bool {
	if t.size != u.size {
		return false
	}
	for i, q := range t.order {
		if u.order[i] != q {
			return false
		}
	}
	for i := 0; i < t.size; i++ {
		if t.destabPhase[i] != u.destabPhase[i] || t.stabPhase[i] != u.stabPhase[i] {
			return false
		}
	}
	return t.destabX.Equals(u.destabX) && t.destabZ.Equals(u.destabZ) &&
		t.stabX.Equals(u.stabX) && t.stabZ.Equals(u.stabZ)
}

func (t *Tableau) String() string {
	var sb strings.Builder
	for i := 0; i < t.size; i++ {
		fmt.Fprintf(&sb, "X%d: %s\n", i, t.rowString(t.destabX, t.destabZ, t.destabPhase, i))
	}
	for i := 0; i < t.size; i++ {
		fmt.Fprintf(&sb, "Z%d: %s\n", i, t.rowString(t.stabX, t.stabZ, t.stabPhase, i))
	}
	return sb.String()
}

func (t *Tableau) rowString(x, z *binmatrix.Matrix, phase []bool, i int) string {
	var sb strings.Builder
	if phase[i] {
		sb.WriteString("-")
	} else {
		sb.WriteString("+")
	}
	for j := 0; j < t.size; j++ {
		sb.WriteString(pauli.Pauli{X: x.At(i, j), Z: z.At(i, j)}.String())
	}
	return sb.String()
}
