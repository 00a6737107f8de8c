// Copyright (c) 2023 Colin McRae

package tableau

import (
	"fmt"

	"github.com/rmourey26/clifford/circuit"
	"github.com/rmourey26/clifford/pauli"
)

// row addresses one generator row of the tableau: index i of either
// the destabilizer or the stabilizer block.
type row struct {
	destab bool
	i      int
}

func (t *Tableau) rowPauli(r row, j int) pauli.Pauli {
	if r.destab {
		return pauli.Pauli{X: t.destabX.At(r.i, j), Z: t.destabZ.At(r.i, j)}
	}
	return pauli.Pauli{X: t.stabX.At(r.i, j), Z: t.stabZ.At(r.i, j)}
}

func (t *Tableau) setRowPauli(r row, j int, p pauli.Pauli) {
	if r.destab {
		t.destabX.Set(r.i, j, p.X)
		t.destabZ.Set(r.i, j, p.Z)
	} else {
		t.stabX.Set(r.i, j, p.X)
		t.stabZ.Set(r.i, j, p.Z)
	}
}

func (t *Tableau) rowPhase(r row) bool {
	if r.destab {
		return t.destabPhase[r.i]
	}
	return t.stabPhase[r.i]
}

func (t *Tableau) setRowPhase(r row, v bool) {
	if r.destab {
		t.destabPhase[r.i] = v
	} else {
		t.stabPhase[r.i] = v
	}
}

// mulRows replaces row dst with i^coeff * a * b, where dst may alias a
// or b. The coefficient plus the accumulated i-exponents of the
// qubit-wise Pauli products must come to a real sign, which holds for
// every update the Clifford generators need.
func (t *Tableau) mulRows(dst, a, b row, coeff int) {
	exp := coeff
	if t.rowPhase(a) {
		exp += 2
	}
	if t.rowPhase(b) {
		exp += 2
	}
	product := make([]pauli.Pauli, t.size)
	for j := 0; j < t.size; j++ {
		pa, pb := t.rowPauli(a, j), t.rowPauli(b, j)
		exp += pauli.PhaseExp(pa, pb)
		product[j] = pauli.Mul(pa, pb)
	}
	for j := 0; j < t.size; j++ {
		t.setRowPauli(dst, j, product[j])
	}
	t.setRowPhase(dst, (exp>>1)&1 == 1)
}

func (t *Tableau) checkQubit(q int) {
	if q < 0 || q >= t.size {
		panic(fmt.Sprintf("qubit index %d out of range for %d qubits", q, t.size))
	}
}

// ApplyHAtEnd composes a Hadamard on qubit q after the operator. H
// exchanges the X and Z axes, so the destabilizer and stabilizer rows
// for q swap, signs included.
func (t *Tableau) ApplyHAtEnd(q int) {
	t.checkQubit(q)
	for j := 0; j < t.size; j++ {
		d := t.rowPauli(row{true, q}, j)
		s := t.rowPauli(row{false, q}, j)
		t.setRowPauli(row{true, q}, j, s)
		t.setRowPauli(row{false, q}, j, d)
	}
	t.destabPhase[q], t.stabPhase[q] = t.stabPhase[q], t.destabPhase[q]
}

// ApplySAtEnd composes S on qubit q after the operator: the pullback
// of X_q becomes i^3 times the product of the old X_q and Z_q rows.
func (t *Tableau) ApplySAtEnd(q int) {
	t.checkQubit(q)
	t.mulRows(row{true, q}, row{true, q}, row{false, q}, 3)
}

// ApplyVAtEnd composes V on qubit q after the operator: the pullback
// of Z_q becomes i times the product of the old X_q and Z_q rows.
func (t *Tableau) ApplyVAtEnd(q int) {
	t.checkQubit(q)
	t.mulRows(row{false, q}, row{true, q}, row{false, q}, 1)
}

// ApplyCXAtEnd composes CX with the given control and target after
// the operator.
func (t *Tableau) ApplyCXAtEnd(control, target int) {
	t.checkQubit(control)
	t.checkQubit(target)
	if control == target {
		panic(fmt.Sprintf("CX control and target coincide at %d", control))
	}
	t.mulRows(row{true, control}, row{true, control}, row{true, target}, 0)
	t.mulRows(row{false, target}, row{false, control}, row{false, target}, 0)
}

// ApplyXAtEnd composes X on qubit q after the operator, negating the
// pullback of Z_q.
func (t *Tableau) ApplyXAtEnd(q int) {
	t.checkQubit(q)
	t.stabPhase[q] = !t.stabPhase[q]
}

// ApplyZAtEnd composes Z on qubit q after the operator, negating the
// pullback of X_q.
func (t *Tableau) ApplyZAtEnd(q int) {
	t.checkQubit(q)
	t.destabPhase[q] = !t.destabPhase[q]
}

// ApplyGateAtEnd composes the given gate after the operator. The gate
// must be one of the Clifford generators H, V, S, CX, X, Z.
func (t *Tableau) ApplyGateAtEnd(op circuit.OpType, qbs []int) error {
	if len(qbs) != op.NumQubits() {
		return fmt.Errorf(
			"ApplyGateAtEnd: %v takes %d qubits, got %d", op, op.NumQubits(), len(qbs),
		)
	}
	for _, q := range qbs {
		if q < 0 || q >= t.size {
			return fmt.Errorf(
				"ApplyGateAtEnd: qubit index %d out of range for %d qubits", q, t.size,
			)
		}
	}
	switch op {
	case circuit.OpH:
		t.ApplyHAtEnd(qbs[0])
	case circuit.OpV:
		t.ApplyVAtEnd(qbs[0])
	case circuit.OpS:
		t.ApplySAtEnd(qbs[0])
	case circuit.OpCX:
		if qbs[0] == qbs[1] {
			return fmt.Errorf(
				"ApplyGateAtEnd: CX control and target coincide at %d", qbs[0],
			)
		}
		t.ApplyCXAtEnd(qbs[0], qbs[1])
	case circuit.OpX:
		t.ApplyXAtEnd(qbs[0])
	case circuit.OpZ:
		t.ApplyZAtEnd(qbs[0])
	default:
		return fmt.Errorf("ApplyGateAtEnd: %v is not a Clifford generator", op)
	}
	return nil
}

// ApplySAtFront composes S on qubit q before the operator. Each row
// is conjugated at position q: X picks up a sign and becomes Y, Y
// becomes X, Z is fixed.
func (t *Tableau) ApplySAtFront(q int) {
	t.checkQubit(q)
	t.eachRow(func(r row) {
		p := t.rowPauli(r, q)
		if p.X && !p.Z {
			t.setRowPhase(r, !t.rowPhase(r))
		}
		p.Z = p.Z != p.X
		t.setRowPauli(r, q, p)
	})
}

// ApplyVAtFront composes V on qubit q before the operator. Each row
// is conjugated at position q: Z becomes Y, Y picks up a sign and
// becomes Z, X is fixed.
func (t *Tableau) ApplyVAtFront(q int) {
	t.checkQubit(q)
	t.eachRow(func(r row) {
		p := t.rowPauli(r, q)
		if p.X && p.Z {
			t.setRowPhase(r, !t.rowPhase(r))
		}
		p.X = p.X != p.Z
		t.setRowPauli(r, q, p)
	})
}

// ApplyCXAtFront composes CX with the given control and target before
// the operator, conjugating each row at the two positions.
func (t *Tableau) ApplyCXAtFront(control, target int) {
	t.checkQubit(control)
	t.checkQubit(target)
	if control == target {
		panic(fmt.Sprintf("CX control and target coincide at %d", control))
	}
	t.eachRow(func(r row) {
		pc := t.rowPauli(r, control)
		pt := t.rowPauli(r, target)
		if pc.X && pt.Z && pt.X == pc.Z {
			t.setRowPhase(r, !t.rowPhase(r))
		}
		pt.X = pt.X != pc.X
		pc.Z = pc.Z != pt.Z
		t.setRowPauli(r, control, pc)
		t.setRowPauli(r, target, pt)
	})
}

func (t *Tableau) eachRow(f func(row)) {
	for i := 0; i < t.size; i++ {
		f(row{true, i})
	}
	for i := 0; i < t.size; i++ {
		f(row{false, i})
	}
}
