// Copyright (c) 2023 Colin McRae

package convert

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/rmourey26/clifford/binmatrix"
	"github.com/rmourey26/clifford/circuit"
	"github.com/rmourey26/clifford/tableau"
)

// synthesis carries the working state of TableauToCircuit: the
// circuit built so far and the residual tableau still to be cleared.
// Every gate appended to the circuit is simultaneously composed at
// the front of the residual, so the original tableau always equals
// the residual followed by the circuit.
type synthesis struct {
	out    *circuit.Circuit
	work   *tableau.Tableau
	size   int
	logger *zap.Logger
}

// logLayer reports the gates a layer emitted, given the command count
// before it ran.
func (s *synthesis) logLayer(layer string, before int) {
	s.logger.Debug(
		"synthesis layer complete",
		zap.String("layer", layer),
		zap.Int("gates", len(s.out.Commands())-before),
	)
}

func (s *synthesis) addV(q int) {
	if err := s.out.AddGateAt(circuit.OpV, q); err != nil {
		panic(err)
	}
	// V^3 is the inverse of V up to global phase
	s.work.ApplyVAtFront(q)
	s.work.ApplyVAtFront(q)
	s.work.ApplyVAtFront(q)
}

func (s *synthesis) addS(q int) {
	if err := s.out.AddGateAt(circuit.OpS, q); err != nil {
		panic(err)
	}
	s.work.ApplySAtFront(q)
	s.work.ApplySAtFront(q)
	s.work.ApplySAtFront(q)
}

func (s *synthesis) addH(q int) {
	if err := s.out.AddGateAt(circuit.OpH, q); err != nil {
		panic(err)
	}
	// S V S = H, self-inverse
	s.work.ApplySAtFront(q)
	s.work.ApplyVAtFront(q)
	s.work.ApplySAtFront(q)
}

func (s *synthesis) addCX(control, target int) {
	if err := s.out.AddGateAt(circuit.OpCX, control, target); err != nil {
		panic(err)
	}
	s.work.ApplyCXAtFront(control, target)
}

func (s *synthesis) addZ(q int) {
	if err := s.out.AddGateAt(circuit.OpZ, q); err != nil {
		panic(err)
	}
	s.work.ApplySAtFront(q)
	s.work.ApplySAtFront(q)
}

func (s *synthesis) addX(q int) {
	if err := s.out.AddGateAt(circuit.OpX, q); err != nil {
		panic(err)
	}
	s.work.ApplyVAtFront(q)
	s.work.ApplyVAtFront(q)
}

// TableauToCircuit synthesizes a circuit over the Clifford generators
// realising the given tableau, following the canonical layer order of
// Aaronson and Gottesman, "Improved Simulation of Stabilizer
// Circuits", Theorem 8. The circuit uses the tableau's qubit names.
// The identity tableau yields an empty circuit. If the tableau's rows
// are not mutually independent, ErrInvalidTableau is returned.
func TableauToCircuit(tab *tableau.Tableau, opts ...Option) (*circuit.Circuit, error) {
	cfg := newConfig(opts)
	if tab.IsIdentity() {
		out, err := circuit.NewWithQubits(tab.Qubits())
		if err != nil {
			return nil, errors.Wrap(err, "TableauToCircuit")
		}
		cfg.logger.Debug("identity tableau, empty circuit", zap.Int("qubits", tab.Size()))
		return out, nil
	}
	s := &synthesis{
		out:    circuit.New(tab.Size()),
		work:   tab.Copy(),
		size:   tab.Size(),
		logger: cfg.logger,
	}

	// Layer 1: V gates give the x-part of the stabilizer block full
	// rank. Columns are reduced incrementally; a column that is
	// dependent on its predecessors gets a V, replacing it modulo the
	// span of its predecessors with the matching z-part column.
	echelon := s.work.StabX()
	leading := map[int]int{}
	for i := 0; i < s.size; i++ {
		if claimEchelonCol(echelon, leading, i) {
			continue
		}
		s.addV(i)
		stabZ := s.work.StabZ()
		for k := 0; k < s.size; k++ {
			echelon.Set(k, i, stabZ.At(k, i))
		}
		if !claimEchelonCol(echelon, leading, i) {
			return nil, errors.Wrapf(
				ErrInvalidTableau,
				"TableauToCircuit: stabilizer rows are not mutually independent at column %d",
				i,
			)
		}
	}

	s.logLayer("stabilizer rank fix", 0)

	// Layer 2: CX gates reduce the x-part of the stabilizer block to
	// the identity by column elimination.
	before := len(s.out.Commands())
	if err := s.eliminate(s.work.StabX()); err != nil {
		return nil, err
	}
	s.logLayer("stabilizer x elimination", before)

	// Layer 3: row commutation makes the z-part symmetric, so it
	// factors as M M^T plus a diagonal; S gates clear the diagonal.
	before = len(s.out.Commands())
	low, diag, err := binmatrix.BinaryLLT(s.work.StabZ())
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidTableau, "TableauToCircuit: %v", err)
	}
	for i := 0; i < s.size; i++ {
		if diag[i] {
			s.addS(i)
		}
	}

	// Layer 4: the column ops mapping M to I, replayed in reverse,
	// map the identity to M and M M^T to M, leaving equal x- and
	// z-parts.
	if err := s.eliminateReverse(low); err != nil {
		return nil, err
	}

	// Layer 5: an S on every qubit zeroes the z-part.
	for i := 0; i < s.size; i++ {
		s.addS(i)
	}
	s.logLayer("stabilizer z elimination", before)

	// Layer 6: CX elimination restores the x-part to the identity;
	// commutation with the destabilizer block forces its z-part to
	// the identity as well.
	before = len(s.out.Commands())
	if err := s.eliminate(s.work.StabX()); err != nil {
		return nil, err
	}
	s.logLayer("stabilizer x restore", before)

	// Layer 7: a Hadamard on every qubit exchanges the roles of the
	// two blocks, so layers 8-11 mirror 3-6 on the destabilizers.
	before = len(s.out.Commands())
	for i := 0; i < s.size; i++ {
		s.addH(i)
	}
	s.logLayer("hadamard layer", before)

	before = len(s.out.Commands())
	low, diag, err = binmatrix.BinaryLLT(s.work.DestabZ())
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidTableau, "TableauToCircuit: %v", err)
	}
	for i := 0; i < s.size; i++ {
		if diag[i] {
			s.addS(i)
		}
	}
	if err := s.eliminateReverse(low); err != nil {
		return nil, err
	}
	for i := 0; i < s.size; i++ {
		s.addS(i)
	}
	if err := s.eliminate(s.work.DestabX()); err != nil {
		return nil, err
	}
	s.logLayer("destabilizer elimination", before)

	// The residual is now the identity up to signs; Z and X gates
	// clear the remaining phase bits.
	before = len(s.out.Commands())
	for i := 0; i < s.size; i++ {
		if s.work.DestabPhase(i) {
			s.addZ(i)
		}
		if s.work.StabPhase(i) {
			s.addX(i)
		}
	}
	s.logLayer("sign corrections", before)

	names := make(map[circuit.Qubit]circuit.Qubit, s.size)
	for i := 0; i < s.size; i++ {
		names[circuit.DefaultQubit(i)] = tab.QubitAt(i)
	}
	if err := s.out.Rename(names); err != nil {
		return nil, errors.Wrap(err, "TableauToCircuit")
	}
	cfg.logger.Debug(
		"synthesized circuit from tableau",
		zap.Int("qubits", s.size),
		zap.Int("commands", len(s.out.Commands())),
	)
	return s.out, nil
}

// eliminate reduces m to the identity by column operations, emitting
// each as a CX.
func (s *synthesis) eliminate(m *binmatrix.Matrix) error {
	ops, err := binmatrix.GaussianElimColOps(m)
	if err != nil {
		return errors.Wrapf(ErrInvalidTableau, "TableauToCircuit: %v", err)
	}
	for _, op := range ops {
		s.addCX(op.Src, op.Dst)
	}
	return nil
}

// eliminateReverse emits the column operations reducing m to the
// identity in reverse order, so that the CX layer maps the identity
// to m.
func (s *synthesis) eliminateReverse(m *binmatrix.Matrix) error {
	ops, err := binmatrix.GaussianElimColOps(m)
	if err != nil {
		return errors.Wrapf(ErrInvalidTableau, "TableauToCircuit: %v", err)
	}
	for i := len(ops) - 1; i >= 0; i-- {
		s.addCX(ops[i].Src, ops[i].Dst)
	}
	return nil
}

// claimEchelonCol reduces column i of echelon against the columns
// already holding a leading 1, recorded in leading as a row-to-column
// map. If a row remains whose first set entry lands in column i, it
// is claimed and the function reports true; a column reduced to zero
// reports false.
func claimEchelonCol(echelon *binmatrix.Matrix, leading map[int]int, i int) bool {
	for j := 0; j < echelon.NumRows(); j++ {
		if !echelon.At(j, i) {
			continue
		}
		if l, claimed := leading[j]; claimed {
			echelon.XorCol(l, i)
		} else {
			leading[j] = i
			return true
		}
	}
	return false
}
