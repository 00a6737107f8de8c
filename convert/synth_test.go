// Copyright (c) 2023 Colin McRae

package convert

import (
	"math/rand"
	"regexp"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	"github.com/rmourey26/clifford/binmatrix"
	"github.com/rmourey26/clifford/circuit"
	"github.com/rmourey26/clifford/tableau"
)

// assertRealizes checks that c folds back into exactly tab.
func assertRealizes(t *testing.T, tab *tableau.Tableau, c *circuit.Circuit) {
	folded, err := CircuitToTableau(c)
	assert.NoError(t, err)
	assert.True(t, tab.Equal(folded), "want\n%vgot\n%v", tab, folded)
}

func TestTableauToCircuitIdentity(t *testing.T) {
	for n := 1; n <= 4; n++ {
		tab, err := tableau.New(circuit.New(n).Qubits())
		assert.NoError(t, err)
		c, err := TableauToCircuit(tab)
		assert.NoError(t, err)
		assert.Empty(t, c.Commands())
		assert.Equal(t, tab.Qubits(), c.Qubits())
	}
}

func TestTableauToCircuitSingleGates(t *testing.T) {
	for _, tc := range []struct {
		name string
		op   circuit.OpType
		qbs  []int
		n    int
	}{
		{"H", circuit.OpH, []int{0}, 1},
		{"V", circuit.OpV, []int{0}, 1},
		{"S", circuit.OpS, []int{0}, 1},
		{"X", circuit.OpX, []int{0}, 1},
		{"Z", circuit.OpZ, []int{0}, 1},
		{"CX", circuit.OpCX, []int{0, 1}, 2},
		{"CX reversed", circuit.OpCX, []int{1, 0}, 2},
	} {
		tab, err := tableau.New(circuit.New(tc.n).Qubits())
		assert.NoError(t, err)
		assert.NoError(t, tab.ApplyGateAtEnd(tc.op, tc.qbs), tc.name)

		c, err := TableauToCircuit(tab)
		assert.NoError(t, err, tc.name)
		assertRealizes(t, tab, c)
	}
}

func TestTableauToCircuitRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(29))
	for n := 1; n <= 6; n++ {
		for trial := 0; trial < 20; trial++ {
			orig := randomCircuit(t, rng, n, 4*n+rng.Intn(20))
			tab, err := CircuitToTableau(orig)
			assert.NoError(t, err)

			c, err := TableauToCircuit(tab)
			assert.NoError(t, err)
			assert.Equal(t, orig.Qubits(), c.Qubits())
			assertRealizes(t, tab, c)
		}
	}
}

func TestTableauToCircuitNamedQubits(t *testing.T) {
	qubits := []circuit.Qubit{
		{Register: "anc", Index: 1},
		{Register: "q", Index: 0},
		{Register: "q", Index: 2},
	}
	c, err := circuit.NewWithQubits(qubits)
	assert.NoError(t, err)
	assert.NoError(t, c.AddGate(circuit.OpH, qubits[1]))
	assert.NoError(t, c.AddGate(circuit.OpCX, qubits[1], qubits[0]))
	assert.NoError(t, c.AddGate(circuit.OpS, qubits[2]))

	tab, err := CircuitToTableau(c)
	assert.NoError(t, err)
	synth, err := TableauToCircuit(tab)
	assert.NoError(t, err)
	assert.Equal(t, qubits, synth.Qubits())
	assertRealizes(t, tab, synth)
}

// Commands come out in the fixed layer order V, CX, S, CX, S, CX, H,
// S, CX, S, CX, then single-qubit sign corrections.
func TestTableauToCircuitLayerOrder(t *testing.T) {
	layerPattern := regexp.MustCompile(`^v*c*s*c*s*c*h*s*c*s*c*[zx]*$`)
	rng := rand.New(rand.NewSource(31))
	for trial := 0; trial < 20; trial++ {
		n := 1 + rng.Intn(5)
		tab, err := CircuitToTableau(randomCircuit(t, rng, n, 6*n))
		assert.NoError(t, err)
		c, err := TableauToCircuit(tab)
		assert.NoError(t, err)

		var sb strings.Builder
		for _, cmd := range c.Commands() {
			switch cmd.Op {
			case circuit.OpCX:
				sb.WriteString("c")
			default:
				sb.WriteString(strings.ToLower(cmd.Op.String()))
			}
		}
		assert.True(t, layerPattern.MatchString(sb.String()), "%q", sb.String())
	}
}

func TestTableauToCircuitGateCountBound(t *testing.T) {
	rng := rand.New(rand.NewSource(37))
	for n := 1; n <= 8; n++ {
		for trial := 0; trial < 10; trial++ {
			tab, err := CircuitToTableau(randomCircuit(t, rng, n, 10*n))
			assert.NoError(t, err)
			c, err := TableauToCircuit(tab)
			assert.NoError(t, err)
			assert.LessOrEqual(t, len(c.Commands()), 6*n*n+9*n, "n=%d", n)
		}
	}
}

func TestTableauToCircuitDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(41))
	tab, err := CircuitToTableau(randomCircuit(t, rng, 5, 40))
	assert.NoError(t, err)

	first, err := TableauToCircuit(tab)
	assert.NoError(t, err)
	second, err := TableauToCircuit(tab)
	assert.NoError(t, err)
	assert.Equal(t, first.Commands(), second.Commands())
	assert.Equal(t, first.Qubits(), second.Qubits())
}

func TestTableauToCircuitRejectsDependentRows(t *testing.T) {
	// Two copies of the same stabilizer row cannot come from a
	// Clifford operator.
	id, err := binmatrix.NewIdentity(2)
	assert.NoError(t, err)
	zero := binmatrix.New(2, 2)
	stabZ, err := binmatrix.NewFromInts([]int{
		1, 0,
		1, 0,
	}, 2, 2)
	assert.NoError(t, err)

	tab, err := tableau.NewFromBlocks(
		circuit.New(2).Qubits(), id, zero, zero, stabZ,
		[]bool{false, false}, []bool{false, false},
	)
	assert.NoError(t, err)

	_, err = TableauToCircuit(tab)
	assert.True(t, errors.Is(err, ErrInvalidTableau), "%v", err)
}

func TestTableauToCircuitDoesNotModifyInput(t *testing.T) {
	rng := rand.New(rand.NewSource(43))
	tab, err := CircuitToTableau(randomCircuit(t, rng, 4, 25))
	assert.NoError(t, err)
	saved := tab.Copy()

	_, err = TableauToCircuit(tab)
	assert.NoError(t, err)
	assert.True(t, saved.Equal(tab))
}

func TestWithLogger(t *testing.T) {
	logger := zaptest.NewLogger(t)
	c := circuit.New(2)
	assert.NoError(t, c.AddGateAt(circuit.OpCX, 0, 1))

	tab, err := CircuitToTableau(c, WithLogger(logger))
	assert.NoError(t, err)
	synth, err := TableauToCircuit(tab, WithLogger(logger))
	assert.NoError(t, err)
	assertRealizes(t, tab, synth)
}
