// Copyright (c) 2023 Colin McRae

package convert

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/rmourey26/clifford/circuit"
	"github.com/rmourey26/clifford/tableau"
)

// randomCircuit builds a pseudo-random circuit over n default qubits
// from the Clifford generating set.
func randomCircuit(t *testing.T, rng *rand.Rand, n, numGates int) *circuit.Circuit {
	singleQubitOps := []circuit.OpType{
		circuit.OpH, circuit.OpV, circuit.OpS, circuit.OpX, circuit.OpZ,
	}
	c := circuit.New(n)
	for i := 0; i < numGates; i++ {
		if n > 1 && rng.Intn(3) == 0 {
			control := rng.Intn(n)
			target := rng.Intn(n - 1)
			if target >= control {
				target++
			}
			assert.NoError(t, c.AddGateAt(circuit.OpCX, control, target))
		} else {
			op := singleQubitOps[rng.Intn(len(singleQubitOps))]
			assert.NoError(t, c.AddGateAt(op, rng.Intn(n)))
		}
	}
	return c
}

func TestCircuitToTableauSingleGates(t *testing.T) {
	c := circuit.New(1)
	assert.NoError(t, c.AddGateAt(circuit.OpH, 0))
	tab, err := CircuitToTableau(c)
	assert.NoError(t, err)

	expected, err := tableau.New(c.Qubits())
	assert.NoError(t, err)
	expected.ApplyHAtEnd(0)
	assert.True(t, tab.Equal(expected))
}

func TestCircuitToTableauGateOrder(t *testing.T) {
	c := circuit.New(2)
	assert.NoError(t, c.AddGateAt(circuit.OpH, 0))
	assert.NoError(t, c.AddGateAt(circuit.OpCX, 0, 1))
	assert.NoError(t, c.AddGateAt(circuit.OpS, 1))

	tab, err := CircuitToTableau(c)
	assert.NoError(t, err)

	expected, err := tableau.New(c.Qubits())
	assert.NoError(t, err)
	expected.ApplyHAtEnd(0)
	expected.ApplyCXAtEnd(0, 1)
	expected.ApplySAtEnd(1)
	assert.True(t, tab.Equal(expected))
}

func TestCircuitToTableauNamedQubits(t *testing.T) {
	a := circuit.Qubit{Register: "a", Index: 0}
	b := circuit.Qubit{Register: "b", Index: 2}
	c, err := circuit.NewWithQubits([]circuit.Qubit{a, b})
	assert.NoError(t, err)
	assert.NoError(t, c.AddGate(circuit.OpCX, b, a))

	tab, err := CircuitToTableau(c)
	assert.NoError(t, err)
	assert.Equal(t, []circuit.Qubit{a, b}, tab.Qubits())

	expected, err := tableau.New([]circuit.Qubit{a, b})
	assert.NoError(t, err)
	expected.ApplyCXAtEnd(1, 0)
	assert.True(t, tab.Equal(expected))
}

func TestCircuitToTableauEmptyCircuit(t *testing.T) {
	tab, err := CircuitToTableau(circuit.New(3))
	assert.NoError(t, err)
	assert.True(t, tab.IsIdentity())
}

func TestCircuitToTableauRejectsNonClifford(t *testing.T) {
	c := circuit.New(2)
	assert.NoError(t, c.AddGateAt(circuit.OpH, 0))
	assert.NoError(t, c.AddGateAt(circuit.OpT, 1))

	_, err := CircuitToTableau(c)
	assert.True(t, errors.Is(err, ErrUnsupportedOp), "%v", err)
}
