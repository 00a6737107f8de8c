package tableau

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rmourey26/clifford/circuit"
)

func TestYAMLRoundTrip(t *testing.T) {
	tab, err := New([]circuit.Qubit{
		{Register: "q", Index: 0},
		{Register: "anc", Index: 3},
	})
	assert.NoError(t, err)
	tab.ApplyHAtEnd(0)
	tab.ApplyCXAtEnd(0, 1)
	tab.ApplySAtEnd(1)
	tab.ApplyXAtEnd(0)

	data, err := tab.ToYAML()
	assert.NoError(t, err)

	parsed, err := FromYAML(data)
	assert.NoError(t, err)
	assert.True(t, tab.Equal(parsed))
	assert.Equal(t, tab.Qubits(), parsed.Qubits())
}

func TestFromYAML(t *testing.T) {
	doc := `qubits: ["q[0]"]
destab_x: [[1]]
destab_z: [[1]]
destab_phase: [1]
stab_x: [[0]]
stab_z: [[1]]
stab_phase: [0]
`
	tab, err := FromYAML([]byte(doc))
	assert.NoError(t, err)

	expected, err := New([]circuit.Qubit{circuit.DefaultQubit(0)})
	assert.NoError(t, err)
	expected.ApplySAtEnd(0)
	assert.True(t, expected.Equal(tab))
}

func TestFromYAMLErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		doc  string
	}{
		{"not yaml", ":\n-"},
		{"no qubits", "qubits: []\n"},
		{"bad qubit name", "qubits: [\"q0\"]\ndestab_x: [[1]]\ndestab_z: [[0]]\ndestab_phase: [0]\nstab_x: [[0]]\nstab_z: [[1]]\nstab_phase: [0]\n"},
		{"duplicate qubit", "qubits: [\"q[0]\", \"q[0]\"]\ndestab_x: [[1, 0], [0, 1]]\ndestab_z: [[0, 0], [0, 0]]\ndestab_phase: [0, 0]\nstab_x: [[0, 0], [0, 0]]\nstab_z: [[1, 0], [0, 1]]\nstab_phase: [0, 0]\n"},
		{"row count mismatch", "qubits: [\"q[0]\", \"q[1]\"]\ndestab_x: [[1, 0]]\ndestab_z: [[0, 0], [0, 0]]\ndestab_phase: [0, 0]\nstab_x: [[0, 0], [0, 0]]\nstab_z: [[1, 0], [0, 1]]\nstab_phase: [0, 0]\n"},
		{"row width mismatch", "qubits: [\"q[0]\", \"q[1]\"]\ndestab_x: [[1], [0, 1]]\ndestab_z: [[0, 0], [0, 0]]\ndestab_phase: [0, 0]\nstab_x: [[0, 0], [0, 0]]\nstab_z: [[1, 0], [0, 1]]\nstab_phase: [0, 0]\n"},
		{"phase length mismatch", "qubits: [\"q[0]\"]\ndestab_x: [[1]]\ndestab_z: [[0]]\ndestab_phase: []\nstab_x: [[0]]\nstab_z: [[1]]\nstab_phase: [0]\n"},
	} {
		_, err := FromYAML([]byte(tc.doc))
		assert.Error(t, err, tc.name)
	}
}
