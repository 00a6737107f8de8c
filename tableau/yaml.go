package tableau

import (
	"fmt"

	yaml "gopkg.in/yaml.v2"

	"github.com/rmourey26/clifford/binmatrix"
	"github.com/rmourey26/clifford/circuit"
)

// document is the serialized form of a tableau. Blocks are written as
// 0/1 row lists and qubits as "register[index]" identifiers.
type document struct {
	Qubits      []string `yaml:"qubits"`
	DestabX     [][]int  `yaml:"destab_x"`
	DestabZ     [][]int  `yaml:"destab_z"`
	DestabPhase []int    `yaml:"destab_phase"`
	StabX       [][]int  `yaml:"stab_x"`
	StabZ       [][]int  `yaml:"stab_z"`
	StabPhase   []int    `yaml:"stab_phase"`
}

// ToYAML renders t as a YAML document.
func (t *Tableau) ToYAML() ([]byte, error) {
	doc := document{
		Qubits:      make([]string, t.size),
		DestabX:     matrixToRows(t.destabX),
		DestabZ:     matrixToRows(t.destabZ),
		DestabPhase: phasesToInts(t.destabPhase),
		StabX:       matrixToRows(t.stabX),
		StabZ:       matrixToRows(t.stabZ),
		StabPhase:   phasesToInts(t.stabPhase),
	}
	for i, q := range t.order {
		doc.Qubits[i] = q.String()
	}
	out, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("ToYAML: %v", err)
	}
	return out, nil
}

// FromYAML parses a tableau from the YAML document form produced by
// ToYAML. Dimensions and qubit identifiers are validated.
func FromYAML(data []byte) (*Tableau, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("FromYAML: %v", err)
	}
	size := len(doc.Qubits)
	if size == 0 {
		return nil, fmt.Errorf("FromYAML: no qubits")
	}
	qubits := make([]circuit.Qubit, size)
	for i, s := range doc.Qubits {
		q, err := circuit.ParseQubit(s)
		if err != nil {
			return nil, fmt.Errorf("FromYAML: %v", err)
		}
		qubits[i] = q
	}
	destabX, err := rowsToMatrix(doc.DestabX, size, "destab_x")
	if err != nil {
		return nil, fmt.Errorf("FromYAML: %v", err)
	}
	destabZ, err := rowsToMatrix(doc.DestabZ, size, "destab_z")
	if err != nil {
		return nil, fmt.Errorf("FromYAML: %v", err)
	}
	stabX, err := rowsToMatrix(doc.StabX, size, "stab_x")
	if err != nil {
		return nil, fmt.Errorf("FromYAML: %v", err)
	}
	stabZ, err := rowsToMatrix(doc.StabZ, size, "stab_z")
	if err != nil {
		return nil, fmt.Errorf("FromYAML: %v", err)
	}
	if len(doc.DestabPhase) != size || len(doc.StabPhase) != size {
		return nil, fmt.Errorf(
			"FromYAML: phase vectors have lengths %d and %d, expected %d",
			len(doc.DestabPhase), len(doc.StabPhase), size,
		)
	}
	t, err := NewFromBlocks(
		qubits, destabX, destabZ, stabX, stabZ,
		intsToPhases(doc.DestabPhase), intsToPhases(doc.StabPhase),
	)
	if err != nil {
		return nil, fmt.Errorf("FromYAML: %v", err)
	}
	return t, nil
}

func matrixToRows(m *binmatrix.Matrix) [][]int {
	rows, cols := m.Dimensions()
	retVal := make([][]int, rows)
	for i := 0; i < rows; i++ {
		retVal[i] = make([]int, cols)
		for j := 0; j < cols; j++ {
			if m.At(i, j) {
				retVal[i][j] = 1
			}
		}
	}
	return retVal
}

func rowsToMatrix(rows [][]int, size int, name string) (*binmatrix.Matrix, error) {
	if len(rows) != size {
		return nil, fmt.Errorf("%s has %d rows, expected %d", name, len(rows), size)
	}
	flat := make([]int, 0, size*size)
	for i, r := range rows {
		if len(r) != size {
			return nil, fmt.Errorf(
				"%s row %d has %d entries, expected %d", name, i, len(r), size,
			)
		}
		flat = append(flat, r...)
	}
	return binmatrix.NewFromInts(flat, size, size)
}

func phasesToInts(phases []bool) []int {
	retVal := make([]int, len(phases))
	for i, p := range phases {
		if p {
			retVal[i] = 1
		}
	}
	return retVal
}

func intsToPhases(ints []int) []bool {
	retVal := make([]bool, len(ints))
	for i, v := range ints {
		retVal[i] = v != 0
	}
	return retVal
}
