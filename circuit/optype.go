package circuit

import "fmt"

// OpType identifies a gate type. The Clifford generating set used by
// the tableau machinery is {H, V, S, CX, X, Z}; the remaining types
// exist so circuits from the outside world can be represented (and
// rejected) without loss.
type OpType int

const (
	OpH OpType = iota
	OpV
	OpS
	OpCX
	OpX
	OpZ
	OpT
)

// NumQubits returns the arity of the gate type.
func (op OpType) NumQubits() int {
	if op == OpCX {
		return 2
	}
	return 1
}

// IsCliffordGenerator returns whether op is in the Clifford generating
// set {H, V, S, CX, X, Z}.
func (op OpType) IsCliffordGenerator() bool {
	switch op {
	case OpH, OpV, OpS, OpCX, OpX, OpZ:
		return true
	default:
		return false
	}
}

func (op OpType) String() string {
	switch op {
	case OpH:
		return "H"
	case OpV:
		return "V"
	case OpS:
		return "S"
	case OpCX:
		return "CX"
	case OpX:
		return "X"
	case OpZ:
		return "Z"
	case OpT:
		return "T"
	default:
		return fmt.Sprintf("OpType(%d)", int(op))
	}
}
