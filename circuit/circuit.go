// Copyright (c) 2023 Colin McRae

// Package circuit provides a minimal gate-list representation of
// quantum circuits over named qubits, with OPENQASM 2.0 text support
// for the gate set the tableau converters understand.
package circuit

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultRegister is the register name used for qubits created by
// index alone.
const DefaultRegister = "q"

// Qubit identifies a single qubit as an indexed entry of a named
// register, e.g. q[3].
type Qubit struct {
	Register string
	Index    int
}

// DefaultQubit returns the qubit at position index of the default
// register.
func DefaultQubit(index int) Qubit {
	return Qubit{Register: DefaultRegister, Index: index}
}

func (q Qubit) String() string {
	return fmt.Sprintf("%s[%d]", q.Register, q.Index)
}

// ParseQubit parses a qubit identifier of the form "name[index]".
func ParseQubit(s string) (Qubit, error) {
	open := strings.IndexByte(s, '[')
	if open <= 0 || !strings.HasSuffix(s, "]") {
		return Qubit{}, fmt.Errorf("ParseQubit: malformed qubit identifier %q", s)
	}
	index, err := strconv.Atoi(s[open+1 : len(s)-1])
	if err != nil || index < 0 {
		return Qubit{}, fmt.Errorf("ParseQubit: malformed qubit index in %q", s)
	}
	return Qubit{Register: s[:open], Index: index}, nil
}

// Command is a single gate application.
type Command struct {
	Op   OpType
	Args []Qubit
}

// Circuit is an ordered list of gate applications over a fixed set of
// qubits. Qubit order is the order of registration and is preserved by
// all operations.
type Circuit struct {
	qubits   []Qubit
	indices  map[Qubit]int
	commands []Command
}

// New returns an empty circuit over n default-register qubits
// q[0] .. q[n-1].
func New(n int) *Circuit {
	qubits := make([]Qubit, n)
	for i := 0; i < n; i++ {
		qubits[i] = DefaultQubit(i)
	}
	c, err := NewWithQubits(qubits)
	if err != nil {
		// Default qubits are distinct by construction.
		panic(err)
	}
	return c
}

// NewWithQubits returns an empty circuit over the given qubits, which
// must be distinct.
func NewWithQubits(qubits []Qubit) (*Circuit, error) {
	indices := make(map[Qubit]int, len(qubits))
	for i, q := range qubits {
		if _, dup := indices[q]; dup {
			return nil, fmt.Errorf("NewWithQubits: duplicate qubit %v", q)
		}
		indices[q] = i
	}
	return &Circuit{
		qubits:  append([]Qubit{}, qubits...),
		indices: indices,
	}, nil
}

// NumQubits returns the number of qubits in the circuit.
func (c *Circuit) NumQubits() int {
	return len(c.qubits)
}

// Qubits returns the circuit's qubits in registration order.
func (c *Circuit) Qubits() []Qubit {
	return append([]Qubit{}, c.qubits...)
}

// Commands returns the circuit's gate list in application order.
func (c *Circuit) Commands() []Command {
	return append([]Command{}, c.commands...)
}

// IndexOf returns the position of q in the circuit's qubit order.
func (c *Circuit) IndexOf(q Qubit) (int, error) {
	i, ok := c.indices[q]
	if !ok {
		return 0, fmt.Errorf("IndexOf: qubit %v not in circuit", q)
	}
	return i, nil
}

// AddGate appends a gate acting on the given qubits, which must
// already belong to the circuit.
func (c *Circuit) AddGate(op OpType, qubits ...Qubit) error {
	if len(qubits) != op.NumQubits() {
		return fmt.Errorf(
			"AddGate: %v takes %d qubits, got %d", op, op.NumQubits(), len(qubits),
		)
	}
	for _, q := range qubits {
		if _, ok := c.indices[q]; !ok {
			return fmt.Errorf("AddGate: qubit %v not in circuit", q)
		}
	}
	if op == OpCX && qubits[0] == qubits[1] {
		return fmt.Errorf("AddGate: CX control and target coincide at %v", qubits[0])
	}
	c.commands = append(c.commands, Command{Op: op, Args: append([]Qubit{}, qubits...)})
	return nil
}

// AddGateAt appends a gate acting on the qubits at the given positions
// of the circuit's qubit order.
func (c *Circuit) AddGateAt(op OpType, indices ...int) error {
	qubits := make([]Qubit, len(indices))
	for i, idx := range indices {
		if idx < 0 || idx >= len(c.qubits) {
			return fmt.Errorf(
				"AddGateAt: index %d out of range for %d qubits", idx, len(c.qubits),
			)
		}
		qubits[i] = c.qubits[idx]
	}
	return c.AddGate(op, qubits...)
}

// Rename relabels qubits according to the given map. Qubits absent
// from the map keep their names. The relabelling must not merge two
// qubits into one.
func (c *Circuit) Rename(names map[Qubit]Qubit) error {
	qubits := make([]Qubit, len(c.qubits))
	indices := make(map[Qubit]int, len(c.qubits))
	for i, q := range c.qubits {
		renamed, ok := names[q]
		if !ok {
			renamed = q
		}
		if _, dup := indices[renamed]; dup {
			return fmt.Errorf("Rename: qubit %v assigned twice", renamed)
		}
		qubits[i] = renamed
		indices[renamed] = i
	}
	commands := make([]Command, len(c.commands))
	for i, cmd := range c.commands {
		args := make([]Qubit, len(cmd.Args))
		for j, q := range cmd.Args {
			if renamed, ok := names[q]; ok {
				args[j] = renamed
			} else {
				args[j] = q
			}
		}
		commands[i] = Command{Op: cmd.Op, Args: args}
	}
	c.qubits = qubits
	c.indices = indices
	c.commands = commands
	return nil
}
