package circuit

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// The textual names follow qelib1.inc, where the V gate is "sx".
var qasmNames = map[OpType]string{
	OpH:  "h",
	OpV:  "sx",
	OpS:  "s",
	OpCX: "cx",
	OpX:  "x",
	OpZ:  "z",
	OpT:  "t",
}

var qasmOps = map[string]OpType{
	"h":  OpH,
	"sx": OpV,
	"s":  OpS,
	"cx": OpCX,
	"x":  OpX,
	"z":  OpZ,
	"t":  OpT,
}

// Pre-compiled regexps for QASM parsing.
var (
	qregRegex       = regexp.MustCompile(`^qreg\s+(\w+)\[(\d+)\];?$`)
	cregRegex       = regexp.MustCompile(`^creg\s+(\w+)\[(\d+)\];?$`)
	singleGateRegex = regexp.MustCompile(`^(\w+)\s+(\w+)\[(\d+)\];?$`)
	twoQubitRegex   = regexp.MustCompile(`^(\w+)\s+(\w+)\[(\d+)\],\s*(\w+)\[(\d+)\];?$`)
)

// ToQASM renders the circuit as OPENQASM 2.0 text. One qreg is
// declared per register name, sized to hold that register's highest
// qubit index.
func (c *Circuit) ToQASM() string {
	regSizes := make(map[string]int)
	var regOrder []string
	for _, q := range c.qubits {
		size, seen := regSizes[q.Register]
		if !seen {
			regOrder = append(regOrder, q.Register)
		}
		if q.Index+1 > size {
			regSizes[q.Register] = q.Index + 1
		}
	}

	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	for _, reg := range regOrder {
		fmt.Fprintf(&sb, "qreg %s[%d];\n", reg, regSizes[reg])
	}
	if len(regOrder) > 0 {
		sb.WriteString("\n")
	}
	for _, cmd := range c.commands {
		args := make([]string, len(cmd.Args))
		for i, q := range cmd.Args {
			args[i] = q.String()
		}
		fmt.Fprintf(&sb, "%s %s;\n", qasmNames[cmd.Op], strings.Join(args, ", "))
	}
	return sb.String()
}

// ParseQASM parses an OPENQASM 2.0 program restricted to the gate set
// {h, sx, s, cx, x, z, t}. Classical registers, measurements and other
// statements outside that subset are rejected.
func ParseQASM(qasm string) (*Circuit, error) {
	var c *Circuit
	var qubits []Qubit
	for lineNum, line := range strings.Split(qasm, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if strings.HasPrefix(line, "OPENQASM") || strings.HasPrefix(line, "include") {
			continue
		}
		if matches := qregRegex.FindStringSubmatch(line); matches != nil {
			if c != nil {
				return nil, fmt.Errorf(
					"ParseQASM: line %d: qreg declared after gates", lineNum+1,
				)
			}
			size, _ := strconv.Atoi(matches[2])
			for i := 0; i < size; i++ {
				qubits = append(qubits, Qubit{Register: matches[1], Index: i})
			}
			continue
		}
		if cregRegex.MatchString(line) {
			continue
		}
		if c == nil {
			var err error
			if c, err = NewWithQubits(qubits); err != nil {
				return nil, fmt.Errorf("ParseQASM: %v", err)
			}
		}
		if matches := twoQubitRegex.FindStringSubmatch(line); matches != nil {
			op, ok := qasmOps[matches[1]]
			if !ok || op.NumQubits() != 2 {
				return nil, fmt.Errorf(
					"ParseQASM: line %d: unsupported gate %q", lineNum+1, matches[1],
				)
			}
			control, err := parseQASMQubit(c, matches[2], matches[3])
			if err != nil {
				return nil, fmt.Errorf("ParseQASM: line %d: %v", lineNum+1, err)
			}
			target, err := parseQASMQubit(c, matches[4], matches[5])
			if err != nil {
				return nil, fmt.Errorf("ParseQASM: line %d: %v", lineNum+1, err)
			}
			if err := c.AddGate(op, control, target); err != nil {
				return nil, fmt.Errorf("ParseQASM: line %d: %v", lineNum+1, err)
			}
			continue
		}
		if matches := singleGateRegex.FindStringSubmatch(line); matches != nil {
			op, ok := qasmOps[matches[1]]
			if !ok || op.NumQubits() != 1 {
				return nil, fmt.Errorf(
					"ParseQASM: line %d: unsupported gate %q", lineNum+1, matches[1],
				)
			}
			target, err := parseQASMQubit(c, matches[2], matches[3])
			if err != nil {
				return nil, fmt.Errorf("ParseQASM: line %d: %v", lineNum+1, err)
			}
			if err := c.AddGate(op, target); err != nil {
				return nil, fmt.Errorf("ParseQASM: line %d: %v", lineNum+1, err)
			}
			continue
		}
		return nil, fmt.Errorf("ParseQASM: line %d: unsupported statement %q", lineNum+1, line)
	}
	if c == nil {
		var err error
		if c, err = NewWithQubits(qubits); err != nil {
			return nil, fmt.Errorf("ParseQASM: %v", err)
		}
	}
	return c, nil
}

func parseQASMQubit(c *Circuit, register, index string) (Qubit, error) {
	i, err := strconv.Atoi(index)
	if err != nil {
		return Qubit{}, fmt.Errorf("malformed qubit index %q", index)
	}
	q := Qubit{Register: register, Index: i}
	if _, err := c.IndexOf(q); err != nil {
		return Qubit{}, fmt.Errorf("undeclared qubit %v", q)
	}
	return q, nil
}
