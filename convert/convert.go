// Copyright (c) 2023 Colin McRae

// Package convert translates between Clifford circuits and stabilizer
// tableaus. Circuits over the generators H, V, S, CX, X and Z can be
// folded into a tableau gate by gate, and any tableau of a valid
// Clifford operator can be resynthesized as a circuit over the same
// generators in canonical layer order.
package convert

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/rmourey26/clifford/circuit"
	"github.com/rmourey26/clifford/tableau"
)

var (
	// ErrUnsupportedOp is returned when a circuit contains a gate
	// outside the Clifford generating set.
	ErrUnsupportedOp = errors.New("operation is not a Clifford generator")

	// ErrInvalidTableau is returned when a tableau does not describe a
	// Clifford operator, such as when its stabilizer rows are not
	// mutually independent.
	ErrInvalidTableau = errors.New("tableau does not describe a Clifford operator")
)

type config struct {
	logger *zap.Logger
}

// Option configures a conversion.
type Option func(*config)

// WithLogger attaches a logger to the conversion. Conversions log at
// debug level only; the default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func newConfig(opts []Option) *config {
	c := &config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CircuitToTableau folds a Clifford circuit into the stabilizer
// tableau of the operator it implements, preserving the circuit's
// qubit names and order. A gate outside the Clifford generating set
// yields ErrUnsupportedOp.
func CircuitToTableau(c *circuit.Circuit, opts ...Option) (*tableau.Tableau, error) {
	cfg := newConfig(opts)
	tab, err := tableau.New(c.Qubits())
	if err != nil {
		return nil, errors.Wrap(err, "CircuitToTableau")
	}
	for i, cmd := range c.Commands() {
		if !cmd.Op.IsCliffordGenerator() {
			return nil, errors.Wrapf(
				ErrUnsupportedOp, "CircuitToTableau: command %d is %v", i, cmd.Op,
			)
		}
		qbs := make([]int, len(cmd.Args))
		for j, q := range cmd.Args {
			if qbs[j], err = tab.IndexOf(q); err != nil {
				return nil, errors.Wrapf(err, "CircuitToTableau: command %d", i)
			}
		}
		if err := tab.ApplyGateAtEnd(cmd.Op, qbs); err != nil {
			return nil, errors.Wrapf(err, "CircuitToTableau: command %d", i)
		}
	}
	cfg.logger.Debug(
		"folded circuit into tableau",
		zap.Int("qubits", tab.Size()),
		zap.Int("commands", len(c.Commands())),
	)
	return tab, nil
}
