package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rmourey26/clifford/circuit"
	"github.com/rmourey26/clifford/convert"
)

var resynthCmd = &cobra.Command{
	Use:   "resynth",
	Short: "Resynthesize a QASM circuit in canonical layer order",
	Long: `Resynthesize a QASM circuit in canonical layer order.

Reads an OPENQASM 2.0 program over the Clifford gate set, folds it
into a tableau and writes an equivalent program in canonical layer
order. The output never exceeds a gate count quadratic in the number
of qubits, however long the input is.
`,
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger()
		c, err := circuit.ParseQASM(string(readInput()))
		if err != nil {
			fmt.Printf("Failed to parse circuit: %s\n", err)
			os.Exit(1)
		}
		tab, err := convert.CircuitToTableau(c, convert.WithLogger(logger))
		if err != nil {
			fmt.Printf("Failed to fold circuit: %s\n", err)
			os.Exit(1)
		}
		synth, err := convert.TableauToCircuit(tab, convert.WithLogger(logger))
		if err != nil {
			fmt.Printf("Failed to synthesize circuit: %s\n", err)
			os.Exit(1)
		}
		writeOutput([]byte(synth.ToQASM()))
	},
}
