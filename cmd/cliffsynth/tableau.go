package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rmourey26/clifford/circuit"
	"github.com/rmourey26/clifford/convert"
)

var tableauCmd = &cobra.Command{
	Use:   "tableau",
	Short: "Fold a QASM circuit into its stabilizer tableau",
	Long: `Fold a QASM circuit into its stabilizer tableau.

Reads an OPENQASM 2.0 program over the Clifford gate set
{h, sx, s, cx, x, z} and writes the tableau of the operator it
implements as a YAML document.
`,
	Run: func(cmd *cobra.Command, args []string) {
		c, err := circuit.ParseQASM(string(readInput()))
		if err != nil {
			fmt.Printf("Failed to parse circuit: %s\n", err)
			os.Exit(1)
		}
		tab, err := convert.CircuitToTableau(c, convert.WithLogger(newLogger()))
		if err != nil {
			fmt.Printf("Failed to fold circuit: %s\n", err)
			os.Exit(1)
		}
		out, err := tab.ToYAML()
		if err != nil {
			fmt.Printf("Failed to serialize tableau: %s\n", err)
			os.Exit(1)
		}
		writeOutput(out)
	},
}
