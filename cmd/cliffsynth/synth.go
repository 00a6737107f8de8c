package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rmourey26/clifford/convert"
	"github.com/rmourey26/clifford/tableau"
)

var synthCmd = &cobra.Command{
	Use:   "synth",
	Short: "Synthesize a QASM circuit from a stabilizer tableau",
	Long: `Synthesize a QASM circuit from a stabilizer tableau.

Reads a tableau in YAML form and writes an OPENQASM 2.0 program over
the Clifford gate set realising it, in canonical layer order.
`,
	Run: func(cmd *cobra.Command, args []string) {
		tab, err := tableau.FromYAML(readInput())
		if err != nil {
			fmt.Printf("Failed to parse tableau: %s\n", err)
			os.Exit(1)
		}
		c, err := convert.TableauToCircuit(tab, convert.WithLogger(newLogger()))
		if err != nil {
			fmt.Printf("Failed to synthesize circuit: %s\n", err)
			os.Exit(1)
		}
		writeOutput([]byte(c.ToQASM()))
	},
}
