// cliffsynth converts between Clifford circuits in OPENQASM 2.0 text
// and stabilizer tableaus in YAML.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	inputPath  string
	outputPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "cliffsynth",
	Short: "Convert between Clifford circuits and stabilizer tableaus",
	Long: `cliffsynth converts between Clifford circuits and stabilizer tableaus.

Circuits are read and written as OPENQASM 2.0 programs over the gate
set {h, sx, s, cx, x, z}; tableaus are read and written as YAML
documents listing the destabilizer and stabilizer rows.
`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(
		&inputPath, "in", "i", "", "input file (default stdin)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputPath, "out", "o", "", "output file (default stdout)",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "log conversion detail to stderr",
	)

	rootCmd.AddCommand(tableauCmd)
	rootCmd.AddCommand(synthCmd)
	rootCmd.AddCommand(resynthCmd)
}

// newLogger returns a development logger when --verbose is set and a
// no-op logger otherwise.
func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Printf("Failed to create logger: %s\n", err)
		os.Exit(1)
	}
	return logger
}

func readInput() []byte {
	if inputPath == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Printf("Failed to read stdin: %s\n", err)
			os.Exit(1)
		}
		return data
	}
	data, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Printf("Failed to read %s: %s\n", inputPath, err)
		os.Exit(1)
	}
	return data
}

func writeOutput(data []byte) {
	if outputPath == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			fmt.Printf("Failed to write stdout: %s\n", err)
			os.Exit(1)
		}
		return
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		fmt.Printf("Failed to write %s: %s\n", outputPath, err)
		os.Exit(1)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
