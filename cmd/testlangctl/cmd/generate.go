package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/keurnel/testlang/internal/trace"
	"github.com/keurnel/testlang/testlang"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	GroupID: "core",
	Short:   "Generate a well-formed byte string for the grammar's INPUT record",
	RunE:    runGenerate,
}

func init() {
	generateCmd.Flags().String("out", "", "write the generated bytes to this file instead of stdout")
	generateCmd.Flags().Bool("verbose", false, "print diagnostic trace entries to stderr")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	g, err := loadGrammar(cmd)
	if err != nil {
		return err
	}

	seed, err := seedFromFlags(cmd)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	acc := trace.New()

	out, err := testlang.GenerateTraced(g, testlang.NewStdRand(seed), acc)
	if verbose {
		printTrace(cmd, acc)
	}
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	return writeOutput(cmd, out)
}

func writeOutput(cmd *cobra.Command, out []byte) error {
	path, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}
	if path == "" {
		_, err := cmd.OutOrStdout().Write(out)
		return err
	}
	return os.WriteFile(path, out, 0o644)
}

func printTrace(cmd *cobra.Command, acc *trace.Accumulator) {
	for _, e := range acc.Entries() {
		fmt.Fprintln(cmd.ErrOrStderr(), e.String())
	}
}
