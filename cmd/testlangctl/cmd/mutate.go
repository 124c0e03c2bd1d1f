package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/keurnel/testlang/internal/provenance"
	"github.com/keurnel/testlang/internal/trace"
	"github.com/keurnel/testlang/testlang"
)

var mutateCmd = &cobra.Command{
	Use:     "mutate <input-file>",
	GroupID: "core",
	Short:   "Mutate a byte string against the grammar's INPUT record",
	Args:    cobra.ExactArgs(1),
	RunE:    runMutate,
}

func init() {
	mutateCmd.Flags().String("out", "", "write the mutated bytes to this file instead of stdout")
	mutateCmd.Flags().Int("count", 1, "number of successive mutations to apply")
	mutateCmd.Flags().Bool("verbose", false, "print diagnostic trace entries to stderr")
	mutateCmd.Flags().Bool("history", false, "print the byte-range provenance of each generation to stderr")
}

func runMutate(cmd *cobra.Command, args []string) error {
	g, err := loadGrammar(cmd)
	if err != nil {
		return err
	}

	seed, err := seedFromFlags(cmd)
	if err != nil {
		return err
	}

	buf, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	count, _ := cmd.Flags().GetInt("count")
	verbose, _ := cmd.Flags().GetBool("verbose")
	showHistory, _ := cmd.Flags().GetBool("history")

	r := testlang.NewStdRand(seed)
	acc := trace.New()
	tracker := provenance.Track(buf)

	current := buf
	for n := 0; n < count; n++ {
		mutated, result, err := testlang.MutateTraced(g, r, current, acc)
		if err != nil {
			if verbose {
				printTrace(cmd, acc)
			}
			return fmt.Errorf("mutate: %w", err)
		}
		if result == testlang.Skipped {
			break
		}
		rng := tracker.Record(mutated)
		if showHistory {
			fmt.Fprintf(cmd.ErrOrStderr(), "generation %d rewrote %s\n", tracker.Generation(), rng)
		}
		current = mutated
	}

	if verbose {
		printTrace(cmd, acc)
	}

	return writeOutput(cmd, current)
}
