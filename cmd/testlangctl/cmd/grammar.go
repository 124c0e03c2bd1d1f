package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/keurnel/testlang/surface"
	"github.com/keurnel/testlang/testlang"
)

// loadGrammar reads and decodes the --grammar flag shared by all
// subcommands.
func loadGrammar(cmd *cobra.Command) (testlang.Grammar, error) {
	path, err := cmd.Flags().GetString("grammar")
	if err != nil {
		return testlang.Grammar{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return testlang.Grammar{}, fmt.Errorf("opening grammar %q: %w", path, err)
	}
	defer f.Close()

	return surface.Load(f)
}

// seedFromFlags reads the shared --seed flag.
func seedFromFlags(cmd *cobra.Command) (uint64, error) {
	return cmd.Flags().GetUint64("seed")
}
