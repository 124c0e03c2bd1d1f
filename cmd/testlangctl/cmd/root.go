package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "testlangctl",
	Short: "Grammar-aware fuzzing input engine",
	Long:  `testlangctl generates, parses, and mutates byte strings against a testlang Grammar.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Core operations",
	})

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(mutateCmd)

	rootCmd.PersistentFlags().String("grammar", "", "path to a YAML grammar document")
	rootCmd.PersistentFlags().Uint64("seed", 1, "PCG seed for the deterministic RNG")
	_ = rootCmd.MarkPersistentFlagRequired("grammar")
}
