package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/keurnel/testlang/internal/trace"
	"github.com/keurnel/testlang/testlang"
)

var parseCmd = &cobra.Command{
	Use:     "parse <input-file>",
	GroupID: "core",
	Short:   "Parse a byte string against the grammar's INPUT record",
	Args:    cobra.ExactArgs(1),
	RunE:    runParse,
}

func init() {
	parseCmd.Flags().Bool("verbose", false, "print diagnostic trace entries to stderr")
}

func runParse(cmd *cobra.Command, args []string) error {
	g, err := loadGrammar(cmd)
	if err != nil {
		return err
	}

	input, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	acc := trace.New()

	pr, err := testlang.ParseTraced(g, input, acc)
	if verbose {
		printTrace(cmd, acc)
	}
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	printParsedRecord(cmd.OutOrStdout(), pr, 0)
	return nil
}

func printParsedRecord(w io.Writer, pr testlang.ParsedRecord, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(w, "%s%s (size=%d)\n", indent, pr.Name, pr.Size)
	for _, nf := range pr.Fields {
		printParsedField(w, nf, depth+1)
	}
}

func printParsedField(w io.Writer, nf testlang.NamedParsedField, depth int) {
	indent := strings.Repeat("  ", depth)
	switch f := nf.Field.(type) {
	case testlang.NormalField:
		fmt.Fprintf(w, "%s%s = %x\n", indent, nf.Name, f.Value)
	case testlang.RecordParsedField:
		fmt.Fprintf(w, "%s%s:\n", indent, nf.Name)
		printParsedRecord(w, f.Nested, depth+1)
	case testlang.ArrayParsedField:
		fmt.Fprintf(w, "%s%s [%d elements]:\n", indent, nf.Name, len(f.Elements))
		for _, elem := range f.Elements {
			printParsedRecord(w, elem, depth+1)
		}
	}
}
