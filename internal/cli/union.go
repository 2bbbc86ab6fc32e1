package cli

import (
	"os"

	"github.com/spf13/cobra"

	"honeylat/pkg/lattice"
	"honeylat/pkg/schema"
)

// newUnionCmd creates the "union" command: merge two lattice files.
func newUnionCmd() *cobra.Command {
	var (
		output  string
		reindex bool
	)

	cmd := &cobra.Command{
		Use:   "union <a.json> <b.json>",
		Short: "Merge two lattices with ordered deduplication",
		Long: `Union merges the second lattice into the first: the first operand's
sites keep their order and keys, and sites of the second operand that do
not coincide (within tolerance) with a site of the first are appended.

An appended site's key is the first operand's length plus the site's
position in the second operand, so dropped duplicates leave gaps in the
key space. Pass --reindex to renumber the result 1..N.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			a, err := schema.ImportFile(args[0])
			if err != nil {
				return err
			}
			b, err := schema.ImportFile(args[1])
			if err != nil {
				return err
			}
			logger.Debug("operands loaded", "a", a.Len(), "b", b.Len())

			p := newProgress(logger)
			merged := lattice.Union(a, b)
			if reindex {
				merged.Reindex()
			}
			dropped := a.Len() + b.Len() - merged.Len()
			p.done("Merged lattices")

			if output != "" {
				if err := schema.ExportFile(merged, output); err != nil {
					return err
				}
				printSuccess("Merged %d + %d sites (%d duplicates dropped)", a.Len(), b.Len(), dropped)
				printFile(output)
				return nil
			}
			return schema.WriteJSON(merged, os.Stdout)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write merged lattice JSON to this file (default: stdout)")
	cmd.Flags().BoolVar(&reindex, "reindex", false, "renumber keys 1..N after the merge")

	return cmd
}
