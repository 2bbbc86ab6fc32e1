package cli

import (
	"os"

	"github.com/spf13/cobra"

	"honeylat/pkg/schema"
)

// newDumpCmd creates the "dump" command: print site coordinates.
func newDumpCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "dump <lattice.json>",
		Short: "Print real-space site coordinates, one line per site",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := schema.ImportFile(args[0])
			if err != nil {
				return err
			}
			l.Dump(os.Stdout, !quiet)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print bare coordinate pairs without the prefix")

	return cmd
}
