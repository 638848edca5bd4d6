package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <path>...",
	Short: "Recursively delete files or directory trees",
	Long: `Delete removes each path in the order given, one at a time. A path
ending in a separator, or naming an existing non-hidden directory, is removed
with everything under it in one operation. Any other path is treated as a
file: its read-only flag is cleared first, then the file is removed; a
missing file is a hard failure.

The batch is fail-fast: the first failure aborts the remaining paths.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(_ *cobra.Command, args []string) error {
	ops, err := newOps()
	if err != nil {
		return err
	}

	if err := ops.DeleteFileOrDirectories(args); err != nil {
		return err
	}
	logrus.WithField("count", len(args)).Info("entities deleted")
	return nil
}
