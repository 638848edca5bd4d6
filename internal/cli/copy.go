package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var copyCmd = &cobra.Command{
	Use:   "copy <source> <destination>",
	Short: "Recursively copy a folder, overwriting existing files",
	Long: `Copy mirrors the directory tree rooted at source onto destination.
The destination and any missing intermediate directories are created; files
already present are overwritten, never skipped. The copy is fail-fast: the
first failure aborts the remaining work and entities already copied remain
in place.`,
	Args: cobra.ExactArgs(2),
	RunE: runCopy,
}

func init() {
	rootCmd.AddCommand(copyCmd)
}

func runCopy(_ *cobra.Command, args []string) error {
	ops, err := newOps()
	if err != nil {
		return err
	}

	source, destination := args[0], args[1]
	if err := ops.CopyFolder(source, destination); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"source":      source,
		"destination": destination,
	}).Info("folder copied")
	return nil
}
