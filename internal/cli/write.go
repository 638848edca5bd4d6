package cli

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var writeCmd = &cobra.Command{
	Use:   "write <file> [content]",
	Short: "Replace the text content of a file",
	Long: `Write truncates and rewrites the file with the given content,
creating it if necessary. A read-only flag on the file is cleared first, so
writing to a previously protected file succeeds. When content is omitted it
is read from standard input.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runWrite,
}

func init() {
	rootCmd.AddCommand(writeCmd)
}

func runWrite(cmd *cobra.Command, args []string) error {
	ops, err := newOps()
	if err != nil {
		return err
	}

	var contents string
	if len(args) == 2 {
		contents = args[1]
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return err
		}
		contents = string(data)
	}

	if err := ops.WriteTextToFile(args[0], contents); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"file":  args[0],
		"bytes": len(contents),
	}).Info("file written")
	return nil
}
