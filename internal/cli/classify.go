package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <path>",
	Short: "Report whether a path denotes a file or a folder",
	Long: `Classify reports "file" when a regular file exists at the path and
"folder" in every other case, including when nothing exists at the path at
all. Classification never fails.`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	ops, err := newOps()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), ops.Classify(args[0]).String())
	return nil
}
