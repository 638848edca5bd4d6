package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listDirsOnly bool

var listCmd = &cobra.Command{
	Use:   "list <directory>",
	Short: "Recursively list files under a directory",
	Long: `List prints every file under the directory, depth-first: the direct
files of each directory first, then the contents of its subdirectories. An
empty leaf directory is reported as a single entry: its own path with a
trailing separator.

With --dirs, list prints only the immediate subdirectories instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listDirsOnly, "dirs", false, "list immediate subdirectories instead of files")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	ops, err := newOps()
	if err != nil {
		return err
	}

	var entries []string
	if listDirsOnly {
		entries, err = ops.ListChildDirectories(args[0])
	} else {
		entries, err = ops.ListFilesRecursively(args[0])
	}
	if err != nil {
		return err
	}

	for _, entry := range entries {
		fmt.Fprintln(cmd.OutOrStdout(), entry)
	}
	return nil
}
