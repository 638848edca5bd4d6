package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var readCmd = &cobra.Command{
	Use:   "read <file>",
	Short: "Print the text content of a file",
	Long: `Read prints the entire file as text. Reading a file that does not
exist is an error.`,
	Args: cobra.ExactArgs(1),
	RunE: runRead,
}

func init() {
	rootCmd.AddCommand(readCmd)
}

func runRead(cmd *cobra.Command, args []string) error {
	ops, err := newOps()
	if err != nil {
		return err
	}

	contents, err := ops.ReadAllText(args[0])
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), contents)
	return nil
}
