package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// OptionalTreePath accepts zero or one tree path argument.
// A missing path means the root of the tree.
func OptionalTreePath(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf(`accepts at most 1 arg(s), received %d

Usage: %s

Example:
  %s /examples/learn`, len(args), cmd.UseLine(), cmd.CommandPath())
	}
	return nil
}

// treePathArg returns the path argument, or the root when none was given.
func treePathArg(args []string) string {
	if len(args) == 0 {
		return "/"
	}
	return args[0]
}
