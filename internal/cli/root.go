package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/budymann/OODesign/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "ufind",
	Short: "Search an in-memory file tree",
	Long: `ufind searches an in-memory directory tree for files matching name,
extension and size filters combined with AND or OR.

The tree comes from a YAML document (--tree), a snapshot of a real
directory (--source) or, when neither is configured, a small built-in
demo tree. Settings can also be given in ufind.yaml, a .env file or
UFIND_* environment variables; flags win over all of them.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or filter expression
  11 - Path does not name a directory in the tree
  12 - Invalid tree document`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var globalFlags struct {
	verbose bool
	color   string
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	err := rootCmd.Execute()
	if err != nil {
		logging.NewConsoleLogger(false).Error("%v", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.verbose, "verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().StringVar(&globalFlags.color, "color", "auto", "Colorize output: auto, always or never")
	_ = rootCmd.RegisterFlagCompletionFunc("color", completeColorModes)
}

// flagChanged reports whether the named local or inherited flag was set on
// the command line.
func flagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)
	if f == nil {
		f = cmd.InheritedFlags().Lookup(name)
	}
	return f != nil && f.Changed
}
