package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/budymann/OODesign/internal/files/filesystem"
	"github.com/budymann/OODesign/internal/files/tree"
	"github.com/budymann/OODesign/internal/logging"
)

var (
	operators  = []string{"and", "or"}
	colorModes = []string{"auto", "always", "never"}
)

func completeFixed(values []string, toComplete string) []string {
	var matches []string
	for _, v := range values {
		if strings.HasPrefix(v, toComplete) {
			matches = append(matches, v)
		}
	}
	return matches
}

// completeOperators provides shell completion for --op.
func completeOperators(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return completeFixed(operators, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeColorModes provides shell completion for --color.
func completeColorModes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return completeFixed(colorModes, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeTreePaths completes the path argument with directories of the
// tree the command would load.
func completeTreePaths(f *sourceFlags) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		cfg, err := resolveSettings(cmd, f)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		root, err := loadTree(cfg, f.hidden, logging.NewNullLogger())
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		var dirs []string
		_ = filesystem.New(root).Walk("/", func(p string, n tree.Node) error {
			if n.Kind() == tree.KindDirectory && strings.HasPrefix(p, toComplete) {
				dirs = append(dirs, p)
			}
			return nil
		})
		return dirs, cobra.ShellCompDirectiveNoFileComp
	}
}
