package cli

import (
	"github.com/spf13/cobra"

	"github.com/budymann/OODesign/internal/files/filesystem"
	"github.com/budymann/OODesign/internal/render"
)

var treeCmd = &cobra.Command{
	Use:   "tree [path]",
	Short: "Print the directory tree under a path",
	Long: `Print path (default /) and everything below it, children in stored
order, followed by a count of the directories and files shown.`,
	Example: `  ufind tree
  ufind tree /examples --tree ./books.yaml`,
	Args:              OptionalTreePath,
	ValidArgsFunction: completeTreePaths(&treeFlags.source),
	RunE:              runTree,
}

var treeFlags struct {
	source sourceFlags
}

func init() {
	rootCmd.AddCommand(treeCmd)
	addSourceFlags(treeCmd, &treeFlags.source)
}

func runTree(cmd *cobra.Command, args []string) error {
	cfg, err := resolveSettings(cmd, &treeFlags.source)
	if err != nil {
		return err
	}

	logger := newLogger(cmd, cfg.Verbose)
	defer func() { _ = logger.Sync() }()

	root, err := loadTree(cfg, treeFlags.source.hidden, logger)
	if err != nil {
		return err
	}

	path := treePathArg(args)
	dir, err := filesystem.New(root, filesystem.WithLogger(logger)).ChangeDirectory(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	sum, err := render.Tree(out, dir, path, newStyles(out, cfg.Color))
	if err != nil {
		return err
	}
	logger.Verbose("printed %s under %s", sum, path)
	return nil
}
