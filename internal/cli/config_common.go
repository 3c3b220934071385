package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/budymann/OODesign/internal/config"
	"github.com/budymann/OODesign/internal/files/loader"
	"github.com/budymann/OODesign/internal/files/tree"
	"github.com/budymann/OODesign/internal/logging"
	"github.com/budymann/OODesign/internal/render"
	"github.com/budymann/OODesign/pkg/ufind"
)

// sourceFlags selects the tree a command works on and where settings come
// from. find and tree each own one.
type sourceFlags struct {
	tree      string
	source    string
	hidden    bool
	configDir string
	envFile   string
}

func addSourceFlags(cmd *cobra.Command, f *sourceFlags) {
	cmd.Flags().StringVar(&f.tree, "tree", "", "YAML tree document to load")
	cmd.Flags().StringVar(&f.source, "source", "", "Directory to snapshot into the tree")
	cmd.Flags().BoolVar(&f.hidden, "hidden", false, "Include dot files when snapshotting --source")
	cmd.Flags().StringVar(&f.configDir, "config", ".", "Directory containing "+ufind.ConfigFileName)
	cmd.Flags().StringVar(&f.envFile, "env-file", ufind.DefaultEnvFile, "Dotenv file with UFIND_* settings")

	_ = cmd.MarkFlagFilename("tree", "yaml", "yml")
	_ = cmd.MarkFlagDirname("source")
	_ = cmd.MarkFlagDirname("config")
}

// loadProjectConfig loads ufind.yaml from dir.
// Returns the defaults if ufind.yaml does not exist (not an error).
func loadProjectConfig(dir string) (*config.Config, error) {
	cfg, err := config.Load(dir)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return config.Default(), nil
		}
		return nil, fmt.Errorf("failed to load %s: %w", ufind.ConfigFileName, err)
	}
	return cfg, nil
}

// resolveSettings merges, lowest priority first: defaults, ufind.yaml, the
// dotenv file, the process environment and command line flags.
func resolveSettings(cmd *cobra.Command, f *sourceFlags) (*config.Config, error) {
	cfg, err := loadProjectConfig(f.configDir)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(f.envFile); err != nil {
		return nil, err
	}

	treeSet, sourceSet := flagChanged(cmd, "tree"), flagChanged(cmd, "source")
	if treeSet && sourceSet {
		return nil, fmt.Errorf("%w: --tree and --source are mutually exclusive", ufind.ErrInvalidConfig)
	}
	if treeSet {
		cfg.Tree, cfg.Source = f.tree, ""
	}
	if sourceSet {
		cfg.Tree, cfg.Source = "", f.source
	}
	if flagChanged(cmd, "color") {
		cfg.Color = globalFlags.color
	}
	if flagChanged(cmd, "verbose") {
		cfg.Verbose = globalFlags.verbose
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadTree builds the tree named by cfg, falling back to the demo tree.
func loadTree(cfg *config.Config, hidden bool, logger ufind.Logger) (*tree.Directory, error) {
	switch {
	case cfg.Tree != "":
		logger.Verbose("loading tree document %s", cfg.Tree)
		root, err := loader.LoadYAMLFile(cfg.Tree)
		if err != nil {
			return nil, err
		}
		logger.Verbose("loaded %d nodes", tree.CountNodes(root))
		return root, nil

	case cfg.Source != "":
		logger.Verbose("snapshotting directory %s (hidden=%t)", cfg.Source, hidden)
		root, err := loader.Snapshot(cfg.Source, loader.SnapshotOptions{SkipHidden: !hidden})
		if err != nil {
			return nil, fmt.Errorf("failed to snapshot %s: %w", cfg.Source, err)
		}
		logger.Verbose("snapshot holds %d files", tree.CountFiles(root))
		return root, nil

	default:
		logger.Verbose("no tree configured, using the demo tree")
		return loader.Demo(), nil
	}
}

func newLogger(cmd *cobra.Command, verbose bool) *logging.ConsoleLogger {
	return logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), verbose)
}

// newStyles picks styled or plain output for w according to the color mode.
func newStyles(w io.Writer, mode string) *render.Styles {
	f, _ := w.(*os.File)
	return render.NewStyles(w, render.DetectColor(mode, f))
}
