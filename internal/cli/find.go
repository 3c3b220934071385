package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/budymann/OODesign/internal/files/filesystem"
	"github.com/budymann/OODesign/internal/files/filter"
	"github.com/budymann/OODesign/internal/identity"
	"github.com/budymann/OODesign/internal/render"
)

var findCmd = &cobra.Command{
	Use:   "find [path]",
	Short: "List files under a directory that match the given filters",
	Long: `Find every file under path (default /) that satisfies the filters.

Filters:
  --name N       file name without extension equals N
  --ext E        extension equals E (a leading dot is ignored)
  --size EXPR    size compared with a threshold: >15, <3, >=10, <=20
                 or gt:15, lt:3, ge:10, le:20

Each flag may be repeated. Filters are combined with --op (and|or).
With no filters, and matches every file and or matches none.

Files are listed in tree order: children in stored order, directories
expanded where they appear.`,
	Example: `  ufind find /examples --ext pdf --size '>15'
  ufind find --op or --name f1 --name hello
  ufind find --source . --ext go --json`,
	Args:              OptionalTreePath,
	ValidArgsFunction: completeTreePaths(&findFlags.source),
	RunE:              runFind,
}

var findFlags struct {
	names  []string
	exts   []string
	sizes  []string
	op     string
	json   bool
	source sourceFlags
}

func init() {
	rootCmd.AddCommand(findCmd)

	findCmd.Flags().StringArrayVar(&findFlags.names, "name", nil, "Match files with this name (repeatable)")
	findCmd.Flags().StringArrayVar(&findFlags.exts, "ext", nil, "Match files with this extension (repeatable)")
	findCmd.Flags().StringArrayVar(&findFlags.sizes, "size", nil, "Match files by size, e.g. '>15' or 'le:20' (repeatable)")
	findCmd.Flags().StringVar(&findFlags.op, "op", "", "Combine filters with and|or (default from config, else and)")
	findCmd.Flags().BoolVar(&findFlags.json, "json", false, "Print matches as a JSON array")
	addSourceFlags(findCmd, &findFlags.source)

	_ = findCmd.RegisterFlagCompletionFunc("op", completeOperators)
}

func runFind(cmd *cobra.Command, args []string) error {
	cfg, err := resolveSettings(cmd, &findFlags.source)
	if err != nil {
		return err
	}
	if flagChanged(cmd, "op") {
		cfg.Operator = findFlags.op
	}

	criteria, err := buildCriteria(cfg.Operator, findFlags.names, findFlags.exts, findFlags.sizes)
	if err != nil {
		return err
	}

	logger := newLogger(cmd, cfg.Verbose)
	defer func() { _ = logger.Sync() }()

	if len(criteria.Filters()) == 0 && criteria.Operator() == filter.Or {
		logger.Info("no filters given: OR over no filters matches nothing")
	}

	root, err := loadTree(cfg, findFlags.source.hidden, logger)
	if err != nil {
		return err
	}

	fsys := filesystem.New(root, filesystem.WithLogger(logger))
	matches, err := fsys.FindMatches(treePathArg(args), criteria)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if findFlags.json {
		return writeMatchesJSON(out, matches)
	}
	return render.Matches(out, matches, newStyles(out, cfg.Color))
}

// buildCriteria turns flag values into search criteria. Name filters come
// first, then extensions, then sizes, each in the order given.
func buildCriteria(op string, names, exts, sizes []string) (filter.Criteria, error) {
	operator, err := filter.ParseOperator(op)
	if err != nil {
		return filter.Criteria{}, err
	}

	filters := make([]filter.Filter, 0, len(names)+len(exts)+len(sizes))
	for _, n := range names {
		filters = append(filters, filter.NameFilter{Name: n})
	}
	for _, e := range exts {
		filters = append(filters, filter.ExtensionFilter{Extension: strings.TrimPrefix(e, ".")})
	}
	for _, s := range sizes {
		sf, err := filter.ParseSizeFilter(s)
		if err != nil {
			return filter.Criteria{}, fmt.Errorf("--size %q: %w", s, err)
		}
		filters = append(filters, sf)
	}

	return filter.NewCriteria(operator, filters...), nil
}

// matchJSON is the --json form of a match.
type matchJSON struct {
	ID        string `json:"id"`
	Path      string `json:"path"`
	Name      string `json:"name"`
	Extension string `json:"extension"`
	Size      uint64 `json:"size"`
}

func writeMatchesJSON(w io.Writer, matches []filesystem.Match) error {
	out := make([]matchJSON, 0, len(matches))
	for _, m := range matches {
		out = append(out, matchJSON{
			ID:        identity.NodeID(m.Path).String(),
			Path:      m.Path,
			Name:      m.File.Name(),
			Extension: m.File.Extension(),
			Size:      m.File.Size(),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
