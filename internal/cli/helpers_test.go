package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/budymann/OODesign/internal/config"
	"github.com/budymann/OODesign/pkg/ufind"
)

// resetFlags restores every flag in the command tree to its default so that
// commands can be executed repeatedly in one test binary.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// isolate clears UFIND_* variables and returns an empty directory to use
// with --config.
func isolate(t *testing.T) string {
	t.Helper()
	for _, key := range []string{config.EnvTree, config.EnvSource, config.EnvOperator, config.EnvColor, config.EnvVerbose} {
		t.Setenv(key, "")
	}
	t.Setenv("NO_COLOR", "")
	t.Setenv("CI", "")
	return t.TempDir()
}

func executeCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}

func writeProjectConfig(t *testing.T, dir, content string) {
	t.Helper()
	writeFile(t, dir, ufind.ConfigFileName, content)
}

const booksYAML = `name: library
children:
  - dir: fiction
    children:
      - file: dune
        ext: epub
        size: 700
      - file: notes
        ext: txt
        content: "read again"
  - dir: reference
    children:
      - file: atlas
        ext: pdf
        size: 9000
`
