package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

type runResult struct {
	stdout   string
	stderr   string
	exitCode int
}

// resetFlags restores every flag in the command tree to its default so
// state does not leak between Execute calls.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// chdirTemp moves the test into an empty temporary directory.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(oldWd) })
	return dir
}

// execute runs the CLI with args and stdin, capturing output and exit code.
func execute(t *testing.T, stdin string, args ...string) runResult {
	t.Helper()
	viper.Reset()
	resetFlags(rootCmd)

	res := runResult{}
	originalExitFunc := exitFunc
	exitFunc = func(code int) { res.exitCode = code }
	t.Cleanup(func() { exitFunc = originalExitFunc })

	var stdout, stderr bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	require.NoError(t, rootCmd.Execute())

	res.stdout = stdout.String()
	res.stderr = stderr.String()
	return res
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}
