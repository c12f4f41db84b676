package commands

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/scene"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/testutil"
)

// resetFlags restores every flag under c to its default value.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// execute runs the root command with args in an isolated environment and
// returns what it wrote to stdout.
func execute(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()

	viper.Reset()
	t.Setenv("ICONAUDIT_CONFIG_DIR", t.TempDir())
	t.Chdir(t.TempDir())
	color.NoColor = true
	resetFlags(rootCmd)

	if stdin == nil {
		stdin = strings.NewReader("")
	}
	if args == nil {
		args = []string{}
	}
	var stdout, stderr bytes.Buffer
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	if stderr.Len() > 0 {
		t.Logf("stderr:\n%s", stderr.String())
	}
	return stdout.String(), err
}

// writeScene saves a scene with the given file and page names.
func writeScene(t *testing.T, file, page string, nodes ...*scene.NodeData) string {
	t.Helper()
	return saveFile(t, &scene.File{File: file, Page: page, Nodes: nodes})
}

// saveFile writes f as library.yaml in a new directory.
func saveFile(t *testing.T, f *scene.File) string {
	t.Helper()
	doc := scene.New(f)
	path := filepath.Join(t.TempDir(), "library.yaml")
	if err := doc.SetPath(path); err != nil {
		t.Fatal(err)
	}
	if err := doc.Save(); err != nil {
		t.Fatal(err)
	}
	return path
}

// writeConfig writes an iconaudit.yaml and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	return testutil.WriteFile(t, t.TempDir(), "iconaudit.yaml", content)
}

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func openScene(t *testing.T, path string) *scene.Document {
	t.Helper()
	doc, err := scene.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	return doc
}
