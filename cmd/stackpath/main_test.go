package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func newTestContext(t *testing.T, root, graph string, compact, all bool) *cli.Context {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.String("root", root, "")
	set.String("graph", graph, "")
	set.Int("file", 0, "")
	set.Bool("compact", compact, "")
	set.Bool("all", all, "")
	require.NoError(t, set.Parse(nil))
	return cli.NewContext(cli.NewApp(), set, nil)
}

func TestLoadConfigWithOverrides_Defaults(t *testing.T) {
	dir := t.TempDir()
	c := newTestContext(t, dir, "", false, false)

	cfg, err := loadConfigWithOverrides(c)
	require.NoError(t, err)
	assert.Equal(t, "graph.json", cfg.Graph.Path)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.False(t, cfg.Output.ShowAll)
}

func TestLoadConfigWithOverrides_GraphFlagOverridesConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".stackpath.kdl"), []byte(`
graph {
    path "from-kdl.json"
}
`), 0o644))
	c := newTestContext(t, dir, "override.json", false, false)

	cfg, err := loadConfigWithOverrides(c)
	require.NoError(t, err)
	assert.Equal(t, "override.json", cfg.Graph.Path)
}

func TestLoadConfigWithOverrides_CompactAndAllFlags(t *testing.T) {
	dir := t.TempDir()
	c := newTestContext(t, dir, "", true, true)

	cfg, err := loadConfigWithOverrides(c)
	require.NoError(t, err)
	assert.Equal(t, "compact", cfg.Output.Format)
	assert.True(t, cfg.Output.ShowAll)
}

func TestLoadConfigWithOverrides_ReadsProjectKDLFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".stackpath.kdl"), []byte(`
graph {
    path "from-kdl.json"
}
`), 0o644))

	c := newTestContext(t, dir, "", false, false)
	cfg, err := loadConfigWithOverrides(c)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "from-kdl.json"), cfg.Graph.Path)
}
