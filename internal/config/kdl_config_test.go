package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKDL_Defaults(t *testing.T) {
	cfg, err := parseKDL("", "/project")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "graph.json", cfg.Graph.Path)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.False(t, cfg.Output.ShowAll)
}

func TestParseKDL_GraphPathRelative(t *testing.T) {
	kdlContent := `
graph {
    path "fixtures/graph.json"
}
`
	cfg, err := parseKDL(kdlContent, "/project")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/project", "fixtures/graph.json"), cfg.Graph.Path)
}

func TestParseKDL_GraphPathAbsolute(t *testing.T) {
	kdlContent := `
graph {
    path "/abs/graph.json"
}
`
	cfg, err := parseKDL(kdlContent, "/project")
	require.NoError(t, err)
	assert.Equal(t, "/abs/graph.json", cfg.Graph.Path)
}

func TestParseKDL_OutputBlock(t *testing.T) {
	kdlContent := `
output {
    format "compact"
    show_all true
}
`
	cfg, err := parseKDL(kdlContent, "/project")
	require.NoError(t, err)
	assert.Equal(t, "compact", cfg.Output.Format)
	assert.True(t, cfg.Output.ShowAll)
}

func TestParseKDL_PartialOutputBlockKeepsOtherDefault(t *testing.T) {
	kdlContent := `
output {
    show_all true
}
`
	cfg, err := parseKDL(kdlContent, "/project")
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Output.Format, "format was not set, so it must keep its default")
	assert.True(t, cfg.Output.ShowAll)
}

func TestParseKDL_InvalidSyntaxErrors(t *testing.T) {
	_, err := parseKDL("graph { path", "/project")
	assert.Error(t, err)
}

func TestLoadKDL_MissingFileReturnsNilNil(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadKDL(dir)
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestLoadKDL_ReadsFileWhenPresent(t *testing.T) {
	dir := t.TempDir()
	content := "output {\n    format \"compact\"\n}\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".stackpath.kdl"), []byte(content), 0o644))

	cfg, err := LoadKDL(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "compact", cfg.Output.Format)
}
