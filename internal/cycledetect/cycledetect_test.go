package cycledetect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/stackpath/internal/graph"
	"github.com/standardbeagle/stackpath/internal/partial"
	"github.com/standardbeagle/stackpath/internal/path"
)

func TestFirstSightingAlwaysProcessed(t *testing.T) {
	g := graph.NewBuilder().Build()
	session := partial.NewSession()
	d := NewVisitedSetDetector()

	p := path.FromNode(g, session, g.RootNode())
	assert.True(t, d.ShouldProcessPath(g, session, p))
}

func TestIdenticalPathRejectedOnSecondSighting(t *testing.T) {
	g := graph.NewBuilder().Build()
	session := partial.NewSession()
	d := NewVisitedSetDetector()

	p1 := path.FromNode(g, session, g.RootNode())
	p2 := path.FromNode(g, session, g.RootNode())

	require.True(t, d.ShouldProcessPath(g, session, p1))
	assert.False(t, d.ShouldProcessPath(g, session, p2), "an equal path between the same endpoints must be rejected")
}

func TestDifferentEndpointsNeverCompared(t *testing.T) {
	b := graph.NewBuilder()
	file := graph.FileHandle(1)
	other := b.AddExportedScope(file)
	g := b.Build()
	session := partial.NewSession()
	d := NewVisitedSetDetector()

	atRoot := path.FromNode(g, session, g.RootNode())
	atOther := path.FromNode(g, session, other)

	require.True(t, d.ShouldProcessPath(g, session, atRoot))
	assert.True(t, d.ShouldProcessPath(g, session, atOther), "a path with different endpoints must not be rejected by an unrelated bucket")
}

func TestDistinctEndpointPairsEachProcessed(t *testing.T) {
	b := graph.NewBuilder()
	file := graph.FileHandle(1)
	a := b.Symbol("a")
	bsym := b.Symbol("b")
	exportedE := b.AddExportedScope(file)
	pushA := b.AddPushSymbol(file, a, true)
	pushB := b.AddPushSymbol(file, bsym, true)
	g := b.Build()
	session := partial.NewSession()
	d := NewVisitedSetDetector()

	p1 := path.FromNode(g, session, exportedE)
	require.NoError(t, p1.Append(g, session, graph.Edge{Source: exportedE, Sink: pushA}))

	p2 := path.FromNode(g, session, exportedE)
	require.NoError(t, p2.Append(g, session, graph.Edge{Source: exportedE, Sink: pushB}))

	require.Equal(t, p1.StartNode, p2.StartNode)
	require.NotEqual(t, p1.EndNode, p2.EndNode, "these two still land on different end nodes by construction")

	assert.True(t, d.ShouldProcessPath(g, session, p1))
	assert.True(t, d.ShouldProcessPath(g, session, p2))
}
