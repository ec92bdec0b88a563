package enumerate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/standardbeagle/stackpath/internal/cycledetect"
	"github.com/standardbeagle/stackpath/internal/graph"
	"github.com/standardbeagle/stackpath/internal/partial"
	"github.com/standardbeagle/stackpath/internal/path"
)

// TestMain ensures enumeration never leaks a goroutine. FindAllPartialPathsInFile
// is a plain synchronous BFS, so any leak here would mean something started a
// goroutine that outlived the test.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestEnumerateVisitsRootSeed(t *testing.T) {
	g := graph.NewBuilder().Build()
	session := partial.NewSession()

	var visited []path.PartialPath
	FindAllPartialPathsInFile(g, session, graph.FileHandle(1), func(g graph.Graph, session *partial.Session, p path.PartialPath) {
		visited = append(visited, p)
	})

	require.Len(t, visited, 1)
	assert.Equal(t, g.RootNode(), visited[0].StartNode)
}

func TestEnumerateVisitsInFIFOOrder(t *testing.T) {
	b := graph.NewBuilder()
	file := graph.FileHandle(1)
	a := b.Symbol("a")
	bsym := b.Symbol("b")
	exportedE := b.AddExportedScope(file)
	pushA := b.AddPushSymbol(file, a, true)
	pushB := b.AddPushSymbol(file, bsym, true)
	b.AddEdge(exportedE, pushA, 0)
	b.AddEdge(exportedE, pushB, 0)
	g := b.Build()
	session := partial.NewSession()

	var order []graph.NodeHandle
	FindAllPartialPathsInFile(g, session, file, func(g graph.Graph, session *partial.Session, p path.PartialPath) {
		order = append(order, p.EndNode)
	})

	require.True(t, len(order) >= 3, "expected the root, exported-scope and both push-symbol seeds at minimum")
	assert.Equal(t, g.RootNode(), order[0], "root seed is always pushed first")
}

func TestEnumerateTerminatesOnCycle(t *testing.T) {
	b := graph.NewBuilder()
	file := graph.FileHandle(1)
	e1 := b.AddExportedScope(file)
	e2 := b.AddExportedScope(file)
	b.AddEdge(e1, e2, 0)
	b.AddEdge(e2, e1, 0)
	g := b.Build()
	session := partial.NewSession()

	count := 0
	FindAllPartialPathsInFile(g, session, file, func(g graph.Graph, session *partial.Session, p path.PartialPath) {
		count++
		require.Less(t, count, 10000, "enumeration over a two-node cycle must terminate quickly via the cycle detector")
	})

	assert.Greater(t, count, 0)
}

func TestEnumerateWithExplicitDetectorIsEquivalent(t *testing.T) {
	b := graph.NewBuilder()
	file := graph.FileHandle(1)
	b.AddExportedScope(file)
	g := b.Build()
	session := partial.NewSession()

	var withDefault, withExplicit int
	FindAllPartialPathsInFile(g, session, file, func(g graph.Graph, session *partial.Session, p path.PartialPath) {
		withDefault++
	})
	FindAllPartialPathsInFileWithDetector(g, session, file, cycledetect.NewVisitedSetDetector(), func(g graph.Graph, session *partial.Session, p path.PartialPath) {
		withExplicit++
	})

	assert.Equal(t, withDefault, withExplicit)
}
