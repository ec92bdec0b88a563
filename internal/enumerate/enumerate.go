// Package enumerate implements the per-file partial path enumerator
// (spec §4.G): a FIFO breadth-first search over partial paths seeded
// from the root node and a file's push-symbol, push-scoped-symbol and
// exported-scope nodes, guarded against
// cycles by a cycledetect.Detector.
package enumerate

import (
	"github.com/standardbeagle/stackpath/internal/cycledetect"
	"github.com/standardbeagle/stackpath/internal/graph"
	"github.com/standardbeagle/stackpath/internal/partial"
	"github.com/standardbeagle/stackpath/internal/path"
)

// Visitor is invoked once per dequeued-and-processed path, after its
// children have already been pushed onto the work queue (spec §4.G
// step e): it sees every path ever dequeued, including non-maximal
// ones. Callers filter with path.PartialPath.IsCompleteAsPossible.
type Visitor func(g graph.Graph, session *partial.Session, p path.PartialPath)

// workQueue is the FIFO path.ExtendSink driving the search.
type workQueue struct {
	items []path.PartialPath
	head  int
}

func (q *workQueue) Reserve(n int) {
	if cap(q.items)-len(q.items) < n {
		grown := make([]path.PartialPath, len(q.items), len(q.items)+n)
		copy(grown, q.items)
		q.items = grown
	}
}

func (q *workQueue) Push(p path.PartialPath) {
	q.items = append(q.items, p)
}

func (q *workQueue) popFront() (path.PartialPath, bool) {
	if q.head >= len(q.items) {
		return path.PartialPath{}, false
	}
	p := q.items[q.head]
	q.head++
	return p, true
}

// FindAllPartialPathsInFile runs the full per-file enumeration (spec
// §4.G) to completion, invoking visit for every path it dequeues.
func FindAllPartialPathsInFile(g graph.Graph, session *partial.Session, file graph.FileHandle, visit Visitor) {
	detector := cycledetect.NewVisitedSetDetector()
	FindAllPartialPathsInFileWithDetector(g, session, file, detector, visit)
}

// FindAllPartialPathsInFileWithDetector is FindAllPartialPathsInFile
// with an explicit, caller-supplied cycle detector, letting callers
// share or reuse detector state across multiple files when that is
// semantically correct for their graph.
func FindAllPartialPathsInFileWithDetector(g graph.Graph, session *partial.Session, file graph.FileHandle, detector cycledetect.Detector, visit Visitor) {
	queue := &workQueue{}

	seed(g, session, file, queue)

	for {
		p, ok := queue.popFront()
		if !ok {
			break
		}
		if !detector.ShouldProcessPath(g, session, p) {
			continue
		}
		path.ExtendFromFile(g, session, file, p, queue)
		visit(g, session, p)
	}
}

func seed(g graph.Graph, session *partial.Session, file graph.FileHandle, queue *workQueue) {
	queue.Push(path.FromNode(g, session, g.RootNode()))
	for _, n := range g.NodesForFile(file) {
		node, ok := g.Node(n)
		if !ok {
			continue
		}
		switch node.Kind {
		case graph.KindPushScopedSymbol, graph.KindPushSymbol, graph.KindExportedScope:
			queue.Push(path.FromNode(g, session, n))
		}
	}
}
