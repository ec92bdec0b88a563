package path

import (
	"github.com/standardbeagle/stackpath/internal/graph"
	"github.com/standardbeagle/stackpath/internal/partial"
)

// ExtendSink accumulates paths produced by extension (spec §6, "extend
// sink"). A work queue is the canonical sink; Reserve is an optional
// capacity hint callers may ignore.
type ExtendSink interface {
	Reserve(n int)
	Push(p PartialPath)
}

// ExtendFromNode extends p along every outgoing edge of p.EndNode,
// regardless of which file the edge's sink belongs to, pushing each
// surviving extension into sink. An edge whose append/resolve fails is
// dropped silently (spec §4.F/§4.G): failure just means that branch of
// the graph is not reachable along this path, not an engine error.
func ExtendFromNode(g graph.Graph, session *partial.Session, p PartialPath, sink ExtendSink) {
	edges := g.OutgoingEdges(p.EndNode)
	sink.Reserve(len(edges))
	for _, edge := range edges {
		extendOne(g, session, p, edge, sink)
	}
}

// ExtendFromFile is the per-file building block the enumerator drives
// (spec §4.G step c): it restricts ExtendFromNode to edges whose sink
// belongs to file, the condition that keeps per-file enumeration from
// wandering into neighboring files' nodes.
func ExtendFromFile(g graph.Graph, session *partial.Session, file graph.FileHandle, p PartialPath, sink ExtendSink) {
	edges := g.OutgoingEdges(p.EndNode)
	sink.Reserve(len(edges))
	for _, edge := range edges {
		if !g.IsInFile(edge.Sink, file) {
			continue
		}
		extendOne(g, session, p, edge, sink)
	}
}

func extendOne(g graph.Graph, session *partial.Session, p PartialPath, edge graph.Edge, sink ExtendSink) {
	next := p.Clone()
	if err := next.Append(g, session, edge); err != nil {
		return
	}
	if err := next.Resolve(g, session); err != nil {
		return
	}
	sink.Push(next)
}
