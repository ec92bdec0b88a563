// Package display renders the diagnostic textual format described in
// spec §6. Rendering a path's stacks requires ordered iteration, which
// may normalise arena linkage (spec §9's two-phase display: prepare
// borrows the session mutably, the resulting Rendering borrows
// nothing). Prepare/Rendering is the mirror of the Rust source's
// DisplayWithPartialPaths trait, split into a mutable preparation step
// and an immutable render step.
package display

import (
	"fmt"

	"github.com/standardbeagle/stackpath/internal/graph"
	"github.com/standardbeagle/stackpath/internal/idcodec"
	"github.com/standardbeagle/stackpath/internal/partial"
	"github.com/standardbeagle/stackpath/internal/path"
)

// Rendering is the fully-formatted text of a path, produced once by
// Prepare. Holding a Rendering requires no further access to the
// session or the arenas it owns.
type Rendering struct {
	text string
}

// String returns the diagnostic textual format:
//
//	<SYMPRE> (SCOPEPRE) START -> END <SYMPOST> (SCOPEPOST)
func (r Rendering) String() string {
	return r.text
}

// Prepare normalises p's four stacks (an operation that may need to
// rewrite arena linkage, hence the mutable session access) and renders
// the spec §6 textual format immediately, so that the returned
// Rendering can be formatted arbitrarily many times afterward without
// touching the session again.
func Prepare(g graph.Graph, session *partial.Session, p path.PartialPath) Rendering {
	nodeName := func(n graph.NodeHandle) string {
		return nodeNameOf(g, n)
	}
	symbolName := func(s graph.SymbolHandle) string {
		if name, ok := g.SymbolName(s); ok {
			return name
		}
		return "?"
	}

	symPre := p.SymbolStackPrecondition
	symPost := p.SymbolStackPostcondition
	scopePre := p.ScopeStackPrecondition
	scopePost := p.ScopeStackPostcondition

	text := fmt.Sprintf("<%s> (%s) %s -> %s <%s> (%s)",
		symPre.Render(session, nodeName, symbolName),
		scopePre.Render(session, nodeName),
		nodeNameOf(g, p.StartNode),
		nodeNameOf(g, p.EndNode),
		symPost.Render(session, nodeName, symbolName),
		scopePost.Render(session, nodeName),
	)
	return Rendering{text: text}
}

// PrepareCompact renders the same spec §6 grammar as Prepare, but
// identifies nodes and symbols by their idcodec base-63 encoding
// instead of a human-readable name. Used by the CLI's "-compact"
// output mode, where terseness matters more than readability.
func PrepareCompact(g graph.Graph, session *partial.Session, p path.PartialPath) Rendering {
	nodeName := func(n graph.NodeHandle) string {
		return idcodec.EncodeNode(n)
	}
	symbolName := func(s graph.SymbolHandle) string {
		return idcodec.EncodeSymbol(s)
	}

	symPre := p.SymbolStackPrecondition
	symPost := p.SymbolStackPostcondition
	scopePre := p.ScopeStackPrecondition
	scopePost := p.ScopeStackPostcondition

	text := fmt.Sprintf("<%s> (%s) %s -> %s <%s> (%s)",
		symPre.Render(session, nodeName, symbolName),
		scopePre.Render(session, nodeName),
		nodeName(p.StartNode),
		nodeName(p.EndNode),
		symPost.Render(session, nodeName, symbolName),
		scopePost.Render(session, nodeName),
	)
	return Rendering{text: text}
}

// nodeNameOf falls back to the numeric handle when the graph cannot
// name the node (e.g. it is not an InMemoryGraph and exposes no naming
// helper beyond the Graph interface).
func nodeNameOf(g graph.Graph, n graph.NodeHandle) string {
	if named, ok := g.(interface{ NodeName(graph.NodeHandle) string }); ok {
		return named.NodeName(n)
	}
	if n == g.RootNode() {
		return "[root]"
	}
	return fmt.Sprintf("#%d", uint32(n))
}
