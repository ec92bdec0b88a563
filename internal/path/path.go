// Package path implements the partial path data type (spec §4.F): the
// precondition/postcondition update rules applied when an edge is
// appended, jump-to-scope resolution, and the completeness/productivity
// predicates consumed by the enumerator and by callers filtering its
// output.
package path

import (
	"github.com/standardbeagle/stackpath/internal/graph"
	"github.com/standardbeagle/stackpath/internal/partial"
	"github.com/standardbeagle/stackpath/internal/pathresolution"
)

// PartialPath is a path fragment with symbolic preconditions and
// postconditions on the symbol and scope stacks (spec §3, §4.F).
type PartialPath struct {
	StartNode                graph.NodeHandle
	EndNode                  graph.NodeHandle
	SymbolStackPrecondition  partial.SymbolStack
	SymbolStackPostcondition partial.SymbolStack
	ScopeStackPrecondition   partial.ScopeStack
	ScopeStackPostcondition  partial.ScopeStack
	EdgeCount                int
}

// FromNode creates a new, empty partial path starting (and ending) at node.
func FromNode(g graph.Graph, session *partial.Session, node graph.NodeHandle) PartialPath {
	v := partial.Initial()
	p := PartialPath{
		StartNode:                node,
		EndNode:                  node,
		SymbolStackPrecondition:  partial.EmptySymbolStack(),
		SymbolStackPostcondition: partial.EmptySymbolStack(),
		ScopeStackPrecondition:   partial.ScopeStackFromVariable(v),
		ScopeStackPostcondition:  partial.ScopeStackFromVariable(v),
		EdgeCount:                0,
	}

	n, ok := g.Node(node)
	if !ok {
		return p
	}
	switch n.Kind {
	case graph.KindPushScopedSymbol:
		p.ScopeStackPrecondition = partial.EmptyScopeStack()
		post := partial.EmptyScopeStack()
		post.PushFront(session, n.Scope)
		p.ScopeStackPostcondition = post
		symbol := partial.ScopedSymbol{Symbol: n.Symbol, Scopes: &post}
		p.SymbolStackPostcondition.PushFront(session, symbol)
	case graph.KindPushSymbol:
		p.ScopeStackPrecondition = partial.EmptyScopeStack()
		p.ScopeStackPostcondition = partial.EmptyScopeStack()
		symbol := partial.ScopedSymbol{Symbol: n.Symbol, Scopes: nil}
		p.SymbolStackPostcondition.PushFront(session, symbol)
	}
	return p
}

// Clone returns an independent copy of p. Because every stack is a
// value-like handle into a shared arena (spec §4.A, §9), this is an
// O(1) copy: extending the clone never mutates p's stacks.
func (p PartialPath) Clone() PartialPath {
	return p
}

// Equals reports whether p and other are identical: same endpoints and
// element-wise equal stacks.
func (p PartialPath) Equals(session *partial.Session, other PartialPath) bool {
	return p.StartNode == other.StartNode &&
		p.EndNode == other.EndNode &&
		p.SymbolStackPrecondition.Equals(session, other.SymbolStackPrecondition) &&
		p.SymbolStackPostcondition.Equals(session, other.SymbolStackPostcondition) &&
		p.ScopeStackPrecondition.Equals(session, other.ScopeStackPrecondition) &&
		p.ScopeStackPostcondition.Equals(session, other.ScopeStackPostcondition)
}

// Cmp orders p against other by endpoints then by each stack in turn.
// Used as the discriminant the cycle detector compares paths with.
func (p PartialPath) Cmp(g graph.Graph, session *partial.Session, other PartialPath) int {
	if p.StartNode != other.StartNode {
		return cmpHandle(p.StartNode, other.StartNode)
	}
	if p.EndNode != other.EndNode {
		return cmpHandle(p.EndNode, other.EndNode)
	}
	if c := p.SymbolStackPrecondition.Cmp(g, session, other.SymbolStackPrecondition); c != 0 {
		return c
	}
	if c := p.SymbolStackPostcondition.Cmp(g, session, other.SymbolStackPostcondition); c != 0 {
		return c
	}
	if c := p.ScopeStackPrecondition.Cmp(session, other.ScopeStackPrecondition); c != 0 {
		return c
	}
	return p.ScopeStackPostcondition.Cmp(session, other.ScopeStackPostcondition)
}

func cmpHandle(a, b graph.NodeHandle) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// FreshScopeStackVariable returns a variable strictly greater than
// every variable appearing anywhere in p's preconditions (spec §4.F).
// Postconditions need not be scanned: it is invalid for a postcondition
// to refer to a variable that does not also appear in the
// precondition, so the precondition search is exhaustive by
// construction.
func (p PartialPath) FreshScopeStackVariable(session *partial.Session) partial.Variable {
	max := uint32(0)
	for _, symbol := range p.SymbolStackPrecondition.IterUnordered(session) {
		if symbol.Scopes == nil {
			continue
		}
		if v, ok := symbol.Scopes.Variable(); ok && v.AsU32() > max {
			max = v.AsU32()
		}
	}
	if v, ok := p.ScopeStackPrecondition.Variable(); ok && v.AsU32() > max {
		max = v.AsU32()
	}
	return partial.FresherThan(max)
}

// Append attempts to extend p with edge, applying the precondition/
// postcondition update rules of spec §4.F. On any error p is left
// partially mutated and the caller must discard it (the enumerator
// always operates on a fresh clone, per spec §4.G).
func (p *PartialPath) Append(g graph.Graph, session *partial.Session, edge graph.Edge) error {
	if edge.Source != p.EndNode {
		return pathresolution.New(pathresolution.IncorrectSourceNode, edge.Source)
	}

	sink, ok := g.Node(edge.Sink)
	if !ok {
		return pathresolution.New(pathresolution.IncorrectSourceNode, edge.Sink)
	}

	switch sink.Kind {
	case graph.KindPushSymbol:
		p.SymbolStackPostcondition.PushFront(session, partial.ScopedSymbol{Symbol: sink.Symbol, Scopes: nil})

	case graph.KindPushScopedSymbol:
		attached := p.ScopeStackPostcondition
		attached.PushFront(session, sink.Scope)
		p.SymbolStackPostcondition.PushFront(session, partial.ScopedSymbol{Symbol: sink.Symbol, Scopes: &attached})

	case graph.KindPopSymbol:
		if top, ok := p.SymbolStackPostcondition.PopFront(session); ok {
			if top.Symbol != sink.Symbol {
				return pathresolution.New(pathresolution.IncorrectPoppedSymbol, edge.Sink).WithSymbol(sink.Symbol)
			}
			if top.Scopes != nil {
				return pathresolution.New(pathresolution.UnexpectedAttachedScopeList, edge.Sink).WithSymbol(sink.Symbol)
			}
		} else {
			p.SymbolStackPrecondition.PushBack(session, partial.ScopedSymbol{Symbol: sink.Symbol, Scopes: nil})
		}

	case graph.KindPopScopedSymbol:
		if top, ok := p.SymbolStackPostcondition.PopFront(session); ok {
			if top.Symbol != sink.Symbol {
				return pathresolution.New(pathresolution.IncorrectPoppedSymbol, edge.Sink).WithSymbol(sink.Symbol)
			}
			if top.Scopes == nil {
				return pathresolution.New(pathresolution.MissingAttachedScopeList, edge.Sink).WithSymbol(sink.Symbol)
			}
			p.ScopeStackPostcondition = *top.Scopes
		} else {
			v := p.FreshScopeStackVariable(session)
			varStack := partial.ScopeStackFromVariable(v)
			p.SymbolStackPrecondition.PushBack(session, partial.ScopedSymbol{Symbol: sink.Symbol, Scopes: &varStack})
			p.ScopeStackPostcondition = partial.ScopeStackFromVariable(v)
		}

	case graph.KindDropScopes:
		p.ScopeStackPostcondition = partial.EmptyScopeStack()
	}

	p.EndNode = edge.Sink
	p.EdgeCount++
	return nil
}

// Resolve attempts jump-to-scope resolution (spec §4.F). If the path
// does not currently end in a JumpTo node, it returns success with no
// change.
func (p *PartialPath) Resolve(g graph.Graph, session *partial.Session) error {
	if !g.IsJumpTo(p.EndNode) {
		return nil
	}
	if p.ScopeStackPostcondition.CanOnlyMatchEmpty() {
		return pathresolution.New(pathresolution.EmptyScopeStack, p.EndNode)
	}
	if !p.ScopeStackPostcondition.ContainsScopes() {
		return nil
	}
	top, _ := p.ScopeStackPostcondition.PopFront(session)
	p.EndNode = top
	p.EdgeCount++
	return nil
}

// IsCompleteAsPossible reports whether p is maximal within its file
// (spec §4.F): cannot be meaningfully extended at index time.
func (p PartialPath) IsCompleteAsPossible(g graph.Graph) bool {
	startOK := false
	if startNode, ok := g.Node(p.StartNode); ok {
		switch startNode.Kind {
		case graph.KindRoot, graph.KindExportedScope:
			startOK = true
		case graph.KindPushSymbol, graph.KindPushScopedSymbol:
			startOK = startNode.IsReference && p.SymbolStackPrecondition.IsEmpty()
		}
	} else if g.RootNode() == p.StartNode {
		startOK = true
	}
	if !startOK {
		return false
	}

	endOK := false
	if endNode, ok := g.Node(p.EndNode); ok {
		switch endNode.Kind {
		case graph.KindRoot, graph.KindJumpTo:
			endOK = true
		case graph.KindPopSymbol, graph.KindPopScopedSymbol:
			endOK = endNode.IsDefinition && p.SymbolStackPostcondition.IsEmpty()
		}
	}
	return endOK
}

// IsProductive reports whether p actually moves information (spec
// §4.F): it changes node, or either stack's precondition fails to
// match its postcondition.
func (p PartialPath) IsProductive(session *partial.Session) bool {
	if p.StartNode != p.EndNode {
		return true
	}
	if !p.SymbolStackPrecondition.Matches(session, p.SymbolStackPostcondition) {
		return true
	}
	if !p.ScopeStackPrecondition.Matches(session, p.ScopeStackPostcondition) {
		return true
	}
	return false
}
