// Package graph defines the stack graph as an external collaborator.
//
// spec.md treats the stack graph itself — nodes, edges, files, symbols —
// as out of scope (§1, §6): the partial-path engine only consumes it
// through the Graph interface below. InMemoryGraph is the concrete,
// in-memory fixture the rest of this repository (tests and the CLI)
// uses to exercise that interface; it is not "the stack
// graph feature", it is the smallest thing that can stand in for it.
package graph

import "sort"

// NodeHandle is an opaque identifier of a stack-graph node (§3).
type NodeHandle uint32

// SymbolHandle is an opaque identifier of an interned symbol (§3),
// totally ordered by interning order.
type SymbolHandle uint32

// FileHandle is an opaque identifier of a file.
type FileHandle uint32

// NoFile is the FileHandle used by nodes that belong to no file (Root, JumpTo).
const NoFile FileHandle = 0

// Kind enumerates the node variants relevant to the partial-path engine (§3).
type Kind uint8

const (
	KindRoot Kind = iota
	KindJumpTo
	KindExportedScope
	KindPushSymbol
	KindPushScopedSymbol
	KindPopSymbol
	KindPopScopedSymbol
	KindDropScopes
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindJumpTo:
		return "jump_to"
	case KindExportedScope:
		return "exported_scope"
	case KindPushSymbol:
		return "push_symbol"
	case KindPushScopedSymbol:
		return "push_scoped_symbol"
	case KindPopSymbol:
		return "pop_symbol"
	case KindPopScopedSymbol:
		return "pop_scoped_symbol"
	case KindDropScopes:
		return "drop_scopes"
	default:
		return "other"
	}
}

// Node is the data carried by a stack-graph node (§3). Scope is only
// meaningful for KindPushScopedSymbol, and is the node pushed onto the
// scope stack alongside Symbol.
type Node struct {
	Kind         Kind
	Symbol       SymbolHandle
	Scope        NodeHandle
	File         FileHandle
	IsReference  bool
	IsDefinition bool
}

// Edge is a directed connection between two nodes (§3).
type Edge struct {
	Source     NodeHandle
	Sink       NodeHandle
	Precedence int
}

// Graph is the interface the partial-path engine consumes (§6). The
// engine never mutates a Graph.
type Graph interface {
	RootNode() NodeHandle
	NodesForFile(file FileHandle) []NodeHandle
	OutgoingEdges(node NodeHandle) []Edge
	Node(node NodeHandle) (Node, bool)
	SymbolName(symbol SymbolHandle) (string, bool)
	IsReference(node NodeHandle) bool
	IsDefinition(node NodeHandle) bool
	IsJumpTo(node NodeHandle) bool
	IsInFile(node NodeHandle, file FileHandle) bool
	// CompareSymbols gives the total order over SymbolHandle required
	// by PartialScopedSymbol.Cmp (§4.C).
	CompareSymbols(a, b SymbolHandle) int
}

// InMemoryGraph is a concrete Graph backed by plain slices and maps.
// It indexes edges by source node and nodes by file so that
// OutgoingEdges and NodesForFile are O(1) lookups plus a copy of the
// matching slice.
type InMemoryGraph struct {
	root    NodeHandle
	nodes   map[NodeHandle]Node
	edges   map[NodeHandle][]Edge
	byFile  map[FileHandle][]NodeHandle
	symbols []string // index 0 unused; SymbolHandle is 1-based
}

// Builder constructs an InMemoryGraph incrementally.
type Builder struct {
	g        *InMemoryGraph
	nextNode NodeHandle
	symIndex map[string]SymbolHandle
}

// NewBuilder creates a Builder seeded with the Root node at handle 1.
func NewBuilder() *Builder {
	g := &InMemoryGraph{
		nodes:   make(map[NodeHandle]Node),
		edges:   make(map[NodeHandle][]Edge),
		byFile:  make(map[FileHandle][]NodeHandle),
		symbols: make([]string, 1),
	}
	b := &Builder{g: g, nextNode: 1, symIndex: make(map[string]SymbolHandle)}
	root := b.addNode(Node{Kind: KindRoot, File: NoFile})
	g.root = root
	return b
}

func (b *Builder) addNode(n Node) NodeHandle {
	h := b.nextNode
	b.nextNode++
	b.g.nodes[h] = n
	if n.File != NoFile {
		b.g.byFile[n.File] = append(b.g.byFile[n.File], h)
	}
	return h
}

// Symbol interns name and returns its handle, reusing the handle for
// repeated names so that CompareSymbols reflects first-interning order.
func (b *Builder) Symbol(name string) SymbolHandle {
	if h, ok := b.symIndex[name]; ok {
		return h
	}
	b.g.symbols = append(b.g.symbols, name)
	h := SymbolHandle(len(b.g.symbols) - 1)
	b.symIndex[name] = h
	return h
}

// AddNode adds a node with the given kind and flags in file and returns its handle.
func (b *Builder) AddNode(file FileHandle, kind Kind, isReference, isDefinition bool) NodeHandle {
	return b.addNode(Node{Kind: kind, File: file, IsReference: isReference, IsDefinition: isDefinition})
}

// AddPushSymbol adds a PushSymbol node for symbol in file.
func (b *Builder) AddPushSymbol(file FileHandle, symbol SymbolHandle, isReference bool) NodeHandle {
	return b.addNode(Node{Kind: KindPushSymbol, Symbol: symbol, File: file, IsReference: isReference})
}

// AddPushScopedSymbol adds a PushScopedSymbol node for symbol/scope in file.
func (b *Builder) AddPushScopedSymbol(file FileHandle, symbol SymbolHandle, scope NodeHandle, isReference bool) NodeHandle {
	return b.addNode(Node{Kind: KindPushScopedSymbol, Symbol: symbol, Scope: scope, File: file, IsReference: isReference})
}

// AddPopSymbol adds a PopSymbol node for symbol in file.
func (b *Builder) AddPopSymbol(file FileHandle, symbol SymbolHandle, isDefinition bool) NodeHandle {
	return b.addNode(Node{Kind: KindPopSymbol, Symbol: symbol, File: file, IsDefinition: isDefinition})
}

// AddPopScopedSymbol adds a PopScopedSymbol node for symbol in file.
func (b *Builder) AddPopScopedSymbol(file FileHandle, symbol SymbolHandle, isDefinition bool) NodeHandle {
	return b.addNode(Node{Kind: KindPopScopedSymbol, Symbol: symbol, File: file, IsDefinition: isDefinition})
}

// AddExportedScope adds an ExportedScope node in file.
func (b *Builder) AddExportedScope(file FileHandle) NodeHandle {
	return b.addNode(Node{Kind: KindExportedScope, File: file})
}

// AddJumpTo adds the (file-less) JumpTo node. JumpTo is a singleton in
// stack-graphs proper, but the builder allows several for test graphs
// that model more than one file cluster.
func (b *Builder) AddJumpTo() NodeHandle {
	return b.addNode(Node{Kind: KindJumpTo, File: NoFile})
}

// AddDropScopes adds a DropScopes node in file.
func (b *Builder) AddDropScopes(file FileHandle) NodeHandle {
	return b.addNode(Node{Kind: KindDropScopes, File: file})
}

// AddEdge connects source to sink with the given precedence.
func (b *Builder) AddEdge(source, sink NodeHandle, precedence int) {
	b.g.edges[source] = append(b.g.edges[source], Edge{Source: source, Sink: sink, Precedence: precedence})
}

// Build finalises and returns the graph. Edge lists are sorted by
// precedence (descending) then sink, for deterministic enumeration order.
func (b *Builder) Build() *InMemoryGraph {
	for src, edges := range b.g.edges {
		sort.Slice(edges, func(i, j int) bool {
			if edges[i].Precedence != edges[j].Precedence {
				return edges[i].Precedence > edges[j].Precedence
			}
			return edges[i].Sink < edges[j].Sink
		})
		b.g.edges[src] = edges
	}
	return b.g
}

func (g *InMemoryGraph) RootNode() NodeHandle { return g.root }

func (g *InMemoryGraph) NodesForFile(file FileHandle) []NodeHandle {
	nodes := g.byFile[file]
	out := make([]NodeHandle, len(nodes))
	copy(out, nodes)
	return out
}

func (g *InMemoryGraph) OutgoingEdges(node NodeHandle) []Edge {
	edges := g.edges[node]
	out := make([]Edge, len(edges))
	copy(out, edges)
	return out
}

func (g *InMemoryGraph) Node(node NodeHandle) (Node, bool) {
	n, ok := g.nodes[node]
	return n, ok
}

func (g *InMemoryGraph) SymbolName(symbol SymbolHandle) (string, bool) {
	if int(symbol) <= 0 || int(symbol) >= len(g.symbols) {
		return "", false
	}
	return g.symbols[symbol], true
}

func (g *InMemoryGraph) IsReference(node NodeHandle) bool {
	n, ok := g.nodes[node]
	return ok && n.IsReference
}

func (g *InMemoryGraph) IsDefinition(node NodeHandle) bool {
	n, ok := g.nodes[node]
	return ok && n.IsDefinition
}

func (g *InMemoryGraph) IsJumpTo(node NodeHandle) bool {
	n, ok := g.nodes[node]
	return ok && n.Kind == KindJumpTo
}

func (g *InMemoryGraph) IsInFile(node NodeHandle, file FileHandle) bool {
	n, ok := g.nodes[node]
	return ok && n.File == file
}

func (g *InMemoryGraph) CompareSymbols(a, b SymbolHandle) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// NodeName renders a short diagnostic name for a node, used by the
// display package and the CLI. Falls back to the node's kind name when
// the node carries no symbol.
func (g *InMemoryGraph) NodeName(node NodeHandle) string {
	if node == g.root {
		return "[root]"
	}
	n, ok := g.nodes[node]
	if !ok {
		return "?"
	}
	switch n.Kind {
	case KindJumpTo:
		return "[jump]"
	case KindExportedScope:
		return "scope"
	default:
		if name, ok := g.SymbolName(n.Symbol); ok && name != "" {
			return name
		}
		return n.Kind.String()
	}
}
