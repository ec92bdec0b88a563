package graph

import (
	"encoding/json"
	"fmt"
)

// jsonDocument is the on-disk fixture format consumed by `stackpath
// enumerate --graph`. It is a diagnostic/testing format, not a stable
// wire protocol (spec §6 scopes the real stack graph out of this
// engine; this is only the smallest fixture that can stand in for it).
type jsonDocument struct {
	Symbols []string       `json:"symbols"`
	Files   map[string]int `json:"files"`
	Nodes   []jsonNode     `json:"nodes"`
	Edges   []jsonEdge     `json:"edges"`
}

type jsonNode struct {
	Kind         string      `json:"kind"`
	Symbol       string      `json:"symbol,omitempty"`
	Scope        interface{} `json:"scope,omitempty"`
	File         string      `json:"file,omitempty"`
	IsReference  bool        `json:"is_reference,omitempty"`
	IsDefinition bool        `json:"is_definition,omitempty"`
}

type jsonEdge struct {
	Source     interface{} `json:"source"`
	Sink       interface{} `json:"sink"`
	Precedence int         `json:"precedence,omitempty"`
}

var kindNames = map[string]Kind{
	"root":               KindRoot,
	"jump_to":            KindJumpTo,
	"exported_scope":     KindExportedScope,
	"push_symbol":        KindPushSymbol,
	"push_scoped_symbol": KindPushScopedSymbol,
	"pop_symbol":         KindPopSymbol,
	"pop_scoped_symbol":  KindPopScopedSymbol,
	"drop_scopes":        KindDropScopes,
}

// LoadJSON parses a fixture document into an InMemoryGraph. Node
// references (a node's "scope" field, and each edge's "source"/"sink")
// are either the string "root" or a zero-based index into the
// document's "nodes" array.
func LoadJSON(data []byte) (*InMemoryGraph, error) {
	var doc jsonDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse graph fixture: %w", err)
	}

	b := NewBuilder()
	for _, name := range doc.Symbols {
		b.Symbol(name)
	}

	files := make(map[string]FileHandle, len(doc.Files))
	for name, id := range doc.Files {
		files[name] = FileHandle(id)
	}

	handles := make([]NodeHandle, len(doc.Nodes))
	for i, n := range doc.Nodes {
		kind, ok := kindNames[n.Kind]
		if !ok {
			return nil, fmt.Errorf("node %d: unknown kind %q", i, n.Kind)
		}
		file := files[n.File]
		handles[i] = b.AddNode(file, kind, n.IsReference, n.IsDefinition)
	}

	// Second pass: node bodies that reference other nodes (push_scoped_symbol's scope).
	for i, n := range doc.Nodes {
		kind := kindNames[n.Kind]
		h := handles[i]
		node, _ := b.g.Node(h)
		if n.Symbol != "" {
			node.Symbol = b.Symbol(n.Symbol)
		}
		if kind == KindPushScopedSymbol {
			scope, err := resolveRef(n.Scope, handles, b.g.root)
			if err != nil {
				return nil, fmt.Errorf("node %d: scope: %w", i, err)
			}
			node.Scope = scope
		}
		b.g.nodes[h] = node
	}

	for i, e := range doc.Edges {
		source, err := resolveRef(e.Source, handles, b.g.root)
		if err != nil {
			return nil, fmt.Errorf("edge %d: source: %w", i, err)
		}
		sink, err := resolveRef(e.Sink, handles, b.g.root)
		if err != nil {
			return nil, fmt.Errorf("edge %d: sink: %w", i, err)
		}
		b.AddEdge(source, sink, e.Precedence)
	}

	return b.Build(), nil
}

func resolveRef(raw interface{}, handles []NodeHandle, root NodeHandle) (NodeHandle, error) {
	switch v := raw.(type) {
	case nil:
		return 0, fmt.Errorf("missing node reference")
	case string:
		if v == "root" {
			return root, nil
		}
		return 0, fmt.Errorf("unknown node reference %q", v)
	case float64:
		i := int(v)
		if i < 0 || i >= len(handles) {
			return 0, fmt.Errorf("node index %d out of range", i)
		}
		return handles[i], nil
	default:
		return 0, fmt.Errorf("unsupported node reference type %T", raw)
	}
}
