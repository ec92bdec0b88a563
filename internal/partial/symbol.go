package partial

import "github.com/standardbeagle/stackpath/internal/graph"

// ScopedSymbol is a symbol with an unknown, but possibly empty, list of
// exported scopes attached to it (spec §4.C). Scopes being nil means
// "no attached scope list"; a non-nil Scopes pointing at an empty
// ScopeStack means "an attached but empty list" — the two are
// deliberately distinct (spec §3, §9).
type ScopedSymbol struct {
	Symbol graph.SymbolHandle
	Scopes *ScopeStack
}

// Matches reports whether s and other match: the symbol handles must be
// equal, either both or neither must carry an attached scope list, and
// if both do, those lists must match (spec §4.C).
func (s ScopedSymbol) Matches(session *Session, other ScopedSymbol) bool {
	if s.Symbol != other.Symbol {
		return false
	}
	if (s.Scopes == nil) != (other.Scopes == nil) {
		return false
	}
	if s.Scopes != nil && other.Scopes != nil {
		return s.Scopes.Matches(session, *other.Scopes)
	}
	return true
}

// Equals reports whether s and other are identical: same symbol and
// option-wise equal attached scope lists.
func (s ScopedSymbol) Equals(session *Session, other ScopedSymbol) bool {
	if s.Symbol != other.Symbol {
		return false
	}
	switch {
	case s.Scopes == nil && other.Scopes == nil:
		return true
	case s.Scopes == nil || other.Scopes == nil:
		return false
	default:
		return s.Scopes.Equals(session, *other.Scopes)
	}
}

// Cmp orders s against other: by interned symbol order, then by
// option-scope order (None < Some).
func (s ScopedSymbol) Cmp(g graph.Graph, session *Session, other ScopedSymbol) int {
	if c := g.CompareSymbols(s.Symbol, other.Symbol); c != 0 {
		return c
	}
	switch {
	case s.Scopes == nil && other.Scopes == nil:
		return 0
	case s.Scopes == nil:
		return -1
	case other.Scopes == nil:
		return 1
	default:
		return s.Scopes.Cmp(session, *other.Scopes)
	}
}

// Render produces the diagnostic rendering described in spec §6:
// "symbol" or "symbol/scope-stack".
func (s ScopedSymbol) Render(session *Session, nodeName func(graph.NodeHandle) string, symbolName func(graph.SymbolHandle) string) string {
	if s.Scopes == nil {
		return symbolName(s.Symbol)
	}
	return symbolName(s.Symbol) + "/" + s.Scopes.Render(session, nodeName)
}

// PartialScopedSymbol is the name used in spec.md §3/§4.C; ScopedSymbol
// is the Go-idiomatic alias used throughout this package.
type PartialScopedSymbol = ScopedSymbol
