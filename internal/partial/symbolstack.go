package partial

import (
	"strings"

	"github.com/standardbeagle/stackpath/internal/arena"
	"github.com/standardbeagle/stackpath/internal/graph"
)

// SymbolStack is an ordered sequence of ScopedSymbol (spec §4.D). It
// carries no trailing variable of its own — the path-finding rules in
// §4.F produce exactly one implicit symbol-stack variable shared
// between precondition and postcondition, and it is elided here rather
// than represented explicitly.
type SymbolStack struct {
	deque arena.Deque[ScopedSymbol]
}

// EmptySymbolStack returns an empty partial symbol stack.
func EmptySymbolStack() SymbolStack {
	return SymbolStack{}
}

// IsEmpty reports whether the stack holds no symbols.
func (s SymbolStack) IsEmpty() bool {
	return s.deque.IsEmpty()
}

// PushFront pushes symbol onto the front of the stack.
func (s *SymbolStack) PushFront(session *Session, symbol ScopedSymbol) {
	s.deque = session.symbolStacks.PushFront(s.deque, symbol)
}

// PushBack pushes symbol onto the back of the stack.
func (s *SymbolStack) PushBack(session *Session, symbol ScopedSymbol) {
	s.deque = session.symbolStacks.PushBack(s.deque, symbol)
}

// PopFront removes and returns the frontmost symbol, if any.
func (s *SymbolStack) PopFront(session *Session) (ScopedSymbol, bool) {
	v, rest, ok := session.symbolStacks.PopFront(s.deque)
	if ok {
		s.deque = rest
	}
	return v, ok
}

// PopBack removes and returns the backmost symbol, if any.
func (s *SymbolStack) PopBack(session *Session) (ScopedSymbol, bool) {
	v, rest, ok := session.symbolStacks.PopBack(s.deque)
	if ok {
		s.deque = rest
	}
	return v, ok
}

// Matches reports whether s and other match: same length, element-wise Matches.
func (s SymbolStack) Matches(session *Session, other SymbolStack) bool {
	for {
		a, aRest, aOk := session.symbolStacks.PopFront(s.deque)
		b, bRest, bOk := session.symbolStacks.PopFront(other.deque)
		if !aOk || !bOk {
			return aOk == bOk
		}
		if !a.Matches(session, b) {
			return false
		}
		s.deque, other.deque = aRest, bRest
	}
}

// Equals reports whether s and other hold equal symbols in the same order.
func (s SymbolStack) Equals(session *Session, other SymbolStack) bool {
	return session.symbolStacks.EqualsWith(s.deque, other.deque, func(a, b ScopedSymbol) bool {
		return a.Equals(session, b)
	})
}

// Cmp orders s against other element-wise; a shorter stack is strictly less.
func (s SymbolStack) Cmp(g graph.Graph, session *Session, other SymbolStack) int {
	return session.symbolStacks.CmpWith(s.deque, other.deque, func(a, b ScopedSymbol) int {
		return a.Cmp(g, session, b)
	})
}

// IterUnordered returns every symbol with no ordering guarantee. Used
// by fresh_scope_stack_variable (spec §4.F), which only needs to scan
// every variable embedded in the precondition, not their order.
func (s SymbolStack) IterUnordered(session *Session) []ScopedSymbol {
	return session.symbolStacks.IterUnordered(s.deque)
}

// Render produces the diagnostic rendering described in spec §6: the
// concatenation of each scoped symbol's own rendering.
func (s *SymbolStack) Render(session *Session, nodeName func(graph.NodeHandle) string, symbolName func(graph.SymbolHandle) string) string {
	var b strings.Builder
	for _, symbol := range session.symbolStacks.Iter(s.deque) {
		b.WriteString(symbol.Render(session, nodeName, symbolName))
	}
	return b.String()
}

// PartialSymbolStack is the name used in spec.md §3/§4.D.
type PartialSymbolStack = SymbolStack
