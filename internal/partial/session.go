package partial

import (
	"github.com/standardbeagle/stackpath/internal/arena"
	"github.com/standardbeagle/stackpath/internal/graph"
)

// Session owns the two deque arenas that back every PartialSymbolStack
// and PartialScopeStack created through it (spec §4.A, §5). A Session
// must not be shared between concurrently-running enumeration sessions;
// callers needing concurrency create one Session per goroutine.
type Session struct {
	symbolStacks *arena.Arena[PartialScopedSymbol]
	scopeStacks  *arena.Arena[graph.NodeHandle]
}

// NewSession creates a Session with fresh, empty arenas.
func NewSession() *Session {
	return &Session{
		symbolStacks: arena.New[PartialScopedSymbol](),
		scopeStacks:  arena.New[graph.NodeHandle](),
	}
}
