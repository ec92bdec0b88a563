package partial

import (
	"strings"

	"github.com/standardbeagle/stackpath/internal/arena"
	"github.com/standardbeagle/stackpath/internal/graph"
)

// ScopeStack is an ordered sequence of exported-scope node handles plus
// an optional trailing variable (spec §4.E). Its zero value is the
// empty scope stack (no scopes, no variable).
type ScopeStack struct {
	scopes      arena.Deque[graph.NodeHandle]
	variable    Variable
	hasVariable bool
}

// EmptyScopeStack returns an empty partial scope stack.
func EmptyScopeStack() ScopeStack {
	return ScopeStack{}
}

// ScopeStackFromVariable returns a partial scope stack containing only
// a scope-stack variable.
func ScopeStackFromVariable(v Variable) ScopeStack {
	return ScopeStack{variable: v, hasVariable: true}
}

// CanOnlyMatchEmpty reports whether this stack only matches the empty
// scope stack: no scopes and no trailing variable.
func (s ScopeStack) CanOnlyMatchEmpty() bool {
	return s.scopes.IsEmpty() && !s.hasVariable
}

// ContainsScopes reports whether this stack holds any concrete scopes.
func (s ScopeStack) ContainsScopes() bool {
	return !s.scopes.IsEmpty()
}

// Variable returns the trailing variable, if any.
func (s ScopeStack) Variable() (Variable, bool) {
	return s.variable, s.hasVariable
}

// PushFront pushes node onto the front of the scope stack. node must be
// an exported-scope node.
func (s *ScopeStack) PushFront(session *Session, node graph.NodeHandle) {
	s.scopes = session.scopeStacks.PushFront(s.scopes, node)
}

// PushBack pushes node onto the back of the scope stack.
func (s *ScopeStack) PushBack(session *Session, node graph.NodeHandle) {
	s.scopes = session.scopeStacks.PushBack(s.scopes, node)
}

// PopFront removes and returns the frontmost scope, if any.
func (s *ScopeStack) PopFront(session *Session) (graph.NodeHandle, bool) {
	v, rest, ok := session.scopeStacks.PopFront(s.scopes)
	if ok {
		s.scopes = rest
	}
	return v, ok
}

// PopBack removes and returns the backmost scope, if any.
func (s *ScopeStack) PopBack(session *Session) (graph.NodeHandle, bool) {
	v, rest, ok := session.scopeStacks.PopBack(s.scopes)
	if ok {
		s.scopes = rest
	}
	return v, ok
}

// Matches reports whether s and other match: per spec §4.E this is
// exact equality of both the concrete scope sequence and the trailing
// variable, not unification (unification happens at concatenation time,
// outside this engine).
func (s ScopeStack) Matches(session *Session, other ScopeStack) bool {
	return s.Equals(session, other)
}

// Equals reports whether s and other hold the same scopes in the same
// order and the same trailing variable.
func (s ScopeStack) Equals(session *Session, other ScopeStack) bool {
	if s.hasVariable != other.hasVariable {
		return false
	}
	if s.hasVariable && s.variable != other.variable {
		return false
	}
	return session.scopeStacks.EqualsWith(s.scopes, other.scopes, func(a, b graph.NodeHandle) bool {
		return a == b
	})
}

// Cmp orders s against other: element-wise on scopes, then option-wise
// on the trailing variable (None < Some).
func (s ScopeStack) Cmp(session *Session, other ScopeStack) int {
	if c := session.scopeStacks.CmpWith(s.scopes, other.scopes, func(a, b graph.NodeHandle) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}); c != 0 {
		return c
	}
	switch {
	case !s.hasVariable && !other.hasVariable:
		return 0
	case !s.hasVariable:
		return -1
	case !other.hasVariable:
		return 1
	case s.variable < other.variable:
		return -1
	case s.variable > other.variable:
		return 1
	default:
		return 0
	}
}

// IterScopes returns every scope in front-to-back order. Requires
// mutable session access (see arena.Arena.Iter).
func (s *ScopeStack) IterScopes(session *Session) []graph.NodeHandle {
	normalized := session.scopeStacks.Iter(s.scopes)
	s.scopes = session.scopeStacks.EnsureForwards(s.scopes)
	return normalized
}

// IterUnordered returns every scope with no ordering guarantee.
func (s ScopeStack) IterUnordered(session *Session) []graph.NodeHandle {
	return session.scopeStacks.IterUnordered(s.scopes)
}

// Render produces the diagnostic rendering of the scope stack described
// in spec §6: comma-separated scope names, optionally followed (after a
// comma if scopes are present) by $N for a trailing variable.
func (s ScopeStack) Render(session *Session, nodeName func(graph.NodeHandle) string) string {
	var b strings.Builder
	scopes := session.scopeStacks.Iter(s.scopes)
	for i, scope := range scopes {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(nodeName(scope))
	}
	if s.hasVariable {
		if len(scopes) > 0 {
			b.WriteString(",")
		}
		b.WriteString(s.variable.String())
	}
	return b.String()
}
