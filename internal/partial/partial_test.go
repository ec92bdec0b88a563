package partial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/stackpath/internal/graph"
)

func TestVariableInitialAndFresherThan(t *testing.T) {
	v := Initial()
	assert.Equal(t, uint32(1), v.AsU32())
	assert.Equal(t, "$1", v.String())

	fresher := FresherThan(5)
	assert.Equal(t, uint32(6), fresher.AsU32())
}

func TestScopeStackEmptyProperties(t *testing.T) {
	s := EmptyScopeStack()
	assert.True(t, s.CanOnlyMatchEmpty())
	assert.False(t, s.ContainsScopes())
	_, ok := s.Variable()
	assert.False(t, ok)
}

func TestScopeStackFromVariable(t *testing.T) {
	s := ScopeStackFromVariable(Initial())
	assert.False(t, s.CanOnlyMatchEmpty())
	assert.False(t, s.ContainsScopes())
	v, ok := s.Variable()
	require.True(t, ok)
	assert.Equal(t, Initial(), v)
}

func TestScopeStackPushPopRoundTrip(t *testing.T) {
	session := NewSession()
	s := EmptyScopeStack()
	s.PushFront(session, graph.NodeHandle(1))
	s.PushFront(session, graph.NodeHandle(2))

	assert.True(t, s.ContainsScopes())

	top, ok := s.PopFront(session)
	require.True(t, ok)
	assert.Equal(t, graph.NodeHandle(2), top)

	top, ok = s.PopFront(session)
	require.True(t, ok)
	assert.Equal(t, graph.NodeHandle(1), top)

	_, ok = s.PopFront(session)
	assert.False(t, ok)
}

func TestScopeStackEqualsAndCmp(t *testing.T) {
	session := NewSession()
	a := EmptyScopeStack()
	a.PushFront(session, graph.NodeHandle(1))
	b := EmptyScopeStack()
	b.PushFront(session, graph.NodeHandle(1))

	assert.True(t, a.Equals(session, b))
	assert.Equal(t, 0, a.Cmp(session, b))

	c := EmptyScopeStack()
	c.PushFront(session, graph.NodeHandle(2))
	assert.False(t, a.Equals(session, c))
}

func TestScopeStackRenderFormat(t *testing.T) {
	session := NewSession()
	s := ScopeStackFromVariable(Initial())
	s.PushFront(session, graph.NodeHandle(9))

	name := func(n graph.NodeHandle) string { return "S" }
	assert.Equal(t, "S,$1", s.Render(session, name))
}

func TestScopedSymbolMatchesNoneVsSomeEmpty(t *testing.T) {
	session := NewSession()
	none := ScopedSymbol{Symbol: 1, Scopes: nil}
	emptyScopes := EmptyScopeStack()
	someEmpty := ScopedSymbol{Symbol: 1, Scopes: &emptyScopes}

	assert.False(t, none.Matches(session, someEmpty), "None and Some(empty) must not match")
	assert.True(t, none.Matches(session, ScopedSymbol{Symbol: 1, Scopes: nil}))
}

func TestSymbolStackMatchesRequiresEqualLength(t *testing.T) {
	session := NewSession()
	short := EmptySymbolStack()
	short.PushFront(session, ScopedSymbol{Symbol: 1})

	long := EmptySymbolStack()
	long.PushFront(session, ScopedSymbol{Symbol: 1})
	long.PushFront(session, ScopedSymbol{Symbol: 2})

	assert.False(t, short.Matches(session, long))
}

func TestSymbolStackSelfMatchesEqualsAndCmp(t *testing.T) {
	session := NewSession()
	s := EmptySymbolStack()
	s.PushFront(session, ScopedSymbol{Symbol: 1})

	assert.True(t, s.Matches(session, s))
	assert.True(t, s.Equals(session, s))

	g := graph.NewBuilder().Build()
	assert.Equal(t, 0, s.Cmp(g, session, s))
}

func TestSymbolStackRender(t *testing.T) {
	session := NewSession()
	s := EmptySymbolStack()
	s.PushFront(session, ScopedSymbol{Symbol: 1})

	nodeName := func(n graph.NodeHandle) string { return "?" }
	symbolName := func(h graph.SymbolHandle) string { return "sym" }
	assert.Equal(t, "sym", s.Render(session, nodeName, symbolName))
}
