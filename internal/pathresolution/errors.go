// Package pathresolution defines the typed errors a partial path's
// Append and Resolve operations can fail with (spec §7). All of them
// are expected outcomes during exhaustive enumeration: the enumerator
// silently discards any edge whose addition fails, it never retries,
// and none of these propagate outside an enumeration session.
package pathresolution

import (
	"fmt"

	"github.com/standardbeagle/stackpath/internal/graph"
)

// ErrorKind discriminates the ways appending an edge or resolving a
// jump can fail (spec §7).
type ErrorKind string

const (
	// IncorrectSourceNode: Append was called with an edge whose source
	// is not the path's current end node.
	IncorrectSourceNode ErrorKind = "incorrect_source_node"
	// IncorrectPoppedSymbol: the symbol atop the symbol-stack
	// postcondition does not match the pop node's symbol.
	IncorrectPoppedSymbol ErrorKind = "incorrect_popped_symbol"
	// UnexpectedAttachedScopeList: popping a plain symbol found an
	// attached scope list.
	UnexpectedAttachedScopeList ErrorKind = "unexpected_attached_scope_list"
	// MissingAttachedScopeList: popping a scoped symbol found no
	// attached scope list.
	MissingAttachedScopeList ErrorKind = "missing_attached_scope_list"
	// EmptyScopeStack: Resolve found a scope stack that can only match empty.
	EmptyScopeStack ErrorKind = "empty_scope_stack"
)

// PathResolutionError is returned by PartialPath.Append and
// PartialPath.Resolve. It carries enough context for diagnostics, but
// callers in the enumerator (spec §4.G) drop the partial result on any
// error without inspecting it.
type PathResolutionError struct {
	Kind       ErrorKind
	Node       graph.NodeHandle
	Symbol     graph.SymbolHandle
	Underlying error
}

// New constructs a PathResolutionError of the given kind at node.
func New(kind ErrorKind, node graph.NodeHandle) *PathResolutionError {
	return &PathResolutionError{Kind: kind, Node: node}
}

// WithSymbol attaches the offending symbol handle for diagnostics.
func (e *PathResolutionError) WithSymbol(symbol graph.SymbolHandle) *PathResolutionError {
	e.Symbol = symbol
	return e
}

// WithUnderlying attaches a wrapped cause.
func (e *PathResolutionError) WithUnderlying(err error) *PathResolutionError {
	e.Underlying = err
	return e
}

// Error implements the error interface.
func (e *PathResolutionError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s at node %d: %v", e.Kind, e.Node, e.Underlying)
	}
	return fmt.Sprintf("%s at node %d", e.Kind, e.Node)
}

// Unwrap returns the underlying cause for errors.Is/As, if any.
func (e *PathResolutionError) Unwrap() error {
	return e.Underlying
}

// Is implements errors.Is by comparing Kind, so callers can write
// errors.Is(err, pathresolution.New(pathresolution.EmptyScopeStack, 0))
// or, more idiomatically, errors.Is(err, pathresolution.ErrEmptyScopeStack).
func (e *PathResolutionError) Is(target error) bool {
	other, ok := target.(*PathResolutionError)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// Sentinel errors for use with errors.Is when the caller only cares
// about the kind, not the context.
var (
	ErrIncorrectSourceNode         = &PathResolutionError{Kind: IncorrectSourceNode}
	ErrIncorrectPoppedSymbol       = &PathResolutionError{Kind: IncorrectPoppedSymbol}
	ErrUnexpectedAttachedScopeList = &PathResolutionError{Kind: UnexpectedAttachedScopeList}
	ErrMissingAttachedScopeList    = &PathResolutionError{Kind: MissingAttachedScopeList}
	ErrEmptyScopeStack             = &PathResolutionError{Kind: EmptyScopeStack}
)
