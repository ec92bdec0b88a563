// Package arena implements the compact, append-only deque storage
// described in spec §4.A. Each logical sequence — a partial symbol
// stack or a partial scope stack — is a small value-type handle pair
// (Deque) into an Arena; copying a Deque is O(1) and never aliases
// mutation across distinct logical sequences, in line with invariant 3
// of spec §3 ("stacks never alias ... in a way that lets one mutate
// another").
//
// A Deque is represented as two singly-linked cons-chains inside the
// arena: front holds elements nearest the logical front in correct
// front-to-back order, and back holds elements pushed at the back, in
// the reverse of their logical order (the classic two-stack queue).
// PushFront/PushBack always cons a single new cell onto the
// corresponding chain and never touch an existing cell, so two Deques
// that share a physical suffix never observe each other's pushes.
// PopFront/PopBack only need to rebuild the opposite chain (by
// reversing it into fresh cells) when the chain they pop from has run
// dry; this rebuild is the only place a Deque operation needs to
// allocate into the arena on the "wrong" side, and it only ever
// allocates brand new cells, never mutates existing ones.
package arena

// Handle names a single cons cell inside an Arena. The zero Handle
// means "no cell".
type Handle int32

type cell[T any] struct {
	value T
	next  Handle
}

// Arena is compact, append-only storage for one element type's worth of
// Deques. It must not be shared between concurrently-running
// enumeration sessions (spec §5).
type Arena[T any] struct {
	cells []cell[T]
}

// New creates an empty arena. Index 0 is reserved as the "no cell"
// sentinel so the zero Handle can mean "nil".
func New[T any]() *Arena[T] {
	return &Arena[T]{cells: make([]cell[T], 1)}
}

func (a *Arena[T]) alloc(value T, next Handle) Handle {
	a.cells = append(a.cells, cell[T]{value: value, next: next})
	return Handle(len(a.cells) - 1)
}

// Deque is a logical, value-like sequence of T. Its zero value is the
// empty deque.
type Deque[T any] struct {
	front  Handle
	back   Handle
	length int
}

// Empty returns an empty deque.
func Empty[T any]() Deque[T] {
	return Deque[T]{}
}

// IsEmpty reports whether d has no elements.
func (d Deque[T]) IsEmpty() bool {
	return d.length == 0
}

// Len returns the number of elements in d.
func (d Deque[T]) Len() int {
	return d.length
}

// PushFront conses a new cell onto the front chain and returns the
// extended deque. Never allocates outside of the single new cell, and
// never mutates an existing cell.
func (a *Arena[T]) PushFront(d Deque[T], value T) Deque[T] {
	return Deque[T]{front: a.alloc(value, d.front), back: d.back, length: d.length + 1}
}

// PushBack conses a new cell onto the back chain and returns the
// extended deque.
func (a *Arena[T]) PushBack(d Deque[T], value T) Deque[T] {
	return Deque[T]{front: d.front, back: a.alloc(value, d.back), length: d.length + 1}
}

// PopFront removes and returns the frontmost element, if any. If the
// front chain is exhausted but the back chain is not, this reverses
// the back chain into fresh front cells first — the only case in which
// PopFront allocates.
func (a *Arena[T]) PopFront(d Deque[T]) (T, Deque[T], bool) {
	var zero T
	if d.length == 0 {
		return zero, d, false
	}
	if d.front == 0 {
		d = a.ensureForwards(d)
	}
	c := a.cells[d.front]
	return c.value, Deque[T]{front: c.next, back: d.back, length: d.length - 1}, true
}

// PopBack removes and returns the backmost element, if any, mirroring PopFront.
func (a *Arena[T]) PopBack(d Deque[T]) (T, Deque[T], bool) {
	var zero T
	if d.length == 0 {
		return zero, d, false
	}
	if d.back == 0 {
		d = a.ensureBackwards(d)
	}
	c := a.cells[d.back]
	return c.value, Deque[T]{front: d.front, back: c.next, length: d.length - 1}, true
}

func (a *Arena[T]) chainValues(head Handle) []T {
	var out []T
	for cur := head; cur != 0; cur = a.cells[cur].next {
		out = append(out, a.cells[cur].value)
	}
	return out
}

func reversed[T any](s []T) []T {
	out := make([]T, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}

// ensureForwards rebuilds d so that its back chain is empty and its
// front chain alone holds every element in correct front-to-back order.
// This is the "ensure_forwards" operation of spec §4.A: it normalises
// linkage direction before any traversal that requires stable order,
// and it requires mutable arena access because it allocates the
// rebuilt chain.
func (a *Arena[T]) ensureForwards(d Deque[T]) Deque[T] {
	if d.back == 0 {
		return d
	}
	front := a.chainValues(d.front)
	back := reversed(a.chainValues(d.back))
	full := append(front, back...)
	var newFront Handle
	for i := len(full) - 1; i >= 0; i-- {
		newFront = a.alloc(full[i], newFront)
	}
	return Deque[T]{front: newFront, back: 0, length: d.length}
}

// ensureBackwards is the mirror image of ensureForwards: it rebuilds d
// so the front chain is empty and the back chain alone holds every
// element, each cell's next walking towards the front.
func (a *Arena[T]) ensureBackwards(d Deque[T]) Deque[T] {
	if d.front == 0 {
		return d
	}
	back := a.chainValues(d.back)
	front := reversed(a.chainValues(d.front))
	full := append(back, front...)
	var newBack Handle
	for i := len(full) - 1; i >= 0; i-- {
		newBack = a.alloc(full[i], newBack)
	}
	return Deque[T]{front: 0, back: newBack, length: d.length}
}

// EnsureForwards normalises d's linkage direction, as described above,
// and returns the normalised deque. Callers that need a stable
// front-to-back traversal order (Iter, display) must use the returned
// value.
func (a *Arena[T]) EnsureForwards(d Deque[T]) Deque[T] {
	return a.ensureForwards(d)
}

// Iter returns every element of d in front-to-back order. It requires
// mutable arena access because it first normalises d's linkage
// direction (spec §4.A).
func (a *Arena[T]) Iter(d Deque[T]) []T {
	d = a.ensureForwards(d)
	return a.chainValues(d.front)
}

// IterUnordered returns every element of d with no ordering guarantee.
// Unlike Iter, it never allocates and never needs mutable arena access
// beyond reading cells, because it does not need to reverse the back
// chain into canonical order.
func (a *Arena[T]) IterUnordered(d Deque[T]) []T {
	out := make([]T, 0, d.length)
	out = append(out, a.chainValues(d.front)...)
	out = append(out, a.chainValues(d.back)...)
	return out
}

// EqualsWith reports whether a and b hold the same elements in the same
// order under eq, consuming local copies of both deques (so neither
// original is mutated — only the local copies' front/back handles move).
func (a *Arena[T]) EqualsWith(x, y Deque[T], eq func(a, b T) bool) bool {
	for {
		xv, xRest, xOk := a.PopFront(x)
		yv, yRest, yOk := a.PopFront(y)
		if !xOk || !yOk {
			return xOk == yOk
		}
		if !eq(xv, yv) {
			return false
		}
		x, y = xRest, yRest
	}
}

// CmpWith orders x and y lexicographically under cmp, shorter-is-lesser
// on exhaustion, consuming local copies as EqualsWith does.
func (a *Arena[T]) CmpWith(x, y Deque[T], cmp func(a, b T) int) int {
	for {
		xv, xRest, xOk := a.PopFront(x)
		yv, yRest, yOk := a.PopFront(y)
		switch {
		case !xOk && !yOk:
			return 0
		case !xOk:
			return -1
		case !yOk:
			return 1
		}
		if c := cmp(xv, yv); c != 0 {
			return c
		}
		x, y = xRest, yRest
	}
}
