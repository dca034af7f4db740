// Package arena provides per-parse bump allocation. All AST nodes and child
// slices produced while parsing one buffer are allocated from a single Arena
// owned by the top-level parse call; nothing is freed individually, and
// dropping (or resetting) the arena releases the whole parse at once.
package arena

const slabCap = 128

// Arena owns every allocation made during one parse. It is not safe for
// concurrent use; each top-level parse gets its own arena.
type Arena struct {
	slabs map[any]any
	count int
}

// New constructs an empty arena.
func New() *Arena {
	return &Arena{slabs: make(map[any]any)}
}

// Count returns the number of values allocated so far.
func (a *Arena) Count() int {
	return a.count
}

// Reset abandons every allocation, returning the arena to its empty state.
// Pointers previously handed out stay valid only while the caller retains
// them; the arena itself no longer references their backing storage.
func (a *Arena) Reset() {
	a.slabs = make(map[any]any)
	a.count = 0
}

type slabKey[T any] struct{}

type slab[T any] struct {
	cur []T
}

func slabFor[T any](a *Arena) *slab[T] {
	key := any(slabKey[T]{})
	if s, ok := a.slabs[key].(*slab[T]); ok {
		return s
	}

	s := &slab[T]{}
	a.slabs[key] = s

	return s
}

// Alloc copies v into arena-owned storage and returns a stable pointer to it.
// Slabs are never grown in place, so earlier pointers remain valid as new
// values are allocated.
func Alloc[T any](a *Arena, v T) *T {
	s := slabFor[T](a)

	if len(s.cur) == cap(s.cur) {
		s.cur = make([]T, 0, slabCap)
	}

	s.cur = append(s.cur, v)
	a.count++

	return &s.cur[len(s.cur)-1]
}

// Slice copies xs into arena-owned storage and returns the copy. The result
// has no spare capacity, so appending to it cannot clobber neighbours.
func Slice[T any](a *Arena, xs []T) []T {
	if len(xs) == 0 {
		return nil
	}

	s := slabFor[T](a)

	if cap(s.cur)-len(s.cur) < len(xs) {
		size := slabCap
		if len(xs) > size {
			size = len(xs)
		}
		s.cur = make([]T, 0, size)
	}

	start := len(s.cur)
	s.cur = append(s.cur, xs...)
	a.count += len(xs)

	return s.cur[start : start+len(xs) : start+len(xs)]
}
