package wireflow

// pair bundles two values, used internally to route Collect's combined
// output/state event through a single loop stream.
type pair[A, B any] struct {
	first  A
	second B
}

// Accum folds s into a Cell of running state, starting at initial. Each
// firing a computes the next state as f(a, currentState), which becomes
// visible starting the transaction after it fired.
func Accum[A, S any](s *Stream[A], initial S, f func(a A, state S) S) *Cell[S] {
	return Run(func(tx *Transaction) *Cell[S] {
		loop := NewStreamLoop[S]()
		state := loop.Stream.holdInternal(tx, initial)
		updates := SnapshotWith(s, state, f)
		loop.Loop(updates)
		return state
	})
}

// AccumLazy is Accum, except the initial state is computed lazily on first
// observation.
func AccumLazy[A, S any](s *Stream[A], initial func() S, f func(a A, state S) S) *Cell[S] {
	return Run(func(tx *Transaction) *Cell[S] {
		loop := NewStreamLoop[S]()
		state := loop.Stream.holdInternal(tx, *new(S))
		state.lazyInit = initial
		updates := SnapshotWith(s, state, f)
		loop.Loop(updates)
		return state
	})
}

// Collect is Accum's stream-producing sibling: f computes both an output
// value and the next state from each firing of s and the running state,
// starting at initial.
func Collect[A, S, B any](s *Stream[A], initial S, f func(a A, state S) (B, S)) *Stream[B] {
	return Run(func(tx *Transaction) *Stream[B] {
		loop := NewStreamLoop[S]()
		state := loop.Stream.holdInternal(tx, initial)
		combined := SnapshotWith(s, state, func(a A, st S) pair[B, S] {
			out, next := f(a, st)
			return pair[B, S]{first: out, second: next}
		})
		loop.Loop(Map(combined, func(p pair[B, S]) S { return p.second }))
		return Map(combined, func(p pair[B, S]) B { return p.first })
	})
}

// CollectLazy is Collect, except the initial state is computed lazily on
// first observation.
func CollectLazy[A, S, B any](s *Stream[A], initial func() S, f func(a A, state S) (B, S)) *Stream[B] {
	return Run(func(tx *Transaction) *Stream[B] {
		loop := NewStreamLoop[S]()
		state := loop.Stream.holdInternal(tx, *new(S))
		state.lazyInit = initial
		combined := SnapshotWith(s, state, func(a A, st S) pair[B, S] {
			out, next := f(a, st)
			return pair[B, S]{first: out, second: next}
		})
		loop.Loop(Map(combined, func(p pair[B, S]) S { return p.second }))
		return Map(combined, func(p pair[B, S]) B { return p.first })
	})
}
