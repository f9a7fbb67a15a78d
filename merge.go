package wireflow

// rawMerge is the two-input merge primitive: it listens to both a and b
// into a common output node, and a simultaneous firing of both appears as
// two separate firings at that node, a's before b's. An intermediate "left"
// node sits between a and the output so ranks stay correct: out's rank is
// forced above left's, which is forced above a's, giving a strict order
// even when out itself feeds into another merge downstream.
func rawMerge[A any](a, b *Stream[A]) *Stream[A] {
	return Run(func(tx *Transaction) *Stream[A] {
		out := newOutputStream[A]()
		left := newNode()

		anchor := handlerFunc(func(*Transaction, any) {})
		left.linkTo(&anchor, out.node)
		out.retain(&anchor)

		la := a.listen(left, func(tx *Transaction, v A) { out.send(tx, v) }, false)
		lb := b.listen(out.node, func(tx *Transaction, v A) { out.send(tx, v) }, false)
		out.AddCleanup(la)
		out.AddCleanup(lb)

		return out
	})
}

// Merge combines two streams. Simultaneous firings resolve right-biased:
// a.Merge(b) with both firing in the same transaction emits only b's
// value, equivalent to a.MergeWith(b, func(_, r A) A { return r }).
func (s *Stream[A]) Merge(other *Stream[A]) *Stream[A] {
	return rawMerge(s, other).Coalesce(func(_, r A) A { return r })
}

// MergeWith combines two streams, folding simultaneous firings together
// with f instead of taking the right-hand value.
func (s *Stream[A]) MergeWith(other *Stream[A], f func(l, r A) A) *Stream[A] {
	return rawMerge(s, other).Coalesce(f)
}

// MergeAll merges a collection of streams in a balanced binary tree,
// folding simultaneous firings with f.
func MergeAll[A any](streams []*Stream[A], f func(l, r A) A) *Stream[A] {
	switch len(streams) {
	case 0:
		panic(newMisuseError("wireflow: MergeAll called with no streams"))
	case 1:
		return streams[0]
	default:
		mid := len(streams) / 2
		left := MergeAll(streams[:mid], f)
		right := MergeAll(streams[mid:], f)
		return left.MergeWith(right, f)
	}
}
