package wireflow

// Map allocates an output stream with a fresh node, listens to s, and
// emits f(v) for each firing.
func Map[A, B any](s *Stream[A], f func(A) B) *Stream[B] {
	return Run(func(tx *Transaction) *Stream[B] {
		out := newOutputStream[B]()
		l := s.listen(out.node, func(tx *Transaction, v A) {
			out.send(tx, f(v))
		}, false)
		out.AddCleanup(l)
		return out
	})
}

// CellMap is Cell's map: a Cell whose value is f applied to c's value,
// recomputed whenever c updates.
func CellMap[A, B any](c *Cell[A], f func(A) B) *Cell[B] {
	return Run(func(tx *Transaction) *Cell[B] {
		return Map(c.Updates(), f).holdInternal(tx, f(c.sampleNoTrans()))
	})
}

// Optional is a value that may or may not be present, used by
// FilterOptional.
type Optional[A any] struct {
	Value A
	Valid bool
}

// Some wraps a present value.
func Some[A any](v A) Optional[A] { return Optional[A]{Value: v, Valid: true} }

// None represents an absent value.
func None[A any]() Optional[A] {
	var zero A
	return Optional[A]{Value: zero, Valid: false}
}

// SnapshotWith listens to s; on each event a, emits f(a,
// cell.sampleNoTrans()) — the cell's value immediately before this
// transaction's update, if any, is applied.
func SnapshotWith[A, B, C any](s *Stream[A], c *Cell[B], f func(A, B) C) *Stream[C] {
	return Run(func(tx *Transaction) *Stream[C] {
		out := newOutputStream[C]()
		l := s.listen(out.node, func(tx *Transaction, a A) {
			out.send(tx, f(a, c.sampleNoTrans()))
		}, false)
		out.AddCleanup(l)
		return out
	})
}

// Snapshot is SnapshotWith discarding the stream's own value, keeping only
// the cell's.
func Snapshot[A, B any](s *Stream[A], c *Cell[B]) *Stream[B] {
	return SnapshotWith(s, c, func(_ A, b B) B { return b })
}

// FilterOptional forwards only the present values of an Optional-valued
// stream, unwrapped.
func FilterOptional[A any](s *Stream[Optional[A]]) *Stream[A] {
	return Run(func(tx *Transaction) *Stream[A] {
		out := newOutputStream[A]()
		l := s.listen(out.node, func(tx *Transaction, v Optional[A]) {
			if v.Valid {
				out.send(tx, v.Value)
			}
		}, false)
		out.AddCleanup(l)
		return out
	})
}
