package wireflow

// Coalesce folds every firing of s within a single transaction into one,
// combining left-to-right with f, and emits only the final accumulated
// value. It is implemented with a handler that remembers whether it has
// already started accumulating this transaction: the first firing schedules
// a single prioritized emission and arranges (via a last-phase action) to
// reset itself for the next transaction; later firings in the same
// transaction just fold into the pending value.
func (s *Stream[A]) Coalesce(f func(a, b A) A) *Stream[A] {
	return Run(func(tx *Transaction) *Stream[A] {
		out := newOutputStream[A]()

		var accumulated A
		var accumulating bool

		l := s.listen(out.node, func(tx *Transaction, v A) {
			if accumulating {
				accumulated = f(accumulated, v)
				return
			}
			accumulating = true
			accumulated = v
			tx.last(func() { accumulating = false })
			tx.prioritized(out.node, func(tx *Transaction) {
				out.send(tx, accumulated)
			})
		}, false)
		out.AddCleanup(l)

		return out
	})
}

// lastFiringOnly is the coalesce used internally by hold: among however
// many values a stream fires in one transaction, only the last is kept.
func (s *Stream[A]) lastFiringOnly() *Stream[A] {
	return s.Coalesce(func(_, b A) A { return b })
}
