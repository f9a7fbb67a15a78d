package wireflow

// Defer arranges for each event on s to be re-emitted on the returned
// stream in a fresh transaction, opened after the current transaction's
// drain has finished (the first-post phase) and before any further
// externally initiated transaction can start.
func (s *Stream[A]) Defer() *Stream[A] {
	return Run(func(tx *Transaction) *Stream[A] {
		out := newOutputStream[A]()
		l := s.listen(newTerminalNode(), func(tx *Transaction, v A) {
			tx.Post(func() {
				runDeferred(func(tx2 *Transaction) { out.send(tx2, v) })
			})
		}, false)
		out.AddCleanup(l)
		return out
	})
}

// Split fires each element of a collection event as its own event on the
// returned stream, one per freshly opened transaction, in element order,
// via the transaction's keyed post map.
func Split[A any](s *Stream[[]A]) *Stream[A] {
	return Run(func(tx *Transaction) *Stream[A] {
		out := newOutputStream[A]()
		l := s.listen(newTerminalNode(), func(tx *Transaction, vs []A) {
			for i, v := range vs {
				i, v := i, v
				tx.postAt(i, func(child *Transaction) {
					defer func() {
						if r := recover(); r != nil {
							logDeferredFailure(newTraceID(), r)
						}
					}()
					out.send(child, v)
				})
			}
		}, false)
		out.AddCleanup(l)
		return out
	})
}

func runDeferred(action func(*Transaction)) {
	defer func() {
		if r := recover(); r != nil {
			logDeferredFailure(newTraceID(), r)
		}
	}()
	RunVoid(action)
}
