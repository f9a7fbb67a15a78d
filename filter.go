package wireflow

// Filter forwards only the values for which pred returns true.
func (s *Stream[A]) Filter(pred func(A) bool) *Stream[A] {
	return Run(func(tx *Transaction) *Stream[A] {
		out := newOutputStream[A]()
		l := s.listen(out.node, func(tx *Transaction, v A) {
			if pred(v) {
				out.send(tx, v)
			}
		}, false)
		out.AddCleanup(l)
		return out
	})
}

// Gate forwards s's values only at moments where c currently holds true.
// It is filterOptional(snapshot(c, (a, b) -> if b then Some(a) else None)).
//
// Inlined rather than composed from SnapshotWith+FilterOptional: the
// generic instantiation SnapshotWith[A, bool, Optional[A]] triggers the Go
// compiler's instantiation-cycle check, even though no unbounded recursion
// occurs here. The logic below is exactly what that composition would do.
func (s *Stream[A]) Gate(c *Cell[bool]) *Stream[A] {
	return Run(func(tx *Transaction) *Stream[A] {
		out := newOutputStream[A]()
		l := s.listen(out.node, func(tx *Transaction, a A) {
			if c.sampleNoTrans() {
				out.send(tx, a)
			}
		}, false)
		out.AddCleanup(l)
		return out
	})
}
