package wireflow

// Apply combines a cell of functions with a cell of arguments into a cell
// of results, recomputed whenever either input updates.
func Apply[A, B any](cf *Cell[func(A) B], ca *Cell[A]) *Cell[B] {
	return Run(func(tx *Transaction) *Cell[B] {
		out := newOutputStream[B]()

		// lastF/lastA track the most recently fired value from each side,
		// not a re-sample of the cell: within the transaction a side just
		// fired in, its current value isn't promoted from next until the
		// last phase, so sampling it here would still see the old value.
		lastF := cf.sampleNoTrans()
		lastA := ca.sampleNoTrans()

		fire := func(tx *Transaction) {
			out.send(tx, lastF(lastA))
		}

		l1 := cf.Updates().listen(out.node, func(tx *Transaction, f func(A) B) {
			lastF = f
			fire(tx)
		}, false)
		l2 := ca.Updates().listen(out.node, func(tx *Transaction, a A) {
			lastA = a
			fire(tx)
		}, false)
		out.AddCleanup(l1)
		out.AddCleanup(l2)

		return out.holdInternal(tx, lastF(lastA))
	})
}
