package wireflow

// StreamLoop is a forward-declared stream: it can be referenced (mapped,
// merged, snapshotted against) before its real source is known, which is
// what closes feedback cycles like accum/collect. It must not fire until
// Loop binds it, and Loop must be called within the same transaction the
// loop was created in.
type StreamLoop[A any] struct {
	*Stream[A]
	boundTx *Transaction
	bound   bool
}

// NewStreamLoop creates an open loop stream. It must be called inside an
// active transaction.
func NewStreamLoop[A any]() *StreamLoop[A] {
	tx := currentTransactionOrPanic("NewStreamLoop")
	return &StreamLoop[A]{Stream: newOutputStream[A](), boundTx: tx}
}

// Loop binds the loop to actual: from this point on, every firing of
// actual propagates through the loop's own stream. Calling Loop twice, or
// outside the transaction the loop was created in, is a fatal misuse.
func (l *StreamLoop[A]) Loop(actual *Stream[A]) {
	if l.bound {
		panic(newMisuseError("wireflow: StreamLoop already bound"))
	}
	tx := currentTransactionOrPanic("StreamLoop.Loop")
	if tx != l.boundTx {
		panic(newMisuseError("wireflow: StreamLoop must be closed in the transaction it was created in"))
	}
	l.bound = true

	lst := actual.listen(l.Stream.node, func(tx *Transaction, v A) {
		l.Stream.send(tx, v)
	}, false)
	l.Stream.AddCleanup(lst)
}

// CellLoop is a forward-declared cell: like StreamLoop, but exposes Cell
// semantics (an initial value plus updates) rather than raw events.
type CellLoop[A any] struct {
	*Cell[A]
	loop *StreamLoop[A]
}

// NewCellLoop creates an open loop cell starting at initial. It must be
// called inside an active transaction.
func NewCellLoop[A any](initial A) *CellLoop[A] {
	tx := currentTransactionOrPanic("NewCellLoop")
	loop := NewStreamLoop[A]()
	cell := loop.Stream.holdInternal(tx, initial)
	return &CellLoop[A]{Cell: cell, loop: loop}
}

// Loop binds the loop cell to actual's updates. Calling it twice, or
// outside the creating transaction, is a fatal misuse (see StreamLoop.Loop).
func (c *CellLoop[A]) Loop(actual *Cell[A]) {
	c.loop.Loop(actual.Updates())
}
