package wireflow

// StreamSink is an externally writable Stream: the entry point for pushing
// events into the network from outside a transaction. Send starts (or
// joins) a transaction on the caller's behalf.
type StreamSink[A any] struct {
	*Stream[A]

	combine func(A, A) A

	pendingTx *Transaction
	pending   A
}

// NewStreamSink creates a sink with no combining function: sending more
// than once to it within a single transaction is a misuse error.
func NewStreamSink[A any]() *StreamSink[A] {
	return &StreamSink[A]{Stream: newOutputStream[A]()}
}

// NewStreamSinkWithCombiner creates a sink that folds together multiple
// sends issued within the same transaction using combine, left-to-right,
// before the network sees a single event.
func NewStreamSinkWithCombiner[A any](combine func(A, A) A) *StreamSink[A] {
	return &StreamSink[A]{Stream: newOutputStream[A](), combine: combine}
}

// Send pushes value into the network. It must not be called from inside a
// listener callback (InCallback != 0); doing so is a fatal misuse.
func (sk *StreamSink[A]) Send(value A) {
	if InCallback() != 0 {
		panic(newMisuseError("wireflow: StreamSink.Send called from inside a callback"))
	}
	RunVoid(func(tx *Transaction) {
		if sk.combine == nil {
			if sk.pendingTx == tx {
				panic(newMisuseError("wireflow: StreamSink.Send called more than once in the same transaction without a combining function"))
			}
			sk.pendingTx = tx
			sk.Stream.send(tx, value)
			return
		}
		if sk.pendingTx == tx {
			if sk.combine == nil {
				panic(newMisuseError("wireflow: StreamSink.Send called more than once in the same transaction without a combining function"))
			}
			sk.pending = sk.combine(sk.pending, value)
			return
		}
		sk.pendingTx = tx
		sk.pending = value
		tx.prioritized(sk.node, func(tx *Transaction) {
			v := sk.pending
			sk.pendingTx = nil
			sk.Stream.send(tx, v)
		})
	})
}

// CellSink is an externally writable Cell: a StreamSink held into a Cell,
// exposing Send directly on the resulting current/next value pair.
type CellSink[A any] struct {
	*Cell[A]
	sink *StreamSink[A]
}

// NewCellSink creates a cell sink with the given initial value.
func NewCellSink[A any](initial A) *CellSink[A] {
	sink := NewStreamSink[A]()
	return Run(func(tx *Transaction) *CellSink[A] {
		return &CellSink[A]{Cell: sink.holdInternal(tx, initial), sink: sink}
	})
}

// NewCellSinkWithCombiner is NewCellSink with a combining function for
// same-transaction sends, as NewStreamSinkWithCombiner is to NewStreamSink.
func NewCellSinkWithCombiner[A any](initial A, combine func(A, A) A) *CellSink[A] {
	sink := NewStreamSinkWithCombiner[A](combine)
	return Run(func(tx *Transaction) *CellSink[A] {
		return &CellSink[A]{Cell: sink.holdInternal(tx, initial), sink: sink}
	})
}

// Send pushes a new value into the cell.
func (cs *CellSink[A]) Send(value A) {
	cs.sink.Send(value)
}
