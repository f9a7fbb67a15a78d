package wireflow

// Switch flattens a cell-of-cells into a cell that always reflects the
// value of whichever inner cell is current, re-subscribing every time the
// outer cell picks a new inner one.
func Switch[A any](cc *Cell[*Cell[A]]) *Cell[A] {
	return Run(func(tx *Transaction) *Cell[A] {
		out := newOutputStream[A]()

		var inner *Listener
		hookInto := func(c *Cell[A]) {
			if inner != nil {
				inner.Unlisten()
			}
			inner = c.Updates().listen(out.node, func(tx *Transaction, v A) {
				out.send(tx, v)
			}, false)
		}

		hookInto(cc.sampleNoTrans())
		l := cc.Updates().listen(out.node, func(tx *Transaction, c *Cell[A]) {
			hookInto(c)
			out.send(tx, c.sampleNoTrans())
		}, false)
		out.AddCleanup(l)

		return out.holdInternal(tx, cc.sampleNoTrans().sampleNoTrans())
	})
}

// SwitchS flattens a cell-of-streams into a single stream that carries
// events from whichever inner stream is current, re-subscribing every time
// the outer cell picks a new inner stream.
func SwitchS[A any](cs *Cell[*Stream[A]]) *Stream[A] {
	return Run(func(tx *Transaction) *Stream[A] {
		out := newOutputStream[A]()

		var inner *Listener
		hookInto := func(s *Stream[A]) {
			if inner != nil {
				inner.Unlisten()
			}
			inner = s.listen(out.node, func(tx *Transaction, v A) {
				out.send(tx, v)
			}, true)
		}

		hookInto(cs.sampleNoTrans())
		l := cs.Updates().listen(out.node, func(tx *Transaction, s *Stream[A]) {
			hookInto(s)
		}, false)
		out.AddCleanup(l)

		return out
	})
}
