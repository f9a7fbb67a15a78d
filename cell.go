package wireflow

import "sync"

// Cell is a time-varying value: a stream of updates plus current/next-value
// state. Reads inside a transaction (sampleNoTrans, used by snapshot) see
// the current value; the pending next value only becomes current at the
// transaction's last phase.
type Cell[A any] struct {
	updatesStream *Stream[A]

	current A
	next    A
	hasNext bool

	lazyOnce sync.Once
	lazyInit func() A
}

// holdInternal builds a Cell from a coalesced update stream, applying
// lastFiringOnly so at most one update per transaction ever reaches
// current/next. Must run inside tx's transaction.
func (s *Stream[A]) holdInternal(tx *Transaction, initial A) *Cell[A] {
	coalesced := s.lastFiringOnly()
	c := &Cell[A]{updatesStream: coalesced, current: initial}

	l := coalesced.listen(newTerminalNode(), func(tx *Transaction, v A) {
		if !c.hasNext {
			c.hasNext = true
			tx.last(func() {
				c.lazyOnce.Do(func() {})
				c.current = c.next
				c.hasNext = false
			})
		}
		c.next = v
	}, false)
	coalesced.AddCleanup(l)

	return c
}

// Hold builds a Cell that starts at initial and takes on each value fired
// by s, committed at the end of the transaction the event fired in.
func (s *Stream[A]) Hold(initial A) *Cell[A] {
	return Run(func(tx *Transaction) *Cell[A] {
		return s.holdInternal(tx, initial)
	})
}

// HoldLazy is Hold, except the initial value is computed on first
// observation instead of eagerly at construction time.
func (s *Stream[A]) HoldLazy(initial func() A) *Cell[A] {
	return Run(func(tx *Transaction) *Cell[A] {
		c := s.holdInternal(tx, *new(A))
		c.lazyInit = initial
		return c
	})
}

func (c *Cell[A]) resolveLazy() {
	if c.lazyInit != nil {
		c.lazyOnce.Do(func() {
			c.current = c.lazyInit()
		})
	}
}

// sampleNoTrans reads current without opening a transaction. Combinators
// that already run inside one (snapshot's handler, most notably) use this
// so the "delay law" holds: an event's snapshot observes the pre-update
// value regardless of how many simultaneous firings occurred.
func (c *Cell[A]) sampleNoTrans() A {
	c.resolveLazy()
	return c.current
}

// Sample reads the cell's current value, starting a transaction if none is
// active.
func (c *Cell[A]) Sample() A {
	return Run(func(tx *Transaction) A {
		return c.sampleNoTrans()
	})
}

// Lazy is a deferred, memoized computation, returned by SampleLazy.
type Lazy[A any] struct {
	once sync.Once
	fn   func() A
	val  A
}

// Get evaluates the lazy computation on first call and caches the result.
func (l *Lazy[A]) Get() A {
	l.once.Do(func() { l.val = l.fn() })
	return l.val
}

// SampleLazy returns a Lazy that, when forced, samples the cell's current
// value at that time rather than at the moment SampleLazy was called.
func (c *Cell[A]) SampleLazy() *Lazy[A] {
	return &Lazy[A]{fn: c.Sample}
}

// Updates returns the stream of committed value changes, without an
// initial replay of the current value.
func (c *Cell[A]) Updates() *Stream[A] {
	return c.updatesStream
}

// Value returns a stream that fires the cell's current value once, in the
// transaction Value is called in, then follows with every subsequent
// update - the stream view of a cell used internally by Listen. Only
// listeners attached within that same transaction see the initial value.
func (c *Cell[A]) Value() *Stream[A] {
	return Run(func(tx *Transaction) *Stream[A] {
		out := newOutputStream[A]()
		tx.prioritized(out.node, func(tx *Transaction) {
			out.send(tx, c.sampleNoTrans())
		})
		l := c.updatesStream.listen(out.node, func(tx *Transaction, v A) {
			out.send(tx, v)
		}, false)
		out.AddCleanup(l)
		return out
	})
}

// Listen subscribes handler to the cell's current value, called
// immediately, and then to every subsequent update.
func (c *Cell[A]) Listen(handler func(A)) *Listener {
	return Run(func(tx *Transaction) *Listener {
		return c.Value().Listen(handler)
	})
}
