package wireflow

// Stream is a source of discrete events within transactions. It owns a
// node in the dependency graph, a list of cleanup listeners run when the
// stream itself is finalized, and a per-transaction firings buffer used to
// replay events to listeners attached after the events were sent.
type Stream[A any] struct {
	node *node

	cleanups []*Listener
	retained []*handlerFunc // keeps otherwise-unowned handlers reachable

	firings []A
}

func newOutputStream[A any]() *Stream[A] {
	return &Stream[A]{node: newNode()}
}

// AddCleanup registers a listener to be unlistened when this stream is
// finalized. Combinators use it to keep their upstream subscription alive
// for exactly as long as their output stream is reachable.
func (s *Stream[A]) AddCleanup(l *Listener) {
	s.cleanups = append(s.cleanups, l)
}

func (s *Stream[A]) retain(h *handlerFunc) {
	s.retained = append(s.retained, h)
}

// send records value as a firing of this transaction and schedules
// dispatch to every live listener target at that target's downstream rank.
func (s *Stream[A]) send(tx *Transaction, value A) {
	if len(s.firings) == 0 {
		tx.last(func() { s.firings = nil })
	}
	s.firings = append(s.firings, value)

	for _, t := range s.node.targetsSnapshot() {
		hp := t.handler.deref()
		if hp == nil {
			continue
		}
		h := *hp
		dn := t.node
		v := value
		tx.prioritized(dn, func(tx *Transaction) {
			h(tx, v)
		})
	}
}

// listen is the internal primitive behind every public Listen/combinator
// wiring: link self's node to downstream carrying handler, then, unless
// suppressed, replay any values already fired on self this transaction so
// the new listener sees them exactly once, at its own rank.
func (s *Stream[A]) listen(downstream *node, handler func(*Transaction, A), suppressEarlierFirings bool) *Listener {
	tx := currentTransactionOrPanic("listen")

	wrapped := handlerFunc(func(tx *Transaction, v any) { handler(tx, v.(A)) })
	hp := &wrapped
	changed, t := s.node.linkTo(hp, downstream)
	if changed {
		tx.setNeedsRegenerating()
	}

	if !suppressEarlierFirings && len(s.firings) > 0 {
		buffered := append([]A(nil), s.firings...)
		tx.prioritized(downstream, func(tx *Transaction) {
			inCallback.Add(1)
			defer inCallback.Add(-1)
			func() {
				defer func() {
					if r := recover(); r != nil {
						logReplayPanic(newTraceID(), r)
					}
				}()
				for _, v := range buffered {
					wrapped(tx, v)
				}
			}()
		})
	}

	return newListener(s.node, t, hp, s)
}

// Listen subscribes handler to every future firing of s, starting a
// transaction if none is active. The returned Listener detaches the
// subscription when Unlisten is called or the Listener is collected.
func (s *Stream[A]) Listen(handler func(A)) *Listener {
	return Run(func(tx *Transaction) *Listener {
		return s.listen(newTerminalNode(), func(_ *Transaction, v A) { handler(v) }, false)
	})
}

// ListenWeak is Listen, except the returned Listener does not keep s
// reachable on its own: once nothing else references s, both s and the
// subscription are eligible for collection together.
func (s *Stream[A]) ListenWeak(handler func(A)) *Listener {
	return Run(func(tx *Transaction) *Listener {
		l := s.listen(newTerminalNode(), func(_ *Transaction, v A) { handler(v) }, false)
		l.keepAlive = nil
		return l
	})
}

func currentTransactionOrPanic(op string) *Transaction {
	txMu.Lock()
	tx := currentTx
	txMu.Unlock()
	if tx == nil {
		panic(newMisuseError("wireflow: " + op + " called with no active transaction"))
	}
	return tx
}
