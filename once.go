package wireflow

// Once forwards only the first event fired by s, then unlinks itself so no
// further events are observed or dispatched.
func (s *Stream[A]) Once() *Stream[A] {
	return Run(func(tx *Transaction) *Stream[A] {
		out := newOutputStream[A]()
		var l *Listener
		l = s.listen(out.node, func(tx *Transaction, v A) {
			out.send(tx, v)
			l.Unlisten()
		}, false)
		out.AddCleanup(l)
		return out
	})
}
