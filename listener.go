package wireflow

import (
	"runtime"
	"sync"
	"weak"
)

// weakHandler is a weak reference to a handlerFunc. The target that holds
// it does not keep the callback alive; the Listener returned to the
// subscriber does. Once the subscriber lets go, the weak reference lapses
// and send() silently skips the dead slot.
type weakHandler struct {
	p weak.Pointer[handlerFunc]
}

func makeWeakHandler(h *handlerFunc) weakHandler {
	return weakHandler{p: weak.Make(h)}
}

// deref returns the live handler, or nil if the strong owner has already
// been collected.
func (w weakHandler) deref() *handlerFunc {
	return w.p.Value()
}

// Listener represents a subscription created by Stream.Listen, Cell.Listen,
// or an internal combinator wiring one stream to another. Dropping the
// last strong reference to a Listener (or calling Unlisten explicitly)
// detaches the edge it represents.
type Listener struct {
	once    sync.Once
	upNode  *node
	target  *target
	handler *handlerFunc // strong owner keeping target's weak ref alive
	keepAlive any        // retains the upstream Stream/Cell for the Listener's lifetime
}

func newListener(upNode *node, t *target, handler *handlerFunc, keepAlive any) *Listener {
	l := &Listener{upNode: upNode, target: t, handler: handler, keepAlive: keepAlive}
	runtime.AddCleanup(l, unlinkOnCleanup, cleanupArgs{node: upNode, target: t})
	return l
}

type cleanupArgs struct {
	node   *node
	target *target
}

func unlinkOnCleanup(a cleanupArgs) {
	a.node.unlinkTo(a.target)
}

// Unlisten detaches this listener from its upstream node. Calling it more
// than once, from any goroutine, is a no-op.
func (l *Listener) Unlisten() {
	l.once.Do(func() {
		l.upNode.unlinkTo(l.target)
	})
}
