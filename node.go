package wireflow

import (
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
)

// handlerFunc is the type-erased shape every listener callback is stored
// as internally. Combinators wrap their typed callbacks in one of these and
// type-assert the payload back on the way out.
type handlerFunc func(*Transaction, any)

// listenersLock guards every node's target list and rank field. It is
// always acquired either standalone or from inside the transaction lock,
// never the other way around.
var listenersLock sync.Mutex

// node is a vertex in the dependency DAG. Its outgoing targets are the
// listener edges the scheduler orders propagation by.
type node struct {
	rank    rank
	targets []*target
}

// target is an outgoing edge: a weak reference to a handler plus the
// downstream node the handler's dispatch is prioritized at. The handler is
// weak because the edge is owned by the upstream node, not by whoever is
// listening; the subscriber's Listener holds the strong reference that
// keeps it alive (see listener.go).
type target struct {
	node    *node
	handler weakHandler
}

func newNode() *node {
	return &node{}
}

// newTerminalNode returns a node used only as the downstream anchor for a
// listen() call that has no further propagation of its own. Its rank is
// the sentinel maximum, so ensureBiggerThan never needs to grow anything
// past it.
func newTerminalNode() *node {
	return &node{rank: nullRank}
}

// linkTo raises downstream's rank if necessary to keep the source-before-downstream
// invariant, then records a new outgoing edge from n to downstream. It
// reports whether any node's rank changed as a result, so the caller can
// mark its transaction as needing a priority-queue rebuild.
func (n *node) linkTo(handler *handlerFunc, downstream *node) (rankChanged bool, t *target) {
	listenersLock.Lock()
	defer listenersLock.Unlock()

	rankChanged = ensureBiggerThan(downstream, n.rank, mapset.NewThreadUnsafeSet[*node]())
	t = &target{node: downstream, handler: makeWeakHandler(handler)}
	n.targets = append(n.targets, t)
	return rankChanged, t
}

// unlinkTo removes a target from n's outgoing edges. It is idempotent: a
// target that isn't present (already removed, or never linked) is a no-op.
func (n *node) unlinkTo(t *target) {
	listenersLock.Lock()
	defer listenersLock.Unlock()

	for i, x := range n.targets {
		if x == t {
			n.targets = append(n.targets[:i:i], n.targets[i+1:]...)
			return
		}
	}
}

// targetsSnapshot returns a copy of n's outgoing edges, safe to range over
// without holding listenersLock for the duration of dispatch.
func (n *node) targetsSnapshot() []*target {
	listenersLock.Lock()
	defer listenersLock.Unlock()
	out := make([]*target, len(n.targets))
	copy(out, n.targets)
	return out
}

// ensureBiggerThan raises n's rank to limit+1 if it isn't already bigger
// than limit, then recurses into n's own listeners so the invariant holds
// transitively. visited guards against the transient cycles the library
// allows during loop construction; a node already visited this call is
// left alone rather than walked again.
//
// Must be called with listenersLock held.
func ensureBiggerThan(n *node, limit rank, visited mapset.Set[*node]) bool {
	if n.rank > limit || visited.Contains(n) {
		return false
	}
	visited.Add(n)
	n.rank = limit + 1

	changed := true
	for _, t := range n.targets {
		if ensureBiggerThan(t.node, n.rank, visited) {
			changed = true
		}
	}
	return changed
}
