package wireflow

import (
	"container/heap"
	"sort"
	"sync"
	"sync/atomic"

	mapset "github.com/deckarep/golang-set/v2"
)

// txMu is the process-wide transaction lock. It serializes transitions of
// currentTx (start, commit); the onStart hook list has its own lock,
// onStartMu. Scheduling within an
// already-running transaction does not reacquire it: user callbacks run on
// the invoking goroutine without contending on this lock, matching the
// single logical instant the engine promises.
var txMu sync.Mutex
var currentTx *Transaction

// inCallback counts re-entrant handler invocations that replay earlier
// firings during listen. While non-zero, sinks refuse Send.
var inCallback atomic.Int32

// InCallback reports the current re-entrancy depth. Sinks use it to detect
// and refuse sends issued from inside a handler.
func InCallback() int32 {
	return inCallback.Load()
}

var onStartMu sync.Mutex
var onStartHooks []func()

// OnStart registers a hook invoked exactly once per outermost transaction,
// before its body runs. It returns an unregister function; calling it
// after the hook has already fired has no effect on transactions already
// under way.
func OnStart(hook func()) (unregister func()) {
	onStartMu.Lock()
	defer onStartMu.Unlock()
	onStartHooks = append(onStartHooks, hook)
	idx := len(onStartHooks) - 1
	return func() {
		onStartMu.Lock()
		defer onStartMu.Unlock()
		if idx < len(onStartHooks) {
			onStartHooks[idx] = nil
		}
	}
}

// invokeOnStartHooks runs every registered hook once. Run only calls this
// on the path that starts a brand new outermost transaction (currentTx ==
// nil); a hook that itself calls Run finds currentTx already set and takes
// the reuse branch below, which never reaches this function again, so hooks
// cannot be re-entered without a separate guard flag here.
func invokeOnStartHooks() {
	onStartMu.Lock()
	hooks := append([]func(){}, onStartHooks...)
	onStartMu.Unlock()

	for _, h := range hooks {
		if h != nil {
			h()
		}
	}
}

// Transaction is the propagation instant: the prioritized queue that
// drives dispatch, plus the last/first-post/post phases that run once the
// queue drains.
type Transaction struct {
	heap    entryHeap
	entries mapset.Set[*entry]
	toRegen bool

	lastQueue      []func()
	firstPostQueue []func()

	postMu      sync.Mutex
	postActions map[int]func(*Transaction)
}

func newTransaction() *Transaction {
	return &Transaction{
		entries: mapset.NewThreadUnsafeSet[*entry](),
	}
}

// Run executes f inside a transaction, returning its value. If a
// transaction is already active, f runs against it directly (re-entrant
// Run). Otherwise a new transaction is started, OnStart hooks fire, f runs,
// and the transaction is closed (drain, last, first-post, post phases) no
// matter how f returns, including via panic.
func Run[T any](f func(tx *Transaction) T) T {
	txMu.Lock()
	if tx := currentTx; tx != nil {
		txMu.Unlock()
		return f(tx)
	}
	tx := newTransaction()
	currentTx = tx
	txMu.Unlock()

	invokeOnStartHooks()

	defer func() {
		tx.close()
		txMu.Lock()
		currentTx = nil
		txMu.Unlock()
	}()

	return f(tx)
}

// RunVoid is Run for actions with no return value.
func RunVoid(action func(tx *Transaction)) {
	Run(func(tx *Transaction) struct{} {
		action(tx)
		return struct{}{}
	})
}

// Post schedules action to run after the current transaction's drain has
// completed (the first-post phase). It must be called while a transaction
// is active.
func Post(action func()) {
	txMu.Lock()
	tx := currentTx
	txMu.Unlock()
	if tx == nil {
		panic(newMisuseError("wireflow: Post called with no active transaction"))
	}
	tx.Post(action)
}

// Post is the Transaction-scoped form of the package-level Post.
func (tx *Transaction) Post(action func()) {
	tx.firstPostQueue = append(tx.firstPostQueue, action)
}

// postAt schedules action to run in its own fresh transaction after the
// first-post phase, keyed by an integer ordered ascending. Writing a second
// action at an already-used key composes it after the first rather than
// replacing it. Split uses this to fan a single collection event out into
// one transaction per element, in element order.
func (tx *Transaction) postAt(key int, action func(*Transaction)) {
	tx.postMu.Lock()
	defer tx.postMu.Unlock()
	if tx.postActions == nil {
		tx.postActions = map[int]func(*Transaction){}
	}
	if existing, ok := tx.postActions[key]; ok {
		tx.postActions[key] = func(t *Transaction) {
			existing(t)
			action(t)
		}
	} else {
		tx.postActions[key] = action
	}
}

// prioritized schedules action to run at n's current rank. It participates
// in whatever ordering guarantees the drain loop provides: rank ascending,
// then insertion sequence ascending within a rank.
func (tx *Transaction) prioritized(n *node, action func(*Transaction)) {
	e := &entry{node: n, rank: n.rank, seq: nextSeq(), action: action}
	heap.Push(&tx.heap, e)
	tx.entries.Add(e)
}

// setNeedsRegenerating marks the transaction's queue as stale: the next
// drain iteration will rebuild it from the entries set using each entry's
// node's current rank before dequeuing anything further.
func (tx *Transaction) setNeedsRegenerating() {
	tx.toRegen = true
}

// last registers a zero-arg action to run once the prioritized queue has
// fully drained, in the order registered.
func (tx *Transaction) last(action func()) {
	tx.lastQueue = append(tx.lastQueue, action)
}

func (tx *Transaction) rebuild() {
	tx.toRegen = false
	rebuilt := make(entryHeap, 0, tx.entries.Cardinality())
	for e := range tx.entries.Iter() {
		e.rank = e.node.rank
		rebuilt = append(rebuilt, e)
	}
	heap.Init(&rebuilt)
	tx.heap = rebuilt
}

func (tx *Transaction) drain() {
	for {
		if tx.toRegen {
			tx.rebuild()
		}
		if tx.heap.Len() == 0 {
			return
		}
		e := heap.Pop(&tx.heap).(*entry)
		tx.entries.Remove(e)
		e.action(tx)
	}
}

func (tx *Transaction) runLast() {
	q := tx.lastQueue
	tx.lastQueue = nil
	for _, a := range q {
		a()
	}
}

func (tx *Transaction) runFirstPost() {
	txMu.Lock()
	currentTx = nil
	txMu.Unlock()

	q := tx.firstPostQueue
	tx.firstPostQueue = nil
	for _, a := range q {
		a()
	}

	txMu.Lock()
	currentTx = tx
	txMu.Unlock()
}

func (tx *Transaction) runPostMap() {
	tx.postMu.Lock()
	actions := tx.postActions
	tx.postActions = nil
	tx.postMu.Unlock()

	if len(actions) == 0 {
		return
	}

	keys := make([]int, 0, len(actions))
	for k := range actions {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	for _, k := range keys {
		child := newTransaction()
		txMu.Lock()
		currentTx = child
		txMu.Unlock()

		actions[k](child)
		child.close()

		txMu.Lock()
		currentTx = tx
		txMu.Unlock()
	}
}

// close runs the drain, last, first-post, and post phases in order. It is
// always run to completion by Run's deferred call, even if f panicked.
func (tx *Transaction) close() {
	tx.drain()
	tx.runLast()
	tx.runFirstPost()
	tx.runPostMap()
}
