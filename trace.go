package wireflow

import (
	"log"
	"strconv"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

// traceSeed feeds newTraceID; it is bumped once per id minted so that every
// id is hashed from a distinct seed. Ids keep only 24 bits of the hash, so
// two distinct seeds can still yield the same id.
var traceSeed atomic.Uint64

// newTraceID mints a short, log-line-friendly correlation id. It exists
// purely to let two concurrent transactions' diagnostics be told apart in
// output; nothing about graph correctness depends on it.
func newTraceID() string {
	seed := traceSeed.Add(1)
	sum := xxhash.Sum64String("wireflow-trace:" + strconv.FormatUint(seed, 36))
	return strconv.FormatUint(sum&0xffffff, 36)
}

func logMisuse(err *MisuseError) {
	log.Printf("wireflow[%s]: %s", err.TraceID, err.Message)
}

// logReplayPanic reports a panic recovered from a listener replaying
// earlier firings during listen(). Per the error taxonomy, this class of
// failure is caught and logged rather than propagated: the newly attached
// listener simply misses the rest of the replay.
func logReplayPanic(traceID string, recovered any) {
	log.Printf("wireflow[%s]: panic while replaying buffered firings: %v", traceID, recovered)
}

// logDeferredFailure reports a panic recovered from a defer/split closure
// running in its own post-transaction. Unlike replay panics these run
// detached from any caller that could observe them, so they are always
// logged rather than ever propagated.
func logDeferredFailure(traceID string, recovered any) {
	log.Printf("wireflow[%s]: panic in deferred transaction: %v", traceID, recovered)
}
