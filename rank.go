package wireflow

import "math"

// rank encodes a node's topological depth within the current dependency
// graph. Ranks only ever grow: linking a listener downstream of a node
// raises the downstream's rank until it is strictly greater than the
// source's, and that bump propagates transitively.
type rank uint64

// nullRank sorts after every real rank. It is used as the rank of the
// throwaway terminal nodes created for listen() calls that have no further
// downstream: nothing ever needs to grow past them.
const nullRank rank = math.MaxUint64
