package wireflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// postAt's actions should all run in ascending key order once the
// transaction's post-first phase has finished, regardless of registration
// order
func TestPostAtRunsInAscendingKeyOrder(t *testing.T) {
	var order []int
	RunVoid(func(tx *Transaction) {
		tx.postAt(2, func(child *Transaction) { order = append(order, 2) })
		tx.postAt(0, func(child *Transaction) { order = append(order, 0) })
		tx.postAt(1, func(child *Transaction) { order = append(order, 1) })
	})

	assert.Equal(t, []int{0, 1, 2}, order)
}

// a second postAt registration at an already-used key should compose after
// the first action rather than replace it
func TestPostAtComposesActionsAtSameKey(t *testing.T) {
	var order []string
	RunVoid(func(tx *Transaction) {
		tx.postAt(0, func(child *Transaction) { order = append(order, "first") })
		tx.postAt(0, func(child *Transaction) { order = append(order, "second") })
	})

	assert.Equal(t, []string{"first", "second"}, order)
}

// each postAt action runs against a freshly created child transaction, not
// the transaction that scheduled it
func TestPostAtRunsAgainstFreshChildTransaction(t *testing.T) {
	var outer, child *Transaction
	RunVoid(func(tx *Transaction) {
		outer = tx
		tx.postAt(0, func(c *Transaction) { child = c })
	})

	assert.NotNil(t, child)
	assert.NotSame(t, outer, child)
}
