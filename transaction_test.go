package wireflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wireflow-dev/wireflow"
)

// OnStart hooks should fire exactly once per outermost transaction
func TestOnStartFiresOncePerOutermostTransaction(t *testing.T) {
	var calls int
	unregister := wireflow.OnStart(func() { calls++ })
	defer unregister()

	wireflow.RunVoid(func(tx *wireflow.Transaction) {})
	assert.Equal(t, 1, calls)

	wireflow.RunVoid(func(tx *wireflow.Transaction) {})
	assert.Equal(t, 2, calls)
}

// a hook that itself opens a transaction reuses the outer one instead of
// starting a new one, so hooks are not re-entered
func TestOnStartHookTriggeringNestedRunDoesNotRefireHooks(t *testing.T) {
	var calls int
	unregister := wireflow.OnStart(func() {
		calls++
		wireflow.RunVoid(func(tx *wireflow.Transaction) {})
	})
	defer unregister()

	wireflow.RunVoid(func(tx *wireflow.Transaction) {})

	assert.Equal(t, 1, calls)
}

// unregistering a hook stops it from firing on later transactions
func TestOnStartUnregisterStopsFutureFirings(t *testing.T) {
	var calls int
	unregister := wireflow.OnStart(func() { calls++ })

	wireflow.RunVoid(func(tx *wireflow.Transaction) {})
	assert.Equal(t, 1, calls)

	unregister()

	wireflow.RunVoid(func(tx *wireflow.Transaction) {})
	assert.Equal(t, 1, calls)
}
