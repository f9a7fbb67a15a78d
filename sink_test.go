package wireflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wireflow-dev/wireflow"
)

// a plain StreamSink should refuse a second Send within the same
// transaction when it has no combining function
func TestStreamSinkWithoutCombinerRejectsSecondSendInTransaction(t *testing.T) {
	sink := wireflow.NewStreamSink[int]()
	l := sink.Listen(func(int) {})
	defer l.Unlisten()

	assert.Panics(t, func() {
		wireflow.RunVoid(func(tx *wireflow.Transaction) {
			sink.Send(1)
			sink.Send(2)
		})
	})
}

// a StreamSink with a combining function should fold same-transaction sends
// left to right before the network observes a single event
func TestStreamSinkWithCombinerFoldsSameTransactionSends(t *testing.T) {
	sink := wireflow.NewStreamSinkWithCombiner(func(a, b int) int { return a + b })

	var got []int
	l := sink.Listen(func(v int) { got = append(got, v) })
	defer l.Unlisten()

	wireflow.RunVoid(func(tx *wireflow.Transaction) {
		sink.Send(1)
		sink.Send(2)
		sink.Send(3)
	})

	assert.Equal(t, []int{6}, got)
}

// CellSink should update the cell's current value on each send
func TestCellSinkUpdatesCurrentValue(t *testing.T) {
	sink := wireflow.NewCellSink("a")
	assert.Equal(t, "a", sink.Sample())

	sink.Send("b")
	assert.Equal(t, "b", sink.Sample())
}
