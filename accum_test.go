package wireflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wireflow-dev/wireflow"
)

// Accum should fold each firing into a running Cell of state
func TestAccumFoldsRunningState(t *testing.T) {
	sink := wireflow.NewStreamSink[int]()
	sum := wireflow.Accum(sink.Stream, 0, func(a, s int) int { return a + s })

	assert.Equal(t, 0, sum.Sample())
	sink.Send(1)
	assert.Equal(t, 1, sum.Sample())
	sink.Send(2)
	assert.Equal(t, 3, sum.Sample())
	sink.Send(3)
	assert.Equal(t, 6, sum.Sample())
}

// Collect should emit an output per firing while also threading state
// forward, same shape as Accum but stream-producing
func TestCollectEmitsRunningTotals(t *testing.T) {
	sink := wireflow.NewStreamSink[int]()
	running := wireflow.Collect(sink.Stream, 0, func(a, s int) (int, int) {
		next := a + s
		return next, next
	})

	var got []int
	l := running.Listen(func(v int) { got = append(got, v) })
	defer l.Unlisten()

	sink.Send(1)
	sink.Send(2)
	sink.Send(3)

	assert.Equal(t, []int{1, 3, 6}, got)
}
