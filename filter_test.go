package wireflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wireflow-dev/wireflow"
)

// Filter should forward only values for which pred is true
func TestFilterForwardsMatchingValues(t *testing.T) {
	sink := wireflow.NewStreamSink[int]()
	evens := sink.Stream.Filter(func(v int) bool { return v%2 == 0 })

	var got []int
	l := evens.Listen(func(v int) { got = append(got, v) })
	defer l.Unlisten()

	sink.Send(1)
	sink.Send(2)
	sink.Send(3)
	sink.Send(4)

	assert.Equal(t, []int{2, 4}, got)
}

// Gate should forward s's values only while the cell currently holds true
func TestGateForwardsWhileOpen(t *testing.T) {
	sink := wireflow.NewStreamSink[int]()
	gateSink := wireflow.NewCellSink(false)
	gated := sink.Stream.Gate(gateSink.Cell)

	var got []int
	l := gated.Listen(func(v int) { got = append(got, v) })
	defer l.Unlisten()

	sink.Send(1)
	gateSink.Send(true)
	sink.Send(2)
	gateSink.Send(false)
	sink.Send(3)

	assert.Equal(t, []int{2}, got)
}
