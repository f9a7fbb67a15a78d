package wireflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wireflow-dev/wireflow"
)

// should hold the initial value until the first update commits
func TestCellHoldStartsAtInitial(t *testing.T) {
	sink := wireflow.NewStreamSink[int]()
	c := sink.Stream.Hold(0)
	assert.Equal(t, 0, c.Sample())

	sink.Send(5)
	assert.Equal(t, 5, c.Sample())
}

// should not observe an update fired in the same transaction as the sample
// (the "delay law": snapshot sees the pre-update value)
func TestCellSnapshotSeesPreUpdateValue(t *testing.T) {
	sink := wireflow.NewStreamSink[int]()
	c := sink.Stream.Hold(1)

	trigger := wireflow.NewStreamSink[struct{}]()
	seen := wireflow.Snapshot(trigger.Stream, c)

	var got []int
	l := seen.Listen(func(v int) { got = append(got, v) })
	defer l.Unlisten()

	wireflow.RunVoid(func(tx *wireflow.Transaction) {
		sink.Send(2)
		trigger.Send(struct{}{})
	})

	assert.Equal(t, []int{1}, got)
	assert.Equal(t, 2, c.Sample())
}

// Value should replay the current value immediately, then follow updates
func TestCellValueReplaysThenFollows(t *testing.T) {
	sink := wireflow.NewStreamSink[int]()
	c := sink.Stream.Hold(9)

	var got []int
	l := c.Listen(func(v int) { got = append(got, v) })
	defer l.Unlisten()

	sink.Send(10)

	assert.Equal(t, []int{9, 10}, got)
}

// CellMap should recompute f whenever the source cell updates
func TestCellMapTracksSource(t *testing.T) {
	sink := wireflow.NewCellSink(2)
	doubled := wireflow.CellMap(sink.Cell, func(v int) int { return v * 2 })

	assert.Equal(t, 4, doubled.Sample())
	sink.Send(3)
	assert.Equal(t, 6, doubled.Sample())
}
