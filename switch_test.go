package wireflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wireflow-dev/wireflow"
)

// Switch should track whichever inner cell the outer cell currently holds
func TestSwitchTracksCurrentInnerCell(t *testing.T) {
	innerA := wireflow.NewCellSink(1)
	innerB := wireflow.NewCellSink(100)

	outer := wireflow.NewCellSink[*wireflow.Cell[int]](innerA.Cell)
	flat := wireflow.Switch(outer.Cell)

	assert.Equal(t, 1, flat.Sample())

	innerA.Send(2)
	assert.Equal(t, 2, flat.Sample())

	outer.Send(innerB.Cell)
	assert.Equal(t, 100, flat.Sample())

	// no longer tracking innerA once switched away
	innerA.Send(3)
	assert.Equal(t, 100, flat.Sample())

	innerB.Send(200)
	assert.Equal(t, 200, flat.Sample())
}

// SwitchS should carry events from whichever inner stream is current
func TestSwitchSTracksCurrentInnerStream(t *testing.T) {
	innerA := wireflow.NewStreamSink[string]()
	innerB := wireflow.NewStreamSink[string]()

	outer := wireflow.NewCellSink[*wireflow.Stream[string]](innerA.Stream)
	flat := wireflow.SwitchS(outer.Cell)

	var got []string
	l := flat.Listen(func(v string) { got = append(got, v) })
	defer l.Unlisten()

	innerA.Send("a1")
	outer.Send(innerB.Stream)
	innerA.Send("a2")
	innerB.Send("b1")

	assert.Equal(t, []string{"a1", "b1"}, got)
}
