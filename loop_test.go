package wireflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wireflow-dev/wireflow"
)

// StreamLoop should forward whatever it is bound to
func TestStreamLoopForwardsBoundStream(t *testing.T) {
	sink := wireflow.NewStreamSink[int]()

	loop := wireflow.Run(func(tx *wireflow.Transaction) *wireflow.StreamLoop[int] {
		l := wireflow.NewStreamLoop[int]()
		l.Loop(sink.Stream)
		return l
	})

	var got []int
	listener := loop.Stream.Listen(func(v int) { got = append(got, v) })
	defer listener.Unlisten()

	sink.Send(1)
	sink.Send(2)

	assert.Equal(t, []int{1, 2}, got)
}

// binding a StreamLoop twice must panic
func TestStreamLoopDoubleBindPanics(t *testing.T) {
	sink := wireflow.NewStreamSink[int]()

	assert.Panics(t, func() {
		wireflow.RunVoid(func(tx *wireflow.Transaction) {
			l := wireflow.NewStreamLoop[int]()
			l.Loop(sink.Stream)
			l.Loop(sink.Stream)
		})
	})
}

// CellLoop should forward whatever cell it is bound to
func TestCellLoopForwardsBoundCell(t *testing.T) {
	sink := wireflow.NewCellSink(0)

	loop := wireflow.Run(func(tx *wireflow.Transaction) *wireflow.CellLoop[int] {
		l := wireflow.NewCellLoop[int](0)
		l.Loop(sink.Cell)
		return l
	})

	assert.Equal(t, 0, loop.Sample())
	sink.Send(5)
	assert.Equal(t, 5, loop.Sample())
}
