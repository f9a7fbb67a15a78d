package wireflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wireflow-dev/wireflow"
)

// Defer should re-emit each event in a fresh transaction, after the
// transaction it originally fired in has finished
func TestDeferReemitsInFreshTransaction(t *testing.T) {
	sink := wireflow.NewStreamSink[int]()
	deferred := sink.Stream.Defer()

	var order []string
	l := deferred.Listen(func(v int) {
		order = append(order, "deferred")
		assert.Equal(t, 0, wireflow.InCallback())
	})
	defer l.Unlisten()

	sink.Send(1)

	assert.Equal(t, []string{"deferred"}, order)
}

// Split should fire each element of a collection event as its own event,
// each in its own freshly opened transaction
func TestSplitFiresEachElement(t *testing.T) {
	sink := wireflow.NewStreamSink[[]int]()
	split := wireflow.Split(sink.Stream)

	var got []int
	l := split.Listen(func(v int) { got = append(got, v) })
	defer l.Unlisten()

	sink.Send([]int{1, 2, 3})

	assert.ElementsMatch(t, []int{1, 2, 3}, got)
}
