package wireflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wireflow-dev/wireflow"
)

// Once should forward only the first firing, then detach
func TestOnceForwardsOnlyFirstFiring(t *testing.T) {
	sink := wireflow.NewStreamSink[int]()
	first := sink.Stream.Once()

	var got []int
	l := first.Listen(func(v int) { got = append(got, v) })
	defer l.Unlisten()

	sink.Send(1)
	sink.Send(2)
	sink.Send(3)

	assert.Equal(t, []int{1}, got)
}
