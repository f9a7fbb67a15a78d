package wireflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wireflow-dev/wireflow"
)

// a.Merge(b) firing simultaneously should emit only b's value (right-biased)
func TestMergeSimultaneousIsRightBiased(t *testing.T) {
	a := wireflow.NewStreamSink[string]()
	b := wireflow.NewStreamSink[string]()
	merged := a.Stream.Merge(b.Stream)

	var got []string
	l := merged.Listen(func(v string) { got = append(got, v) })
	defer l.Unlisten()

	wireflow.RunVoid(func(tx *wireflow.Transaction) {
		a.Send("L")
		b.Send("R")
	})

	assert.Equal(t, []string{"R"}, got)
}

// a.MergeWith(b, f) firing simultaneously should fold both values with f
func TestMergeWithFoldsSimultaneousFirings(t *testing.T) {
	a := wireflow.NewStreamSink[string]()
	b := wireflow.NewStreamSink[string]()
	merged := a.Stream.MergeWith(b.Stream, func(l, r string) string { return l + r })

	var got []string
	l := merged.Listen(func(v string) { got = append(got, v) })
	defer l.Unlisten()

	wireflow.RunVoid(func(tx *wireflow.Transaction) {
		a.Send("L")
		b.Send("R")
	})

	assert.Equal(t, []string{"LR"}, got)
}

// non-simultaneous firings should each produce their own emission
func TestMergeSeparateTransactionsBothFire(t *testing.T) {
	a := wireflow.NewStreamSink[int]()
	b := wireflow.NewStreamSink[int]()
	merged := a.Stream.Merge(b.Stream)

	var got []int
	l := merged.Listen(func(v int) { got = append(got, v) })
	defer l.Unlisten()

	a.Send(1)
	b.Send(2)

	assert.Equal(t, []int{1, 2}, got)
}

// MergeAll should fold every simultaneous firing across the whole set
func TestMergeAllFoldsAllSimultaneousFirings(t *testing.T) {
	sinks := []*wireflow.StreamSink[int]{
		wireflow.NewStreamSink[int](),
		wireflow.NewStreamSink[int](),
		wireflow.NewStreamSink[int](),
	}
	streams := make([]*wireflow.Stream[int], len(sinks))
	for i, s := range sinks {
		streams[i] = s.Stream
	}
	merged := wireflow.MergeAll(streams, func(l, r int) int { return l + r })

	var got []int
	l := merged.Listen(func(v int) { got = append(got, v) })
	defer l.Unlisten()

	wireflow.RunVoid(func(tx *wireflow.Transaction) {
		sinks[0].Send(1)
		sinks[1].Send(2)
		sinks[2].Send(3)
	})

	assert.Equal(t, []int{6}, got)
}
