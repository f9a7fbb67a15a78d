package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v3"
	"github.com/wireflow-dev/wireflow"
)

func main() {
	cmd := &cli.Command{
		Name:  "wireflowctl",
		Usage: "Run the reference scenarios for the wireflow propagation engine",
		Commands: []*cli.Command{
			{Name: "map", Usage: "sink.map(x*2)", Action: runMap},
			{Name: "merge", Usage: "a.merge(b) right-biased vs a.merge(b, l+r)", Action: runMerge},
			{Name: "snapshot", Usage: "sink.hold(0).snapshot pairs", Action: runSnapshot},
			{Name: "accum", Usage: "sink.accum(0, a+s)", Action: runAccum},
			{Name: "defer", Usage: "sink.defer() crosses a transaction boundary", Action: runDefer},
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func runMap(ctx context.Context, cmd *cli.Command) error {
	sink := wireflow.NewStreamSink[int]()
	mapped := wireflow.Map(sink.Stream, func(v int) int { return v * 2 })
	l := mapped.Listen(func(v int) { fmt.Println(v) })
	defer l.Unlisten()

	sink.Send(1)
	sink.Send(2)
	sink.Send(3)
	return nil
}

func runMerge(ctx context.Context, cmd *cli.Command) error {
	a := wireflow.NewStreamSink[string]()
	b := wireflow.NewStreamSink[string]()

	rightBiased := a.Stream.Merge(b.Stream)
	lr := a.Stream.MergeWith(b.Stream, func(l, r string) string { return l + r })

	l1 := rightBiased.Listen(func(v string) { fmt.Println("right-biased:", v) })
	defer l1.Unlisten()
	l2 := lr.Listen(func(v string) { fmt.Println("folded:", v) })
	defer l2.Unlisten()

	wireflow.RunVoid(func(tx *wireflow.Transaction) {
		a.Send("L")
		b.Send("R")
	})
	return nil
}

func runSnapshot(ctx context.Context, cmd *cli.Command) error {
	sink := wireflow.NewStreamSink[int]()
	cell := sink.Stream.Hold(0)
	snap := wireflow.SnapshotWith(sink.Stream, cell, func(a, b int) [2]int { return [2]int{a, b} })

	l := snap.Listen(func(v [2]int) { fmt.Println(v) })
	defer l.Unlisten()

	sink.Send(1)
	sink.Send(2)
	return nil
}

func runAccum(ctx context.Context, cmd *cli.Command) error {
	sink := wireflow.NewStreamSink[int]()
	total := wireflow.Accum(sink.Stream, 0, func(a, s int) int { return a + s })

	l := total.Listen(func(v int) { fmt.Println(v) })
	defer l.Unlisten()

	sink.Send(3)
	sink.Send(4)
	sink.Send(5)
	return nil
}

func runDefer(ctx context.Context, cmd *cli.Command) error {
	sink := wireflow.NewStreamSink[int]()
	deferred := sink.Stream.Defer()

	l := deferred.Listen(func(v int) { fmt.Println("deferred:", v) })
	defer l.Unlisten()

	wireflow.RunVoid(func(tx *wireflow.Transaction) {
		sink.Send(10)
	})
	wireflow.RunVoid(func(tx *wireflow.Transaction) {
		sink.Send(20)
	})
	return nil
}
