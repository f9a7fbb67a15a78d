package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	humanize "github.com/dustin/go-humanize"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/wireflow-dev/wireflow"
)

var (
	widths = []int{1, 10, 100, 1_000}
	depths = []int{1, 10, 100, 1_000}
	iters  = 100
)

func main() {
	flag.Parse()

	f, err := os.Create("default.pgo")
	if err != nil {
		log.Fatal(err)
	}
	pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	log.Printf("warming up")

	benchmarkMapChains(true)
	benchmarkMergeFanIn(true)
}

// benchmarkMapChains times a Send through width independent Map chains of
// the given depth, mirroring the fan-out/depth grid the teacher's engines
// were benchmarked against.
func benchmarkMapChains(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("wireflow Map chains")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range widths {
		for _, d := range depths {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			src := wireflow.NewStreamSink[int]()
			leaves := make([]*wireflow.Stream[int], w)
			for i := 0; i < w; i++ {
				last := src.Stream
				for j := 0; j < d; j++ {
					prev := last
					last = wireflow.Map(prev, addOne)
				}
				leaves[i] = last
			}

			listeners := make([]*wireflow.Listener, w)
			for i, leaf := range leaves {
				listeners[i] = leaf.Listen(func(int) {})
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				src.Send(i)
				tach.AddTime(time.Since(start))
			}

			for _, l := range listeners {
				l.Unlisten()
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("map chain: %d wide x %d deep (%s nodes)", w, d, humanize.Comma(int64(w*d))),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
}

// benchmarkMergeFanIn times a Send through a MergeAll tree of the given
// width, isolating the coalesce/rank-rebuild cost from plain Map dispatch.
func benchmarkMergeFanIn(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("wireflow MergeAll fan-in")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range widths {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		sinks := make([]*wireflow.StreamSink[int], w)
		streams := make([]*wireflow.Stream[int], w)
		for i := range sinks {
			sinks[i] = wireflow.NewStreamSink[int]()
			streams[i] = sinks[i].Stream
		}
		merged := wireflow.MergeAll(streams, func(a, b int) int { return a + b })
		l := merged.Listen(func(int) {})

		for i := 0; i < iters; i++ {
			start := time.Now()
			wireflow.RunVoid(func(tx *wireflow.Transaction) {
				for _, s := range sinks {
					s.Send(i)
				}
			})
			tach.AddTime(time.Since(start))
		}
		l.Unlisten()

		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{
				fmt.Sprintf("merge fan-in: %s sinks", humanize.Comma(int64(w))),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			},
		})
	}

	if shouldRender {
		tbl.Render()
	}
}

func addOne(v int) int { return v + 1 }
