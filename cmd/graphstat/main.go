package main

import (
	"fmt"
	"log"
	"os"
	"time"

	humanize "github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/wireflow-dev/wireflow"
)

type graphTestConfig struct {
	name       string
	width      int
	depth      int
	mergeFanIn int
	iterations int
}

func main() {
	log.Print("Starting graphstat, please wait...")
	defer log.Print("Finished graphstat")

	cfgs := []graphTestConfig{
		{name: "narrow deep", width: 5, depth: 500, mergeFanIn: 1, iterations: 2000},
		{name: "wide shallow", width: 1000, depth: 5, mergeFanIn: 1, iterations: 500},
		{name: "balanced", width: 100, depth: 15, mergeFanIn: 1, iterations: 2000},
		{name: "merge heavy", width: 100, depth: 5, mergeFanIn: 25, iterations: 2000},
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"config", "width", "depth", "merge fan-in",
		"build time", "sends", "dispatch time", "sends/sec",
	})

	for _, cfg := range cfgs {
		log.Printf("building '%s'", cfg.name)

		buildStart := time.Now()
		sinks, leaf := buildGraph(cfg)
		buildTime := time.Since(buildStart)

		count := 0
		l := leaf.Listen(func(int) { count++ })
		defer l.Unlisten()

		dispatchStart := time.Now()
		for i := 0; i < cfg.iterations; i++ {
			idx := i % len(sinks)
			sinks[idx].Send(i)
		}
		dispatchTime := time.Since(dispatchStart)

		rate := float64(cfg.iterations) / dispatchTime.Seconds()

		table.Append([]string{
			cfg.name,
			humanize.Comma(int64(cfg.width)),
			humanize.Comma(int64(cfg.depth)),
			humanize.Comma(int64(cfg.mergeFanIn)),
			fmt.Sprint(buildTime),
			humanize.Comma(int64(cfg.iterations)),
			fmt.Sprint(dispatchTime),
			humanize.Comma(int64(rate)),
		})
	}

	table.Render()
}

// buildGraph constructs width independent Map chains of the given depth,
// merges every mergeFanIn of them into a single point, and finally merges
// all of those into one leaf stream.
func buildGraph(cfg graphTestConfig) (sinks []*wireflow.StreamSink[int], leaf *wireflow.Stream[int]) {
	sinks = make([]*wireflow.StreamSink[int], cfg.width)
	chains := make([]*wireflow.Stream[int], cfg.width)

	for i := 0; i < cfg.width; i++ {
		sinks[i] = wireflow.NewStreamSink[int]()
		last := sinks[i].Stream
		for j := 0; j < cfg.depth; j++ {
			last = wireflow.Map(last, func(v int) int { return v + 1 })
		}
		chains[i] = last
	}

	groups := []*wireflow.Stream[int]{}
	for i := 0; i < len(chains); i += cfg.mergeFanIn {
		end := i + cfg.mergeFanIn
		if end > len(chains) {
			end = len(chains)
		}
		groups = append(groups, wireflow.MergeAll(chains[i:end], func(a, b int) int { return a + b }))
	}

	leaf = wireflow.MergeAll(groups, func(a, b int) int { return a + b })
	return sinks, leaf
}
