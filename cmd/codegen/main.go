package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v3"
	"github.com/wireflow-dev/wireflow/cmd/codegen/templates"
)

const (
	arityKey = "arity"
	outKey   = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "codegen",
		Usage: "Preview generated LiftN combinator source",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  arityKey,
				Usage: "Highest arity to generate (2..N)",
				Value: 8,
			},
			&cli.StringFlag{
				Name:  outKey,
				Usage: "Path to write the preview to",
				Value: "cmd/codegen/lift_gen.preview.go",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// generate writes a preview of the LiftN family for review; lift_gen.go
// itself is committed by hand and is not overwritten by this tool. Run it
// after adding a new arity to sanity-check the shape before hand-merging.
func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("codegen: previewing LiftN sources")
	defer func() {
		log.Printf("codegen: finished in %v", time.Since(start))
	}()

	maxArity := int(cmd.Uint(arityKey))
	out := cmd.String(outKey)

	var sb strings.Builder
	sb.WriteString("package templates_preview\n\n")
	for arity := 2; arity <= maxArity; arity++ {
		sb.WriteString(templates.LiftGen(arity))
		sb.WriteString("\n")
	}

	if err := os.WriteFile(out, []byte(sb.String()), 0644); err != nil {
		return err
	}
	log.Printf("codegen: wrote %s", out)
	return nil
}
