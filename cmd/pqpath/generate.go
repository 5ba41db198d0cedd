package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/pqpath/builder"
	"github.com/katalvlaran/pqpath/core"
	"github.com/katalvlaran/pqpath/edgelist"
)

var (
	TopologyFlag = &cli.StringFlag{
		Name:  "topology",
		Usage: "graph shape (" + strings.Join(builder.Topologies, ", ") + ")",
		Value: "grid",
	}
	SizeFlag = &cli.IntFlag{
		Name:  "size",
		Usage: "vertex count, or side length for grid",
		Value: 4,
	}
	ProbabilityFlag = &cli.Float64Flag{
		Name:  "prob",
		Usage: "edge probability for the random topology",
		Value: 0.3,
	}
	SeedFlag = &cli.Int64Flag{
		Name:  "seed",
		Usage: "random seed for weights and random edges",
		Value: 1,
	}
	MinWeightFlag = &cli.IntFlag{
		Name:  "min-weight",
		Usage: "smallest whole edge weight",
		Value: 1,
	}
	MaxWeightFlag = &cli.IntFlag{
		Name:  "max-weight",
		Usage: "largest whole edge weight",
		Value: 9,
	}
)

var generateCommand = &cli.Command{
	Action:    generate,
	Name:      "generate",
	Usage:     "Write a synthetic edge list",
	ArgsUsage: "",
	Flags: []cli.Flag{
		TopologyFlag,
		SizeFlag,
		ProbabilityFlag,
		SeedFlag,
		MinWeightFlag,
		MaxWeightFlag,
	},
	Description: `The generate command builds a graph of the chosen shape with whole random
weights and prints it as "from to weight" triples, ready to be piped back
into pqpath. The global --directed flag selects one-way edges.`,
}

func generate(ctx *cli.Context) error {
	cfg, err := buildConfig(ctx)
	if err != nil {
		return err
	}
	lo, hi := ctx.Int(MinWeightFlag.Name), ctx.Int(MaxWeightFlag.Name)
	if lo < 0 || hi < lo {
		return fmt.Errorf("invalid weight range [%d, %d]", lo, hi)
	}

	con, err := builder.ByName(ctx.String(TopologyFlag.Name), ctx.Int(SizeFlag.Name), ctx.Float64(ProbabilityFlag.Name))
	if err != nil {
		return err
	}
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(cfg.Directed)},
		[]builder.BuilderOption{
			builder.WithSeed(ctx.Int64(SeedFlag.Name)),
			builder.WithWeightFn(builder.IntWeight(lo, hi)),
		},
		con,
	)
	if err != nil {
		return err
	}

	return edgelist.Write(ctx.App.Writer, g)
}
