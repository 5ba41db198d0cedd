package main

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
)

var tableCommand = &cli.Command{
	Action:    distanceTable,
	Name:      "table",
	Usage:     "Print the distance and path to every vertex",
	ArgsUsage: "<source>",
	Description: `The table command solves from <source> once and prints one row per vertex,
sorted by vertex ID. Unreachable vertices show distance +Inf and no path.`,
}

func distanceTable(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("expected <source>, got %d argument(s)", ctx.NArg())
	}
	source := ctx.Args().First()

	solver, g, err := solve(ctx, source)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetHeader([]string{"Vertex", "Distance", "Path"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	for _, v := range g.Vertices() {
		d, err := solver.DistanceTo(v)
		if err != nil {
			return err
		}
		path := "-"
		if solver.Reachable(v) {
			p, _ := solver.PathTo(v)
			path = formatPath(p)
		}
		table.Append([]string{v, formatDistance(d), path})
	}
	table.Render()

	return nil
}
