package main

import (
	"context"
	"log"
	"os"

	"github.com/YanqingXu/govue/reactive"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

const widthKey = "width"

func main() {
	cmd := &cli.Command{
		Name:  "govue-demo",
		Usage: "Run a small reactive graph and print its dependency snapshot",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  widthKey,
				Usage: "number of independent counters to wire up",
				Value: 3,
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	reactive.Reset()

	width := int(cmd.Uint(widthKey))
	log.Printf("wiring up %d counters", width)

	counters := make([]*reactive.Ref, width)
	totals := make([]*reactive.Computed, width)
	for i := range counters {
		counters[i] = reactive.NewRef(0)
		c := counters[i]
		totals[i] = reactive.NewComputed(func(reactive.Value) reactive.Value {
			return c.Value().(int) * 2
		})
	}

	grandTotal := reactive.NewComputed(func(reactive.Value) reactive.Value {
		sum := 0
		for _, t := range totals {
			sum += t.Value().(int)
		}
		return sum
	})

	var updates int64
	reactive.Watch(func(reactive.Value) {
		updates++
		log.Printf("grand total is now %s", humanize.Comma(int64(grandTotal.Value().(int))))
	})

	for i, c := range counters {
		c.SetValue(i + 1)
	}

	log.Printf("ran %s watch invocations", humanize.Comma(updates))
	renderSnapshot()
	return nil
}

func renderSnapshot() {
	tbl := tablewriter.NewWriter(os.Stdout)
	tbl.SetHeader([]string{"target", "key", "effects", "computed deps"})

	for _, row := range reactive.Snapshot() {
		tbl.Append([]string{
			row.TargetID,
			row.Key,
			humanize.Comma(int64(row.EffectCount)),
			humanize.Comma(int64(row.ComputedDeps)),
		})
	}
	tbl.Render()
}
