package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/YanqingXu/govue/reactive"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
)

var (
	widths     = []int{1, 10, 100, 1_000}
	depths     = []int{1, 10, 100}
	iterations = 1_000
)

func main() {
	log.Print("starting propagation benchmark, please wait...")
	defer log.Print("finished propagation benchmark")

	tbl := table.NewWriter()
	tbl.SetTitle("write -> propagate -> notify")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range widths {
		for _, d := range depths {
			tbl.AppendRow(benchmarkOnce(w, d))
		}
	}

	tbl.Render()
}

// benchmarkOnce builds w independent chains of d chained Computeds on top
// of a shared ref, attaches one effect per chain, and times src.SetValue
// across iterations runs.
func benchmarkOnce(width, depth int) table.Row {
	reactive.Reset()

	src := reactive.NewRef(0)
	for i := 0; i < width; i++ {
		var last any = src
		for j := 0; j < depth; j++ {
			prev := last
			last = reactive.NewComputed(func(reactive.Value) reactive.Value {
				return valueOf(prev).(int) + 1
			})
		}
		reactive.Watch(func(reactive.Value) { valueOf(last) })
	}

	tach := tachymeter.New(&tachymeter.Config{Size: iterations})
	for i := 0; i < iterations; i++ {
		start := time.Now()
		src.SetValue(src.Value().(int) + 1)
		tach.AddTime(time.Since(start))
	}

	calc := tach.Calc()
	return table.Row{
		fmt.Sprintf("propagate: %d * %d", width, depth),
		calc.Time.Avg,
		calc.Time.Min,
		calc.Time.P75,
		calc.Time.P99,
		calc.Time.Max,
	}
}

func valueOf(x any) reactive.Value {
	switch v := x.(type) {
	case *reactive.Ref:
		return v.Value()
	case *reactive.Computed:
		return v.Value()
	default:
		panic("unknown node type")
	}
}
