package main

import (
	"fmt"

	"github.com/ib-77/bindchain/internal/demo"
	"github.com/ib-77/bindchain/internal/metrics"
	"github.com/ib-77/bindchain/internal/ui"
)

var titles = map[demo.Kind]string{
	demo.Sequence:  "Sequence (list) chain",
	demo.Optional:  "Optional (maybe) chain",
	demo.Annotated: "Annotated value (writer) chain",
}

func printOutcomes(outcomes []demo.Outcome) {
	var current demo.Kind
	for _, o := range outcomes {
		if o.Kind != current {
			if current != "" {
				fmt.Println()
			}
			ui.Header(titles[o.Kind])
			current = o.Kind
		}

		line := fmt.Sprintf("%s -> %s", o.Input, o.Output)
		if o.Present {
			ui.Present(line)
		} else {
			ui.Absent(line)
		}
		for _, entry := range o.Log {
			fmt.Println("    " + ui.DimText(entry))
		}
	}
}

func printMetrics(rec *metrics.Recorder) error {
	samples, err := rec.Samples()
	if err != nil {
		return err
	}

	fmt.Println()
	ui.Header("Transform counters")
	for _, s := range samples {
		fmt.Printf("%s %s/%s %v\n", ui.Label(s.Name), s.Kind, s.Step, s.Value)
	}
	return nil
}
