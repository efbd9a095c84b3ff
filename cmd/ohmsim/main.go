package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"ohmsim/pkg/netlist"
)

func main() {
	input := flag.String("i", "", "netlist deck file")
	output := flag.String("o", "out.csv", "CSV output file")
	plotFile := flag.String("plot", "", "optional PNG plot of the meter readings")
	steps := flag.Int("steps", 0, "override step count from the .tran card")
	flag.Parse()

	if *input == "" {
		log.Fatal("usage: ohmsim -i deck.cir [-o out.csv] [-plot out.png]")
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		log.Fatalf("reading %s: %v", *input, err)
	}
	deck, err := netlist.Parse(string(data))
	if err != nil {
		log.Fatalf("parsing %s: %v", *input, err)
	}
	ckt, err := deck.Build()
	if err != nil {
		log.Fatalf("building %q: %v", deck.Title, err)
	}

	n := deck.Steps()
	if *steps > 0 {
		n = *steps
	}
	fmt.Printf("%s: %d nodes, %d branches (%d kept), %d meters, %d steps\n",
		deck.Title, ckt.Nodes(), ckt.Branches(), ckt.Kept(), ckt.Meters(), n)

	out, err := os.Create(*output)
	if err != nil {
		log.Fatalf("creating %s: %v", *output, err)
	}
	defer out.Close()

	for i := 0; i < deck.Settle; i++ {
		ckt.SettleSwitch()
	}

	traces := make([]plotter.XYs, ckt.Meters())
	dt := ckt.TimeStep()
	for i := 0; i < n; i++ {
		t := float64(i) * dt
		for br, w := range deck.Waves {
			ckt.SetSource(br, w.At(t))
		}
		ckt.Step()
		ckt.UpdateMeters()

		fmt.Fprintf(out, "%.9g", t)
		for mt := 1; mt <= ckt.Meters(); mt++ {
			fmt.Fprintf(out, ",%.9g", ckt.Meter(mt))
			traces[mt-1] = append(traces[mt-1], plotter.XY{X: t, Y: ckt.Meter(mt)})
		}
		fmt.Fprintln(out)
	}
	fmt.Printf("wrote %s\n", *output)

	if *plotFile != "" {
		if err := savePlot(*plotFile, deck.Title, traces); err != nil {
			log.Fatalf("plotting: %v", err)
		}
		fmt.Printf("wrote %s\n", *plotFile)
	}
}

func savePlot(path, title string, traces []plotter.XYs) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "t (s)"
	for i, pts := range traces {
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("meter %d trace: %v", i+1, err)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("meter %d", i+1), line)
	}
	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}
