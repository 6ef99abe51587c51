package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/wildfunctions/graphcalc/pkg/geom"
	"github.com/wildfunctions/graphcalc/pkg/graph"
)

func main() {
	cfg := graph.DefaultConfig()

	var equation string
	flag.StringVar(&equation, "equation", "", "equation as mathjson, e.g. [\"Equal\",\"y\",[\"Power\",\"x\",2]]")
	flag.StringVar(&cfg.Var1, "var1", cfg.Var1, "first plot variable (x-axis)")
	flag.StringVar(&cfg.Var2, "var2", cfg.Var2, "second plot variable (y-axis)")
	flag.Float64Var(&cfg.Box.XMin, "xmin", cfg.Box.XMin, "viewport x minimum")
	flag.Float64Var(&cfg.Box.XMax, "xmax", cfg.Box.XMax, "viewport x maximum")
	flag.Float64Var(&cfg.Box.YMin, "ymin", cfg.Box.YMin, "viewport y minimum")
	flag.Float64Var(&cfg.Box.YMax, "ymax", cfg.Box.YMax, "viewport y maximum")
	flag.Int64Var(&cfg.Depth, "depth", cfg.Depth, "quadtree refinement depth")
	flag.Int64Var(&cfg.SearchDepth, "searchdepth", cfg.SearchDepth, "pre-exploration search depth")
	flag.StringVar(&cfg.Format, "format", cfg.Format, "output format (text, json)")
	flag.Parse()

	if equation == "" {
		fmt.Fprintln(os.Stderr, "error: -equation is required")
		os.Exit(1)
	}
	cfg.Box = geom.Box{XMin: cfg.Box.XMin, XMax: cfg.Box.XMax, YMin: cfg.Box.YMin, YMax: cfg.Box.YMax}

	points, err := graph.GraphEquation(equation, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	report := graph.NewReport(cfg, points)

	switch cfg.Format {
	case "json":
		if err := graph.WriteJSONReport(os.Stdout, report); err != nil {
			fmt.Fprintf(os.Stderr, "error writing JSON: %v\n", err)
			os.Exit(1)
		}
	default:
		graph.WriteTextReport(os.Stdout, report)
	}
}
