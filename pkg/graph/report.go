package graph

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/wildfunctions/graphcalc/pkg/geom"
)

// Report summarizes one GraphEquation call for the CLI's text/JSON
// output modes, mirroring the engine's FinalReport shape.
type Report struct {
	Config       Config       `json:"config"`
	ContourCount int          `json:"contour_count"`
	PointCount   int          `json:"point_count"`
	Points       []geom.Point `json:"points"`
	Flat         []float64    `json:"flat"`
}

// NewReport builds a Report from a GraphEquation result.
func NewReport(cfg Config, points []geom.Point) Report {
	contours := 0
	for _, p := range points {
		if p.X > 1e300 && p.Y > 1e300 {
			contours++
		}
	}
	return Report{
		Config:       cfg,
		ContourCount: contours,
		PointCount:   len(points),
		Points:       points,
		Flat:         Encode(points),
	}
}

// WriteTextReport writes a human-readable summary with plain Fprintf
// lines, one field per line.
func WriteTextReport(w io.Writer, r Report) {
	fmt.Fprintf(w, "Vars:      %s, %s\n", r.Config.Var1, r.Config.Var2)
	fmt.Fprintf(w, "Viewport:  [%g, %g] x [%g, %g]\n",
		r.Config.Box.XMin, r.Config.Box.XMax, r.Config.Box.YMin, r.Config.Box.YMax)
	fmt.Fprintf(w, "Depth:     %d (search_depth %d)\n", r.Config.Depth, r.Config.SearchDepth)
	fmt.Fprintf(w, "Contours:  %d\n", r.ContourCount)
	fmt.Fprintf(w, "Points:    %d\n", r.PointCount)
}

// WriteJSONReport writes the report as JSON.
func WriteJSONReport(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
