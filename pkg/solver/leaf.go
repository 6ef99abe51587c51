// Package solver computes per-leaf contour geometry: the edge-crossing
// points of an interesting quadtree cell and the single interior vertex
// that best agrees with the locally linearised implicit surface, via 2-D
// dual contouring.
package solver

import (
	"math"

	"github.com/wildfunctions/graphcalc/pkg/calc"
	"github.com/wildfunctions/graphcalc/pkg/geom"
)

const pseudoInverseTolerance = 1e-7

// edges lists the four cell edges as (startCorner, endCorner) pairs, in
// the bottom/left/right/top order used for edge-crossing collection.
var edges = [4][2]int{
	{0, 1}, // bottom: SW -> SE
	{0, 2}, // left:   SW -> NW
	{1, 3}, // right:  SE -> NE
	{2, 3}, // top:    NW -> NE
}

// ComputeLeaf implements the leaf geometry solver for a cell whose four
// corner values (SW, SE, NW, NE order) are given in corners, using the
// already cheating-gradient-wrapped gradient df. It returns the collected
// edge points and the chosen interior vertex.
func ComputeLeaf(box geom.Box, corners [4]float64, df calc.Func2Vec) ([]geom.Point, geom.Point) {
	edgePoints := collectEdgePoints(box, corners)
	if len(edgePoints) == 0 {
		return nil, box.Center()
	}

	mean := meanPoint(edgePoints)
	normals := make([]calc.Vec2, len(edgePoints))
	for i, p := range edgePoints {
		normals[i] = normalize(df(p.X, p.Y))
	}

	ata, atb := normalEquations(edgePoints, normals, mean)

	if x, ok := pseudoInverseSolve(toMatrix2(ata), atb[:], pseudoInverseTolerance); ok {
		candidate := geom.Point{X: mean.X + x[0], Y: mean.Y + x[1]}
		if box.Contains(candidate) {
			return edgePoints, candidate
		}
	} else {
		if box.Contains(mean) {
			return edgePoints, mean
		}
	}

	vertex, ok := bestConstrainedSolution(box, edgePoints, normals, ata, atb, mean)
	if !ok {
		return edgePoints, geom.Point{X: box.XMin, Y: box.YMin}
	}
	return edgePoints, vertex
}

func collectEdgePoints(box geom.Box, v [4]float64) []geom.Point {
	var points []geom.Point
	for i := 0; i < 4; i++ {
		if v[i] == 0 {
			points = append(points, box.Corner(i))
		}
	}
	for _, e := range edges {
		a, b := e[0], e[1]
		va, vb := v[a], v[b]
		// An infinite corner value never counts as a sign change.
		if va*vb < 0 && !math.IsInf(va, 0) && !math.IsInf(vb, 0) {
			start, end := box.Corner(a), box.Corner(b)
			t := 0.5
			if vb != va {
				t = -va / (vb - va)
			}
			points = append(points, geom.Point{
				X: start.X + t*(end.X-start.X),
				Y: start.Y + t*(end.Y-start.Y),
			})
		}
	}
	return points
}

func meanPoint(points []geom.Point) geom.Point {
	var sx, sy float64
	for _, p := range points {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(points))
	return geom.Point{X: sx / n, Y: sy / n}
}

func normalize(v calc.Vec2) calc.Vec2 {
	length := math.Hypot(v.X, v.Y)
	if length == 0 {
		return v
	}
	return calc.Vec2{X: v.X / length, Y: v.Y / length}
}

// normalEquations builds the 2x2 normal matrix A^T A = sum n_i n_i^T and
// right-hand side A^T b = sum (n_i . (p_i - m)) n_i.
func normalEquations(points []geom.Point, normals []calc.Vec2, mean geom.Point) (ata [2][2]float64, atb [2]float64) {
	for i, n := range normals {
		ata[0][0] += n.X * n.X
		ata[0][1] += n.X * n.Y
		ata[1][0] += n.X * n.Y
		ata[1][1] += n.Y * n.Y

		dx := points[i].X - mean.X
		dy := points[i].Y - mean.Y
		dot := n.X*dx + n.Y*dy
		atb[0] += dot * n.X
		atb[1] += dot * n.Y
	}
	return ata, atb
}

// bestConstrainedSolution tries the four Lagrange-augmented 3x3 solves,
// one per cell edge, and returns the valid candidate with the least
// quadratic error. ok is false if all four are rejected.
func bestConstrainedSolution(box geom.Box, points []geom.Point, normals []calc.Vec2, ata [2][2]float64, atb [2]float64, mean geom.Point) (geom.Point, bool) {
	type candidate struct {
		axis  int
		value float64
	}
	candidates := []candidate{
		{axis: 0, value: box.XMin},
		{axis: 0, value: box.XMax},
		{axis: 1, value: box.YMin},
		{axis: 1, value: box.YMax},
	}

	bestErr := math.Inf(1)
	var best geom.Point
	found := false

	for i, cand := range candidates {
		a3 := [3][3]float64{
			{ata[0][0], ata[0][1], 0},
			{ata[1][0], ata[1][1], 0},
			{0, 0, 0},
		}
		a3[2][cand.axis] = 1
		a3[cand.axis][2] = 1
		b3 := [3]float64{atb[0], atb[1], cand.value - pick(mean, cand.axis)}

		x, ok := pseudoInverseSolve(toMatrix3(a3), b3[:], pseudoInverseTolerance)
		if !ok {
			continue
		}
		vertex := geom.Point{X: mean.X + x[0], Y: mean.Y + x[1]}

		var valid bool
		if i <= 1 {
			valid = vertex.Y >= box.YMin && vertex.Y <= box.YMax
		} else {
			valid = vertex.X >= box.XMin && vertex.X <= box.XMax
		}
		if !valid {
			continue
		}

		err := solutionError(points, normals, vertex)
		if err < bestErr {
			bestErr = err
			best = vertex
			found = true
		}
	}

	return best, found
}

func pick(p geom.Point, axis int) float64 {
	if axis == 0 {
		return p.X
	}
	return p.Y
}

func solutionError(points []geom.Point, normals []calc.Vec2, vertex geom.Point) float64 {
	sum := 0.0
	for i, n := range normals {
		dx := points[i].X - vertex.X
		dy := points[i].Y - vertex.Y
		dot := n.X*dx + n.Y*dy
		sum += dot * dot
	}
	return sum
}

func toMatrix2(a [2][2]float64) [][]float64 {
	return [][]float64{{a[0][0], a[0][1]}, {a[1][0], a[1][1]}}
}

func toMatrix3(a [3][3]float64) [][]float64 {
	return [][]float64{
		{a[0][0], a[0][1], a[0][2]},
		{a[1][0], a[1][1], a[1][2]},
		{a[2][0], a[2][1], a[2][2]},
	}
}
