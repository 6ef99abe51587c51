// Package geom holds the small geometric value types shared by the
// quadtree, solver and stitcher: an axis-aligned viewport box and a 2-D
// point.
package geom

// Point is a point in the (x, y) plane.
type Point struct {
	X, Y float64
}

// Box is an axis-aligned rectangle with XMin < XMax, YMin < YMax.
type Box struct {
	XMin, XMax, YMin, YMax float64
}

// Quadrant returns the i-th quadrant sub-box using the 0=SW, 1=SE, 2=NW,
// 3=NE indexing.
func (b Box) Quadrant(i int) Box {
	xMid := (b.XMin + b.XMax) / 2
	yMid := (b.YMin + b.YMax) / 2
	switch i {
	case 0: // SW
		return Box{XMin: b.XMin, XMax: xMid, YMin: b.YMin, YMax: yMid}
	case 1: // SE
		return Box{XMin: xMid, XMax: b.XMax, YMin: b.YMin, YMax: yMid}
	case 2: // NW
		return Box{XMin: b.XMin, XMax: xMid, YMin: yMid, YMax: b.YMax}
	case 3: // NE
		return Box{XMin: xMid, XMax: b.XMax, YMin: yMid, YMax: b.YMax}
	default:
		panic("geom: invalid quadrant index")
	}
}

// Corner returns the i-th corner using the same 0=SW, 1=SE, 2=NW, 3=NE
// indexing as Quadrant.
func (b Box) Corner(i int) Point {
	switch i {
	case 0:
		return Point{X: b.XMin, Y: b.YMin}
	case 1:
		return Point{X: b.XMax, Y: b.YMin}
	case 2:
		return Point{X: b.XMin, Y: b.YMax}
	case 3:
		return Point{X: b.XMax, Y: b.YMax}
	default:
		panic("geom: invalid corner index")
	}
}

// Center returns the box's midpoint.
func (b Box) Center() Point {
	return Point{X: (b.XMin + b.XMax) / 2, Y: (b.YMin + b.YMax) / 2}
}

// Contains reports whether p lies within the closed rectangle.
func (b Box) Contains(p Point) bool {
	return p.X >= b.XMin && p.X <= b.XMax && p.Y >= b.YMin && p.Y <= b.YMax
}
