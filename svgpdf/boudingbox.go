package svgpdf

import (
	"math"

	"github.com/benoitkugler/pathdata/svgpath"
)

// compute the bouding box of a path, needed to place it on the page

// Rect is an axis aligned rectangle.
type Rect struct {
	XMin, YMin, XMax, YMax float64
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 { return r.XMax - r.XMin }

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 { return r.YMax - r.YMin }

// Union returns the smallest rectangle containing r and s.
func (r Rect) Union(s Rect) Rect {
	return Rect{
		XMin: math.Min(r.XMin, s.XMin),
		YMin: math.Min(r.YMin, s.YMin),
		XMax: math.Max(r.XMax, s.XMax),
		YMax: math.Max(r.YMax, s.YMax),
	}
}

type point struct{ x, y float64 }

type line [2]point

func (l line) criticalPoints() (tX, tY []float64) {
	return nil, nil
}

func (l line) evaluateCurve(t float64) (x, y float64) {
	return bezierLine(l[0].x, l[1].x, t), bezierLine(l[0].y, l[1].y, t)
}

func bezierLine(p0, p1, t float64) float64 {
	return (p1-p0)*t + p0
}

type cubicBezier [4]point

func (cu cubicBezier) criticalPoints() (tX, tY []float64) {
	aX, bX, cX := cubicDerivative(cu[0].x, cu[1].x, cu[2].x, cu[3].x)
	aY, bY, cY := cubicDerivative(cu[0].y, cu[1].y, cu[2].y, cu[3].y)

	return quadraticRoots(aX, bX, cX), quadraticRoots(aY, bY, cY)
}

func (cu cubicBezier) evaluateCurve(t float64) (x, y float64) {
	return bezierSpline(cu[0].x, cu[1].x, cu[2].x, cu[3].x, t), bezierSpline(cu[0].y, cu[1].y, cu[2].y, cu[3].y, t)
}

// cubic polinomial
// x = At^3 + Bt^2 + Ct + D
// where A,B,C,D:
// A = p3 -3 * p2 + 3 * p1 - p0
// B = 3 * p2 - 6 * p1 +3 * p0
// C = 3 * p1 - 3 * p0
// D = p0
func bezierSpline(p0, p1, p2, p3, t float64) float64 {
	return (p3-3*p2+3*p1-p0)*t*t*t +
		(3*p2-6*p1+3*p0)*t*t +
		(3*p1-3*p0)*t +
		(p0)
}

// X' = (3*p3-9*p2+9*p1-3*p0)t^2 + (6*p2-12*p1+6*p0)t + (3*p1-3*p0)
// taken as aX^2 + bX + c  a,b and c are:
func cubicDerivative(p0, p1, p2, p3 float64) (a, b, c float64) {
	return 3*p3 - 9*p2 + 9*p1 - 3*p0, 6*p2 - 12*p1 + 6*p0, 3*p1 - 3*p0
}

// b^2 - 4ac = Determinant
func determinant(a, b, c float64) float64 { return b*b - 4*a*c }

func solve(a, b, c float64, s bool) float64 {
	sign := 1.
	if !s {
		sign = -1.
	}
	return (-b + (math.Sqrt((b*b)-(4*a*c)) * sign)) / (2 * a)
}

func quadraticRoots(a, b, c float64) []float64 {
	d := determinant(a, b, c)
	if d < 0 {
		return nil
	}

	if a == 0 {
		// aX^2 + bX + c well then then this is a simple line
		// x= -c / b
		if b == 0 {
			return nil
		}
		return []float64{-c / b}
	}

	if d == 0 {
		return []float64{solve(a, b, c, true)}
	}
	return []float64{
		solve(a, b, c, true),
		solve(a, b, c, false),
	}
}

type bezier interface {
	// compute the t zeroing the derivative
	criticalPoints() (tX, tY []float64)
	// compute the point a time t
	evaluateCurve(t float64) (x, y float64)
}

func computeBoundingBox(curve bezier) Rect {
	resX, resY := curve.criticalPoints()

	out := Rect{XMin: math.Inf(1), YMin: math.Inf(1), XMax: math.Inf(-1), YMax: math.Inf(-1)}
	// add begin and end point
	for _, t := range append(append(resX, 0, 1), resY...) {
		// filter invalid value
		if !(0 <= t && t <= 1) {
			continue
		}
		x, y := curve.evaluateCurve(t)
		out.XMin = math.Min(x, out.XMin)
		out.YMin = math.Min(y, out.YMin)
		out.XMax = math.Max(x, out.XMax)
		out.YMax = math.Max(y, out.YMax)
	}
	return out
}

// BoundingBox returns the exact extent of the segments returned
// by svgpath.Parse, including the control point free extremums of curves.
// It returns false if there is nothing to draw.
func BoundingBox(segs []svgpath.Segment) (Rect, bool) {
	var (
		out          Rect
		current, sub point
		seen         bool
	)
	for _, seg := range segs {
		p := seg.Params
		var box Rect
		switch seg.Command {
		case svgpath.MoveTo:
			current = point{p[0], p[1]}
			sub = current
			box = Rect{current.x, current.y, current.x, current.y}
		case svgpath.LineTo:
			next := point{p[0], p[1]}
			box = computeBoundingBox(line{current, next})
			current = next
		case svgpath.CubicTo:
			next := point{p[4], p[5]}
			box = computeBoundingBox(cubicBezier{current, {p[0], p[1]}, {p[2], p[3]}, next})
			current = next
		case svgpath.Close:
			current = sub
			continue
		default:
			continue
		}
		if seen {
			out = out.Union(box)
		} else {
			out, seen = box, true
		}
	}
	return out, seen
}
