package svgpath

import "math"

// simplifier holds the state needed to reduce
// absolute segments to move, line, cubic and close commands
type simplifier struct {
	out []Segment

	curX, curY         float64 // current point
	subpathX, subpathY float64 // start of the current subpath
	ctrlX, ctrlY       float64 // last control point, for S and T
	last               Command // last input command, before rewriting
}

// elevate returns the cubic equivalent to the quadratic curve
// from the current point to (x, y), with control point (qx, qy)
func (s *simplifier) elevate(qx, qy, x, y float64) Segment {
	return Segment{Command: CubicTo, Params: []float64{
		s.curX + 2*(qx-s.curX)/3,
		s.curY + 2*(qy-s.curY)/3,
		x + 2*(qx-x)/3,
		y + 2*(qy-y)/3,
		x, y,
	}}
}

// reflect returns the reflection of the last control point through the current point,
// or the current point itself if the previous command is not one of `family`.
func (s *simplifier) reflect(family ...Command) (x, y float64) {
	for _, cmd := range family {
		if s.last == cmd {
			return s.curX + (s.curX - s.ctrlX), s.curY + (s.curY - s.ctrlY)
		}
	}
	return s.curX, s.curY
}

func (s *simplifier) arc(p []float64) {
	rx, ry := math.Abs(p[0]), math.Abs(p[1])
	x, y := p[5], p[6]
	if rx == 0 || ry == 0 {
		// straight line, encoded as a flat cubic
		s.out = append(s.out, Segment{Command: CubicTo, Params: []float64{s.curX, s.curY, x, y, x, y}})
		s.curX, s.curY = x, y
	} else if s.curX != x || s.curY != y {
		s.out = append(s.out, arcToBeziers(s.curX, s.curY, x, y, p[3] != 0, p[4] != 0, rx, ry, p[2])...)
		s.curX, s.curY = x, y
	}
	// an arc to the current point is dropped
}

func (s *simplifier) add(seg Segment) {
	p := seg.Params
	switch seg.Command {
	case MoveTo:
		s.out = append(s.out, seg)
		s.curX, s.curY = p[0], p[1]
		s.subpathX, s.subpathY = s.curX, s.curY
	case LineTo:
		s.out = append(s.out, seg)
		s.curX, s.curY = p[0], p[1]
	case CubicTo:
		s.out = append(s.out, seg)
		s.ctrlX, s.ctrlY = p[2], p[3]
		s.curX, s.curY = p[4], p[5]
	case HorizontalTo:
		s.out = append(s.out, Segment{Command: LineTo, Params: []float64{p[0], s.curY}})
		s.curX = p[0]
	case VerticalTo:
		s.out = append(s.out, Segment{Command: LineTo, Params: []float64{s.curX, p[0]}})
		s.curY = p[0]
	case SmoothCubicTo:
		c1x, c1y := s.reflect(CubicTo, SmoothCubicTo)
		s.out = append(s.out, Segment{Command: CubicTo, Params: []float64{c1x, c1y, p[0], p[1], p[2], p[3]}})
		s.ctrlX, s.ctrlY = p[0], p[1]
		s.curX, s.curY = p[2], p[3]
	case QuadTo:
		s.out = append(s.out, s.elevate(p[0], p[1], p[2], p[3]))
		s.ctrlX, s.ctrlY = p[0], p[1]
		s.curX, s.curY = p[2], p[3]
	case SmoothQuadTo:
		qx, qy := s.reflect(QuadTo, SmoothQuadTo)
		s.out = append(s.out, s.elevate(qx, qy, p[0], p[1]))
		s.ctrlX, s.ctrlY = qx, qy
		s.curX, s.curY = p[0], p[1]
	case ArcTo:
		s.arc(p)
	case Close:
		s.out = append(s.out, seg)
		s.curX, s.curY = s.subpathX, s.subpathY
	}
	s.last = seg.Command
}

// simplify reduces absolute segments to move, line, cubic and close commands.
// Segments already simplified are returned unchanged.
func simplify(segs []Segment) []Segment {
	s := simplifier{out: make([]Segment, 0, len(segs))}
	for _, seg := range segs {
		s.add(seg)
	}
	return s.out
}
