package svgdraw

import (
	"errors"
	"fmt"
	"strings"

	"github.com/benoitkugler/pathdata/svgpath"
	"golang.org/x/image/math/fixed"
)

// ErrInvalidSegment is returned when converting a segment which
// is not one of the simplified commands, or has the wrong number of params.
var ErrInvalidSegment = errors.New("svgdraw: invalid segment")

// Operation groups the different path commands
type Operation interface {
	// add itself on the drawer `d`, after applying the transform `M`
	drawTo(d Drawer, M Matrix2D)
}

type MoveTo fixed.Point26_6

type LineTo fixed.Point26_6

type CubicTo [3]fixed.Point26_6

type Close struct{}

// starts a new path at the given point.
func (op MoveTo) drawTo(d Drawer, M Matrix2D) {
	d.Stop(false) // implicit close if currently in path.
	d.Start(M.trMove(op))
}

func (op LineTo) drawTo(d Drawer, M Matrix2D) {
	d.Line(M.trLine(op))
}

func (op CubicTo) drawTo(d Drawer, M Matrix2D) {
	b, c, d_ := M.trCubic(op)
	d.CubeBezier(b, c, d_)
}

func (op Close) drawTo(d Drawer, _ Matrix2D) {
	d.Stop(true)
}

// Path describes a sequence of basic drawing operations, in fixed point coordinates.
type Path []Operation

// NewPath converts the output of svgpath.Parse.
func NewPath(segs []svgpath.Segment) (Path, error) {
	out := make(Path, 0, len(segs))
	for i, seg := range segs {
		p := seg.Params
		arity := -1
		switch seg.Command {
		case svgpath.MoveTo, svgpath.LineTo:
			arity = 2
		case svgpath.CubicTo:
			arity = 6
		case svgpath.Close:
			arity = 0
		}
		if arity != len(p) {
			return nil, fmt.Errorf("%w: %s at index %d", ErrInvalidSegment, seg, i)
		}
		switch seg.Command {
		case svgpath.MoveTo:
			out.Start(fToFixed(p[0], p[1]))
		case svgpath.LineTo:
			out.Line(fToFixed(p[0], p[1]))
		case svgpath.CubicTo:
			out.CubeBezier(fToFixed(p[0], p[1]), fToFixed(p[2], p[3]), fToFixed(p[4], p[5]))
		case svgpath.Close:
			out.Stop(true)
		}
	}
	return out, nil
}

// ToSVGPath returns a string representation of the path
func (p Path) ToSVGPath() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = fmt.Sprintf("M%4.3f,%4.3f", float32(op.X)/64, float32(op.Y)/64)
		case LineTo:
			chunks[i] = fmt.Sprintf("L%4.3f,%4.3f", float32(op.X)/64, float32(op.Y)/64)
		case CubicTo:
			chunks[i] = fmt.Sprintf("C%4.3f,%4.3f,%4.3f,%4.3f,%4.3f,%4.3f", float32(op[0].X)/64, float32(op[0].Y)/64,
				float32(op[1].X)/64, float32(op[1].Y)/64, float32(op[2].X)/64, float32(op[2].Y)/64)
		case Close:
			chunks[i] = "Z"
		}
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}

// Clear zeros the path slice
func (p *Path) Clear() {
	*p = (*p)[:0]
}

// Start starts a new curve at the given point.
func (p *Path) Start(a fixed.Point26_6) {
	*p = append(*p, MoveTo{a.X, a.Y})
}

// Line adds a linear segment to the current curve.
func (p *Path) Line(b fixed.Point26_6) {
	*p = append(*p, LineTo{b.X, b.Y})
}

// CubeBezier adds a cubic segment to the current curve.
func (p *Path) CubeBezier(b, c, d fixed.Point26_6) {
	*p = append(*p, CubicTo{b, c, d})
}

// Stop joins the ends of the path
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}
