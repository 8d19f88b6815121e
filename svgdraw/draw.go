// Given a parsed path, implements how to
// draw it on screen.
// This requires a driver implementing the actual draw operations,
// such as a rasterizer to output .png images or a pdf writer.
package svgdraw

import (
	"image/color"

	"golang.org/x/image/math/fixed"
)

// Drawer receives the operations of one path, already transformed
// into device coordinates, and paints them on Draw.
type Drawer interface {
	// Clear forgets the operations of the previous path.
	Clear()
	// Start opens a subpath at a.
	Start(a fixed.Point26_6)
	Line(b fixed.Point26_6)
	CubeBezier(b, c, d fixed.Point26_6)
	// Stop ends the current subpath, joining it to its start
	// if closeLoop is true.
	Stop(closeLoop bool)
	SetColor(c color.Color, opacity float64)
	Draw()
}

// Filler paints the inside of a path.
type Filler interface {
	Drawer
	// SetWinding selects the non-zero rule, or the even-odd rule
	// when useNonZeroWinding is false.
	SetWinding(useNonZeroWinding bool)
}

// Stroker paints the outline of a path.
type Stroker interface {
	Drawer
	SetStrokeOptions(options StrokeOptions)
}

// Driver is a painting backend.
type Driver interface {
	// SetupDrawers is called once per path. A drawer not requested
	// is returned nil. When both are requested, the filler receives
	// the operations before the stroker.
	SetupDrawers(willFill, willStroke bool) (Filler, Stroker)
}

type DashOptions struct {
	Dash       []float64 // nil or empty for a solid line
	DashOffset float64
}

// JoinMode selects how two stroked segments meet.
type JoinMode uint8

const (
	Arc JoinMode = iota
	Round
	Bevel
	Miter
	MiterClip
	ArcClip
)

// CapMode selects how the ends of an open subpath are drawn.
type CapMode uint8

const (
	NilCap CapMode = iota // falls back to the other end, or ButtCap
	ButtCap
	SquareCap
	RoundCap
	CubicCap
	QuadraticCap
)

// GapMode selects how the outer side of a join is closed
// when the miter limit is exceeded.
type GapMode uint8

const (
	NilGap GapMode = iota
	FlatGap
	RoundGap
	CubicGap
	QuadraticGap
)

// keywords of the stroke-linejoin, stroke-linecap and
// stroke-linegap properties
var (
	joinKeywords = map[string]JoinMode{
		"arc":        Arc,
		"round":      Round,
		"bevel":      Bevel,
		"miter":      Miter,
		"miter-clip": MiterClip,
		"arc-clip":   ArcClip,
	}
	capKeywords = map[string]CapMode{
		"butt":      ButtCap,
		"square":    SquareCap,
		"round":     RoundCap,
		"cubic":     CubicCap,
		"quadratic": QuadraticCap,
	}
	gapKeywords = map[string]GapMode{
		"flat":      FlatGap,
		"round":     RoundGap,
		"cubic":     CubicGap,
		"quadratic": QuadraticGap,
	}
)

type JoinOptions struct {
	MiterLimit   fixed.Int26_6
	LineJoin     JoinMode
	TrailLineCap CapMode
	LeadLineCap  CapMode // TrailLineCap is used if NilCap
	LineGap      GapMode
}

// StrokeOptions is the resolved stroking state handed to a Stroker.
type StrokeOptions struct {
	LineWidth fixed.Int26_6
	Join      JoinOptions
	Dash      DashOptions
}

// Style describes how a path is painted.
// A nil color disables the corresponding operation.
type Style struct {
	FillOpacity, LineOpacity float64
	LineWidth                float64
	UseNonZeroWinding        bool

	Join                    JoinOptions
	Dash                    DashOptions
	FillerColor, LinerColor color.Color

	Transform Matrix2D
}

// DefaultStyle sets the default Style to fill black, winding rule,
// full opacity, no stroke, ButtCap line end and Bevel line connect.
var DefaultStyle = Style{
	FillOpacity:       1.0,
	LineOpacity:       1.0,
	LineWidth:         2.0,
	UseNonZeroWinding: true,
	Join: JoinOptions{
		MiterLimit:   fixed.Int26_6(4 * 64),
		LineJoin:     Bevel,
		TrailLineCap: ButtCap,
		LineGap:      FlatGap,
	},
	FillerColor: color.NRGBA{0x00, 0x00, 0x00, 0xff},
	Transform:   Identity,
}

// SetTarget sets the Transform matrix to draw the rectangle
// (x, y, w, h) of the path coordinates within (0, 0, width, height).
func (s *Style) SetTarget(x, y, w, h, width, height float64) {
	s.Transform = Identity.Scale(width/w, height/h).Translate(-x, -y)
}

// Draw the path into the driver `d`, applying the style transform.
func Draw(d Driver, p Path, style Style, opacity float64) {
	filler, stroker := d.SetupDrawers(style.FillerColor != nil, style.LinerColor != nil)
	if filler != nil { // nil color disable filling
		filler.Clear()
		filler.SetWinding(style.UseNonZeroWinding)

		for _, op := range p {
			op.drawTo(filler, style.Transform)
		}
		filler.Stop(false)

		filler.SetColor(style.FillerColor, style.FillOpacity*opacity)
		filler.Draw()
		filler.SetWinding(true) // default is true
	}

	if stroker != nil { // nil color disable lining
		stroker.Clear()

		lineGap := style.Join.LineGap
		if lineGap == NilGap {
			lineGap = DefaultStyle.Join.LineGap
		}
		lineCap := style.Join.TrailLineCap
		if lineCap == NilCap {
			lineCap = DefaultStyle.Join.TrailLineCap
		}
		leadLineCap := lineCap
		if style.Join.LeadLineCap != NilCap {
			leadLineCap = style.Join.LeadLineCap
		}
		stroker.SetStrokeOptions(StrokeOptions{
			LineWidth: fixed.Int26_6(style.LineWidth * 64),
			Join: JoinOptions{
				MiterLimit:   style.Join.MiterLimit,
				LineJoin:     style.Join.LineJoin,
				LeadLineCap:  leadLineCap,
				TrailLineCap: lineCap,
				LineGap:      lineGap,
			},
			Dash: style.Dash,
		})

		for _, op := range p {
			op.drawTo(stroker, style.Transform)
		}
		stroker.Stop(false)

		stroker.SetColor(style.LinerColor, style.LineOpacity*opacity)
		stroker.Draw()
	}
}
