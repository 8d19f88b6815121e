// Implements a PDF backend to render SVG paths,
// by wrapping github.com/jung-kurt/gofpdf.
package svgpdf

import (
	"image/color"
	"io"

	"github.com/benoitkugler/pathdata/svgdraw"
	"github.com/benoitkugler/pathdata/svgpath"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/math/fixed"
)

// assert interface conformance
var (
	_ svgdraw.Driver  = Renderer{}
	_ svgdraw.Filler  = (*filler)(nil)
	_ svgdraw.Stroker = (*stroker)(nil)
)

type Renderer struct {
	pdf *gofpdf.Fpdf
}

// implements the common path commands,
// shared by the filler and the stroker
type pather struct {
	pdf *gofpdf.Fpdf
}

// implements the filling operation
type filler struct {
	pather
	useNonZeroWinding bool
}

// implements the stroking operation
type stroker struct {
	pather
}

// NewRenderer return a renderer which will
// write to the given `pdf`.
func NewRenderer(pdf *gofpdf.Fpdf) Renderer {
	return Renderer{pdf: pdf}
}

// SetupDrawers implements svgdraw.Driver.
// Filling and stroking both write the path, since
// gofpdf consumes it when drawing.
func (r Renderer) SetupDrawers(willFill, willStroke bool) (f svgdraw.Filler, s svgdraw.Stroker) {
	if willFill {
		f = &filler{pather: pather{r.pdf}, useNonZeroWinding: true}
	}
	if willStroke {
		s = &stroker{pather{r.pdf}}
	}
	return f, s
}

// RenderPathToPDF parses the path data `d` and writes a one page
// A4 document to `w`, with the path translated to the top left margin.
func RenderPathToPDF(w io.Writer, d string, style svgdraw.Style, opts ...svgpath.Option) error {
	segs := svgpath.Parse(d, opts...)
	path, err := svgdraw.NewPath(segs)
	if err != nil {
		return err
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.AddPage()
	if box, ok := BoundingBox(segs); ok {
		left, top, _, _ := pdf.GetMargins()
		style.Transform = svgdraw.Identity.Translate(left, top).Mult(style.Transform).Translate(-box.XMin, -box.YMin)
	}
	svgdraw.Draw(NewRenderer(pdf), path, style, 1)
	return pdf.Output(w)
}

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

func (p pather) Clear() {}

func (p pather) Start(a fixed.Point26_6) {
	p.pdf.MoveTo(fixedTof(a))
}

func (p pather) Line(b fixed.Point26_6) {
	p.pdf.LineTo(fixedTof(b))
}

func (p pather) CubeBezier(b fixed.Point26_6, c fixed.Point26_6, d fixed.Point26_6) {
	cx0, cy0 := fixedTof(b)
	cx1, cy1 := fixedTof(c)
	x, y := fixedTof(d)
	p.pdf.CurveBezierCubicTo(cx0, cy0, cx1, cy1, x, y)
}

func (p pather) Stop(closeLoop bool) {
	if closeLoop {
		p.pdf.ClosePath()
	}
}

// returns the 8 bits components of `c`, and
// its alpha as a fraction
func rgb(c color.Color) (r, g, b int, alpha float64) {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return int(nc.R), int(nc.G), int(nc.B), float64(nc.A) / 255
}

func (f *filler) SetColor(c color.Color, opacity float64) {
	r, g, b, alpha := rgb(c)
	f.pdf.SetFillColor(r, g, b)
	f.pdf.SetAlpha(opacity*alpha, "Normal")
}

func (f *filler) Draw() {
	styleStr := "f*"
	if f.useNonZeroWinding {
		styleStr = "f"
	}
	f.pdf.DrawPath(styleStr)
}

func (f *filler) SetWinding(useNonZeroWinding bool) {
	f.useNonZeroWinding = useNonZeroWinding
}

func (s *stroker) SetColor(c color.Color, opacity float64) {
	r, g, b, alpha := rgb(c)
	s.pdf.SetDrawColor(r, g, b)
	s.pdf.SetAlpha(opacity*alpha, "Normal")
}

func (s *stroker) Draw() {
	s.pdf.DrawPath("D")
}

var (
	joinStyles = [...]string{
		svgdraw.Arc:       "round",
		svgdraw.Round:     "round",
		svgdraw.Bevel:     "bevel",
		svgdraw.Miter:     "miter",
		svgdraw.MiterClip: "miter",
		svgdraw.ArcClip:   "round",
	}

	capStyles = [...]string{
		svgdraw.NilCap:       "butt",
		svgdraw.ButtCap:      "butt",
		svgdraw.SquareCap:    "square",
		svgdraw.RoundCap:     "round",
		svgdraw.CubicCap:     "round",
		svgdraw.QuadraticCap: "round",
	}
)

// SetStrokeOptions maps the options to the closest PDF line styles.
// PDF has no leading cap and no gap mode: the trailing cap is used at both ends.
func (s *stroker) SetStrokeOptions(options svgdraw.StrokeOptions) {
	s.pdf.SetLineWidth(float64(options.LineWidth) / 64)
	s.pdf.SetLineJoinStyle(joinStyles[options.Join.LineJoin])
	s.pdf.SetLineCapStyle(capStyles[options.Join.TrailLineCap])
	s.pdf.SetDashPattern(options.Dash.Dash, options.Dash.DashOffset)
}
