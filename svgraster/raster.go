// Implements a raster backend to render SVG paths,
// by wrapping rasterx.
package svgraster

import (
	"image"
	"image/color"

	"github.com/benoitkugler/pathdata/svgdraw"
	"github.com/benoitkugler/pathdata/svgpath"
	"github.com/srwiley/rasterx"
	"github.com/srwiley/scanFT"
)

// assert interface conformance
var (
	_ svgdraw.Driver  = (*Renderer)(nil)
	_ svgdraw.Filler  = filler{}
	_ svgdraw.Stroker = stroker{}
)

type Renderer struct {
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instance
}

// NewRenderer returns a renderer with default values.
// In addition to rasterizing lines like a Scanner,
// it can also rasterize cubic bezier curves.
func NewRenderer(width, height int, scanner rasterx.Scanner) *Renderer {
	return &Renderer{dasher: rasterx.NewDasher(width, height, scanner), filler: rasterx.NewFiller(width, height, scanner)}
}

// RasterPathToImage parses the path data `d` and renders it into a new
// image of size (width, height). The FreeType scanner is used since it
// supports the even-odd fill rule.
func RasterPathToImage(d string, width, height int, style svgdraw.Style, opts ...svgpath.Option) (*image.RGBA, error) {
	path, err := svgdraw.NewPath(svgpath.Parse(d, opts...))
	if err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	scanner := scanFT.NewScannerFT(width, height, scanFT.NewRGBAPainter(img))
	renderer := NewRenderer(width, height, scanner)
	svgdraw.Draw(renderer, path, style, 1.0)
	return img, nil
}

// SetupDrawers implements svgdraw.Driver.
func (rd *Renderer) SetupDrawers(willFill, willStroke bool) (f svgdraw.Filler, s svgdraw.Stroker) {
	if willFill {
		f = filler{rd.filler}
	}
	if willStroke {
		s = stroker{rd.dasher}
	}
	return f, s
}

type filler struct {
	*rasterx.Filler
}

type stroker struct {
	*rasterx.Dasher
}

func (f filler) SetColor(c color.Color, opacity float64) {
	f.Filler.SetColor(rasterx.ApplyOpacity(c, opacity))
}

func (s stroker) SetColor(c color.Color, opacity float64) {
	s.Dasher.SetColor(rasterx.ApplyOpacity(c, opacity))
}

var (
	joinToJoin = [...]rasterx.JoinMode{
		svgdraw.Round:     rasterx.Round,
		svgdraw.Bevel:     rasterx.Bevel,
		svgdraw.Miter:     rasterx.Miter,
		svgdraw.MiterClip: rasterx.MiterClip,
		svgdraw.Arc:       rasterx.Arc,
		svgdraw.ArcClip:   rasterx.ArcClip,
	}

	capToFunc = [...]rasterx.CapFunc{
		svgdraw.ButtCap:      rasterx.ButtCap,
		svgdraw.SquareCap:    rasterx.SquareCap,
		svgdraw.RoundCap:     rasterx.RoundCap,
		svgdraw.CubicCap:     rasterx.CubicCap,
		svgdraw.QuadraticCap: rasterx.QuadraticCap,
	}

	gapToFunc = [...]rasterx.GapFunc{
		svgdraw.FlatGap:      rasterx.FlatGap,
		svgdraw.RoundGap:     rasterx.RoundGap,
		svgdraw.CubicGap:     rasterx.CubicGap,
		svgdraw.QuadraticGap: rasterx.QuadraticGap,
	}
)

func (s stroker) SetStrokeOptions(options svgdraw.StrokeOptions) {
	s.Dasher.SetStroke(
		options.LineWidth, options.Join.MiterLimit, capToFunc[options.Join.LeadLineCap],
		capToFunc[options.Join.TrailLineCap], gapToFunc[options.Join.LineGap],
		joinToJoin[options.Join.LineJoin], options.Dash.Dash, options.Dash.DashOffset,
	)
}
