package svgdraw

import (
	"errors"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/image/math/fixed"
)

var errParamMismatch = errors.New("svgdraw: param mismatch")

// ParseStyle applies the `style` attribute like declaration `decl`,
// such as "fill:none;stroke:red;stroke-width:3", on top of `base`.
// Unknown properties are ignored.
func ParseStyle(base Style, decl string) (Style, error) {
	for _, pair := range strings.Split(decl, ";") {
		kv := strings.Split(pair, ":")
		if len(kv) >= 2 {
			k := strings.ToLower(strings.TrimSpace(kv[0]))
			v := strings.TrimSpace(kv[1])
			if err := base.readStyleAttr(k, v); err != nil {
				return base, err
			}
		}
	}
	return base, nil
}

func (s *Style) readStyleAttr(k, v string) error {
	switch k {
	case "fill":
		col, err := ParseSVGColor(v)
		if err != nil {
			return err
		}
		s.FillerColor = col
	case "stroke":
		col, err := ParseSVGColor(v)
		if err != nil {
			return err
		}
		s.LinerColor = col
	case "fill-rule":
		s.UseNonZeroWinding = v != "evenodd"
	case "stroke-linegap":
		if g, ok := gapKeywords[v]; ok {
			s.Join.LineGap = g
		}
	case "stroke-leadlinecap":
		s.Join.LeadLineCap = capKeywords[v]
	case "stroke-linecap":
		s.Join.TrailLineCap = capKeywords[v]
	case "stroke-linejoin":
		if j, ok := joinKeywords[v]; ok {
			s.Join.LineJoin = j
		}
	case "stroke-miterlimit":
		mLimit, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		s.Join.MiterLimit = fixed.Int26_6(mLimit * 64)
	case "stroke-width":
		width, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		s.LineWidth = width
	case "stroke-dashoffset":
		dashOffset, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		s.Dash.DashOffset = dashOffset
	case "stroke-dasharray":
		if v == "none" {
			s.Dash.Dash = nil
			break
		}
		dList, err := readNumbers(v)
		if err != nil {
			return err
		}
		s.Dash.Dash = dList
	case "opacity", "stroke-opacity", "fill-opacity":
		op, err := readFraction(v)
		if err != nil {
			return err
		}
		if k != "stroke-opacity" {
			s.FillOpacity *= op
		}
		if k != "fill-opacity" {
			s.LineOpacity *= op
		}
	case "transform":
		m, err := ParseTransform(v)
		if err != nil {
			return err
		}
		s.Transform = s.Transform.Mult(m)
	}
	return nil
}

// splitOnCommaOrSpace returns a list of strings after splitting the input on comma and space delimiters
func splitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s,
		func(r rune) bool {
			return r == ',' || r == ' '
		})
}

func readNumbers(v string) ([]float64, error) {
	fields := splitOnCommaOrSpace(v)
	out := make([]float64, len(fields))
	for i, f := range fields {
		var err error
		out[i], err = strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func readFraction(v string) (f float64, err error) {
	v = strings.TrimSpace(v)
	d := 1.0
	if strings.HasSuffix(v, "%") {
		d = 100
		v = strings.TrimSuffix(v, "%")
	}
	f, err = strconv.ParseFloat(v, 64)
	f /= d
	return
}

// ParseSVGColor parses an SVG color string in all forms
// including all SVG1.1 names, obtained from the colornames package.
// "none" returns a nil color.
func ParseSVGColor(colorStr string) (color.Color, error) {
	v := strings.ToLower(strings.TrimSpace(colorStr))
	switch v {
	case "":
		return nil, errParamMismatch
	case "none":
		// nil signals that the function (fill or stroke) is off;
		// not the same as black
		return nil, nil
	}
	if cn, ok := colornames.Map[v]; ok {
		return cn, nil
	}
	if cStr := strings.TrimPrefix(v, "rgb("); cStr != v {
		vals := strings.Split(strings.TrimSuffix(cStr, ")"), ",")
		if len(vals) != 3 {
			return nil, errParamMismatch
		}
		var cvals [3]uint8
		for i := range cvals {
			var err error
			cvals[i], err = parseColorValue(vals[i])
			if err != nil {
				return nil, err
			}
		}
		return color.NRGBA{cvals[0], cvals[1], cvals[2], 0xFF}, nil
	}
	if v[0] == '#' {
		r, g, b, err := parseSVGColorNum(v)
		if err != nil {
			return nil, err
		}
		return color.NRGBA{r, g, b, 0xFF}, nil
	}
	return nil, errParamMismatch
}

func parseSVGColorNum(colorStr string) (r, g, b uint8, err error) {
	colorStr = strings.TrimPrefix(colorStr, "#")
	switch len(colorStr) {
	case 6:
	case 3:
		// duplicate characters in case of 3 digit hex number
		colorStr = string([]byte{colorStr[0], colorStr[0],
			colorStr[1], colorStr[1], colorStr[2], colorStr[2]})
	default:
		return 0, 0, 0, errParamMismatch
	}
	for _, v := range []struct {
		c *uint8
		s string
	}{
		{&r, colorStr[0:2]},
		{&g, colorStr[2:4]},
		{&b, colorStr[4:6]},
	} {
		t, err := strconv.ParseUint(v.s, 16, 8)
		if err != nil {
			return 0, 0, 0, err
		}
		*v.c = uint8(t)
	}
	return r, g, b, nil
}

func parseColorValue(v string) (uint8, error) {
	v = strings.TrimSpace(v)
	if strings.HasSuffix(v, "%") {
		n, err := strconv.Atoi(strings.TrimSpace(v[:len(v)-1]))
		if err != nil {
			return 0, err
		}
		return uint8(n * 0xFF / 100), nil
	}
	n, err := strconv.Atoi(v)
	if n > 255 {
		n = 255
	}
	return uint8(n), err
}

// ParseTransform parses a `transform` attribute, such as
// "translate(10 20) rotate(45)".
func ParseTransform(v string) (Matrix2D, error) {
	m1 := Identity
	for _, t := range strings.Split(v, ")") {
		t = strings.TrimSpace(t)
		if len(t) == 0 {
			continue
		}
		d := strings.Split(t, "(")
		if len(d) != 2 || len(d[1]) < 1 {
			return m1, errParamMismatch // badly formed transformation
		}
		points, err := readNumbers(d[1])
		if err != nil {
			return m1, err
		}
		m1, err = readTransformAttr(m1, strings.ToLower(strings.TrimSpace(d[0])), points)
		if err != nil {
			return m1, err
		}
	}
	return m1, nil
}

func readTransformAttr(m1 Matrix2D, k string, points []float64) (Matrix2D, error) {
	ln := len(points)
	switch k {
	case "rotate":
		if ln == 1 {
			m1 = m1.Rotate(points[0] * math.Pi / 180)
		} else if ln == 3 {
			m1 = m1.Translate(points[1], points[2]).
				Rotate(points[0]*math.Pi/180).
				Translate(-points[1], -points[2])
		} else {
			return m1, errParamMismatch
		}
	case "translate":
		if ln == 1 {
			m1 = m1.Translate(points[0], 0)
		} else if ln == 2 {
			m1 = m1.Translate(points[0], points[1])
		} else {
			return m1, errParamMismatch
		}
	case "skewx":
		if ln == 1 {
			m1 = m1.SkewX(points[0] * math.Pi / 180)
		} else {
			return m1, errParamMismatch
		}
	case "skewy":
		if ln == 1 {
			m1 = m1.SkewY(points[0] * math.Pi / 180)
		} else {
			return m1, errParamMismatch
		}
	case "scale":
		if ln == 1 {
			m1 = m1.Scale(points[0], points[0])
		} else if ln == 2 {
			m1 = m1.Scale(points[0], points[1])
		} else {
			return m1, errParamMismatch
		}
	case "matrix":
		if ln == 6 {
			m1 = m1.Mult(Matrix2D{
				A: points[0],
				B: points[1],
				C: points[2],
				D: points[3],
				E: points[4],
				F: points[5],
			})
		} else {
			return m1, errParamMismatch
		}
	default:
		return m1, errParamMismatch
	}
	return m1, nil
}
