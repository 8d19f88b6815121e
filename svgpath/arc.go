package svgpath

import "math"

// This file implements the conversion from
// elliptical arcs to cubic bezier curves, following
// the center parameterization of the SVG specification
// https://www.w3.org/TR/SVG11/implnote.html#ArcConversionEndpointToCenter

// maxArcSpan is the maximum angle, in radians, a single cubic bezier
// is allowed to span when approximating an arc.
const maxArcSpan = math.Pi / 2

// unitVectorAngle returns the signed angle between u and v
func unitVectorAngle(ux, uy, vx, vy float64) float64 {
	sign := 1.
	if ux*vy-uy*vx < 0 {
		sign = -1
	}
	dot := ux*vx + uy*vy
	if dot > 1 {
		dot = 1
	} else if dot < -1 {
		dot = -1
	}
	return sign * math.Acos(dot)
}

// arcCenter locates the center of the ellipse, and returns
// the start angle and the angular span of the arc, in the
// unit circle space.
func arcCenter(x1, y1, x2, y2 float64, largeArc, sweep bool, rx, ry, sinPhi, cosPhi float64) (cx, cy, theta1, dtheta float64) {
	x1p := cosPhi*((x1-x2)/2) + sinPhi*((y1-y2)/2)
	y1p := -sinPhi*((x1-x2)/2) + cosPhi*((y1-y2)/2)

	rxSq, rySq := rx*rx, ry*ry
	x1pSq, y1pSq := x1p*x1p, y1p*y1p

	radicant := rxSq*rySq - rxSq*y1pSq - rySq*x1pSq
	if radicant < 0 {
		radicant = 0
	}
	radicant /= rxSq*y1pSq + rySq*x1pSq
	radicant = math.Sqrt(radicant)
	if largeArc == sweep {
		radicant = -radicant
	}

	cxp := radicant * (rx / ry) * y1p
	cyp := radicant * (-ry / rx) * x1p
	cx = cosPhi*cxp - sinPhi*cyp + (x1+x2)/2
	cy = sinPhi*cxp + cosPhi*cyp + (y1+y2)/2

	v1x, v1y := (x1p-cxp)/rx, (y1p-cyp)/ry
	v2x, v2y := (-x1p-cxp)/rx, (-y1p-cyp)/ry

	theta1 = unitVectorAngle(1, 0, v1x, v1y)
	dtheta = unitVectorAngle(v1x, v1y, v2x, v2y)
	if !sweep && dtheta > 0 {
		dtheta -= 2 * math.Pi
	}
	if sweep && dtheta < 0 {
		dtheta += 2 * math.Pi
	}
	return cx, cy, theta1, dtheta
}

// approximateUnitArc returns the control points of a cubic bezier
// approximating the unit circle arc starting at theta1 and spanning dtheta:
// start, first control, second control, end.
func approximateUnitArc(theta1, dtheta float64) [8]float64 {
	alpha := 4. / 3 * math.Tan(dtheta/4)
	x1, y1 := math.Cos(theta1), math.Sin(theta1)
	x2, y2 := math.Cos(theta1+dtheta), math.Sin(theta1+dtheta)
	return [8]float64{
		x1, y1,
		x1 - y1*alpha, y1 + x1*alpha,
		x2 + y2*alpha, y2 - x2*alpha,
		x2, y2,
	}
}

// arcToBeziers approximates the arc from (x1, y1) to (x2, y2) with cubic bezier
// curves. phi is the rotation of the ellipse x-axis, in degrees.
// An empty slice is returned when the end points are the same or when
// one radius is zero.
func arcToBeziers(x1, y1, x2, y2 float64, largeArc, sweep bool, rx, ry, phi float64) []Segment {
	phiRad := phi * (2 * math.Pi) / 360
	sinPhi, cosPhi := math.Sin(phiRad), math.Cos(phiRad)

	x1p := cosPhi*(x1-x2)/2 + sinPhi*(y1-y2)/2
	y1p := -sinPhi*(x1-x2)/2 + cosPhi*(y1-y2)/2

	if x1p == 0 && y1p == 0 { // line to itself
		return nil
	}
	if rx == 0 || ry == 0 {
		return nil
	}

	rx, ry = math.Abs(rx), math.Abs(ry)

	// scale the radii up if the ellipse can't reach the end point
	if lambda := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry); lambda > 1 {
		rx *= math.Sqrt(lambda)
		ry *= math.Sqrt(lambda)
	}

	cx, cy, theta1, dtheta := arcCenter(x1, y1, x2, y2, largeArc, sweep, rx, ry, sinPhi, cosPhi)

	segs := int(math.Ceil(math.Abs(dtheta) / maxArcSpan))
	if segs < 1 {
		segs = 1
	}
	dtheta /= float64(segs)

	out := make([]Segment, 0, segs)
	for i := 0; i < segs; i++ {
		curve := approximateUnitArc(theta1, dtheta)
		params := make([]float64, 6)
		// the start point is implicit: skip it
		for j := 0; j < 3; j++ {
			x, y := curve[2+2*j]*rx, curve[3+2*j]*ry
			params[2*j] = cx + (cosPhi*x - sinPhi*y)
			params[2*j+1] = cy + (sinPhi*x + cosPhi*y)
		}
		out = append(out, Segment{Command: CubicTo, Params: params})
		theta1 += dtheta
	}
	return out
}
