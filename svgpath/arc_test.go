package svgpath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const arcTol = 1e-9

func TestArcDegenerate(t *testing.T) {
	if segs := arcToBeziers(3, 4, 3, 4, false, true, 5, 5, 0); len(segs) != 0 {
		t.Errorf("expected no segment for a zero length arc, got %v", segs)
	}
	if segs := arcToBeziers(0, 0, 10, 0, false, true, 0, 5, 0); len(segs) != 0 {
		t.Errorf("expected no segment for a zero radius, got %v", segs)
	}
	if segs := arcToBeziers(0, 0, 10, 0, false, true, 5, 0, 0); len(segs) != 0 {
		t.Errorf("expected no segment for a zero radius, got %v", segs)
	}
}

func TestArcHalfCircle(t *testing.T) {
	alpha := 4. / 3 * math.Tan(math.Pi/8) * 5

	// sweep: through (5, -5)
	segs := arcToBeziers(0, 0, 10, 0, false, true, 5, 5, 0)
	if len(segs) != 2 {
		t.Fatalf("expected 2 curves, got %v", segs)
	}
	expected := [][]float64{
		{0, -alpha, 5 - alpha, -5, 5, -5},
		{5 + alpha, -5, 10, -alpha, 10, 0},
	}
	for i, s := range segs {
		assert.Equal(t, CubicTo, s.Command)
		assert.InDeltaSlice(t, expected[i], s.Params, arcTol)
	}

	// no sweep: through (5, 5)
	segs = arcToBeziers(0, 0, 10, 0, false, false, 5, 5, 0)
	if len(segs) != 2 {
		t.Fatalf("expected 2 curves, got %v", segs)
	}
	x, y := segs[0].end()
	assert.InDelta(t, 5, x, arcTol)
	assert.InDelta(t, 5, y, arcTol)
	x, y = segs[1].end()
	assert.InDelta(t, 10, x, arcTol)
	assert.InDelta(t, 0, y, arcTol)
}

func TestArcRadiusCorrection(t *testing.T) {
	// radii too small to join the end points are scaled up, and
	// the arc becomes a half circle
	small := arcToBeziers(0, 0, 10, 0, false, true, 1, 1, 0)
	exact := arcToBeziers(0, 0, 10, 0, false, true, 5, 5, 0)
	if len(small) != len(exact) {
		t.Fatalf("expected %d curves, got %d", len(exact), len(small))
	}
	for i := range small {
		assert.InDeltaSlice(t, exact[i].Params, small[i].Params, arcTol)
		for _, v := range small[i].Params {
			assert.False(t, math.IsNaN(v))
		}
	}

	// negative radii are taken as absolute values
	negative := arcToBeziers(0, 0, 10, 0, false, true, -5, -5, 0)
	for i := range negative {
		assert.InDeltaSlice(t, exact[i].Params, negative[i].Params, arcTol)
	}
}

func TestArcSegmentCount(t *testing.T) {
	// chord of 10 on a circle of radius 10: the small arc spans 60°,
	// the large one 300°
	for _, test := range []struct {
		largeArc, sweep bool
		count           int
	}{
		{false, false, 1},
		{false, true, 1},
		{true, false, 4},
		{true, true, 4},
	} {
		segs := arcToBeziers(0, 0, 10, 0, test.largeArc, test.sweep, 10, 10, 0)
		assert.Equal(t, test.count, len(segs))
		x, y := segs[len(segs)-1].end()
		assert.InDelta(t, 10, x, arcTol)
		assert.InDelta(t, 0, y, arcTol)

		// every curve ends on the circle
		for _, s := range segs {
			x, y := s.end()
			assert.InDelta(t, 10, circleRadius(x, y, test.largeArc, test.sweep), 1e-6)
		}
	}
}

// circleRadius returns the distance between (x, y) and the center of the
// arc of radius 10 from the origin to (10, 0)
func circleRadius(x, y float64, largeArc, sweep bool) float64 {
	cy := math.Sqrt(75)
	if largeArc == sweep {
		cy = -cy
	}
	return math.Hypot(x-5, y-cy)
}

func TestArcRotation(t *testing.T) {
	// the x-axis of the ellipse is vertical: the half ellipse
	// from (0, 0) to (0, 20) bulges by ry = 5
	segs := arcToBeziers(0, 0, 0, 20, false, true, 10, 5, 90)
	if len(segs) != 2 {
		t.Fatalf("expected 2 curves, got %v", segs)
	}
	x, y := segs[0].end()
	assert.InDelta(t, 5, math.Abs(x), 1e-6)
	assert.InDelta(t, 10, y, 1e-6)
	x, y = segs[1].end()
	assert.InDelta(t, 0, x, 1e-6)
	assert.InDelta(t, 20, y, 1e-6)
}

func TestUnitVectorAngle(t *testing.T) {
	assert.InDelta(t, math.Pi/2, unitVectorAngle(1, 0, 0, 1), arcTol)
	assert.InDelta(t, -math.Pi/2, unitVectorAngle(1, 0, 0, -1), arcTol)
	assert.InDelta(t, math.Pi, unitVectorAngle(1, 0, -1, 0), arcTol)
	// rounding errors are clamped
	assert.InDelta(t, 0, unitVectorAngle(1, 0, 1+1e-15, 0), arcTol)
}
