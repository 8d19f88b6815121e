package svgpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	for _, test := range []struct {
		data  string
		value float64
		pos   int // cursor position after the number
	}{
		{"10", 10, 2},
		{"007", 7, 3},
		{"  -12.5, 3", -12.5, 9},
		{"+4 ", 4, 3},
		{".5", 0.5, 2},
		{"-.5e-2", -0.005, 6},
		{"1e5", 100000, 3},
		{"2E+3,", 2000, 5},
		{"1.25e1", 12.5, 6},
		{"1ex", 1, 1},  // unit, not an exponent
		{"3em", 3, 1},  // idem
		{"1e", 1, 1},   // nothing after the marker
		{"1 , 2", 1, 4},
		{"1,,2", 1, 2}, // only one comma is a separator
		{"5-6", 5, 1},
		{"0.5.5", 0.5, 3},
	} {
		c := newCursor(test.data)
		v, ok := c.parseNumber()
		if !ok {
			t.Errorf("%q: expected a number", test.data)
			continue
		}
		assert.InDelta(t, test.value, v, 1e-12, test.data)
		assert.Equal(t, test.pos, c.pos, test.data)
	}
}

func TestParseNumberInvalid(t *testing.T) {
	for _, data := range []string{
		"", "  ", ".", "+", "-x", "1.", "1.e2", "abc", ",1", "1e+", "1e-x", "-.",
	} {
		c := newCursor(data)
		if v, ok := c.parseNumber(); ok {
			t.Errorf("%q: unexpected number %v", data, v)
		}
	}
}

func TestParseNumberPlaceValue(t *testing.T) {
	// digits are accumulated by place value, not by string concatenation
	c := newCursor("123456789.125")
	v, ok := c.parseNumber()
	assert.True(t, ok)
	assert.Equal(t, 123456789.125, v)
}

func TestParseArcFlag(t *testing.T) {
	c := newCursor("1 0,10")
	var got []float64
	for c.more() {
		f, ok := c.parseArcFlag()
		if !ok {
			t.Fatalf("invalid flag at %d", c.pos)
		}
		got = append(got, f)
	}
	assert.Equal(t, []float64{1, 0, 1, 0}, got)

	for _, data := range []string{"", "2", "x", "-1", ".1"} {
		c := cursor{data: data, end: len(data)}
		if _, ok := c.parseArcFlag(); ok {
			t.Errorf("%q: expected invalid flag", data)
		}
	}

	// leading spaces are not skipped
	c = &cursor{data: " 1", end: 2}
	_, ok := c.parseArcFlag()
	assert.False(t, ok)
}

func TestSkipSeparator(t *testing.T) {
	for _, test := range []struct {
		data string
		pos  int
	}{
		{"a", 0},
		{" \t\n\r\fa", 5},
		{" , a", 3},
		{",a", 1},
		{", ,a", 2},
	} {
		c := cursor{data: test.data, end: len(test.data)}
		c.skipSeparator()
		assert.Equal(t, test.pos, c.pos, test.data)
	}
}
