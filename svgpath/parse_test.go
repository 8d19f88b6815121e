package svgpath

import (
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	for _, test := range []struct {
		data     string
		expected []Segment
	}{
		{"", nil},
		{"   ", nil},
		{"M 0 0 L 10 0 L 10 10 Z", []Segment{seg('M', 0, 0), seg('L', 10, 0), seg('L', 10, 10), seg('Z')}},
		{"M10,10 l5,5 l-5,5 z", []Segment{seg('M', 10, 10), seg('L', 15, 15), seg('L', 10, 20), seg('Z')}},
		{"M0,0 A5,5,0,0,0,0,0", []Segment{seg('M', 0, 0)}},
		{"M0,0 A0,5,0,0,0,10,0", []Segment{seg('M', 0, 0), seg('C', 0, 0, 10, 0, 10, 0)}},
		{"M0,0 10,10 20,20", []Segment{seg('M', 0, 0), seg('L', 10, 10), seg('L', 20, 20)}},
		{"M0,0 L10,0 S20,10,30,0", []Segment{seg('M', 0, 0), seg('L', 10, 0), seg('C', 10, 0, 20, 10, 30, 0)}},
		{"L10,10", nil},
		{"M0,0 L10,", []Segment{seg('M', 0, 0)}},
		{"m1 1 2 2", []Segment{seg('M', 1, 1), seg('L', 3, 3)}},
		{"M0 0 h10 v10 H0 z", []Segment{seg('M', 0, 0), seg('L', 10, 0), seg('L', 10, 10), seg('L', 0, 10), seg('Z')}},
		{"M0 0 q3 3 6 0 t6 0", []Segment{seg('M', 0, 0), seg('C', 2, 2, 4, 2, 6, 0), seg('C', 8, -2, 10, -2, 12, 0)}},
		{"M0 0 L5 5 ! L10 10", []Segment{seg('M', 0, 0), seg('L', 5, 5)}},
		{"M.5.5-.5-.5", []Segment{seg('M', 0.5, 0.5), seg('L', -0.5, -0.5)}},
		{"M1e1 1E-1", []Segment{seg('M', 10, 0.1)}},
	} {
		got := Parse(test.data)
		if diff := cmp.Diff(test.expected, got, segmentsEqual...); diff != "" {
			t.Errorf("%q: unexpected segments (-want +got):\n%s", test.data, diff)
		}
	}
}

var arities = map[Command]int{MoveTo: 2, LineTo: 2, CubicTo: 6, Close: 0}

func TestParseOutputShape(t *testing.T) {
	for _, data := range []string{
		"M10 10 h 20 v 20 h -20 z",
		"M 100 100 a 50 30 45 1 0 80 -20 A 10 10 0 0 1 300 300 z",
		"m0 0 c10 10 20 20 30 0 s 40 -20 50 0 q 10 10 20 0 t 20 0 T 50 50",
		"M0 0 t 10 10 s 10 0 20 20 Q 0 0 5 5 Z m 5 5 l 1 1",
		"M3.5-2e1L.1.2.3.4",
	} {
		segs := Parse(data)
		if len(segs) == 0 {
			t.Errorf("%q: no segment", data)
		}
		for _, s := range segs {
			arity, ok := arities[s.Command]
			if !ok {
				t.Errorf("%q: unexpected command %s", data, s.Command)
				continue
			}
			if len(s.Params) != arity {
				t.Errorf("%q: invalid params for %s", data, s)
			}
		}

		// already simplified
		if diff := cmp.Diff(segs, simplify(segs)); diff != "" {
			t.Errorf("%q: simplify is not a no-op (-once +twice):\n%s", data, diff)
		}
	}
}

func TestParseArc(t *testing.T) {
	segs := Parse("M0 0 A5 5 0 0 1 10 0")
	if len(segs) != 3 {
		t.Fatalf("expected 3 segments, got %v", segs)
	}
	x, y := segs[1].end()
	assert.InDelta(t, 5, x, 1e-9)
	assert.InDelta(t, -5, y, 1e-9)
	x, y = segs[2].end()
	assert.InDelta(t, 10, x, 1e-9)
	assert.InDelta(t, 0, y, 1e-9)
}

func TestParseJSON(t *testing.T) {
	out, err := json.Marshal(Parse("M0 0 L10 0 C1 2 3 4 5 6 z"))
	if err != nil {
		t.Fatal(err)
	}
	expected := `[{"command":"move-to","params":{"x":0,"y":0}},` +
		`{"command":"line-to","params":{"x":10,"y":0}},` +
		`{"command":"curve-to","params":{"c1x":1,"c1y":2,"c2x":3,"c2y":4,"x":5,"y":6}},` +
		`{"command":"close-path","params":{}}]`
	assert.Equal(t, expected, string(out))
}

func TestParseConcurrent(t *testing.T) {
	const data = "M10 10 l 5 5 q 1 1 2 2 a 5 5 0 1 1 10 10 s 1 2 3 4 z"
	reference := Parse(data)

	var wg sync.WaitGroup
	results := make([][]Segment, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Parse(data)
		}(i)
	}
	wg.Wait()

	for _, res := range results {
		if diff := cmp.Diff(reference, res); diff != "" {
			t.Fatalf("concurrent parse differs (-want +got):\n%s", diff)
		}
	}
}

func TestParseLogger(t *testing.T) {
	var lines []string
	logger := funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{Verbosity: 1})

	Parse("M0 0 L10 10", WithLogger(logger))
	assert.Empty(t, lines)

	segs := Parse("M0 0 L10 10 X", WithLogger(logger))
	assert.Len(t, segs, 2)
	if assert.Len(t, lines, 1) {
		assert.True(t, strings.Contains(lines[0], "path data truncated"), lines[0])
		assert.True(t, strings.Contains(lines[0], `"offset"=12`), lines[0])
	}
}

// brokenSink panics on Info, and on Error if panicOnError is set.
type brokenSink struct {
	errors       int
	panicOnError bool
}

func (s *brokenSink) Init(logr.RuntimeInfo)                  {}
func (s *brokenSink) Enabled(int) bool                       { return true }
func (s *brokenSink) Info(int, string, ...interface{})       { panic("broken sink") }
func (s *brokenSink) WithValues(...interface{}) logr.LogSink { return s }
func (s *brokenSink) WithName(string) logr.LogSink           { return s }

func (s *brokenSink) Error(error, string, ...interface{}) {
	s.errors++
	if s.panicOnError {
		panic("broken sink")
	}
}

func TestParseRecover(t *testing.T) {
	// a panic inside the pipeline yields an empty result, logged once
	sink := &brokenSink{}
	segs := Parse("M0 0 L1 1 X", WithLogger(logr.New(sink)))
	assert.Empty(t, segs)
	assert.Equal(t, 1, sink.errors)

	// complete data does not reach the diagnostic
	sink = &brokenSink{}
	segs = Parse("M0 0 L1 1", WithLogger(logr.New(sink)))
	assert.Len(t, segs, 2)
	assert.Equal(t, 0, sink.errors)

	// a failing logger does not escape Parse
	sink = &brokenSink{panicOnError: true}
	assert.NotPanics(t, func() {
		segs = Parse("M0 0 L1 1 X", WithLogger(logr.New(sink)))
	})
	assert.Empty(t, segs)
	assert.Equal(t, 1, sink.errors)
}
