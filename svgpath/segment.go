// Implements a parser for the SVG path mini-language
// (the `d` attribute), producing a sequence of
// absolute move, line, cubic and close commands, which can then be consumed
// by painting drivers.
package svgpath

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// ErrNotSimplified is returned when serializing a segment
// whose command is not one of M, L, C or Z.
var ErrNotSimplified = errors.New("svgpath: segment is not simplified")

// Command is a path command letter. Lower case letters
// are relative commands.
type Command byte

// Absolute path commands
const (
	MoveTo        Command = 'M'
	LineTo        Command = 'L'
	HorizontalTo  Command = 'H'
	VerticalTo    Command = 'V'
	CubicTo       Command = 'C'
	SmoothCubicTo Command = 'S'
	QuadTo        Command = 'Q'
	SmoothQuadTo  Command = 'T'
	ArcTo         Command = 'A'
	Close         Command = 'Z'
)

func (c Command) String() string { return string(rune(c)) }

// IsRelative returns true for lower case commands.
func (c Command) IsRelative() bool { return 'a' <= c && c <= 'z' }

// Absolute returns the upper case form of the command.
func (c Command) Absolute() Command {
	if c.IsRelative() {
		return c - 'a' + 'A'
	}
	return c
}

func (c Command) valid() bool {
	switch c.Absolute() {
	case MoveTo, LineTo, HorizontalTo, VerticalTo, CubicTo,
		SmoothCubicTo, QuadTo, SmoothQuadTo, ArcTo, Close:
		return true
	}
	return false
}

// arity returns the number of parameters expected by the command,
// or -1 for unknown commands.
func (c Command) arity() int {
	switch c.Absolute() {
	case Close:
		return 0
	case HorizontalTo, VerticalTo:
		return 1
	case MoveTo, LineTo, SmoothQuadTo:
		return 2
	case SmoothCubicTo, QuadTo:
		return 4
	case CubicTo:
		return 6
	case ArcTo:
		return 7
	}
	return -1
}

// implicit returns the command repeated when parameters follow
// without a command letter: a move continues as a line,
// and a close path never repeats.
func (c Command) implicit() (Command, bool) {
	switch c {
	case MoveTo:
		return LineTo, true
	case 'm':
		return 'l', true
	case Close, 'z':
		return 0, false
	}
	return c, true
}

// Segment is one drawing command with its parameters.
// Once returned by Parse, the command is one of
// MoveTo, LineTo, CubicTo and Close, with respectively 2, 2, 6 and 0 params.
// Cubic params are [c1x, c1y, c2x, c2y, x, y].
type Segment struct {
	Command Command
	Params  []float64
}

// String returns a readable representation of the segment,
// such as C[0 0 10 0 10 0].
func (s Segment) String() string {
	chunks := make([]string, len(s.Params))
	for i, p := range s.Params {
		chunks[i] = strconv.FormatFloat(p, 'g', -1, 64)
	}
	return s.Command.String() + "[" + strings.Join(chunks, " ") + "]"
}

// end returns the end point of an absolute segment
// which is not a close path.
func (s Segment) end() (x, y float64) {
	n := len(s.Params)
	return s.Params[n-2], s.Params[n-1]
}

var (
	moveToKeys  = [...]string{"x", "y"}
	cubicToKeys = [...]string{"c1x", "c1y", "c2x", "c2y", "x", "y"}
)

// MarshalJSON returns the keyed form of a simplified segment, for instance
// {"command":"line-to","params":{"x":10,"y":0}}.
func (s Segment) MarshalJSON() ([]byte, error) {
	var (
		name string
		keys []string
	)
	switch s.Command {
	case MoveTo:
		name, keys = "move-to", moveToKeys[:]
	case LineTo:
		name, keys = "line-to", moveToKeys[:]
	case CubicTo:
		name, keys = "curve-to", cubicToKeys[:]
	case Close:
		name = "close-path"
	default:
		return nil, ErrNotSimplified
	}
	if len(s.Params) != len(keys) {
		return nil, ErrNotSimplified
	}
	params := make(map[string]float64, len(keys))
	for i, k := range keys {
		params[k] = s.Params[i]
	}
	return json.Marshal(struct {
		Command string             `json:"command"`
		Params  map[string]float64 `json:"params"`
	}{name, params})
}
