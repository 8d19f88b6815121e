package svgpath

import (
	"fmt"

	"github.com/go-logr/logr"
)

type config struct {
	logger logr.Logger
}

// Option customizes Parse.
type Option func(*config)

// WithLogger sets the sink receiving parsing diagnostics.
// By default, nothing is logged.
func WithLogger(l logr.Logger) Option {
	return func(c *config) { c.logger = l }
}

// Parse reads the path data `d` and returns its segments, all absolute and
// reduced to MoveTo, LineTo, CubicTo and Close commands.
//
// Parse never fails: invalid data is silently truncated
// at the first invalid segment, and a path not starting with a move,
// as well as any unexpected internal error, results in an empty slice.
// It is safe to call Parse from several goroutines.
func Parse(d string, opts ...Option) (segs []Segment) {
	cfg := config{logger: logr.Discard()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(d) == 0 {
		return nil
	}
	// the logger itself may panic
	defer func() {
		if r := recover(); r != nil {
			segs = nil
		}
	}()
	segs, err := parse(d, cfg.logger)
	if err != nil {
		cfg.logger.Error(err, "unexpected exception parsing path", "path", d)
		return nil
	}
	return segs
}

func parse(d string, logger logr.Logger) (segs []Segment, err error) {
	defer func() {
		if r := recover(); r != nil {
			segs, err = nil, fmt.Errorf("svgpath: %v", r)
		}
	}()

	raw, consumed := readAll(d)
	if consumed < len(d) {
		logger.V(1).Info("path data truncated", "offset", consumed, "length", len(d), "segments", len(raw))
	}
	return simplify(absolutize(raw)), nil
}
