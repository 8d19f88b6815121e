package svgpath

// segmentReader produces the raw segments of a path, one at a time.
// It stops at the end of the data or at the first invalid segment,
// without distinguishing the two cases.
type segmentReader struct {
	*cursor
	prev    Command // 0 before the first segment
	started bool
	done    bool
}

func newSegmentReader(data string) *segmentReader {
	return &segmentReader{cursor: newCursor(data)}
}

// hasNext reports whether a segment may be read.
// The first segment must be a move.
func (r *segmentReader) hasNext() bool {
	if r.done || !r.more() {
		return false
	}
	if !r.started {
		cmd := Command(r.data[r.pos])
		return cmd == MoveTo || cmd == 'm'
	}
	return true
}

// next returns the next segment, or false if the data is exhausted
// or invalid. In the latter case, no more segments are produced.
func (r *segmentReader) next() (Segment, bool) {
	if !r.hasNext() {
		r.done = true
		return Segment{}, false
	}
	seg, ok := r.readSegment()
	if !ok {
		r.done = true
		return Segment{}, false
	}
	r.started = true
	return seg, true
}

// command returns the explicit or implicit command at the cursor
func (r *segmentReader) command() (Command, bool) {
	ch := r.data[r.pos]
	if cmd := Command(ch); cmd.valid() {
		r.pos++
		return cmd, true
	}
	// possibly an implicit command, not allowed for the first segment
	if r.prev == 0 || !isNumberStart(ch) {
		return 0, false
	}
	return r.prev.implicit()
}

func (r *segmentReader) readSegment() (Segment, bool) {
	cmd, ok := r.command()
	if !ok {
		return Segment{}, false
	}
	r.prev = cmd

	params := make([]float64, cmd.arity())
	switch cmd.Absolute() {
	case Close:
		r.skipSpaces()
	case ArcTo:
		// rx ry rotation large-arc sweep x y
		for i := range params {
			var v float64
			if i == 3 || i == 4 {
				v, ok = r.parseArcFlag()
			} else {
				v, ok = r.parseNumber()
			}
			if !ok {
				return Segment{}, false
			}
			params[i] = v
		}
	default:
		for i := range params {
			if params[i], ok = r.parseNumber(); !ok {
				return Segment{}, false
			}
		}
	}
	return Segment{Command: cmd, Params: params}, true
}

// readAll materializes the segments of data.
// consumed is the offset where reading stopped.
func readAll(data string) (segs []Segment, consumed int) {
	r := newSegmentReader(data)
	for {
		seg, ok := r.next()
		if !ok {
			break
		}
		segs = append(segs, seg)
	}
	return segs, r.pos
}
