package svgpath

// absolutize returns a copy of segs where every relative command
// is replaced by its absolute equivalent. segs is not modified.
func absolutize(segs []Segment) []Segment {
	out := make([]Segment, len(segs))
	var (
		curX, curY         float64 // current point
		subpathX, subpathY float64 // start of the current subpath
	)
	for i, seg := range segs {
		params := append([]float64(nil), seg.Params...)
		cmd := seg.Command
		if cmd.IsRelative() {
			switch cmd.Absolute() {
			case HorizontalTo:
				params[0] += curX
			case VerticalTo:
				params[0] += curY
			case ArcTo:
				// radii, rotation and flags are never relative
				params[5] += curX
				params[6] += curY
			case Close:
			default:
				// every coordinate pair is relative to the same current point
				for j := 0; j+1 < len(params); j += 2 {
					params[j] += curX
					params[j+1] += curY
				}
			}
			cmd = cmd.Absolute()
		}

		switch cmd {
		case MoveTo:
			curX, curY = params[0], params[1]
			subpathX, subpathY = curX, curY
		case HorizontalTo:
			curX = params[0]
		case VerticalTo:
			curY = params[0]
		case Close:
			curX, curY = subpathX, subpathY
		default:
			n := len(params)
			curX, curY = params[n-2], params[n-1]
		}
		out[i] = Segment{Command: cmd, Params: params}
	}
	return out
}
