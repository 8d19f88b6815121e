package svgpath

import "math"

// cursor is used while scanning path data.
// It follows closely genericParseNumber from Blink's
// SVGParserUtilities.cpp, so that the parsed values
// match the ones of a browser.
// See https://www.w3.org/TR/SVG11/paths.html#PathDataBNF
type cursor struct {
	data string
	pos  int
	end  int
}

func newCursor(data string) *cursor {
	c := &cursor{data: data, end: len(data)}
	c.skipSpaces()
	return c
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\n' || ch == '\t' || ch == '\r' || ch == '\f'
}

func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }

// isNumberStart returns true for [0-9+-.]
func isNumberStart(ch byte) bool {
	return isDigit(ch) || ch == '+' || ch == '-' || ch == '.'
}

func (c *cursor) more() bool { return c.pos < c.end }

// skipSpaces returns true if some data remains
func (c *cursor) skipSpaces() bool {
	for c.pos < c.end && isSpace(c.data[c.pos]) {
		c.pos++
	}
	return c.pos < c.end
}

// skipSeparator consumes spaces, then at most one comma followed by spaces.
func (c *cursor) skipSeparator() bool {
	if c.pos < c.end && !isSpace(c.data[c.pos]) && c.data[c.pos] != ',' {
		return false
	}
	if c.skipSpaces() && c.data[c.pos] == ',' {
		c.pos++
		c.skipSpaces()
	}
	return c.pos < c.end
}

// readDigits advances past consecutive digits
func (c *cursor) readDigits() {
	for c.pos < c.end && isDigit(c.data[c.pos]) {
		c.pos++
	}
}

// parseNumber reads one number and the separator following it.
// ok is false if no valid number starts at the cursor.
func (c *cursor) parseNumber() (value float64, ok bool) {
	var (
		integer, decimal float64
		exponent         int
		sign, expSign    = 1., 1
	)
	start := c.pos

	c.skipSpaces()

	if c.pos < c.end && c.data[c.pos] == '+' {
		c.pos++
	} else if c.pos < c.end && c.data[c.pos] == '-' {
		c.pos++
		sign = -1
	}

	// the first character of a number must be one of [0-9+-.]
	if c.pos == c.end || (!isDigit(c.data[c.pos]) && c.data[c.pos] != '.') {
		return 0, false
	}

	// integer part, built right-to-left
	startInt := c.pos
	c.readDigits()
	multiplier := 1.
	for i := c.pos - 1; i >= startInt; i-- {
		integer += multiplier * float64(c.data[i]-'0')
		multiplier *= 10
	}

	if c.pos < c.end && c.data[c.pos] == '.' {
		c.pos++
		// at least one digit must follow the dot
		if c.pos >= c.end || !isDigit(c.data[c.pos]) {
			return 0, false
		}
		frac := 1.
		for c.pos < c.end && isDigit(c.data[c.pos]) {
			frac *= 10
			decimal += float64(c.data[c.pos]-'0') / frac
			c.pos++
		}
	}

	// an exponent marker directly followed by x or m is not an exponent
	if c.pos != start && c.pos+1 < c.end &&
		(c.data[c.pos] == 'e' || c.data[c.pos] == 'E') &&
		c.data[c.pos+1] != 'x' && c.data[c.pos+1] != 'm' {
		c.pos++

		if c.data[c.pos] == '+' {
			c.pos++
		} else if c.data[c.pos] == '-' {
			c.pos++
			expSign = -1
		}

		if c.pos >= c.end || !isDigit(c.data[c.pos]) {
			return 0, false
		}
		for c.pos < c.end && isDigit(c.data[c.pos]) {
			exponent = exponent*10 + int(c.data[c.pos]-'0')
			c.pos++
		}
	}

	value = (integer + decimal) * sign
	if exponent != 0 {
		value *= math.Pow(10, float64(expSign*exponent))
	}

	if start == c.pos {
		return 0, false
	}

	c.skipSeparator()
	return value, true
}

// parseArcFlag reads a single 0 or 1 character, and the separator following it.
func (c *cursor) parseArcFlag() (flag float64, ok bool) {
	if c.pos >= c.end {
		return 0, false
	}
	ch := c.data[c.pos]
	c.pos++
	switch ch {
	case '0':
		flag = 0
	case '1':
		flag = 1
	default:
		return 0, false
	}
	c.skipSeparator()
	return flag, true
}
