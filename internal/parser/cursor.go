package parser

// cursor owns the ordered input lines and the read position. Every parser
// reads input exclusively through peek and consume — never by indexing
// lines directly.
type cursor struct {
	lines []string
	pos   int
	line  int // 1-based number of the next unread line
}

func newCursor(lines []string) *cursor {
	return &cursor{lines: lines, line: 1}
}

// peek returns the line at pos+offset without consuming it. The second
// return is false past end of input.
func (c *cursor) peek(offset int) (string, bool) {
	idx := c.pos + offset
	if idx < len(c.lines) {
		return c.lines[idx], true
	}
	return "", false
}

// consume returns the current line and advances the position and line
// counter. The second return is false at end of input.
func (c *cursor) consume() (string, bool) {
	if c.pos < len(c.lines) {
		line := c.lines[c.pos]
		c.pos++
		c.line++
		return line, true
	}
	return "", false
}

// lineNo reports the 1-based number of the next unread line, used to stamp
// nodes and errors with the line where a construct begins.
func (c *cursor) lineNo() int { return c.line }
