package syntax

import (
	"unicode"
	"unicode/utf8"
)

// source is a character reader with position tracking.
// It walks a UTF-8 encoded text buffer one rune at a time.
type source struct {
	// Input
	buf string // source text, never modified

	// Position tracking
	line uint32 // line of ch (1-based)
	col  uint32 // column of ch (1-based, in runes)

	// Current state
	ch    rune // current character, -1 for EOF
	start int  // byte offset of ch
	offs  int  // byte offset just past ch

	// Error handling
	errh func(pos Pos, msg string)
}

// newSource creates a new source positioned on the first character of src.
// Lexical errors are reported to errh, which may be nil.
func newSource(src string, errh func(pos Pos, msg string)) *source {
	s := &source{
		buf:  src,
		errh: errh,
		line: 1,
		col:  0,  // Will be incremented to 1 by first nextch()
		ch:   -1, // Sentinel: -1 means "before first char", prevents line update
	}
	s.nextch()
	return s
}

// nextch reads the next character from the buffer and updates position.
// Sets s.ch to -1 at EOF.
//
// Position tracking: (line, col, start) always refer to s.ch after nextch() returns.
func (s *source) nextch() {
	if s.ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}

	s.start = s.offs
	if s.offs >= len(s.buf) {
		s.ch = -1
		return
	}

	r, width := utf8.DecodeRuneInString(s.buf[s.offs:])
	if r == utf8.RuneError && width == 1 {
		s.error(s.pos(), "invalid UTF-8 encoding")
		// Continue anyway to avoid getting stuck
	}

	s.ch = r
	s.offs += width
}

// peek returns the character following s.ch without consuming anything.
// Returns -1 if there is none.
func (s *source) peek() rune {
	if s.offs >= len(s.buf) {
		return -1
	}
	r, _ := utf8.DecodeRuneInString(s.buf[s.offs:])
	return r
}

// pos returns the position of the current character.
func (s *source) pos() Pos {
	return NewPos(s.start, s.line, s.col)
}

// segment returns the source text from byte offset from up to, but not including, s.ch.
func (s *source) segment(from int) string {
	return s.buf[from:s.start]
}

// error reports a lexical error at pos.
func (s *source) error(pos Pos, msg string) {
	if s.errh != nil {
		s.errh(pos, msg)
	}
}

// Character classification helpers

// isLetter reports whether r is an ASCII letter (a-z, A-Z).
func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

// isDigit reports whether r is a decimal digit (0-9).
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isIdentStart reports whether r can begin an identifier.
func isIdentStart(r rune) bool {
	return isLetter(r) || r == '_'
}

// isWhitespace reports whether r is a Unicode white space character.
func isWhitespace(r rune) bool {
	return r >= 0 && unicode.IsSpace(r)
}
