package syntax

import "fmt"

// Pos represents a position in the source text.
// The zero value is an invalid position.
type Pos struct {
	offset int    // byte offset into the source
	line   uint32 // 1-based line number
	col    uint32 // 1-based column number (in runes)
}

// NewPos creates a new Pos with the given byte offset, line, and column.
// Line and column numbers are 1-based.
func NewPos(offset int, line, col uint32) Pos {
	return Pos{offset: offset, line: line, col: col}
}

// String returns a string representation of the position in the format "line:col".
func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.line, p.col)
}

// IsValid reports whether the position is valid.
// A position is valid if line > 0.
func (p Pos) IsValid() bool {
	return p.line > 0
}

// Offset returns the byte offset of the position in the source.
func (p Pos) Offset() int {
	return p.offset
}

// Line returns the 1-based line number.
func (p Pos) Line() uint32 {
	return p.line
}

// Col returns the 1-based column number.
func (p Pos) Col() uint32 {
	return p.col
}
