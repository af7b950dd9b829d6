package syntax

import "fmt"

// Tokenizer performs lexical analysis on ez source text.
// Tokens are produced on demand, one per call to Tokenize.
type Tokenizer struct {
	source // embedded character reader

	// Configuration
	underscoreIdents bool // whether '_' continues an identifier after its first character
}

// NewTokenizer creates a new Tokenizer for the given source text.
// errh is called for each lexical diagnostic. Diagnostics never stop
// tokenization; the offending input is still returned as an Unknown token.
// A nil errh discards diagnostics.
func NewTokenizer(src string, errh func(pos Pos, msg string)) *Tokenizer {
	return &Tokenizer{source: *newSource(src, errh)}
}

// SetUnderscoreIdents controls whether an underscore after the first
// character continues an identifier. It is disabled by default, so that
// "foo_bar" scans as the two identifiers "foo" and "_bar".
func (t *Tokenizer) SetUnderscoreIdents(enabled bool) {
	t.underscoreIdents = enabled
}

// Tokenize skips whitespace and returns the next token.
// It reports false once the input is exhausted, and keeps doing so on every
// later call.
func (t *Tokenizer) Tokenize() (Token, bool) {
	t.skipWhitespace()

	if t.ch < 0 {
		return Token{}, false
	}

	pos := t.pos()

	var tok Token
	switch {
	case t.atNumber():
		tok = t.scanNumber()

	case isIdentStart(t.ch):
		tok = t.scanIdent()

	case t.ch == '"':
		tok = t.scanString(pos)

	default:
		if kind, ok := symbols[t.ch]; ok {
			tok = t.scanSymbol(kind)
		} else {
			tok = t.scanUnknown(pos)
		}
	}

	tok.Pos = pos
	return tok, true
}

// skipWhitespace skips any run of white space characters.
func (t *Tokenizer) skipWhitespace() {
	for isWhitespace(t.ch) {
		t.nextch()
	}
}

// atNumber reports whether the current character starts a number literal.
// A '.' only does so when another digit or '.' follows it; on its own it
// is the Dot symbol.
func (t *Tokenizer) atNumber() bool {
	if isDigit(t.ch) {
		return true
	}
	if t.ch == '.' {
		next := t.peek()
		return isDigit(next) || next == '.'
	}
	return false
}

// scanNumber scans a maximal run of digits and dots.
// The run is a Float if it contains at least one dot. The literal is not
// validated here; "1.2.3" is a single Float token.
func (t *Tokenizer) scanNumber() Token {
	start := t.start
	kind := Integer

	for isDigit(t.ch) || t.ch == '.' {
		if t.ch == '.' {
			kind = Float
		}
		t.nextch()
	}

	return Token{Kind: kind, Text: t.segment(start)}
}

// scanIdent scans an identifier or keyword.
func (t *Tokenizer) scanIdent() Token {
	start := t.start
	t.nextch()

	for isLetter(t.ch) || isDigit(t.ch) || t.underscoreIdents && t.ch == '_' {
		t.nextch()
	}

	lit := t.segment(start)
	return Token{Kind: LookupKeyword(lit), Text: lit}
}

// scanString scans a string literal. There are no escape sequences; the
// literal ends at the next '"'. If the input ends first, the accumulated
// text is returned as an Unknown token.
func (t *Tokenizer) scanString(pos Pos) Token {
	t.nextch() // skip opening "
	start := t.start

	for t.ch != '"' {
		if t.ch < 0 {
			t.error(pos, "string not terminated")
			return Token{Kind: Unknown, Text: t.segment(start)}
		}
		t.nextch()
	}

	lit := t.segment(start)
	t.nextch() // skip closing "
	return Token{Kind: String, Text: lit}
}

// scanSymbol scans a symbol whose first character maps to kind, widening it
// to the two-character form when the following character allows it.
func (t *Tokenizer) scanSymbol(kind Kind) Token {
	start := t.start
	t.nextch()

	if w, ok := widenings[kind]; ok && t.ch == w.next {
		t.nextch()
		kind = w.kind
	}

	return Token{Kind: kind, Text: t.segment(start)}
}

// scanUnknown scans unrecognized input up to the next whitespace.
func (t *Tokenizer) scanUnknown(pos Pos) Token {
	start := t.start
	t.nextch()

	for t.ch >= 0 && !isWhitespace(t.ch) {
		t.nextch()
	}

	lit := t.segment(start)
	t.error(pos, fmt.Sprintf("unrecognized input %q", lit))
	return Token{Kind: Unknown, Text: lit}
}
