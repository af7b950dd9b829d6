package syntax

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrNoMoreTokens is returned by Parse when the input holds no further
// expression. It marks the normal end of the token stream.
var ErrNoMoreTokens = errors.New("no more tokens")

// ErrorKind classifies a SyntaxError.
type ErrorKind uint8

const (
	MissingTokenAfter ErrorKind = iota // input ended where another token was required
	UnexpectedToken                    // a token of the wrong kind was found
	InvalidNumber                      // a number literal could not be converted
)

var errorKindNames = [...]string{
	MissingTokenAfter: "MissingTokenAfter",
	UnexpectedToken:   "UnexpectedToken",
	InvalidNumber:     "InvalidNumber",
}

// String returns the name of the error kind.
func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", k)
}

// SyntaxError represents a syntax error caused by Tok.
type SyntaxError struct {
	Kind ErrorKind
	Tok  Token
	Msg  string
}

func (e *SyntaxError) Error() string {
	return e.Tok.Pos.String() + ": " + e.Msg
}

// Parser performs syntax analysis on ez source text.
type Parser struct {
	tokenizer *Tokenizer

	// Lookahead (at most one token)
	tok      Token // current token, valid when buffered is set
	buffered bool  // whether tok holds a token not yet consumed
	last     Token // most recently pulled token
}

// NewParser creates a new Parser for the given source text.
// Lexical diagnostics are reported to errh, which may be nil.
func NewParser(src string, errh func(pos Pos, msg string)) *Parser {
	return &Parser{tokenizer: NewTokenizer(src, errh)}
}

// SetUnderscoreIdents passes the identifier setting to the underlying tokenizer.
func (p *Parser) SetUnderscoreIdents(enabled bool) {
	p.tokenizer.SetUnderscoreIdents(enabled)
}

// ----------------------------------------------------------------------------
// Token navigation

// next pulls the next token into the lookahead.
// It reports false, leaving nothing buffered, at the end of input.
func (p *Parser) next() bool {
	tok, ok := p.tokenizer.Tokenize()
	p.tok, p.buffered = tok, ok
	if ok {
		p.last = tok
	}
	return ok
}

// consume drops the buffered token.
func (p *Parser) consume() {
	p.buffered = false
}

// ----------------------------------------------------------------------------
// Error handling

// missingAfter reports that input ended right after tok.
func (p *Parser) missingAfter(tok Token) error {
	return &SyntaxError{
		Kind: MissingTokenAfter,
		Tok:  tok,
		Msg:  fmt.Sprintf("missing token after %s", tok),
	}
}

// unexpected reports that tok is not allowed at this point.
func (p *Parser) unexpected(tok Token) error {
	msg := fmt.Sprintf("unexpected token %s", tok)
	if p.unterminated(tok) {
		msg = fmt.Sprintf("unterminated string literal %q", tok.Text)
	}
	return &SyntaxError{Kind: UnexpectedToken, Tok: tok, Msg: msg}
}

// unterminated reports whether tok is the remainder of a string literal
// that ran into the end of input.
func (p *Parser) unterminated(tok Token) bool {
	off := tok.Pos.Offset()
	return tok.Kind == Unknown && off < len(p.tokenizer.buf) && p.tokenizer.buf[off] == '"'
}

// ----------------------------------------------------------------------------
// Parsing entry points

// Parse parses the next top-level expression.
// It returns ErrNoMoreTokens once the input is exhausted. Any other error
// is a *SyntaxError; parsing cannot continue after it.
func (p *Parser) Parse() (Expr, error) {
	if !p.buffered && !p.next() {
		return nil, ErrNoMoreTokens
	}

	switch p.tok.Kind {
	case Identifier:
		d, err := p.declaration()
		if err != nil {
			return nil, err
		}
		return d, nil
	default:
		return nil, p.unexpected(p.tok)
	}
}

// ParseAll parses every remaining top-level expression and returns them
// as a Block. It stops at the first error.
func (p *Parser) ParseAll() (*Block, error) {
	b := &Block{}
	b.pos = NewPos(0, 1, 1)

	for {
		x, err := p.Parse()
		if errors.Is(err, ErrNoMoreTokens) {
			return b, nil
		}
		if err != nil {
			return nil, err
		}
		b.Body = append(b.Body, x)
	}
}

// ----------------------------------------------------------------------------
// Declarations

// declaration parses: Name := Value ;
// The trailing semicolon is omitted after a function value.
func (p *Parser) declaration() (*Declaration, error) {
	ident := p.tok
	if !p.next() {
		return nil, p.missingAfter(ident)
	}
	if p.tok.Kind != DeclAssign {
		return nil, p.unexpected(p.tok)
	}

	assign := p.tok
	if !p.next() {
		return nil, p.missingAfter(assign)
	}

	v, err := p.value()
	if err != nil {
		return nil, err
	}

	d := &Declaration{Name: ident.Text, Value: v}
	d.pos = ident.Pos

	if _, ok := v.(*FuncLit); ok {
		return d, nil
	}

	if !p.buffered {
		return nil, p.missingAfter(p.last)
	}
	if p.tok.Kind != Semi {
		return nil, p.unexpected(p.tok)
	}
	p.consume()

	return d, nil
}

// ----------------------------------------------------------------------------
// Values

// value parses the right-hand side of a declaration.
func (p *Parser) value() (Value, error) {
	tok := p.tok

	switch tok.Kind {
	case Integer, Float:
		// For now all numbers share one type.
		f, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, &SyntaxError{
				Kind: InvalidNumber,
				Tok:  tok,
				Msg:  fmt.Sprintf("invalid number %q", tok.Text),
			}
		}
		p.next()
		n := &NumberLit{Value: f}
		n.pos = tok.Pos
		return n, nil

	case String:
		p.next()
		s := &StringLit{Value: tok.Text}
		s.pos = tok.Pos
		return s, nil

	case Fn:
		f, err := p.funcLit()
		if err != nil {
			return nil, err
		}
		return f, nil

	default:
		return nil, p.unexpected(tok)
	}
}

// funcLit parses: fn ... { Body }
// Everything between fn and the opening brace is skipped, so the result
// never has parameters and always returns void.
func (p *Parser) funcLit() (*FuncLit, error) {
	f := &FuncLit{Result: VoidType{}}
	f.pos = p.tok.Pos

	for p.tok.Kind != LeftCurly {
		if !p.next() {
			return nil, p.missingAfter(p.last)
		}
	}
	p.consume()

	for {
		if !p.buffered && !p.next() {
			return nil, p.missingAfter(p.last)
		}
		if p.tok.Kind == RightCurly {
			p.next()
			return f, nil
		}

		x, err := p.Parse()
		if err != nil {
			return nil, err
		}
		f.Body = append(f.Body, x)
	}
}
