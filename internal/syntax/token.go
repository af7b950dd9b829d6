// Package syntax implements lexical and syntactic analysis for the ez programming language.
package syntax

import "fmt"

// Kind represents the type of a lexical token.
type Kind uint

const (
	// Unknown marks unrecognized input and unterminated string literals.
	Unknown Kind = iota

	Identifier // foo, bar, x1

	// Keywords
	Fn   // fn
	Mut  // mut
	If   // if
	Else // else

	// Literals
	Integer // 123
	Float   // 3.14, .5, 1.2.3
	String  // "hello"

	// Delimiters
	LeftCurly    // {
	RightCurly   // }
	LeftParen    // (
	RightParen   // )
	LeftBracket  // [
	RightBracket // ]
	Dot          // .
	Comma        // ,
	Colon        // :
	Semi         // ;

	// Assignment
	DeclAssign // :=
	Assign     // =

	// Arithmetic operators
	Plus      // +
	Minus     // -
	Times     // *
	DividedBy // /

	// Comparison and logical operators
	Equals          // ==
	Not             // !
	NotEquals       // !=
	GreaterThan     // >
	GreaterOrEquals // >=
	LowerThan       // <
	LowerOrEquals   // <=
	Or              // ||
	And             // &&

	// Bitwise operators
	BitAnd // &
	BitOr  // |
	BitXor // ^
	BitNot // ~

	kindCount
)

// kindNames maps kinds to their names.
var kindNames = [...]string{
	Unknown:    "Unknown",
	Identifier: "Identifier",

	Fn:   "Fn",
	Mut:  "Mut",
	If:   "If",
	Else: "Else",

	Integer: "Integer",
	Float:   "Float",
	String:  "String",

	LeftCurly:    "LeftCurly",
	RightCurly:   "RightCurly",
	LeftParen:    "LeftParen",
	RightParen:   "RightParen",
	LeftBracket:  "LeftBracket",
	RightBracket: "RightBracket",
	Dot:          "Dot",
	Comma:        "Comma",
	Colon:        "Colon",
	Semi:         "Semi",

	DeclAssign: "DeclAssign",
	Assign:     "Assign",

	Plus:      "Plus",
	Minus:     "Minus",
	Times:     "Times",
	DividedBy: "DividedBy",

	Equals:          "Equals",
	Not:             "Not",
	NotEquals:       "NotEquals",
	GreaterThan:     "GreaterThan",
	GreaterOrEquals: "GreaterOrEquals",
	LowerThan:       "LowerThan",
	LowerOrEquals:   "LowerOrEquals",
	Or:              "Or",
	And:             "And",

	BitAnd: "BitAnd",
	BitOr:  "BitOr",
	BitXor: "BitXor",
	BitNot: "BitNot",
}

// spellings maps keyword and symbol kinds to their canonical spelling.
var spellings = [kindCount]string{
	Fn:   "fn",
	Mut:  "mut",
	If:   "if",
	Else: "else",

	LeftCurly:    "{",
	RightCurly:   "}",
	LeftParen:    "(",
	RightParen:   ")",
	LeftBracket:  "[",
	RightBracket: "]",
	Dot:          ".",
	Comma:        ",",
	Colon:        ":",
	Semi:         ";",

	DeclAssign: ":=",
	Assign:     "=",

	Plus:      "+",
	Minus:     "-",
	Times:     "*",
	DividedBy: "/",

	Equals:          "==",
	Not:             "!",
	NotEquals:       "!=",
	GreaterThan:     ">",
	GreaterOrEquals: ">=",
	LowerThan:       "<",
	LowerOrEquals:   "<=",
	Or:              "||",
	And:             "&&",

	BitAnd: "&",
	BitOr:  "|",
	BitXor: "^",
	BitNot: "~",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Spelling returns the canonical source spelling of a keyword or symbol kind.
// Identifiers, literals and Unknown have no fixed spelling and return "".
func (k Kind) Spelling() string {
	if k < kindCount {
		return spellings[k]
	}
	return ""
}

// IsKeyword reports whether k is a keyword kind.
func (k Kind) IsKeyword() bool {
	return k >= Fn && k <= Else
}

// IsLiteral reports whether k is a literal kind.
func (k Kind) IsLiteral() bool {
	return k >= Integer && k <= String
}

// IsSymbol reports whether k is a punctuation or operator kind.
func (k Kind) IsSymbol() bool {
	return k >= LeftCurly && k < kindCount
}

// Token is a classified unit of source text.
type Token struct {
	Kind Kind   // token kind
	Text string // raw lexeme; string contents exclude the quotes
	Pos  Pos    // position of the first character
}

// String returns the kind and text of the token, e.g. Identifier "x".
func (t Token) String() string {
	return fmt.Sprintf("%s %q", t.Kind, t.Text)
}

// keywords maps keyword strings to their kind.
var keywords = map[string]Kind{
	"fn":   Fn,
	"mut":  Mut,
	"if":   If,
	"else": Else,
}

// LookupKeyword returns the kind for the given identifier string.
// If the identifier is a keyword, returns the keyword kind.
// Otherwise, returns Identifier.
func LookupKeyword(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return Identifier
}

// symbols maps every single-character symbol to its kind.
var symbols = map[rune]Kind{
	'{': LeftCurly,
	'}': RightCurly,
	'(': LeftParen,
	')': RightParen,
	'[': LeftBracket,
	']': RightBracket,
	'.': Dot,
	',': Comma,
	':': Colon,
	';': Semi,
	'=': Assign,
	'+': Plus,
	'-': Minus,
	'*': Times,
	'/': DividedBy,
	'!': Not,
	'>': GreaterThan,
	'<': LowerThan,
	'&': BitAnd,
	'|': BitOr,
	'^': BitXor,
	'~': BitNot,
}

// widening describes the two-character form of a symbol.
type widening struct {
	next rune // required second character
	kind Kind // resulting kind
}

// widenings maps the single-character kinds that have a two-character form.
var widenings = map[Kind]widening{
	Colon:       {'=', DeclAssign},
	Assign:      {'=', Equals},
	Not:         {'=', NotEquals},
	GreaterThan: {'=', GreaterOrEquals},
	LowerThan:   {'=', LowerOrEquals},
	BitAnd:      {'&', And},
	BitOr:       {'|', Or},
}
