package syntax

import "strings"

// ----------------------------------------------------------------------------
// Interfaces
//
// There are 2 classes of nodes: Expressions and Values. Values only appear
// on the right-hand side of a declaration. All nodes implement the Node
// interface.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() Pos // position of first character belonging to the node
	aNode()   // marker method to restrict implementations to this package
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	aExpr()
}

// Value is the interface for the value nodes bound by a declaration.
type Value interface {
	Node
	aValue()
}

// ----------------------------------------------------------------------------
// Base node types

// node is the base struct embedded in all AST nodes.
type node struct {
	pos Pos
}

func (n *node) Pos() Pos { return n.pos }
func (n *node) aNode()   {}

// expr is embedded in all expression nodes.
type expr struct{ node }

func (*expr) aExpr() {}

// value is embedded in all value nodes.
type value struct{ node }

func (*value) aValue() {}

// ----------------------------------------------------------------------------
// Expressions

// Binary represents a binary operation: X Op Y.
// The grammar does not produce it yet.
type Binary struct {
	expr
	X  Expr // left operand
	Y  Expr // right operand
	Op Kind // operator kind
}

// Declaration binds a name to a value: Name := Value
type Declaration struct {
	expr
	Name  string // declared identifier
	Value Value  // bound value
}

// Block represents an ordered sequence of expressions.
type Block struct {
	expr
	Body []Expr
}

// ----------------------------------------------------------------------------
// Values

// NumberLit represents a number literal. Integers and floats share float64.
type NumberLit struct {
	value
	Value float64
}

// StringLit represents a string literal.
type StringLit struct {
	value
	Value string // contents without quotes
}

// FuncLit represents a function literal: fn(...) { Body }
type FuncLit struct {
	value
	Params []*Param // parameter list
	Result BaseType // return type
	Body   []Expr   // function body
}

// Param represents a named function parameter.
type Param struct {
	Name string
	Type BaseType
}

// ----------------------------------------------------------------------------
// Types

// BaseType is the interface for the types a parameter or result can have.
type BaseType interface {
	String() string
	aType()
}

// VoidType is the type of a function without a result.
type VoidType struct{}

// NumberType is the type of number values.
type NumberType struct{}

// StringType is the type of string values.
type StringType struct{}

// FuncType is the type of function values.
type FuncType struct {
	Params []*Param
	Result BaseType
}

func (VoidType) aType()   {}
func (NumberType) aType() {}
func (StringType) aType() {}
func (FuncType) aType()   {}

func (VoidType) String() string   { return "void" }
func (NumberType) String() string { return "number" }
func (StringType) String() string { return "string" }

func (t FuncType) String() string {
	return "fn(" + paramsString(t.Params) + ") " + typeString(t.Result)
}

// paramsString formats a parameter list as "a number, b string".
func paramsString(params []*Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.Name + " " + typeString(p.Type)
	}
	return strings.Join(parts, ", ")
}

// typeString returns the string form of t, treating nil as void.
func typeString(t BaseType) string {
	if t == nil {
		return VoidType{}.String()
	}
	return t.String()
}
