package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses an AST in depth-first order.
// If visitor returns false, children are not visited.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {
	case *Block:
		for _, x := range n.Body {
			Walk(x, v)
		}

	case *Declaration:
		if n.Value != nil {
			Walk(n.Value, v)
		}

	case *Binary:
		Walk(n.X, v)
		Walk(n.Y, v)

	case *FuncLit:
		for _, x := range n.Body {
			Walk(x, v)
		}

	// Leaf nodes: NumberLit, StringLit
	// No children to visit
	}
}

// Inspect traverses an AST and calls f for each node.
// Convenience wrapper around Walk.
func Inspect(node Node, f func(Node) bool) {
	Walk(node, Visitor(f))
}
