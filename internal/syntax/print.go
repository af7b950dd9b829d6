package syntax

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Fprint writes a textual representation of the AST to w.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

func (p *printer) print(node Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *Block:
		p.printf("Block %s\n", n.pos)
		p.indent++
		for _, x := range n.Body {
			p.print(x)
		}
		p.indent--

	case *Declaration:
		p.printf("Declaration %s %q\n", n.pos, n.Name)
		p.indent++
		p.print(n.Value)
		p.indent--

	case *Binary:
		p.printf("Binary %s %s\n", n.pos, n.Op)
		p.indent++
		p.printf("X:\n")
		p.indent++
		p.print(n.X)
		p.indent--
		p.printf("Y:\n")
		p.indent++
		p.print(n.Y)
		p.indent--
		p.indent--

	case *NumberLit:
		p.printf("NumberLit %s %s\n", n.pos, formatNumber(n.Value))

	case *StringLit:
		p.printf("StringLit %s %q\n", n.pos, n.Value)

	case *FuncLit:
		p.printf("FuncLit %s\n", n.pos)
		p.indent++
		p.printf("Params: (%s)\n", paramsString(n.Params))
		p.printf("Result: %s\n", typeString(n.Result))
		if len(n.Body) > 0 {
			p.printf("Body:\n")
			p.indent++
			for _, x := range n.Body {
				p.print(x)
			}
			p.indent--
		}
		p.indent--

	default:
		p.printf("<%T>\n", node)
	}
}

// formatNumber returns the shortest decimal form of f.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
