package syntax

import (
	"encoding/json"
	"io"
	"math"
)

// FprintJSON writes a JSON representation of the AST to w.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toTree(node))
}

// toTree converts node into nested maps and slices that mirror the AST.
// It backs both the JSON and the YAML output.
func toTree(node Node) interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *Block:
		return map[string]interface{}{
			"type": "Block",
			"pos":  n.pos.String(),
			"body": exprTrees(n.Body),
		}

	case *Declaration:
		return map[string]interface{}{
			"type":  "Declaration",
			"pos":   n.pos.String(),
			"name":  n.Name,
			"value": toTree(n.Value),
		}

	case *Binary:
		return map[string]interface{}{
			"type": "Binary",
			"pos":  n.pos.String(),
			"op":   n.Op.String(),
			"x":    toTree(n.X),
			"y":    toTree(n.Y),
		}

	case *NumberLit:
		return map[string]interface{}{
			"type":  "NumberLit",
			"pos":   n.pos.String(),
			"value": numberValue(n.Value),
		}

	case *StringLit:
		return map[string]interface{}{
			"type":  "StringLit",
			"pos":   n.pos.String(),
			"value": n.Value,
		}

	case *FuncLit:
		return map[string]interface{}{
			"type":   "FuncLit",
			"pos":    n.pos.String(),
			"params": paramTrees(n.Params),
			"result": typeString(n.Result),
			"body":   exprTrees(n.Body),
		}

	default:
		return map[string]interface{}{
			"type": "Unknown",
		}
	}
}

// numberValue returns f, or its text form when f is infinite or NaN,
// which JSON cannot represent.
func numberValue(f float64) interface{} {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return formatNumber(f)
	}
	return f
}

// paramTrees converts a parameter list into name/type maps.
func paramTrees(params []*Param) []interface{} {
	result := make([]interface{}, len(params))
	for i, p := range params {
		result[i] = map[string]interface{}{
			"name": p.Name,
			"type": typeString(p.Type),
		}
	}
	return result
}

// exprTrees converts each expression of a body.
func exprTrees(body []Expr) []interface{} {
	result := make([]interface{}, len(body))
	for i, x := range body {
		result[i] = toTree(x)
	}
	return result
}
