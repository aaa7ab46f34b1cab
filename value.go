package treeql

import (
	"github.com/zoobzio/treeql/internal/types"
)

// arithPrecedence orders value-expression operators, low to high.
var arithPrecedence = map[types.ArithOperator]int{
	types.Concat: 1,
	types.Add:    2,
	types.Sub:    2,
	types.Mul:    3,
	types.Div:    3,
	types.Mod:    3,
}

// renderAtom renders a leaf value. Placeholders are routed through the
// context and come back as sentinel markers.
func renderAtom(a types.Atom, ctx *paramContext) string {
	switch a.Kind {
	case types.AtomNull:
		return "NULL"
	case types.AtomParam:
		return ctx.add(a.Param)
	default:
		return a.Text
	}
}

// formatValueExpr renders a value expression for INSERT/VALUES and DDL
// default contexts. parent is the operator this expression appears
// under ("" at the root); right marks the right-hand operand.
//
// The composed text is parenthesized iff this operator binds looser
// than parent, or equally tight on the right-hand side of a
// non-associative parent (- or /), so a-(b-c) keeps its grouping while
// (a-b)-c stays flat.
func formatValueExpr(expr types.Expr, parent types.ArithOperator, right bool, ctx *paramContext) (string, error) {
	switch e := expr.(type) {
	case types.Atom:
		return renderAtom(e, ctx), nil
	case types.Arithmetic:
		left, err := formatValueExpr(e.Left, e.Operator, false, ctx)
		if err != nil {
			return "", err
		}
		rhs, err := formatValueExpr(e.Right, e.Operator, true, ctx)
		if err != nil {
			return "", err
		}
		out := left + " " + string(e.Operator) + " " + rhs
		if parent != "" {
			pp, ok := arithPrecedence[parent]
			if !ok {
				return "", NewStructuralError("unknown arithmetic operator %q", parent)
			}
			cp, ok := arithPrecedence[e.Operator]
			if !ok {
				return "", NewStructuralError("unknown arithmetic operator %q", e.Operator)
			}
			if cp < pp || (cp == pp && right && (parent == types.Sub || parent == types.Div)) {
				out = "(" + out + ")"
			}
		}
		return out, nil
	default:
		return "", NewStructuralError("%T is not a value expression", expr)
	}
}
