package treeql

import (
	"strings"

	"github.com/zoobzio/treeql/internal/types"
)

// tokenizeStatement compiles the DML clauses of a statement into an
// ordered token list. Clauses contribute tokens in fixed order: insert,
// values, select, from, where, order by.
func tokenizeStatement(stmt *types.Statement, ctx *paramContext) ([]types.Token, error) {
	var tokens []types.Token

	if stmt.Insert != nil {
		ins := stmt.Insert
		if ins.Table == "" {
			return nil, NewStructuralError("insert requires a table")
		}
		head := ins.Table
		if len(ins.Columns) > 0 {
			head += " (" + strings.Join(ins.Columns, ", ") + ")"
		}
		tokens = append(tokens, types.Token{Keyword: "insert into", Text: head})

		if len(ins.Values) > 0 {
			if len(ins.Columns) > 0 && len(ins.Values) != len(ins.Columns) {
				return nil, NewStructuralError("insert has %d columns but %d values",
					len(ins.Columns), len(ins.Values))
			}
			vals := make([]string, 0, len(ins.Values))
			for _, v := range ins.Values {
				s, err := formatValueExpr(v, "", false, ctx)
				if err != nil {
					return nil, err
				}
				vals = append(vals, s)
			}
			tokens = append(tokens, types.Token{
				Keyword: "values",
				Text:    "(" + strings.Join(vals, ", ") + ")",
			})
		}
	}

	if len(stmt.Select) > 0 {
		tokens = append(tokens, types.Token{
			Keyword: "select",
			Text:    strings.Join(stmt.Select, ", "),
		})
	}

	if len(stmt.From) > 0 {
		tokens = append(tokens, types.Token{
			Keyword: "from",
			Text:    strings.Join(stmt.From, ", "),
		})
	}

	if stmt.Where != nil {
		where, err := tokenizeExpr(stmt.Where, "where", ctx)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, where...)
	}

	if len(stmt.OrderBy) > 0 {
		parts := make([]string, 0, len(stmt.OrderBy))
		for _, o := range stmt.OrderBy {
			part := o.Column
			if o.Direction != "" {
				part += " " + string(o.Direction)
			}
			parts = append(parts, part)
		}
		tokens = append(tokens, types.Token{
			Keyword: "order by",
			Text:    strings.Join(parts, ", "),
		})
	}

	if len(tokens) == 0 {
		return nil, NewStructuralError("statement has no clauses")
	}
	return tokens, nil
}

// tokenizeExpr compiles one predicate expression under a leading
// keyword.
func tokenizeExpr(expr types.Expr, keyword string, ctx *paramContext) ([]types.Token, error) {
	switch e := expr.(type) {
	case types.Atom:
		return []types.Token{{Keyword: keyword, Text: renderAtom(e, ctx)}}, nil
	case types.Comparison:
		return []types.Token{{Keyword: keyword, Text: renderComparison(e, ctx)}}, nil
	case types.Logical:
		return tokenizeLogical(e.Operator, e.Operands, keyword, ctx)
	default:
		return nil, NewStructuralError("%T is not a predicate expression", expr)
	}
}

func renderComparison(c types.Comparison, ctx *paramContext) string {
	return c.Column + " " + string(c.Operator) + " " + renderAtom(c.Value, ctx)
}

// tokenizeLogical walks the operands of a logical expression. Operand 0
// takes firstKeyword; later operands take the operator name. OR nested
// under AND becomes a grouped token (OR must be parenthesized when
// mixed under AND); every other nesting flattens into the outer
// sequence, since AND binds tighter than OR and same-operator chains
// need no grouping.
func tokenizeLogical(op types.LogicOperator, operands []types.Expr, firstKeyword string, ctx *paramContext) ([]types.Token, error) {
	if len(operands) < 2 {
		return nil, NewStructuralError("%s requires at least two operands, got %d",
			strings.ToUpper(string(op)), len(operands))
	}

	var tokens []types.Token
	keyword := firstKeyword
	for i, operand := range operands {
		if i > 0 {
			keyword = string(op)
		}
		switch o := operand.(type) {
		case types.Atom:
			tokens = append(tokens, types.Token{Keyword: keyword, Text: renderAtom(o, ctx)})
		case types.Comparison:
			tokens = append(tokens, types.Token{Keyword: keyword, Text: renderComparison(o, ctx)})
		case types.Logical:
			if op == types.AND && o.Operator == types.OR {
				group, err := tokenizeLogical(o.Operator, o.Operands, "", ctx)
				if err != nil {
					return nil, err
				}
				tokens = append(tokens, types.Token{Keyword: keyword, Group: group})
			} else {
				flat, err := tokenizeLogical(o.Operator, o.Operands, keyword, ctx)
				if err != nil {
					return nil, err
				}
				tokens = append(tokens, flat...)
			}
		default:
			return nil, NewStructuralError("%T is not a predicate expression", operand)
		}
	}
	return tokens, nil
}
