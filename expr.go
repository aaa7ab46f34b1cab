package treeql

import (
	"strconv"

	"github.com/zoobzio/treeql/internal/types"
)

// Re-exported so callers can build statements without importing the
// internal package.
type (
	Expr         = types.Expr
	Atom         = types.Atom
	Comparison   = types.Comparison
	Logical      = types.Logical
	Arithmetic   = types.Arithmetic
	Statement    = types.Statement
	OrderBy      = types.OrderBy
	InsertClause = types.InsertClause
	ColumnDef    = types.ColumnDef
	CreateTable  = types.CreateTable
	CreateIndex  = types.CreateIndex
	DropTable    = types.DropTable
	DropIndex    = types.DropIndex
	Dialect      = types.Dialect
)

// Dialect and direction constants.
const (
	Common   = types.Common
	Postgres = types.Postgres

	ASC  = types.ASC
	DESC = types.DESC
)

// Str creates a string literal atom. The text is rendered bare; wrap
// values that must reach the database as parameters with Bind, Arg, or
// Named, or enable literal wrapping on the compiler.
func Str(s string) types.Atom {
	return types.Atom{Kind: types.AtomString, Text: s, Literal: s}
}

// Num creates a numeric literal atom.
func Num(v float64) types.Atom {
	return types.Atom{
		Kind:    types.AtomNumber,
		Text:    strconv.FormatFloat(v, 'g', -1, 64),
		Literal: v,
	}
}

// Int creates an integer literal atom.
func Int(v int64) types.Atom {
	return types.Atom{
		Kind:    types.AtomNumber,
		Text:    strconv.FormatInt(v, 10),
		Literal: v,
	}
}

// Null creates a NULL atom.
func Null() types.Atom {
	return types.Atom{Kind: types.AtomNull}
}

// Bind creates a direct placeholder carrying its bind value.
func Bind(value any) types.Atom {
	return types.Atom{
		Kind:  types.AtomParam,
		Param: types.Placeholder{Kind: types.ParamDirect, Value: value},
	}
}

// Arg creates a positional placeholder whose value is taken from the
// bindings slice passed at compile time, in first-seen order.
func Arg() types.Atom {
	return types.Atom{
		Kind:  types.AtomParam,
		Param: types.Placeholder{Kind: types.ParamPositional},
	}
}

// Named creates a named placeholder resolved from the bindings map.
func Named(key string) types.Atom {
	return types.Atom{
		Kind:  types.AtomParam,
		Param: types.Placeholder{Kind: types.ParamNamed, Key: key},
	}
}

// Cmp creates a comparison against an arbitrary comparator.
func Cmp(column string, op types.Comparator, value types.Atom) types.Comparison {
	return types.Comparison{Column: column, Operator: op, Value: value}
}

// Eq creates an equality comparison.
func Eq(column string, value types.Atom) types.Comparison {
	return Cmp(column, types.EQ, value)
}

// Ne creates a not-equal comparison.
func Ne(column string, value types.Atom) types.Comparison {
	return Cmp(column, types.NE, value)
}

// Lt creates a less-than comparison.
func Lt(column string, value types.Atom) types.Comparison {
	return Cmp(column, types.LT, value)
}

// Gt creates a greater-than comparison.
func Gt(column string, value types.Atom) types.Comparison {
	return Cmp(column, types.GT, value)
}

// Le creates a less-or-equal comparison.
func Le(column string, value types.Atom) types.Comparison {
	return Cmp(column, types.LE, value)
}

// Ge creates a greater-or-equal comparison.
func Ge(column string, value types.Atom) types.Comparison {
	return Cmp(column, types.GE, value)
}

// Like creates a LIKE comparison.
func Like(column string, value types.Atom) types.Comparison {
	return Cmp(column, types.LIKE, value)
}

// And combines operands with AND. Arity below two is reported as a
// StructuralError when the statement is compiled.
func And(operands ...types.Expr) types.Logical {
	return types.Logical{Operator: types.AND, Operands: operands}
}

// Or combines operands with OR.
func Or(operands ...types.Expr) types.Logical {
	return types.Logical{Operator: types.OR, Operands: operands}
}

// Add creates an addition expression.
func Add(left, right types.Expr) types.Arithmetic {
	return types.Arithmetic{Operator: types.Add, Left: left, Right: right}
}

// Subtract creates a subtraction expression.
func Subtract(left, right types.Expr) types.Arithmetic {
	return types.Arithmetic{Operator: types.Sub, Left: left, Right: right}
}

// Multiply creates a multiplication expression.
func Multiply(left, right types.Expr) types.Arithmetic {
	return types.Arithmetic{Operator: types.Mul, Left: left, Right: right}
}

// Divide creates a division expression.
func Divide(left, right types.Expr) types.Arithmetic {
	return types.Arithmetic{Operator: types.Div, Left: left, Right: right}
}

// Mod creates a modulo expression.
func Mod(left, right types.Expr) types.Arithmetic {
	return types.Arithmetic{Operator: types.Mod, Left: left, Right: right}
}

// Concat creates a string concatenation expression.
func Concat(left, right types.Expr) types.Arithmetic {
	return types.Arithmetic{Operator: types.Concat, Left: left, Right: right}
}
