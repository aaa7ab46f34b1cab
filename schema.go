package treeql

import (
	"strings"

	"github.com/zoobzio/dbml"

	"github.com/zoobzio/treeql/internal/types"
)

// Schema reports whether tables and columns exist. A compiler with a
// schema attached validates every identifier a statement references and
// fails with a ValidationError naming the first unknown one. The schema
// argument is the namespace qualifier; "" means the default namespace.
type Schema interface {
	HasTable(schema, name string) bool
	HasColumn(schema, table, name string) bool
}

// DBMLSchema validates identifiers against a DBML project definition.
type DBMLSchema struct {
	tables map[string]map[string]bool // table -> column set
}

// NewDBMLSchema indexes a DBML project for validation lookups.
func NewDBMLSchema(project *dbml.Project) *DBMLSchema {
	s := &DBMLSchema{tables: make(map[string]map[string]bool)}
	if project == nil {
		return s
	}
	for _, table := range project.Tables {
		cols := make(map[string]bool, len(table.Columns))
		for _, col := range table.Columns {
			cols[col.Name] = true
		}
		s.tables[table.Name] = cols
	}
	return s
}

// HasTable reports whether the table exists in the project.
func (s *DBMLSchema) HasTable(schema, name string) bool {
	if schema != "" {
		name = schema + "." + name
	}
	_, ok := s.tables[name]
	return ok
}

// HasColumn reports whether the column exists on the table.
func (s *DBMLSchema) HasColumn(schema, table, name string) bool {
	if schema != "" {
		table = schema + "." + table
	}
	cols, ok := s.tables[table]
	return ok && cols[name]
}

// prepareStatement validates a DML statement's identifiers against the
// schema and, when wrapLiterals is set, returns a copy with literal
// comparison values and literal insert values rewritten into direct
// placeholders. The input statement is never mutated.
func prepareStatement(stmt *types.Statement, schema Schema, wrapLiterals bool) (*types.Statement, error) {
	if !stmt.IsQuery() {
		// Definition statements change the schema; they are not
		// validated against it.
		return stmt, nil
	}

	tables := make([]string, 0, len(stmt.From)+1)
	if stmt.Insert != nil && stmt.Insert.Table != "" {
		tables = append(tables, stmt.Insert.Table)
	}
	tables = append(tables, stmt.From...)

	for _, t := range tables {
		if !schema.HasTable("", t) {
			return nil, NewValidationError("table", t)
		}
	}

	check := func(column string) error {
		name := column
		if i := strings.LastIndex(name, "."); i >= 0 {
			name = name[i+1:]
		}
		if name == "*" {
			return nil
		}
		for _, t := range tables {
			if schema.HasColumn("", t, name) {
				return nil
			}
		}
		return NewValidationError("column", column)
	}

	for _, col := range stmt.Select {
		if err := check(col); err != nil {
			return nil, err
		}
	}
	if stmt.Insert != nil {
		for _, col := range stmt.Insert.Columns {
			if err := check(col); err != nil {
				return nil, err
			}
		}
	}
	for _, o := range stmt.OrderBy {
		if err := check(o.Column); err != nil {
			return nil, err
		}
	}
	if stmt.Where != nil {
		if err := checkPredicateColumns(stmt.Where, check); err != nil {
			return nil, err
		}
	}

	if !wrapLiterals {
		return stmt, nil
	}

	wrapped := *stmt
	if stmt.Where != nil {
		wrapped.Where = wrapExprLiterals(stmt.Where)
	}
	if stmt.Insert != nil {
		ins := *stmt.Insert
		ins.Values = make([]types.Expr, len(stmt.Insert.Values))
		for i, v := range stmt.Insert.Values {
			if a, ok := v.(types.Atom); ok {
				ins.Values[i] = wrapAtomLiteral(a)
			} else {
				ins.Values[i] = v
			}
		}
		wrapped.Insert = &ins
	}
	return &wrapped, nil
}

func checkPredicateColumns(expr types.Expr, check func(string) error) error {
	switch e := expr.(type) {
	case types.Comparison:
		return check(e.Column)
	case types.Logical:
		for _, operand := range e.Operands {
			if err := checkPredicateColumns(operand, check); err != nil {
				return err
			}
		}
	}
	return nil
}

// wrapExprLiterals returns a copy of a predicate with literal
// comparison values converted into direct placeholders.
func wrapExprLiterals(expr types.Expr) types.Expr {
	switch e := expr.(type) {
	case types.Comparison:
		e.Value = wrapAtomLiteral(e.Value)
		return e
	case types.Logical:
		operands := make([]types.Expr, len(e.Operands))
		for i, operand := range e.Operands {
			operands[i] = wrapExprLiterals(operand)
		}
		return types.Logical{Operator: e.Operator, Operands: operands}
	default:
		return expr
	}
}

func wrapAtomLiteral(a types.Atom) types.Atom {
	if a.Kind != types.AtomString && a.Kind != types.AtomNumber {
		return a
	}
	value := a.Literal
	if value == nil {
		value = a.Text
	}
	return types.Atom{
		Kind:  types.AtomParam,
		Param: types.Placeholder{Kind: types.ParamDirect, Value: value},
	}
}
