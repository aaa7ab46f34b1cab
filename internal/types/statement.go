package types

// Direction represents sort direction.
type Direction string

const (
	ASC  Direction = "ASC"
	DESC Direction = "DESC"
)

// OrderBy represents one ORDER BY entry.
type OrderBy struct {
	Column    string
	Direction Direction
}

// InsertClause describes an INSERT INTO target and its value
// expressions, one per column. Values may be atoms or arithmetic
// expressions.
type InsertClause struct {
	Table   string
	Columns []string
	Values  []Expr
}

// ColumnDef is a column definition in CREATE TABLE.
type ColumnDef struct {
	Name       string
	Type       string
	PrimaryKey bool
	NotNull    bool
	Unique     bool
	Default    *Atom
}

// CreateTable describes a CREATE TABLE statement.
type CreateTable struct {
	Name        string
	IfNotExists bool
	Columns     []ColumnDef
}

// CreateIndex describes a CREATE [UNIQUE] INDEX statement.
type CreateIndex struct {
	Name        string
	Table       string
	Columns     []string
	Unique      bool
	IfNotExists bool
}

// DropTable describes a DROP TABLE statement.
type DropTable struct {
	Name     string
	IfExists bool
}

// DropIndex describes a DROP INDEX statement.
type DropIndex struct {
	Name     string
	IfExists bool
}

// Statement is the clause container for one statement. DML clauses are
// processed in fixed order (insert, values, select, from, where,
// order by); at most one DDL clause may be set, and DML and DDL clauses
// must not be mixed.
type Statement struct {
	Insert  *InsertClause
	Select  []string
	From    []string
	Where   Expr
	OrderBy []OrderBy

	CreateTable *CreateTable
	CreateIndex *CreateIndex
	DropTable   *DropTable
	DropIndex   *DropIndex
}

// IsQuery reports whether any DML clause is present.
func (s *Statement) IsQuery() bool {
	return s.Insert != nil || len(s.Select) > 0 || len(s.From) > 0 ||
		s.Where != nil || len(s.OrderBy) > 0
}

// IsDefinition reports whether any DDL clause is present.
func (s *Statement) IsDefinition() bool {
	return s.CreateTable != nil || s.CreateIndex != nil ||
		s.DropTable != nil || s.DropIndex != nil
}

// DefinitionCount returns the number of DDL clauses set.
func (s *Statement) DefinitionCount() int {
	n := 0
	if s.CreateTable != nil {
		n++
	}
	if s.CreateIndex != nil {
		n++
	}
	if s.DropTable != nil {
		n++
	}
	if s.DropIndex != nil {
		n++
	}
	return n
}
