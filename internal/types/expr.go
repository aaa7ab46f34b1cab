package types

// Expr is a node in a caller-built expression tree. The tree is a pure
// input: the compiler never mutates it.
type Expr interface {
	isExpr()
}

// AtomKind discriminates leaf values.
type AtomKind int

const (
	AtomString AtomKind = iota
	AtomNumber
	AtomNull
	AtomParam
)

// Atom is a leaf value: a literal, NULL, or a bind placeholder.
// Text holds the rendered literal for string and number atoms; Literal
// holds the original Go value so literals can be rewritten into
// placeholders by the schema collaborator.
type Atom struct {
	Kind    AtomKind
	Text    string
	Literal any
	Param   Placeholder
}

// Comparator is a comparison operator in a predicate.
type Comparator string

const (
	EQ   Comparator = "="
	NE   Comparator = "<>"
	LT   Comparator = "<"
	GT   Comparator = ">"
	LE   Comparator = "<="
	GE   Comparator = ">="
	LIKE Comparator = "LIKE"
)

// Comparison compares a column against an atom.
type Comparison struct {
	Column   string
	Operator Comparator
	Value    Atom
}

// LogicOperator combines predicate operands.
type LogicOperator string

const (
	AND LogicOperator = "and"
	OR  LogicOperator = "or"
)

// Logical combines two or more sub-expressions. Fewer than two operands
// is a structural error, reported at tokenize time.
type Logical struct {
	Operator LogicOperator
	Operands []Expr
}

// ArithOperator is a binary arithmetic or concatenation operator.
type ArithOperator string

const (
	Concat ArithOperator = "||"
	Add    ArithOperator = "+"
	Sub    ArithOperator = "-"
	Mul    ArithOperator = "*"
	Div    ArithOperator = "/"
	Mod    ArithOperator = "%"
)

// Arithmetic is a binary value expression.
type Arithmetic struct {
	Operator ArithOperator
	Left     Expr
	Right    Expr
}

func (Atom) isExpr()       {}
func (Comparison) isExpr() {}
func (Logical) isExpr()    {}
func (Arithmetic) isExpr() {}
