// Package treeql compiles data-structure-encoded SQL statements into
// SQL text and an ordered bind-value sequence.
//
// A statement is a caller-built expression tree: clause fields on
// Statement, with predicates assembled from comparisons and And/Or
// groups and insert values from arithmetic expressions. The compiler
// tokenizes the tree (resolving logical and arithmetic precedence and
// extracting placeholders), renders the token stream either flat or
// with right-aligned pretty layout, then resolves placeholder sentinels
// into dialect markers or display values.
//
//	c := treeql.New(treeql.WithDialect(treeql.Postgres))
//	res, err := c.Format(&treeql.Statement{
//		Select: []string{"id", "name"},
//		From:   []string{"users"},
//		Where:  treeql.Eq("status", treeql.Arg()),
//	}, treeql.Args("active"))
//	// res.SQL  = `SELECT id, name FROM users WHERE status = $1`
//	// res.Args = []any{"active"}
//
// Compilation is pure and synchronous; every call allocates its own
// placeholder context, so a Compiler is safe for concurrent use.
package treeql
