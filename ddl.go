package treeql

import (
	"strings"

	"github.com/zoobzio/treeql/internal/types"
)

// tokenizeDefinition compiles a definition statement (create/drop) into
// tokens. Definition statements are keyword assembly over the same
// token and placeholder machinery the query path uses; column defaults
// may be placeholders.
func tokenizeDefinition(stmt *types.Statement, ctx *paramContext) ([]types.Token, error) {
	if stmt.DefinitionCount() > 1 {
		return nil, NewStructuralError("statement has multiple definition clauses")
	}

	switch {
	case stmt.CreateTable != nil:
		return tokenizeCreateTable(stmt.CreateTable, ctx)
	case stmt.CreateIndex != nil:
		return tokenizeCreateIndex(stmt.CreateIndex)
	case stmt.DropTable != nil:
		d := stmt.DropTable
		if d.Name == "" {
			return nil, NewStructuralError("drop table requires a name")
		}
		return []types.Token{{Keyword: "drop table", Text: existence(d.Name, d.IfExists)}}, nil
	default:
		d := stmt.DropIndex
		if d.Name == "" {
			return nil, NewStructuralError("drop index requires a name")
		}
		return []types.Token{{Keyword: "drop index", Text: existence(d.Name, d.IfExists)}}, nil
	}
}

func tokenizeCreateTable(ct *types.CreateTable, ctx *paramContext) ([]types.Token, error) {
	if ct.Name == "" {
		return nil, NewStructuralError("create table requires a name")
	}
	if len(ct.Columns) == 0 {
		return nil, NewStructuralError("create table %q has no columns", ct.Name)
	}

	defs := make([]string, 0, len(ct.Columns))
	for _, col := range ct.Columns {
		if col.Name == "" || col.Type == "" {
			return nil, NewStructuralError("create table %q has a column without name or type", ct.Name)
		}
		def := col.Name + " " + col.Type
		if col.PrimaryKey {
			def += " PRIMARY KEY"
		}
		if col.NotNull {
			def += " NOT NULL"
		}
		if col.Unique {
			def += " UNIQUE"
		}
		if col.Default != nil {
			def += " DEFAULT " + renderAtom(*col.Default, ctx)
		}
		defs = append(defs, def)
	}

	head := ct.Name
	if ct.IfNotExists {
		head = "IF NOT EXISTS " + head
	}
	text := head + " (" + strings.Join(defs, ", ") + ")"
	return []types.Token{{Keyword: "create table", Text: text}}, nil
}

func tokenizeCreateIndex(ci *types.CreateIndex) ([]types.Token, error) {
	if ci.Name == "" || ci.Table == "" {
		return nil, NewStructuralError("create index requires a name and a table")
	}
	if len(ci.Columns) == 0 {
		return nil, NewStructuralError("create index %q has no columns", ci.Name)
	}

	keyword := "create index"
	if ci.Unique {
		keyword = "create unique index"
	}
	head := ci.Name
	if ci.IfNotExists {
		head = "IF NOT EXISTS " + head
	}
	text := head + " ON " + ci.Table + " (" + strings.Join(ci.Columns, ", ") + ")"
	return []types.Token{{Keyword: keyword, Text: text}}, nil
}

func existence(name string, ifExists bool) string {
	if ifExists {
		return "IF EXISTS " + name
	}
	return name
}
