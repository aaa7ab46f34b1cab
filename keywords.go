package treeql

// KeywordTable maps lower-case clause and operator names to canonical
// SQL text. The table is an immutable value owned by the compiler:
// construct it once with DefaultKeywords, extend by copy with With.
type KeywordTable struct {
	casing map[string]string
}

// DefaultKeywords returns the standard casing table.
func DefaultKeywords() KeywordTable {
	return KeywordTable{casing: map[string]string{
		"select":              "SELECT",
		"from":                "FROM",
		"where":               "WHERE",
		"and":                 "AND",
		"or":                  "OR",
		"order by":            "ORDER BY",
		"group by":            "GROUP BY",
		"having":              "HAVING",
		"insert into":         "INSERT INTO",
		"values":              "VALUES",
		"set":                 "SET",
		"on":                  "ON",
		"create table":        "CREATE TABLE",
		"create index":        "CREATE INDEX",
		"create unique index": "CREATE UNIQUE INDEX",
		"drop table":          "DROP TABLE",
		"drop index":          "DROP INDEX",
	}}
}

// With returns a copy of the table extended with extra entries.
func (t KeywordTable) With(extra map[string]string) KeywordTable {
	casing := make(map[string]string, len(t.casing)+len(extra))
	for k, v := range t.casing {
		casing[k] = v
	}
	for k, v := range extra {
		casing[k] = v
	}
	return KeywordTable{casing: casing}
}

// Canon returns the canonical text for a keyword and whether the
// keyword is recognized.
func (t KeywordTable) Canon(keyword string) (string, bool) {
	c, ok := t.casing[keyword]
	return c, ok
}
