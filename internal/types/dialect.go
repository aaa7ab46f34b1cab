package types

import "strconv"

// Dialect selects the bind-marker syntax of the target engine.
type Dialect string

const (
	// Common is the `?` placeholder family (sqlite, mysql).
	Common Dialect = "common"
	// Postgres is the `$1, $2, ...` placeholder family.
	Postgres Dialect = "pg"
)

// Marker returns the bind marker for a zero-based placeholder ordinal.
func (d Dialect) Marker(ordinal int) string {
	if d == Postgres {
		return "$" + strconv.Itoa(ordinal+1)
	}
	return "?"
}
