package types

// PlaceholderKind discriminates how a placeholder obtains its value.
type PlaceholderKind int

const (
	// ParamDirect carries its value, supplied at construction.
	ParamDirect PlaceholderKind = iota
	// ParamPositional takes its value from the caller's bindings slice,
	// in first-seen placeholder order.
	ParamPositional
	// ParamNamed is looked up by key in the caller's bindings map.
	ParamNamed
)

// Placeholder is a stand-in for a bind parameter. Immutable once
// constructed. The same type records discovered placeholders in the
// compile context, in encounter order; that order is the canonical
// bind-value order.
type Placeholder struct {
	Kind  PlaceholderKind
	Value any
	Key   string
}
