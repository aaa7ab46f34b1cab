package treeql

import (
	"fmt"
	"strings"

	"github.com/zoobzio/treeql/internal/types"
)

// Binds carries caller-supplied bind values: a slice consumed by
// positional placeholders in first-seen order, and a map for named
// placeholders.
type Binds struct {
	Args  []any
	Named map[string]any
}

// Args is a convenience constructor for positional bindings.
func Args(values ...any) Binds {
	return Binds{Args: values}
}

// NamedArgs is a convenience constructor for named bindings.
func NamedArgs(named map[string]any) Binds {
	return Binds{Named: named}
}

func (b Binds) empty() bool {
	return len(b.Args) == 0 && len(b.Named) == 0
}

// resolveMode selects the phase-2 substitution target.
type resolveMode int

const (
	// resolveMarkers substitutes dialect bind markers, for production SQL.
	resolveMarkers resolveMode = iota
	// resolveDisplay inlines bound values (or unbound placeholder forms)
	// for human and debug output.
	resolveDisplay
)

// resolve is the phase-2 pass: one sweep over the rendered text swaps
// every sentinel for its final form. Marker ordinals are first-seen
// placeholder ordinals, so the postgres dialect numbers $1, $2, ...
// in discovery order regardless of final clause order.
func (c *paramContext) resolve(text string, mode resolveMode, binds Binds) string {
	if !hasMarker(text) {
		return text
	}
	pos := 0
	for i, entry := range c.entries {
		var repl string
		if mode == resolveMarkers {
			repl = c.dialect.Marker(i)
		} else {
			repl = displayEntry(entry, binds, &pos)
		}
		text = strings.Replace(text, marker(i), repl, 1)
	}
	return text
}

// displayEntry renders one placeholder for human output: direct values
// inline, positional values from the bindings slice (or `?` when
// unbound), named values from the map (or `:key` when unbound).
func displayEntry(entry types.Placeholder, binds Binds, pos *int) string {
	switch entry.Kind {
	case types.ParamDirect:
		return displayValue(entry.Value)
	case types.ParamPositional:
		i := *pos
		*pos++
		if i < len(binds.Args) {
			return displayValue(binds.Args[i])
		}
		return "?"
	default:
		if v, ok := binds.Named[entry.Key]; ok {
			return displayValue(v)
		}
		return ":" + entry.Key
	}
}

// displayValue renders a bound value bare, matching the bare rendering
// of literal atoms in operand text.
func displayValue(v any) string {
	if v == nil {
		return "NULL"
	}
	return fmt.Sprintf("%v", v)
}

// validateBinds checks the bindings against the recorded placeholders:
// the positional container length must equal the positional placeholder
// count, and every named key must be present.
func (c *paramContext) validateBinds(binds Binds) error {
	for _, e := range c.entries {
		if e.Kind == types.ParamNamed {
			if _, ok := binds.Named[e.Key]; !ok {
				return NewMissingBindingError(e.Key)
			}
		}
	}
	if want := c.positionalCount(); want != len(binds.Args) {
		return NewBindingCountError(want, len(binds.Args))
	}
	return nil
}

// bindValues materializes the ordered bind-value sequence: direct
// entries yield their embedded value, positional entries consume the
// bindings slice, named entries are looked up in the bindings map.
func (c *paramContext) bindValues(binds Binds) ([]any, error) {
	if len(c.entries) == 0 {
		return nil, nil
	}
	out := make([]any, 0, len(c.entries))
	pos := 0
	for _, e := range c.entries {
		switch e.Kind {
		case types.ParamDirect:
			out = append(out, e.Value)
		case types.ParamPositional:
			if pos >= len(binds.Args) {
				return nil, NewBindingCountError(c.positionalCount(), len(binds.Args))
			}
			out = append(out, binds.Args[pos])
			pos++
		default:
			v, ok := binds.Named[e.Key]
			if !ok {
				return nil, NewMissingBindingError(e.Key)
			}
			out = append(out, v)
		}
	}
	return out, nil
}
