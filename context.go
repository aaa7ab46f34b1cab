package treeql

import (
	"strconv"
	"strings"

	"github.com/zoobzio/treeql/internal/types"
)

// Sentinel markers stand in for placeholders between tokenization and
// resolution. NUL delimiters cannot appear in rendered SQL text, so the
// markers cannot collide with operand content.
const (
	markerPrefix = "\x00p"
	markerSuffix = "\x00"
)

func marker(ordinal int) string {
	return markerPrefix + strconv.Itoa(ordinal) + markerSuffix
}

// paramContext accumulates the placeholders discovered while
// tokenizing one statement. A fresh context is allocated per compile
// call: append-only during tokenization, read-only during resolution.
type paramContext struct {
	dialect types.Dialect
	entries []types.Placeholder
}

func newParamContext(dialect types.Dialect) *paramContext {
	return &paramContext{dialect: dialect}
}

// add records a placeholder and returns its sentinel marker.
func (c *paramContext) add(p types.Placeholder) string {
	c.entries = append(c.entries, p)
	return marker(len(c.entries) - 1)
}

// positionalCount returns the number of recorded positional entries.
func (c *paramContext) positionalCount() int {
	n := 0
	for _, e := range c.entries {
		if e.Kind == types.ParamPositional {
			n++
		}
	}
	return n
}

// hasMarker reports whether rendered text still contains a sentinel.
func hasMarker(text string) bool {
	return strings.Contains(text, markerPrefix)
}
