package treeql

import (
	"strings"

	"github.com/zoobzio/treeql/internal/types"
)

// canonKeyword canonicalizes a keyword through the table. Unrecognized
// keywords pass through unchanged and are collected for the caller to
// report; they never fail the render.
func canonKeyword(keyword string, table KeywordTable, unknown *[]string) string {
	if keyword == "" {
		return ""
	}
	if c, ok := table.Canon(keyword); ok {
		return c
	}
	*unknown = append(*unknown, keyword)
	return keyword
}

// formatSeparated renders tokens as flat text joined by sep: no
// alignment, no indentation, nested groups always on one line. Returns
// the text and any unrecognized keywords encountered.
func formatSeparated(tokens []types.Token, sep string, table KeywordTable) (string, []string) {
	var unknown []string
	segments := make([]string, 0, len(tokens))
	for _, t := range tokens {
		segments = append(segments, renderFlatToken(t, table, &unknown))
	}
	return strings.Join(segments, sep), unknown
}

func renderFlatToken(t types.Token, table KeywordTable, unknown *[]string) string {
	operand := t.Text
	if t.Group != nil {
		operand = renderGroupInline(t.Group, table, unknown)
	}
	if t.Keyword == "" {
		return operand
	}
	return canonKeyword(t.Keyword, table, unknown) + " " + operand
}

// renderGroupInline renders a nested token group as a single
// parenthesized line, recursing into deeper groups.
func renderGroupInline(group []types.Token, table KeywordTable, unknown *[]string) string {
	parts := make([]string, 0, len(group))
	for _, t := range group {
		parts = append(parts, renderFlatToken(t, table, unknown))
	}
	return "(" + strings.Join(parts, " ") + ")"
}
