package treeql

import (
	"strings"

	"github.com/zoobzio/treeql/internal/types"
)

// formatPretty renders tokens with dynamic right-alignment: every
// top-level keyword ends flush at the column of the longest keyword, so
// the longest-keyword line has no leading spaces.
//
// A nested group of up to two entries stays on one line. Longer groups
// break: the first operand follows the opening parenthesis on the
// parent's line, each further entry gets its own line with its operator
// right-aligned so the operand lands at parent indentation + keyword
// length + 2, and the closing parenthesis takes its own line at the
// parent's base column. The split is applied one level deep only:
// groups inside an already broken group render inline.
//
// Alignment is computed over sentinel text, before placeholder
// resolution; substituted markers or values can shift columns.
func formatPretty(tokens []types.Token, table KeywordTable) (string, []string) {
	var unknown []string

	canon := make([]string, len(tokens))
	maxKeyword := 0
	for i, t := range tokens {
		canon[i] = canonKeyword(t.Keyword, table, &unknown)
		if n := len(canon[i]); n > maxKeyword {
			maxKeyword = n
		}
	}

	var lines []string
	for i, t := range tokens {
		pad := maxKeyword - len(canon[i])
		head := strings.Repeat(" ", pad) + canon[i]

		switch {
		case t.Group == nil:
			lines = append(lines, head+" "+t.Text)
		case len(t.Group) <= 2:
			lines = append(lines, head+" "+renderGroupInline(t.Group, table, &unknown))
		default:
			operandCol := pad + len(canon[i]) + 2 // past `KEYWORD (`
			first := t.Group[0]
			firstText := first.Text
			if first.Group != nil {
				firstText = renderGroupInline(first.Group, table, &unknown)
			}
			lines = append(lines, head+" ("+firstText)
			for _, entry := range t.Group[1:] {
				op := canonKeyword(entry.Keyword, table, &unknown)
				text := entry.Text
				if entry.Group != nil {
					text = renderGroupInline(entry.Group, table, &unknown)
				}
				indent := operandCol - 1 - len(op)
				if indent < 0 {
					indent = 0
				}
				lines = append(lines, strings.Repeat(" ", indent)+op+" "+text)
			}
			lines = append(lines, strings.Repeat(" ", pad)+")")
		}
	}
	return strings.Join(lines, "\n"), unknown
}
