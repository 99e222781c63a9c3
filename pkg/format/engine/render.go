package engine

import (
	"strings"

	"mercator-hq/callisto/pkg/format/token"
)

// render emits the formatted text for a token slice and its chosen splits.
// splits[i] sits between tokens[i] and tokens[i+1]. Indent tracking matches
// the search's column model: a newline first applies the split's indent
// delta, clamped at zero, then indents the next token.
func render(tokens []token.Token, splits []token.Split, indentWidth int, useTabs bool) string {
	if len(tokens) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(tokens[0].Text)

	indent := 0
	for i, split := range splits {
		switch split.Kind {
		case token.NewlineSplit:
			indent += split.IndentDelta
			if indent < 0 {
				indent = 0
			}
			b.WriteByte('\n')
			b.WriteString(indentText(indent, indentWidth, useTabs))
		case token.SpaceSplit:
			b.WriteByte(' ')
		}
		b.WriteString(tokens[i+1].Text)
	}

	b.WriteByte('\n')
	return b.String()
}

// indentText returns the leading whitespace for one line.
func indentText(level, indentWidth int, useTabs bool) string {
	if level <= 0 {
		return ""
	}
	if useTabs {
		return strings.Repeat("\t", level)
	}
	return strings.Repeat(" ", level*indentWidth)
}
