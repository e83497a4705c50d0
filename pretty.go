package nbt

import (
	"fmt"
	"strings"
)

// Pretty renders t as an indented, human-readable tree using
// DefaultIndent for each nesting level.
func Pretty(t Tag) string {
	return PrettyIndent(t, DefaultIndent)
}

// PrettyIndent renders t as an indented tree using the given per-level
// indent string.
func PrettyIndent(t Tag, indent string) string {
	return strings.Join(t.prettyLines(indent, 0), "\n")
}

func prettyPrefix(indent string, depth int) string {
	return strings.Repeat(indent, depth)
}

func prettyScalarLine(indent string, depth int, kind, name, body string) string {
	return fmt.Sprintf("%sTAG_%s(%q): %s", prettyPrefix(indent, depth), kind, name, body)
}

func prettyHeader(indent string, depth int, kind, name, body string) string {
	return fmt.Sprintf("%sTAG_%s(%q): %s", prettyPrefix(indent, depth), kind, name, body)
}

func prettyBrace(indent string, depth int, brace string) string {
	return prettyPrefix(indent, depth) + brace
}
