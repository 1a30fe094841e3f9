package pretty

import (
	"fmt"
	"io"
	"strings"

	"github.com/yaklabco/stepmark/pkg/parser"
)

// defaultWidth bounds source-context lines when the output is not a
// terminal.
const defaultWidth = 100

// FormatSyntaxError formats a parser syntax error for terminal output:
// a path:line:col header, the offending source line, and a caret under
// the exact column.
func (s *Styles) FormatSyntaxError(serr *parser.SyntaxError, path, source string, out io.Writer) string {
	var builder strings.Builder

	location := fmt.Sprintf("%s:%d:%d",
		s.FilePath.Render(path),
		serr.Line,
		serr.Column,
	)

	builder.WriteString(fmt.Sprintf("%s  %s  %s\n",
		location,
		s.Error.Render("syntax error"),
		s.Message.Render(serr.Message),
	))

	line := sourceLineAt(source, serr.Line)
	if line == "" {
		return builder.String()
	}

	width := terminalWidth(out, defaultWidth)
	line, column := clipLine(line, serr.Column, width)
	builder.WriteString(s.formatSourceContext(line, column))

	return builder.String()
}

// formatSourceContext formats the source line with a caret marker.
func (s *Styles) formatSourceContext(line string, column int) string {
	var builder strings.Builder

	const indent = "    "

	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	if column > 0 && column <= len(line)+1 {
		padding := indent + strings.Repeat(" ", column-1)
		builder.WriteString(padding + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// sourceLineAt returns the 1-based line of the source text, without its
// newline.
func sourceLineAt(source string, line int) string {
	if line < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return ""
	}
	return strings.TrimSuffix(lines[line-1], "\r")
}

// clipLine truncates a long source line around the column of interest so
// the caret stays visible within the given width.
func clipLine(line string, column, width int) (string, int) {
	if width < 16 {
		width = 16
	}
	avail := width - 8
	if len(line) <= avail {
		return line, column
	}
	if column <= avail {
		return line[:avail], column
	}
	start := column - avail/2
	if start+avail > len(line) {
		start = len(line) - avail
	}
	return line[start : start+avail], column - start
}
