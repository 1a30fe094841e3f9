package pretty_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/stepmark/internal/ui/pretty"
	"github.com/yaklabco/stepmark/pkg/parser"
)

func TestFormatSyntaxError_Basic(t *testing.T) {
	styles := pretty.NewStyles(false) // No colors for easier testing

	serr := &parser.SyntaxError{
		Message: "expected ordered-list-marker, got text",
		Offset:  0,
		Line:    1,
		Column:  1,
	}

	var out bytes.Buffer
	result := styles.FormatSyntaxError(serr, "steps.txt", "plain text", &out)

	assert.Contains(t, result, "steps.txt:1:1")
	assert.Contains(t, result, "syntax error")
	assert.Contains(t, result, "expected ordered-list-marker, got text")
	assert.Contains(t, result, "plain text")
}

func TestFormatSyntaxError_CaretColumn(t *testing.T) {
	styles := pretty.NewStyles(false)

	serr := &parser.SyntaxError{
		Message: "expected eof, got text",
		Offset:  6,
		Line:    3,
		Column:  1,
	}
	source := "1. a\n\ntrailing prose"

	var out bytes.Buffer
	result := styles.FormatSyntaxError(serr, "<stdin>", source, &out)

	lines := strings.Split(strings.TrimRight(result, "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[1], "trailing prose")
	// The caret sits under the reported column.
	assert.Equal(t, strings.Index(lines[1], "trailing"), strings.Index(lines[2], "^"))
}

func TestFormatSyntaxError_LineOutOfRange(t *testing.T) {
	styles := pretty.NewStyles(false)

	serr := &parser.SyntaxError{Message: "expected eof, got text", Line: 99, Column: 1}

	var out bytes.Buffer
	result := styles.FormatSyntaxError(serr, "steps.txt", "only one line", &out)

	// Header only; no source context for an unknown line.
	assert.Equal(t, 1, strings.Count(result, "\n"))
}

func TestFormatSyntaxError_LongLineClipped(t *testing.T) {
	styles := pretty.NewStyles(false)

	long := strings.Repeat("x", 300) + " tail"
	serr := &parser.SyntaxError{Message: "expected eof, got text", Line: 1, Column: 302}

	var out bytes.Buffer
	result := styles.FormatSyntaxError(serr, "steps.txt", long, &out)

	lines := strings.Split(strings.TrimRight(result, "\n"), "\n")
	assert.Len(t, lines, 3)
	for _, line := range lines[1:] {
		assert.Less(t, len(line), 120)
	}
	assert.Contains(t, result, "^")
}
