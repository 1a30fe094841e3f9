package pretty_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/stepmark/internal/ui/pretty"
	"github.com/yaklabco/stepmark/pkg/ast"
	"github.com/yaklabco/stepmark/pkg/parser"
)

func TestIsColorEnabled(t *testing.T) {
	t.Run("always", func(t *testing.T) {
		assert.True(t, pretty.IsColorEnabled("always", &bytes.Buffer{}))
	})

	t.Run("never", func(t *testing.T) {
		assert.False(t, pretty.IsColorEnabled("never", &bytes.Buffer{}))
	})

	t.Run("auto with non-terminal writer", func(t *testing.T) {
		assert.False(t, pretty.IsColorEnabled("auto", &bytes.Buffer{}))
	})

	t.Run("auto honors NO_COLOR", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		assert.False(t, pretty.IsColorEnabled("auto", &bytes.Buffer{}))
	})
}

func TestFormatToken(t *testing.T) {
	styles := pretty.NewStyles(false)

	tok := parser.Token{
		Kind:     parser.TokText,
		Contents: "foo",
		Loc: ast.Location{
			Start: ast.Position{Offset: 3, Line: 1, Column: 4},
			End:   ast.Position{Offset: 6, Line: 1, Column: 7},
		},
	}

	result := styles.FormatToken(tok)
	assert.Contains(t, result, "text")
	assert.Contains(t, result, "1:4-1:7")
	assert.Contains(t, result, `"foo"`)
}

func TestFormatToken_IDUsesValue(t *testing.T) {
	styles := pretty.NewStyles(false)

	tok := parser.Token{
		Kind:     parser.TokID,
		Contents: `[id="step-one"] `,
		Value:    "step-one",
	}

	result := styles.FormatToken(tok)
	assert.Contains(t, result, `"step-one"`)
	assert.NotContains(t, result, "[id=")
}
