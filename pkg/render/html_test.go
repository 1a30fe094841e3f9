package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/stepmark/pkg/ast"
	"github.com/yaklabco/stepmark/pkg/parser"
)

func renderAlgorithm(t *testing.T, src string) string {
	t.Helper()

	node, err := parser.ParseAlgorithm(src)
	require.NoError(t, err)
	out, err := HTML(node)
	require.NoError(t, err)
	return out
}

func TestHTML_Algorithm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src      string
		expected string
	}{
		{
			name:     "single item",
			src:      "1. foo",
			expected: "<ol><li>foo</li></ol>",
		},
		{
			name:     "item with id",
			src:      `1. [id="first"] foo`,
			expected: `<ol><li id="first">foo</li></ol>`,
		},
		{
			name:     "inline formats",
			src:      "1. *e* _s_ `c` ~d~ |v|",
			expected: "<ol><li><em>e</em> <strong>s</strong> <code>c</code> <del>d</del> <var>v</var></li></ol>",
		},
		{
			name:     "nested list",
			src:      "1. a\n  * x\n2. b",
			expected: "<ol><li>a<ul><li>x</li></ul></li><li>b</li></ol>",
		},
		{
			name:     "adjacent lists",
			src:      "1. a\n* b",
			expected: "<ol><li>a</li></ol><ul><li>b</li></ul>",
		},
		{
			name:     "text is escaped",
			src:      "1. a < b & c",
			expected: "<ol><li>a &lt; b &amp; c</li></ol>",
		},
		{
			name:     "tag passes through raw",
			src:      "1. a <br> b",
			expected: "<ol><li>a <br> b</li></ol>",
		},
		{
			name:     "comment passes through raw",
			src:      "1. a <!-- note --> b",
			expected: "<ol><li>a <!-- note --> b</li></ol>",
		},
		{
			name:     "opaque element passes through raw",
			src:      "1. see <code>x < y</code>",
			expected: "<ol><li>see <code>x < y</code></li></ol>",
		},
		{
			name:     "continuation break",
			src:      "1. a\nmore",
			expected: "<ol><li>a\nmore</li></ol>",
		},
		{
			name:     "unmatched delimiter stays literal",
			src:      "1. a *b",
			expected: "<ol><li>a *b</li></ol>",
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, renderAlgorithm(t, testCase.src))
		})
	}
}

func TestHTML_Document(t *testing.T) {
	t.Parallel()

	node, err := parser.ParseDocument("intro\n\n1. a\n\ntail")
	require.NoError(t, err)

	out, err := HTML(node)
	require.NoError(t, err)
	assert.Equal(t, "<p>intro</p><ol><li>a</li></ol><p>tail</p>", out)
}

func TestHTML_Fragment(t *testing.T) {
	t.Parallel()

	node, err := parser.ParseFragment("a *b* c")
	require.NoError(t, err)

	out, err := HTML(node)
	require.NoError(t, err)
	assert.Equal(t, "<p>a <em>b</em> c</p>", out)
}

func TestHTML_Deterministic(t *testing.T) {
	t.Parallel()

	node, err := parser.ParseAlgorithm("1. *a* `b`\n2. c")
	require.NoError(t, err)

	first, err := HTML(node)
	require.NoError(t, err)
	second, err := HTML(node)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestHTML_UnsupportedKind(t *testing.T) {
	t.Parallel()

	_, err := HTML(&ast.Node{Kind: ast.NodeKind(999)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported node kind")
}
