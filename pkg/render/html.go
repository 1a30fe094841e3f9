// Package render converts a stepmark AST into HTML. The AST is consumed
// read-only; rendering the same tree twice yields identical output.
package render

import (
	"fmt"
	"strings"

	"github.com/yaklabco/stepmark/pkg/ast"
)

// Inline wrapper elements per node kind.
var inlineElements = map[ast.NodeKind]string{
	ast.NodeEmphasis:      "em",
	ast.NodeStrong:        "strong",
	ast.NodeCodeSpan:      "code",
	ast.NodeStrikethrough: "del",
	ast.NodeVariable:      "var",
}

// HTML renders the tree rooted at node as HTML.
func HTML(node *ast.Node) (string, error) {
	var b strings.Builder
	if err := writeNode(&b, node); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeNode(b *strings.Builder, n *ast.Node) error {
	switch n.Kind {
	case ast.NodeDocument, ast.NodeAlgorithm:
		return writeChildren(b, n)

	case ast.NodeOrderedList:
		return writeWrapped(b, n, "ol")

	case ast.NodeUnorderedList:
		return writeWrapped(b, n, "ul")

	case ast.NodeListItem:
		if n.ID != "" {
			fmt.Fprintf(b, `<li id=%q>`, n.ID)
		} else {
			b.WriteString("<li>")
		}
		if err := writeChildren(b, n); err != nil {
			return err
		}
		b.WriteString("</li>")
		return nil

	case ast.NodeFragment:
		return writeWrapped(b, n, "p")

	case ast.NodeEmphasis, ast.NodeStrong, ast.NodeCodeSpan,
		ast.NodeStrikethrough, ast.NodeVariable:
		return writeWrapped(b, n, inlineElements[n.Kind])

	case ast.NodeText:
		b.WriteString(escape(n.Text))
		return nil

	case ast.NodeBreak:
		b.WriteString("\n")
		return nil

	case ast.NodeTag, ast.NodeComment, ast.NodeOpaqueTag:
		// Raw passthrough, byte-for-byte.
		b.WriteString(n.Text)
		return nil

	default:
		return fmt.Errorf("render: unsupported node kind %s", n.Kind)
	}
}

func writeWrapped(b *strings.Builder, n *ast.Node, element string) error {
	b.WriteString("<" + element + ">")
	if err := writeChildren(b, n); err != nil {
		return err
	}
	b.WriteString("</" + element + ">")
	return nil
}

func writeChildren(b *strings.Builder, n *ast.Node) error {
	for _, child := range n.Children {
		if err := writeNode(b, child); err != nil {
			return err
		}
	}
	return nil
}

// escape replaces the characters that are significant in HTML text
// content.
func escape(s string) string {
	return htmlEscaper.Replace(s)
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)
