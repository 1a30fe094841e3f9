package parser

import (
	"github.com/yaklabco/stepmark/pkg/ast"
)

// Parser builds a positioned AST from a token stream. It drives the
// tokenizer exclusively through Peek/Next/TryScanID/Expect and adds only
// structural logic: block nesting, list assembly, and inline delimiter
// pairing.
type Parser struct {
	t *Tokenizer
}

// NewParser creates a parser over the given tokenizer.
func NewParser(t *Tokenizer) *Parser {
	return &Parser{t: t}
}

// ParseAlgorithm parses source text whose top-level unit is a list of
// algorithm steps, possibly containing nested lists and inline content.
func ParseAlgorithm(src string, opts ...Option) (*ast.Node, error) {
	return NewParser(NewTokenizer(src, opts...)).Algorithm()
}

// ParseDocument parses source text as a sequence of paragraphs and lists
// separated by paragraph breaks.
func ParseDocument(src string, opts ...Option) (*ast.Node, error) {
	return NewParser(NewTokenizer(src, opts...)).Document()
}

// ParseFragment parses source text as a single run of inline content.
func ParseFragment(src string, opts ...Option) (*ast.Node, error) {
	return NewParser(NewTokenizer(src, opts...)).Fragment()
}

// inlineContext tracks where an inline run may end. listIndent is the
// indentation of the enclosing list item, or -1 outside lists.
// stopAtMarkers is set for list items and document paragraphs, where a
// list marker after a linebreak terminates the run. open holds the
// delimiter kinds of enclosing unclosed formats.
type inlineContext struct {
	listIndent    int
	stopAtMarkers bool
	open          []TokenKind
}

// Algorithm parses the whole input as an algorithm: one or more adjacent
// lists and nothing else. A non-list token at the top level is the one
// grammar-structure violation this package reports as a SyntaxError.
func (p *Parser) Algorithm() (*ast.Node, error) {
	alg := ast.NewNode(ast.NodeAlgorithm)
	alg.Loc.Start = p.t.Peek(1).Loc.Start

	p.skipBlank()
	if tok := p.t.Peek(1); !tok.IsListMarker() {
		return nil, newSyntaxError(tok, "expected list marker, got %s", tok.Kind)
	}

	for p.t.Peek(1).IsListMarker() {
		ast.AppendChild(alg, p.parseList())
		p.skipBlank()
	}

	if err := p.t.Expect(TokEOF); err != nil {
		return nil, err
	}
	alg.Loc.End = p.t.Peek(1).Loc.Start
	return alg, nil
}

// Document parses the whole input as a mixed sequence of lists and
// paragraphs separated by paragraph breaks.
func (p *Parser) Document() (*ast.Node, error) {
	doc := ast.NewNode(ast.NodeDocument)
	doc.Loc.Start = p.t.Peek(1).Loc.Start

	for {
		p.skipBlank()
		tok := p.t.Peek(1)
		if tok.Kind == TokEOF {
			break
		}
		if tok.IsListMarker() {
			ast.AppendChild(doc, p.parseList())
			continue
		}
		ast.AppendChild(doc, p.parseParagraph())
	}

	doc.Loc.End = p.t.Peek(1).Loc.Start
	return doc, nil
}

// Fragment parses the whole input as one paragraph-like run of inline
// content. Paragraph breaks do not terminate a bare fragment; they are
// preserved as break nodes.
func (p *Parser) Fragment() (*ast.Node, error) {
	frag := ast.NewNode(ast.NodeFragment)
	frag.Loc.Start = p.t.Peek(1).Loc.Start

	for {
		tok := p.t.Peek(1)
		if tok.Kind == TokEOF {
			break
		}
		switch {
		case tok.Kind == TokLinebreak || tok.Kind == TokParabreak:
			p.t.Next()
			appendInline(frag, leafNode(ast.NodeBreak, tok))
		case tok.IsListMarker():
			// Markers are not inline content; outside a block grammar
			// they degrade to their literal text.
			p.t.Next()
			appendInline(frag, leafNode(ast.NodeText, tok))
		default:
			ctx := inlineContext{listIndent: -1}
			for _, n := range p.parseInlineToken(ctx) {
				appendInline(frag, n)
			}
		}
	}

	frag.Loc.End = p.t.Peek(1).Loc.Start
	return frag, nil
}

// skipBlank consumes structural separators between blocks.
func (p *Parser) skipBlank() {
	for {
		switch p.t.Peek(1).Kind {
		case TokLinebreak, TokParabreak, TokWhitespace:
			p.t.Next()
		default:
			return
		}
	}
}

// parseParagraph parses a maximal run of inline content terminated by a
// parabreak, end of input, or a list marker opening on the next line. A
// single linebreak inside the paragraph is preserved as a break node.
func (p *Parser) parseParagraph() *ast.Node {
	para := ast.NewNode(ast.NodeFragment)
	para.Loc.Start = p.t.Peek(1).Loc.Start
	ctx := inlineContext{listIndent: -1, stopAtMarkers: true}

	for {
		tok := p.t.Peek(1)
		if tok.Kind == TokEOF || tok.Kind == TokParabreak || tok.IsListMarker() {
			break
		}
		if tok.Kind == TokLinebreak {
			if p.t.Peek(2).IsListMarker() {
				// The linebreak is absorbed as structure; the marker
				// starts a new block for the caller.
				p.t.Next()
				break
			}
			p.t.Next()
			appendInline(para, leafNode(ast.NodeBreak, tok))
			continue
		}
		for _, n := range p.parseInlineToken(ctx) {
			appendInline(para, n)
		}
	}

	para.Loc.End = p.t.Peek(1).Loc.Start
	return para
}

// parseList parses a maximal run of sibling markers of the same kind at
// the same indentation. A marker of the other kind at this indentation
// starts a new adjacent list instead of continuing this one.
func (p *Parser) parseList() *ast.Node {
	marker := p.t.Peek(1)
	kind := ast.NodeUnorderedList
	if marker.Kind == TokOrderedList {
		kind = ast.NodeOrderedList
	}
	indent := marker.Indent()

	list := ast.NewNode(kind)
	list.Loc.Start = marker.Loc.Start

	for {
		tok := p.t.Peek(1)
		if tok.Kind != marker.Kind || tok.Indent() != indent {
			break
		}
		ast.AppendChild(list, p.parseListItem(indent))
	}
	return list
}

// parseListItem parses one marker and its content: an optional id
// attribute, inline content, and any nested lists at greater
// indentation. The item's span extends through the linebreak separating
// it from its successor.
func (p *Parser) parseListItem(indent int) *ast.Node {
	marker := p.t.Next()

	item := ast.NewNode(ast.NodeListItem)
	item.Loc = marker.Loc

	if idTok, ok := p.t.TryScanID(); ok {
		item.ID = idTok.Value
		item.Loc.End = idTok.Loc.End
	}

	ctx := inlineContext{listIndent: indent, stopAtMarkers: true}
	for {
		tok := p.t.Peek(1)
		switch {
		case tok.Kind == TokEOF || tok.Kind == TokParabreak:
			return item

		case tok.Kind == TokLinebreak:
			next := p.t.Peek(2)
			if next.IsListMarker() {
				lb := p.t.Next()
				item.Loc.End = lb.Loc.End
				if next.Indent() > indent {
					ast.AppendChild(item, p.parseList())
					continue
				}
				return item
			}
			if next.Kind == TokEOF {
				lb := p.t.Next()
				item.Loc.End = lb.Loc.End
				return item
			}
			lb := p.t.Next()
			appendInline(item, leafNode(ast.NodeBreak, lb))

		case tok.IsListMarker():
			// Reached after an adjacent nested list of the other kind.
			if tok.Indent() > indent {
				ast.AppendChild(item, p.parseList())
				continue
			}
			return item

		default:
			for _, n := range p.parseInlineToken(ctx) {
				appendInline(item, n)
			}
		}
	}
}

// parseInlineToken consumes one inline construct: a leaf token becomes a
// leaf node, a delimiter token opens a format span. It may return
// multiple nodes when an unmatched delimiter degrades to literal text.
func (p *Parser) parseInlineToken(ctx inlineContext) []*ast.Node {
	tok := p.t.Peek(1)
	if tok.IsFormat() {
		return p.parseFormat(ctx)
	}

	p.t.Next()
	switch tok.Kind {
	case TokText, TokWhitespace:
		return []*ast.Node{leafNode(ast.NodeText, tok)}
	case TokTag:
		return []*ast.Node{leafNode(ast.NodeTag, tok)}
	case TokComment:
		return []*ast.Node{leafNode(ast.NodeComment, tok)}
	case TokOpaqueTag:
		return []*ast.Node{leafNode(ast.NodeOpaqueTag, tok)}
	default:
		// Anything else degrades to its literal text.
		return []*ast.Node{leafNode(ast.NodeText, tok)}
	}
}

// parseFormat handles a paired delimiter: the opening token is consumed
// and content is parsed until the matching delimiter closes the span. An
// opening delimiter with no matching close before the enclosing block (or
// an enclosing format) ends degrades to its literal character.
func (p *Parser) parseFormat(ctx inlineContext) []*ast.Node {
	open := p.t.Next()
	inner := ctx
	inner.open = append(append([]TokenKind(nil), ctx.open...), open.Kind)

	var children []*ast.Node
	for {
		tok := p.t.Peek(1)
		if tok.Kind == open.Kind {
			closeTok := p.t.Next()
			node := ast.NewNode(formatNodeKind(open.Kind))
			node.Loc = ast.Location{Start: open.Loc.Start, End: closeTok.Loc.End}
			for _, c := range children {
				appendInline(node, c)
			}
			return []*ast.Node{node}
		}
		if p.endsBlock(tok, ctx) || containsKind(ctx.open, tok.Kind) {
			return append([]*ast.Node{literalText(open)}, children...)
		}
		if tok.Kind == TokLinebreak {
			p.t.Next()
			children = append(children, leafNode(ast.NodeBreak, tok))
			continue
		}
		children = append(children, p.parseInlineToken(inner)...)
	}
}

// endsBlock reports whether the token terminates the enclosing block for
// inline purposes.
func (p *Parser) endsBlock(tok Token, ctx inlineContext) bool {
	switch tok.Kind {
	case TokEOF, TokParabreak:
		return true
	case TokLinebreak:
		next := p.t.Peek(2)
		if next.Kind == TokEOF {
			return true
		}
		return ctx.stopAtMarkers && next.IsListMarker()
	default:
		return tok.IsListMarker()
	}
}

// leafNode builds a leaf node directly from a token.
func leafNode(kind ast.NodeKind, tok Token) *ast.Node {
	n := ast.NewNode(kind)
	n.Loc = tok.Loc
	n.Text = tok.Contents
	return n
}

// literalText degrades an unmatched delimiter token to its raw character.
func literalText(tok Token) *ast.Node {
	return leafNode(ast.NodeText, tok)
}

// appendInline appends an inline node, merging adjacent text leaves into
// a single node with a widened span.
func appendInline(parent, child *ast.Node) {
	last := parent.LastChild()
	if last != nil && last.Kind == ast.NodeText && child.Kind == ast.NodeText &&
		last.Loc.End.Offset == child.Loc.Start.Offset {
		last.Text += child.Text
		last.Loc.End = child.Loc.End
		if child.Loc.End.Offset > parent.Loc.End.Offset {
			parent.Loc.End = child.Loc.End
		}
		return
	}
	ast.AppendChild(parent, child)
}

func formatNodeKind(kind TokenKind) ast.NodeKind {
	switch kind {
	case TokStar:
		return ast.NodeEmphasis
	case TokUnderscore:
		return ast.NodeStrong
	case TokTick:
		return ast.NodeCodeSpan
	case TokTilde:
		return ast.NodeStrikethrough
	default:
		return ast.NodeVariable
	}
}

func containsKind(kinds []TokenKind, kind TokenKind) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}
