// Package parser implements the two-stage front end for the stepmark
// dialect: a demand-driven tokenizer producing located tokens, and a
// parser assembling them into a positioned AST.
//
// The tokenizer is context-sensitive: list markers and HTML constructs are
// only recognized at line starts, and tags discovered while scanning plain
// text are spliced into the token stream through a lookahead buffer
// without re-scanning. The parser never re-scans characters; it depends on
// the tokenizer for every lexical decision.
package parser

import (
	"strings"

	"github.com/yaklabco/stepmark/pkg/ast"
)

// Tokenizer scans a stepmark source string lazily, realizing tokens on
// demand into a pending queue. A Tokenizer is single-use and not safe for
// concurrent access; independent instances over different inputs are.
type Tokenizer struct {
	src string
	pos int

	// line and column track the position of the next unscanned byte.
	// Line increments and column resets only when a linebreak or
	// parabreak token is produced; every other token advances column by
	// its consumed width.
	line   int
	column int

	// lineStart is set at the start of input and after every
	// linebreak/parabreak. The first scan attempt on a line start takes
	// the marker/tag classification branch before generic dispatch.
	lineStart bool

	// queue holds realized but unconsumed tokens. lookahead holds tokens
	// discovered incidentally while scanning another token; it is
	// appended to queue immediately after the token that triggered it,
	// then cleared.
	queue     []Token
	lookahead []Token

	tables *tables
}

// Option configures a Tokenizer.
type Option func(*Tokenizer)

// WithOpaqueTags overrides the set of tags whose content is captured
// verbatim instead of being tokenized.
func WithOpaqueTags(names ...string) Option {
	return func(t *Tokenizer) {
		t.tables = newTables(names)
	}
}

// NewTokenizer creates a tokenizer over the full source string. Input is
// in-memory only; no streaming is supported.
func NewTokenizer(src string, opts ...Option) *Tokenizer {
	t := &Tokenizer{
		src:       src,
		line:      1,
		column:    1,
		lineStart: true,
		tables:    defaultTables,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Peek returns the token distance positions ahead of the next unconsumed
// token without consuming anything. Distance 1 is the immediate next
// token. Peeking past the end always returns the end-of-input token.
func (t *Tokenizer) Peek(distance int) Token {
	if distance < 1 {
		distance = 1
	}
	for len(t.queue) < distance && !t.eofQueued() {
		t.realize()
	}
	if distance > len(t.queue) {
		return t.queue[len(t.queue)-1]
	}
	return t.queue[distance-1]
}

// Next returns and consumes the next token. The end-of-input token is
// never removed from the queue; once reached it is returned on every
// subsequent call without advancing position.
func (t *Tokenizer) Next() Token {
	tok := t.Peek(1)
	if tok.Kind != TokEOF {
		t.queue = t.queue[1:]
	}
	return tok
}

// Expect peeks one token and returns a *SyntaxError anchored to its start
// if its kind does not match.
func (t *Tokenizer) Expect(kind TokenKind) error {
	tok := t.Peek(1)
	if tok.Kind != kind {
		return newSyntaxError(tok, "expected %s, got %s", kind, tok.Kind)
	}
	return nil
}

// TryScanID attempts an out-of-band scan for an [id="..."] attribute at
// the current position. It is only meaningful immediately after a list
// marker token has been consumed; if any realized tokens are still
// pending, no scan is attempted. On success the token is consumed and
// position advances as a normal scan would; on failure nothing changes.
func (t *Tokenizer) TryScanID() (Token, bool) {
	if len(t.queue) > 0 || len(t.lookahead) > 0 {
		return Token{}, false
	}
	m := t.tables.id.FindStringSubmatch(t.src[t.pos:])
	if m == nil {
		return Token{}, false
	}
	start := t.mark()
	t.pos += len(m[0])
	tok := t.token(start, TokID, m[0])
	tok.Value = m[1]
	return tok, true
}

// eofQueued reports whether the idempotent end-of-input token has been
// realized.
func (t *Tokenizer) eofQueued() bool {
	return len(t.queue) > 0 && t.queue[len(t.queue)-1].Kind == TokEOF
}

// realize scans one more token onto the pending queue, plus any lookahead
// tokens discovered alongside it.
func (t *Tokenizer) realize() {
	if t.eofQueued() {
		return
	}
	if t.pos >= len(t.src) {
		pos := t.mark()
		t.queue = append(t.queue, Token{Kind: TokEOF, Loc: ast.Location{Start: pos, End: pos}})
		return
	}
	if t.lineStart {
		t.lineStart = false
		if t.scanLineStart() {
			t.drainLookahead()
			return
		}
	}
	t.scanToken()
	t.drainLookahead()
}

// drainLookahead merges the lookahead buffer into the primary queue,
// immediately after the token whose scan produced it.
func (t *Tokenizer) drainLookahead() {
	if len(t.lookahead) > 0 {
		t.queue = append(t.queue, t.lookahead...)
		t.lookahead = t.lookahead[:0]
	}
}

// mark captures the current scan position.
func (t *Tokenizer) mark() ast.Position {
	return ast.Position{Offset: t.pos, Line: t.line, Column: t.column}
}

// token builds a token spanning from start to the current position and
// advances the line/column bookkeeping. Only linebreak and parabreak
// tokens increment the line (once per consumed newline) and reset the
// column; every other token advances the column by its consumed width.
func (t *Tokenizer) token(start ast.Position, kind TokenKind, contents string) Token {
	end := ast.Position{Offset: t.pos}
	switch kind {
	case TokLinebreak, TokParabreak:
		end.Line = start.Line + strings.Count(t.src[start.Offset:t.pos], "\n")
		end.Column = 1
	default:
		end.Line = start.Line
		end.Column = start.Column + (t.pos - start.Offset)
	}
	t.line = end.Line
	t.column = end.Column
	return Token{Kind: kind, Contents: contents, Loc: ast.Location{Start: start, End: end}}
}

// enqueue appends a token spanning [start, current position) to the
// primary queue.
func (t *Tokenizer) enqueue(start ast.Position, kind TokenKind, contents string) {
	t.queue = append(t.queue, t.token(start, kind, contents))
}

// scanLineStart handles the line-start-only constructs: leading
// whitespace is scanned and held unemitted until what follows is
// classified as an ordered marker ('N. '), an unordered marker ('* '), or
// an HTML tag/comment, each of which binds the held whitespace into its
// own contents. If nothing matches, held whitespace is flushed as its own
// token; with no whitespace held, the scan position is left untouched and
// generic dispatch takes over. Returns true if any token was emitted.
func (t *Tokenizer) scanLineStart() bool {
	start := t.mark()

	wsEnd := t.pos
	for wsEnd < len(t.src) && (t.src[wsEnd] == ' ' || t.src[wsEnd] == '\t') {
		wsEnd++
	}

	if wsEnd < len(t.src) {
		switch c := t.src[wsEnd]; {
		case isDigit(c):
			digEnd := wsEnd
			for digEnd < len(t.src) && isDigit(t.src[digEnd]) {
				digEnd++
			}
			if strings.HasPrefix(t.src[digEnd:], ". ") {
				t.pos = digEnd + 2
				t.enqueue(start, TokOrderedList, t.src[start.Offset:t.pos])
				return true
			}
			// Not a marker: the digits fold back into ordinary text
			// scanning below.

		case c == '*' && wsEnd+1 < len(t.src) && t.src[wsEnd+1] == ' ':
			t.pos = wsEnd + 2
			t.enqueue(start, TokUnorderedList, t.src[start.Offset:t.pos])
			return true

		case c == '<':
			if kind, end, ok := t.matchMarkup(wsEnd); ok {
				t.pos = end
				t.enqueue(start, kind, t.src[start.Offset:t.pos])
				return true
			}
		}
	}

	if wsEnd > t.pos {
		t.pos = wsEnd
		t.enqueue(start, TokWhitespace, t.src[start.Offset:t.pos])
		return true
	}
	return false
}

// scanToken is the generic per-character dispatch, used for every token
// after the line-start branch is exhausted.
func (t *Tokenizer) scanToken() {
	start := t.mark()

	switch c := t.src[t.pos]; c {
	case '*', '_', '`', '~', '|':
		t.pos++
		t.enqueue(start, delimiterKind(c), string(c))

	case '\n':
		newlines := 0
		for t.pos < len(t.src) && t.src[t.pos] == '\n' {
			t.pos++
			newlines++
		}
		kind := TokLinebreak
		if newlines >= 2 {
			kind = TokParabreak
		}
		t.enqueue(start, kind, t.src[start.Offset:t.pos])
		t.lineStart = true

	case ' ', '\t':
		for t.pos < len(t.src) && (t.src[t.pos] == ' ' || t.src[t.pos] == '\t') {
			t.pos++
		}
		t.enqueue(start, TokWhitespace, t.src[start.Offset:t.pos])

	case '<':
		if kind, end, ok := t.matchMarkup(t.pos); ok {
			t.pos = end
			t.enqueue(start, kind, t.src[start.Offset:t.pos])
			return
		}
		t.scanChars()

	default:
		t.scanChars()
	}
}

// scanChars consumes a run of plain text, stopping at a delimiter
// character, newline, space, or tab. A backslash consumes the following
// character: delimiter characters and backslashes are decoded to the bare
// character, anything else keeps the backslash. When '<' starts a
// recognizable tag or comment mid-run, the accumulated text is emitted
// immediately and the markup token is queued as lookahead, preserving
// order without re-scanning; otherwise '<' is ordinary text.
func (t *Tokenizer) scanChars() {
	start := t.mark()
	var text strings.Builder

	for t.pos < len(t.src) {
		c := t.src[t.pos]
		switch {
		case c == '\\':
			if t.pos+1 >= len(t.src) {
				// Lone trailing backslash is emitted as itself.
				text.WriteByte('\\')
				t.pos++
				continue
			}
			next := t.src[t.pos+1]
			if isDelimiterChar(next) || next == '\\' {
				text.WriteByte(next)
			} else {
				text.WriteByte('\\')
				text.WriteByte(next)
			}
			t.pos += 2

		case isDelimiterChar(c) || c == '\n' || c == ' ' || c == '\t':
			t.enqueue(start, TokText, text.String())
			return

		case c == '<':
			if kind, end, ok := t.matchMarkup(t.pos); ok {
				t.enqueue(start, TokText, text.String())
				markupStart := t.mark()
				t.pos = end
				t.lookahead = append(t.lookahead,
					t.token(markupStart, kind, t.src[markupStart.Offset:t.pos]))
				return
			}
			text.WriteByte('<')
			t.pos++

		default:
			text.WriteByte(c)
			t.pos++
		}
	}

	t.enqueue(start, TokText, text.String())
}

// matchMarkup attempts comment-then-tag recognition at the given offset.
// On success it returns the token kind and the end offset of the match;
// for an opaque start tag the end offset covers the verbatim capture
// through the matching close tag.
func (t *Tokenizer) matchMarkup(at int) (TokenKind, int, bool) {
	if m, ok := t.matchCommentAt(at); ok {
		return TokComment, at + len(m), true
	}
	m, name, closing, ok := t.matchTagAt(at)
	if !ok {
		return 0, 0, false
	}
	if !closing && t.tables.isOpaque(name) {
		return TokOpaqueTag, t.scanOpaqueEnd(at+len(m), name), true
	}
	return TokTag, at + len(m), true
}

// matchCommentAt matches an HTML comment (<!-- through the nearest -->,
// spanning newlines) at the given offset.
func (t *Tokenizer) matchCommentAt(at int) (string, bool) {
	if !strings.HasPrefix(t.src[at:], "<!--") {
		return "", false
	}
	m := t.tables.comment.FindString(t.src[at:])
	if m == "" {
		return "", false
	}
	return m, true
}

// matchTagAt matches a start/end tag at the given offset, allowing
// embedded newlines. A '<' immediately followed by anything other than a
// word character, '/', or '!' is rejected outright so stray '<' in prose
// is not mistaken for markup.
func (t *Tokenizer) matchTagAt(at int) (match, name string, closing, ok bool) {
	if at+1 >= len(t.src) || t.src[at] != '<' {
		return "", "", false, false
	}
	if c := t.src[at+1]; !isWordChar(c) && c != '/' && c != '!' {
		return "", "", false, false
	}
	m := t.tables.tag.FindStringSubmatch(t.src[at:])
	if m == nil {
		return "", "", false, false
	}
	return m[0], m[2], m[1] == "/", true
}

// scanOpaqueEnd captures verbatim content following an opaque start tag,
// returning the offset just past the matching close tag of the same name.
// Unrecognized '<' sequences inside are captured as-is; an unterminated
// element captures through end of input.
func (t *Tokenizer) scanOpaqueEnd(from int, name string) int {
	pos := from
	for pos < len(t.src) {
		idx := strings.IndexByte(t.src[pos:], '<')
		if idx < 0 {
			return len(t.src)
		}
		pos += idx
		m, tagName, closing, ok := t.matchTagAt(pos)
		if !ok {
			pos++
			continue
		}
		pos += len(m)
		if closing && strings.EqualFold(tagName, name) {
			return pos
		}
	}
	return pos
}

func delimiterKind(c byte) TokenKind {
	switch c {
	case '*':
		return TokStar
	case '_':
		return TokUnderscore
	case '`':
		return TokTick
	case '~':
		return TokTilde
	default:
		return TokPipe
	}
}

func isDelimiterChar(c byte) bool {
	switch c {
	case '*', '_', '`', '~', '|':
		return true
	default:
		return false
	}
}

func isWordChar(c byte) bool {
	return c == '_' || isDigit(c) ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isDigit returns true if the byte is an ASCII digit.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
