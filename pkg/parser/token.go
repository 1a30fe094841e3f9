package parser

import "github.com/yaklabco/stepmark/pkg/ast"

// TokenKind classifies the type of a token in the stepmark source.
type TokenKind uint16

// Token kinds cover every byte in the source, classifying stepmark syntax
// elements. TokID is never produced by the main scan loop; it only comes
// from Tokenizer.TryScanID.
const (
	TokText TokenKind = iota
	TokWhitespace
	TokLinebreak // exactly one newline
	TokParabreak // two or more newlines

	TokOrderedList   // 'N. ' marker, leading whitespace included
	TokUnorderedList // '* ' marker, leading whitespace included

	TokStar       // '*'
	TokUnderscore // '_'
	TokTick       // '`'
	TokTilde      // '~'
	TokPipe       // '|'

	TokTag       // raw HTML start/end tag
	TokComment   // <!-- ... -->
	TokOpaqueTag // verbatim element captured through its close tag

	TokID // [id="..."] attribute after a list marker
	TokEOF
)

// String returns a human-readable name for the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokText:
		return "text"
	case TokWhitespace:
		return "whitespace"
	case TokLinebreak:
		return "linebreak"
	case TokParabreak:
		return "parabreak"
	case TokOrderedList:
		return "ordered-list-marker"
	case TokUnorderedList:
		return "unordered-list-marker"
	case TokStar:
		return "star"
	case TokUnderscore:
		return "underscore"
	case TokTick:
		return "tick"
	case TokTilde:
		return "tilde"
	case TokPipe:
		return "pipe"
	case TokTag:
		return "tag"
	case TokComment:
		return "comment"
	case TokOpaqueTag:
		return "opaque-tag"
	case TokID:
		return "id"
	case TokEOF:
		return "eof"
	default:
		return "unknown"
	}
}

// Token represents a classified, located slice of the stepmark source.
type Token struct {
	// Kind classifies what this token represents.
	Kind TokenKind

	// Contents is the matched source slice, inclusive of any leading
	// whitespace that was logically bound to it. For TokText it is the
	// decoded text: backslash escapes of delimiter characters have the
	// backslash dropped. TokEOF carries no contents.
	Contents string

	// Value is the decoded attribute value for TokID, empty otherwise.
	Value string

	// Loc is the source span of this token. Loc.End is the position
	// immediately after the last consumed byte.
	Loc ast.Location
}

// IsEOF returns true if this is the end-of-input token.
func (t Token) IsEOF() bool {
	return t.Kind == TokEOF
}

// IsFormat returns true if this token is one of the paired inline
// delimiters.
func (t Token) IsFormat() bool {
	switch t.Kind {
	case TokStar, TokUnderscore, TokTick, TokTilde, TokPipe:
		return true
	default:
		return false
	}
}

// IsListMarker returns true for ordered and unordered list marker tokens.
func (t Token) IsListMarker() bool {
	return t.Kind == TokOrderedList || t.Kind == TokUnorderedList
}

// Indent returns the width of the leading whitespace bound to a list
// marker token. It is the canonical indentation metric for list nesting,
// measured in bytes.
func (t Token) Indent() int {
	if !t.IsListMarker() {
		return 0
	}
	indent := 0
	for indent < len(t.Contents) {
		if c := t.Contents[indent]; c != ' ' && c != '\t' {
			break
		}
		indent++
	}
	return indent
}
