package pretty

import (
	"fmt"

	"github.com/yaklabco/stepmark/pkg/parser"
)

// FormatToken formats one token for the token-stream dump: kind, span,
// and quoted contents.
func (s *Styles) FormatToken(tok parser.Token) string {
	span := fmt.Sprintf("%d:%d-%d:%d",
		tok.Loc.Start.Line, tok.Loc.Start.Column,
		tok.Loc.End.Line, tok.Loc.End.Column,
	)

	contents := tok.Contents
	if tok.Kind == parser.TokID {
		contents = tok.Value
	}

	return fmt.Sprintf("%s %s %s",
		s.TokenKind.Render(fmt.Sprintf("%-22s", tok.Kind.String())),
		s.Location.Render(span),
		s.Contents.Render(fmt.Sprintf("%q", contents)),
	)
}
