package parser

import (
	"regexp"
	"strings"
)

// Recognition patterns for raw HTML constructs. Tags may span newlines;
// comments are non-greedy through the nearest terminator.
const (
	tagPattern     = `^<([/!]?)(\w[\w-]*)(\s+[\w-]+(\s*=\s*("[^"]*"|'[^']*'|[^<>"'=` + "`" + `\s]+))?)*\s*/?>`
	commentPattern = `(?s)^<!--.*?-->`
	idPattern      = `^\[id="([\w-]+)"\] `
)

// defaultOpaqueTags names the elements whose inner content is captured
// verbatim through the matching close tag instead of being tokenized.
var defaultOpaqueTags = []string{
	"pre",
	"code",
	"script",
	"style",
	"emu-grammar",
	"emu-production",
}

// tables is the immutable recognition configuration captured by a
// Tokenizer instance. It is never mutated after construction.
type tables struct {
	tag     *regexp.Regexp
	comment *regexp.Regexp
	id      *regexp.Regexp
	opaque  map[string]struct{}
}

func newTables(opaqueTags []string) *tables {
	opaque := make(map[string]struct{}, len(opaqueTags))
	for _, name := range opaqueTags {
		opaque[strings.ToLower(name)] = struct{}{}
	}
	return &tables{
		tag:     regexp.MustCompile(tagPattern),
		comment: regexp.MustCompile(commentPattern),
		id:      regexp.MustCompile(idPattern),
		opaque:  opaque,
	}
}

func (tb *tables) isOpaque(tagName string) bool {
	_, ok := tb.opaque[strings.ToLower(tagName)]
	return ok
}

// defaultTables is built once at startup and shared by tokenizers that do
// not override the opaque tag set.
var defaultTables = newTables(defaultOpaqueTags)
