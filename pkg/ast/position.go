package ast

// Position is a single point in the source text.
// Offset counts bytes from the start of the input. Line and Column are
// 1-based; Column counts bytes, not runes.
type Position struct {
	Offset int
	Line   int
	Column int
}

// IsValid returns true if this position has valid (positive) values.
func (p Position) IsValid() bool {
	return p.Offset >= 0 && p.Line > 0 && p.Column > 0
}

// Before returns true if p comes before other in the source.
func (p Position) Before(other Position) bool {
	return p.Offset < other.Offset
}

// Location is a half-open span in the source text.
// Start.Offset <= End.Offset always holds for locations produced by the
// tokenizer and parser.
type Location struct {
	Start Position
	End   Position
}

// Len returns the length of the span in bytes.
func (l Location) Len() int {
	return l.End.Offset - l.Start.Offset
}

// IsEmpty returns true if the span has zero length.
func (l Location) IsEmpty() bool {
	return l.Start.Offset == l.End.Offset
}

// Contains returns true if other is fully inside this span.
func (l Location) Contains(other Location) bool {
	return l.Start.Offset <= other.Start.Offset && other.End.Offset <= l.End.Offset
}
