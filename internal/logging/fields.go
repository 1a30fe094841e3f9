package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldInput  = "input"
	FieldOutput = "output"

	// Parsing fields.
	FieldEntry  = "entry"
	FieldBytes  = "bytes"
	FieldTokens = "tokens"
	FieldNodes  = "nodes"
	FieldLine   = "line"
	FieldColumn = "column"
	FieldOffset = "offset"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
