// Package csvreader parses delimited text documents into structured rows,
// optionally validating and remapping columns against a caller-declared
// expected header or positional index list.
//
// The whole document is buffered in memory; the package is a library-level
// component with no CLI or network surface.
//
// # Loading
//
// A Reader holds configuration (delimiter, enclosure, escape, encoding,
// header matching) plus the declared expected header or indexing, and
// aggregates statistics per load:
//
//	r := csvreader.New()
//	if err := r.SetExpectedHeader([]string{"name", "role", "age"}); err != nil {
//	    // handle error
//	}
//	rows, err := r.Load("name,role,age\n\"Tony Farney\",\"Developer\",30\n")
//	if err != nil {
//	    // handle error
//	}
//	name, _ := rows[0].GetByName("name") // "Tony Farney"
//
// When no delimiter is configured, the most frequent candidate among
// comma, semicolon, pipe and tab on the first non-blank line is used.
//
// # Errors
//
// A load either fully succeeds or returns exactly one error: ErrEmptyInput,
// *DetectionError, *UnexpectedColumnError, *DuplicateColumnError,
// *InvalidLineError (aggregated over the whole document, fail-at-end),
// *IndexingError (from the declaration setters) or *BackendError. No error
// is silently swallowed.
//
// # Thread safety
//
// A Reader instance is not safe for concurrent loads. Serialize calls or
// use separate Readers per concurrent document.
package csvreader

// Load parses input with default options and no declared header: rows come
// back positional, with the delimiter auto-detected.
//
// For header validation, column remapping or custom characters, configure
// a Reader instead.
func Load(input string) ([]Row, error) {
	return New().Load(input)
}
