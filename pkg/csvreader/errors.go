// Package csvreader provides error types for CSV loading and validation.
package csvreader

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrEmptyInput is returned by Load when the document has no non-blank
// content at all, before any header or row processing happens.
var ErrEmptyInput = errors.New("csvreader: input has no non-blank content")

// IndexingError reports a duplicate name in a declared expected header,
// indexing list or alias table. Duplicates are checked on the raw declared
// values, before any trim or case-fold normalization.
type IndexingError struct {
	// Name is the duplicated declared name.
	Name string
}

// Error returns a formatted message naming the duplicated column.
func (e *IndexingError) Error() string {
	return fmt.Sprintf("csvreader: duplicate declared column name %q", e.Name)
}

// DetectionError reports that delimiter auto-detection failed.
type DetectionError struct {
	// Line is the first non-blank line inspected; empty when the input has
	// no non-blank line.
	Line string
}

// Error describes why detection failed.
func (e *DetectionError) Error() string {
	if e.Line == "" {
		return "csvreader: delimiter detection failed: input has no non-blank line"
	}
	return fmt.Sprintf("csvreader: delimiter detection failed: no candidate delimiter occurs in line %q", e.Line)
}

// UnexpectedColumnError reports header columns present in the file but
// absent from the declared expected header. Columns are listed in the order
// they were encountered in the file.
type UnexpectedColumnError struct {
	Columns []string
}

// Error lists the unexpected columns, comma-joined in encounter order.
func (e *UnexpectedColumnError) Error() string {
	return "csvreader: unexpected column(s) in header: " + strings.Join(e.Columns, ", ")
}

// DuplicateColumnError reports that the resolved header contains duplicate
// entries. This can happen when the file repeats a column whose variants
// all normalize-match the same declared entry, or when an alias collides
// with another resolved name.
type DuplicateColumnError struct {
	Columns []string
}

// Error lists the duplicated resolved columns.
func (e *DuplicateColumnError) Error() string {
	return "csvreader: duplicate column(s) in resolved header: " + strings.Join(e.Columns, ", ")
}

// InvalidLineError aggregates every physical line whose field count did not
// match the resolved width. It is reported once, after the whole document
// has been scanned, so callers see all bad lines together.
type InvalidLineError struct {
	// Lines holds 1-based physical line numbers in ascending order.
	Lines []int
}

// Error enumerates the mismatched line numbers.
func (e *InvalidLineError) Error() string {
	nums := make([]string, len(e.Lines))
	for i, n := range e.Lines {
		nums[i] = strconv.Itoa(n)
	}
	return "csvreader: wrong field count on line(s): " + strings.Join(nums, ", ")
}

// BackendError reports a failure of a parsing backend: the tokenizer's
// scratch buffer or the encoding decoder.
type BackendError struct {
	// Op is the backend operation that failed (create, write, seek, read,
	// decode).
	Op string
	// Err is the underlying error.
	Err error
}

// Error formats the failed operation and its cause.
func (e *BackendError) Error() string {
	return fmt.Sprintf("csvreader: backend %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *BackendError) Unwrap() error {
	return e.Err
}

// OptionsError represents an invalid option configuration.
type OptionsError struct {
	Field   string
	Message string
}

func (e *OptionsError) Error() string {
	return "csvreader: invalid " + e.Field + ": " + e.Message
}
