// Package csvreader provides the Reader facade orchestrating the load
// pipeline: delimiter detection, tokenization, header reconciliation and
// row validation.
package csvreader

import (
	"errors"
	"strings"

	"github.com/tonyfarney/CSVReader/internal/textenc"
	"github.com/tonyfarney/CSVReader/internal/tokenizer"
)

// Stats aggregates counters for one load.
type Stats struct {
	// LinesRead counts every physical line read, blank or not. A record
	// with line breaks embedded in quoted fields counts as one line.
	LinesRead int
	// LinesProcessed counts the non-blank lines that went through header
	// or row processing.
	LinesProcessed int
	// InvalidLines holds the 1-based physical line numbers whose field
	// count mismatched the resolved width, in ascending order.
	InvalidLines []int
}

// Reader loads CSV documents into rows, optionally validating and
// remapping columns against a declared expected header or indexing list.
//
// Configuration and declared header/indexing persist across loads until
// Reset is called; each Load call starts by clearing the previous results.
// A Reader is not safe for concurrent loads: serialize calls or use one
// Reader per document.
type Reader struct {
	opts     Options
	expected []string
	indexing []string
	aliases  []Alias

	// state of the last load
	rows      []Row
	header    []string
	reverse   map[string]string
	stats     Stats
	delimiter rune
}

// New creates a Reader with default options.
func New() *Reader {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates a Reader with the given options.
func NewWithOptions(opts Options) *Reader {
	return &Reader{opts: opts}
}

// SetDelimiter sets the field delimiter. Zero re-enables auto-detection.
// Returns the Reader for method chaining.
func (r *Reader) SetDelimiter(d rune) *Reader {
	r.opts.Delimiter = d
	return r
}

// SetEnclosure sets the quoting character.
// Returns the Reader for method chaining.
func (r *Reader) SetEnclosure(c rune) *Reader {
	r.opts.Enclosure = c
	return r
}

// SetEscape sets the escape character.
// Returns the Reader for method chaining.
func (r *Reader) SetEscape(c rune) *Reader {
	r.opts.Escape = c
	return r
}

// SetEncoding sets the input encoding tag (see Options.Encoding).
// Returns the Reader for method chaining.
func (r *Reader) SetEncoding(tag string) *Reader {
	r.opts.Encoding = tag
	return r
}

// SetHeaderMatching configures header normalization: trim surrounding
// whitespace and/or match case-insensitively.
// Returns the Reader for method chaining.
func (r *Reader) SetHeaderMatching(trim, caseInsensitive bool) *Reader {
	r.opts.TrimHeader = trim
	r.opts.CaseInsensitiveHeader = caseInsensitive
	return r
}

// SetExpectedHeader declares the columns the document's header line may
// contain. Output rows are keyed by these names (or their aliases).
// Duplicate names, checked on the raw declared values, fail with an
// *IndexingError.
func (r *Reader) SetExpectedHeader(columns []string) error {
	if err := checkDistinct(columns); err != nil {
		return err
	}
	r.expected = append([]string(nil), columns...)
	return nil
}

// SetIndexing declares positional column names for headerless documents.
// Every data row must then have exactly len(names) fields, and output rows
// are keyed by these names in positional order. Ignored when an expected
// header is declared; use SetAliases to rename header columns instead.
// Duplicate names fail with an *IndexingError.
func (r *Reader) SetIndexing(names []string) error {
	if err := checkDistinct(names); err != nil {
		return err
	}
	r.indexing = append([]string(nil), names...)
	return nil
}

// SetAliases declares renames applied to the resolved header when an
// expected header is in use. Output rows are keyed by Alias.Name for the
// renamed columns; OriginalColumn maps them back. Duplicate alias names or
// duplicate source columns fail with an *IndexingError.
func (r *Reader) SetAliases(aliases []Alias) error {
	names := make([]string, len(aliases))
	cols := make([]string, len(aliases))
	for i, a := range aliases {
		names[i] = a.Name
		cols[i] = a.Column
	}
	if err := checkDistinct(names); err != nil {
		return err
	}
	if err := checkDistinct(cols); err != nil {
		return err
	}
	r.aliases = append([]Alias(nil), aliases...)
	return nil
}

// Reset clears all configuration, declared header/indexing and prior
// results, returning the Reader to its initial state.
func (r *Reader) Reset() {
	*r = Reader{opts: DefaultOptions()}
}

// Load parses input using the Reader's current configuration and returns
// the output rows. It either fully succeeds or returns exactly one error
// from the taxonomy in errors.go; no partial row collection is returned on
// failure, but Stats still reflects progress up to the failure point.
func (r *Reader) Load(input string) ([]Row, error) {
	return r.load(input, r.opts)
}

// LoadWithOptions parses input with per-load option overrides, leaving the
// Reader's persistent configuration untouched.
func (r *Reader) LoadWithOptions(input string, opts Options) ([]Row, error) {
	return r.load(input, opts)
}

// Rows returns the output rows of the last successful load.
func (r *Reader) Rows() []Row {
	return r.rows
}

// Header returns the resolved header of the last load, or nil when the
// load was positional.
func (r *Reader) Header() []string {
	return r.header
}

// Stats returns the statistics of the last load.
func (r *Reader) Stats() Stats {
	return r.stats
}

// Delimiter returns the delimiter active during the last load: the
// configured one, or the auto-detected one. Detection never persists into
// Options.Delimiter; while it is zero, every load re-detects from its own
// input.
func (r *Reader) Delimiter() rune {
	return r.delimiter
}

// OriginalColumn maps a resolved column name of the last load back to the
// originally declared name. Aliased columns map to the declared header
// column; unaliased resolved columns map to themselves.
// Returns ("", false) for names not present in the resolved header.
func (r *Reader) OriginalColumn(name string) (string, bool) {
	col, ok := r.reverse[name]
	return col, ok
}

// load runs the whole pipeline over a snapshot of the configuration:
// decode, detect delimiter, tokenize, reconcile header, validate and map
// rows. Per-load state is reset first.
func (r *Reader) load(input string, opts Options) ([]Row, error) {
	r.rows = nil
	r.header = nil
	r.reverse = nil
	r.stats = Stats{}
	r.delimiter = opts.Delimiter

	if err := opts.Validate(); err != nil {
		return nil, err
	}

	text, err := textenc.Decode(input, opts.Encoding)
	if err != nil {
		return nil, &BackendError{Op: "decode", Err: err}
	}

	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}

	delim := opts.Delimiter
	if delim == 0 {
		delim, err = DetectDelimiter(text)
		if err != nil {
			return nil, err
		}
	}
	r.delimiter = delim

	records, err := tokenizer.Tokenize(text, tokenizer.Config{
		Delimiter: delim,
		Enclosure: opts.Enclosure,
		Escape:    opts.Escape,
	})
	if err != nil {
		var scratch *tokenizer.ScratchError
		if errors.As(err, &scratch) {
			return nil, &BackendError{Op: scratch.Op, Err: scratch.Err}
		}
		return nil, &BackendError{Op: "tokenize", Err: err}
	}

	return r.process(records, opts)
}

// process runs header reconciliation and row validation over the
// tokenized records.
func (r *Reader) process(records [][]string, opts Options) ([]Row, error) {
	width := -1 // no fixed width enforced
	var resolved []string

	needHeader := len(r.expected) > 0
	if !needHeader && len(r.indexing) > 0 {
		resolved = r.indexing
		width = len(resolved)
	}

	var rows []Row
	for i, record := range records {
		line := i + 1
		r.stats.LinesRead = line
		if blankRecord(record) {
			continue
		}
		r.stats.LinesProcessed++

		if needHeader {
			needHeader = false
			norm := normalizer{trim: opts.TrimHeader, fold: opts.CaseInsensitiveHeader}
			matched, err := reconcileHeader(record, r.expected, norm)
			if err != nil {
				return nil, err
			}
			header, reverse := applyAliases(matched, r.aliases)
			if err := checkDuplicates(header); err != nil {
				return nil, err
			}
			resolved = header
			width = len(header)
			r.reverse = reverse
			continue
		}

		if width >= 0 && len(record) != width {
			r.stats.InvalidLines = append(r.stats.InvalidLines, line)
			continue
		}
		rows = append(rows, newRow(record, resolved))
	}

	if r.reverse == nil && resolved != nil {
		// Positional indexing: every resolved name is its own original.
		reverse := make(map[string]string, len(resolved))
		for _, name := range resolved {
			reverse[name] = name
		}
		r.reverse = reverse
	}
	r.header = resolved

	if len(r.stats.InvalidLines) > 0 {
		return nil, &InvalidLineError{Lines: r.stats.InvalidLines}
	}

	r.rows = rows
	return rows, nil
}

// blankRecord reports whether every field of record is blank or
// whitespace-only. Blank records are skipped by both the header pass and
// the row pass but still advance the physical line ordinal.
func blankRecord(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
