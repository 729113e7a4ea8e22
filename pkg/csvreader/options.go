// Package csvreader provides configurable options for CSV loading.
package csvreader

import (
	"unicode/utf8"

	"github.com/tonyfarney/CSVReader/internal/textenc"
)

// Options configures how a Reader loads a document.
type Options struct {
	// Delimiter is the field delimiter. Zero asks the reader to auto-detect
	// it from the first non-blank line of the document.
	// Default: 0 (auto-detect)
	Delimiter rune

	// Enclosure is the quoting character wrapping fields that may contain
	// the delimiter or line breaks.
	// Default: '"'
	Enclosure rune

	// Escape, inside an enclosed field, makes a following enclosure
	// character literal.
	// Default: '\\'
	Escape rune

	// Encoding is the text encoding tag of the input. Empty means UTF-8;
	// "auto" sniffs the charset from the document bytes. Supported tags
	// include latin1/iso-8859-1, iso-8859-15, windows-1250..1252, cp1251,
	// cp1252 and koi8-r.
	// Default: "" (UTF-8)
	Encoding string

	// TrimHeader trims surrounding whitespace from file header fields and
	// declared columns before matching them.
	// Default: false
	TrimHeader bool

	// CaseInsensitiveHeader case-folds file header fields and declared
	// columns before matching them.
	// Default: false
	CaseInsensitiveHeader bool
}

// DefaultOptions returns the default reader configuration: auto-detected
// delimiter, double-quote enclosure, backslash escape, UTF-8 input.
func DefaultOptions() Options {
	return Options{
		Delimiter:             0,
		Enclosure:             '"',
		Escape:                '\\',
		Encoding:              "",
		TrimHeader:            false,
		CaseInsensitiveHeader: false,
	}
}

// validDelim reports whether r can serve as a field delimiter.
func validDelim(r rune) bool {
	return r != 0 && r != '\r' && r != '\n' && utf8.ValidRune(r) && r != utf8.RuneError
}

// Validate checks if the options are valid.
// Returns an *OptionsError if they are not.
func (o Options) Validate() error {
	if o.Delimiter != 0 && !validDelim(o.Delimiter) {
		return &OptionsError{Field: "Delimiter", Message: "invalid delimiter"}
	}
	if !validDelim(o.Enclosure) {
		return &OptionsError{Field: "Enclosure", Message: "invalid enclosure character"}
	}
	if o.Enclosure == o.Delimiter {
		return &OptionsError{Field: "Enclosure", Message: "enclosure same as delimiter"}
	}
	if !validDelim(o.Escape) {
		return &OptionsError{Field: "Escape", Message: "invalid escape character"}
	}
	if o.Escape == o.Delimiter {
		return &OptionsError{Field: "Escape", Message: "escape same as delimiter"}
	}
	if !textenc.Supported(o.Encoding) {
		return &OptionsError{Field: "Encoding", Message: "unsupported encoding tag"}
	}
	return nil
}
