// Package tokenizer splits raw CSV text into records of string fields.
//
// The tokenizer honors a configurable delimiter, enclosure (quote) character
// and escape character. It materializes the document into a temporary scratch
// file and parses back from it through a buffered reader; scratch failures
// surface as *ScratchError rather than being swallowed.
package tokenizer

import (
	"io"
	"strings"
)

// Config holds the three single characters driving tokenization.
type Config struct {
	// Delimiter separates fields within a record.
	Delimiter rune
	// Enclosure wraps fields that may contain the delimiter or line breaks.
	Enclosure rune
	// Escape, inside an enclosed field, makes a following enclosure literal.
	Escape rune
}

// DefaultConfig returns the conventional CSV characters: comma, double
// quote, backslash.
func DefaultConfig() Config {
	return Config{
		Delimiter: ',',
		Enclosure: '"',
		Escape:    '\\',
	}
}

// Tokenize splits text into an ordered sequence of records, each an ordered
// sequence of string fields.
//
// Quoting follows standard CSV rules: an enclosed field may contain the
// delimiter, line breaks and enclosure characters (escaped by the escape
// character or by doubling). An unterminated enclosed field runs to end of
// input. A blank raw line yields a record whose sole field is empty. A
// record with an embedded line break still counts as a single record.
func Tokenize(text string, cfg Config) ([][]string, error) {
	s, err := newScratch(text)
	if err != nil {
		return nil, err
	}
	defer s.close()

	return parse(s.reader(), cfg)
}

// runeReader is the subset of bufio.Reader the parser needs.
type runeReader interface {
	ReadRune() (rune, int, error)
	UnreadRune() error
}

// parse consumes the scratch reader rune by rune and assembles records.
func parse(br runeReader, cfg Config) ([][]string, error) {
	var (
		records  [][]string
		fields   []string
		field    strings.Builder
		inQuotes bool
		// quoted marks that the current field was opened by an enclosure,
		// so a later enclosure in the same field stays literal.
		quoted bool
	)

	endField := func() {
		fields = append(fields, field.String())
		field.Reset()
		quoted = false
	}
	endRecord := func() {
		endField()
		records = append(records, fields)
		fields = nil
	}
	pending := func() bool {
		return len(fields) > 0 || field.Len() > 0 || quoted
	}

	for {
		r, _, err := br.ReadRune()
		if err == io.EOF {
			if inQuotes || pending() {
				// Unterminated quotes run to end of input; a final record
				// without a trailing newline is still emitted.
				endRecord()
			}
			return records, nil
		}
		if err != nil {
			return nil, &ScratchError{Op: "read", Err: err}
		}

		if inQuotes {
			switch r {
			case cfg.Enclosure:
				next, ok, perr := peekRune(br)
				if perr != nil {
					return nil, perr
				}
				if ok && next == cfg.Enclosure {
					// Doubled enclosure inside quotes is a literal one.
					if err := skipRune(br); err != nil {
						return nil, err
					}
					field.WriteRune(cfg.Enclosure)
					continue
				}
				inQuotes = false
			case cfg.Escape:
				next, ok, perr := peekRune(br)
				if perr != nil {
					return nil, perr
				}
				if ok && next == cfg.Enclosure {
					// The escape is consumed, the enclosure taken literally.
					if err := skipRune(br); err != nil {
						return nil, err
					}
					field.WriteRune(cfg.Enclosure)
					continue
				}
				field.WriteRune(r)
			default:
				field.WriteRune(r)
			}
			continue
		}

		switch r {
		case cfg.Delimiter:
			endField()
		case '\n':
			endRecord()
		case '\r':
			next, ok, perr := peekRune(br)
			if perr != nil {
				return nil, perr
			}
			if ok && next == '\n' {
				if err := skipRune(br); err != nil {
					return nil, err
				}
			}
			endRecord()
		case cfg.Enclosure:
			if field.Len() == 0 && !quoted {
				inQuotes = true
				quoted = true
				continue
			}
			// An enclosure that does not open a field is literal text.
			field.WriteRune(r)
		default:
			field.WriteRune(r)
		}
	}
}

// peekRune looks one rune ahead without consuming it. ok is false at end of
// input.
func peekRune(br runeReader) (r rune, ok bool, err error) {
	r, _, rerr := br.ReadRune()
	if rerr == io.EOF {
		return 0, false, nil
	}
	if rerr != nil {
		return 0, false, &ScratchError{Op: "read", Err: rerr}
	}
	if uerr := br.UnreadRune(); uerr != nil {
		return 0, false, &ScratchError{Op: "read", Err: uerr}
	}
	return r, true, nil
}

// skipRune consumes the rune peekRune just reported.
func skipRune(br runeReader) error {
	if _, _, err := br.ReadRune(); err != nil {
		return &ScratchError{Op: "read", Err: err}
	}
	return nil
}
