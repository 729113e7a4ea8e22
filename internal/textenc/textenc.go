// Package textenc resolves encoding tags and transcodes CSV input to UTF-8.
//
// The reader's public surface accepts an optional encoding tag alongside the
// document text. Everything downstream of this package (tokenizer, header
// matching, row mapping) operates on UTF-8 only, so transcoding happens once,
// up front, before any parsing.
package textenc

import (
	"fmt"
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// TagAuto asks the library to sniff the charset from the document bytes.
const TagAuto = "auto"

// detectSampleSize bounds how much of the document the charset detector sees.
const detectSampleSize = 2048

// charmaps maps normalized encoding tags to their single-byte decoders.
// UTF-8 tags are handled separately as a passthrough.
var charmaps = map[string]*charmap.Charmap{
	"latin1":       charmap.ISO8859_1,
	"iso-8859-1":   charmap.ISO8859_1,
	"iso-8859-15":  charmap.ISO8859_15,
	"windows-1250": charmap.Windows1250,
	"windows-1251": charmap.Windows1251,
	"cp1251":       charmap.Windows1251,
	"windows-1252": charmap.Windows1252,
	"cp1252":       charmap.Windows1252,
	"koi8-r":       charmap.KOI8R,
}

// isUTF8Tag reports whether the normalized tag names UTF-8 (the default).
func isUTF8Tag(tag string) bool {
	switch tag {
	case "", "utf-8", "utf8", "utf-8-sig":
		return true
	}
	return false
}

// normalizeTag lowercases and trims an encoding tag for lookup.
func normalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// Supported reports whether Decode accepts the given encoding tag.
func Supported(tag string) bool {
	tag = normalizeTag(tag)
	if isUTF8Tag(tag) || tag == TagAuto {
		return true
	}
	_, ok := charmaps[tag]
	return ok
}

// Decode converts input to UTF-8 according to the encoding tag.
//
// An empty or UTF-8 tag returns the input unchanged. TagAuto sniffs the
// charset from a bounded prefix of the input and falls back to UTF-8 when
// detection is inconclusive. Unknown tags and decoder failures are errors.
func Decode(input string, tag string) (string, error) {
	tag = normalizeTag(tag)
	if tag == TagAuto {
		tag = detect(input)
	}
	if isUTF8Tag(tag) {
		return input, nil
	}

	cm, ok := charmaps[tag]
	if !ok {
		return "", fmt.Errorf("unsupported encoding %q", tag)
	}
	return decodeWith(input, cm.NewDecoder())
}

// decodeWith runs input through a decoder, producing UTF-8.
func decodeWith(input string, dec *encoding.Decoder) (string, error) {
	out, err := dec.String(input)
	if err != nil {
		return "", fmt.Errorf("decode to utf-8: %w", err)
	}
	return out, nil
}

// detect sniffs the charset of input, returning a normalized tag.
// Inconclusive detection defaults to UTF-8.
func detect(input string) string {
	sample := input
	if len(sample) > detectSampleSize {
		sample = sample[:detectSampleSize]
	}
	if sample == "" {
		return "utf-8"
	}

	res, err := chardet.NewTextDetector().DetectBest([]byte(sample))
	if err != nil || res == nil {
		return "utf-8"
	}

	tag := normalizeTag(res.Charset)
	if _, ok := charmaps[tag]; ok {
		return tag
	}
	return "utf-8"
}
