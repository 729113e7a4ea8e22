//go:build go1.18
// +build go1.18

package tokenizer

import (
	"testing"
)

// FuzzTokenize tests the tokenizer with random inputs to find edge cases and panics.
// Run with: go test -fuzz=FuzzTokenize -fuzztime=30s ./internal/tokenizer
func FuzzTokenize(f *testing.F) {
	// Add seed corpus
	seeds := []string{
		"",
		"a",
		",",
		"\n",
		"\r\n",
		"\"",
		"\"\"",
		"a,b,c",
		"\"quoted\"",
		"\"with,comma\"",
		"\"with\"\"quote\"",
		"\"with\\\"escape\"",
		"a\nb\nc",
		"\"multi\nline\",x",
	}

	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		// The tokenizer should never panic, regardless of input
		records, err := Tokenize(input, DefaultConfig())
		if err != nil {
			return
		}
		for _, rec := range records {
			if len(rec) == 0 {
				t.Errorf("Tokenize produced a record with no fields for %q", input)
			}
		}
	})
}
