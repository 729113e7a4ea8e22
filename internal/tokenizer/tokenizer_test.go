package tokenizer

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected [][]string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:     "single record",
			input:    "a,b,c",
			expected: [][]string{{"a", "b", "c"}},
		},
		{
			name:     "trailing newline yields no extra record",
			input:    "a,b,c\n",
			expected: [][]string{{"a", "b", "c"}},
		},
		{
			name:     "multiple records",
			input:    "a,b\n1,2\n3,4",
			expected: [][]string{{"a", "b"}, {"1", "2"}, {"3", "4"}},
		},
		{
			name:     "crlf line endings",
			input:    "a,b\r\n1,2\r\n",
			expected: [][]string{{"a", "b"}, {"1", "2"}},
		},
		{
			name:     "blank line yields single empty field",
			input:    "a,b\n\n1,2\n",
			expected: [][]string{{"a", "b"}, {""}, {"1", "2"}},
		},
		{
			name:     "empty fields",
			input:    "a,,c\n,,\n",
			expected: [][]string{{"a", "", "c"}, {"", "", ""}},
		},
		{
			name:     "quoted field with embedded delimiter",
			input:    "\"a,b\",c\n",
			expected: [][]string{{"a,b", "c"}},
		},
		{
			name:     "quoted field with embedded newline",
			input:    "\"a\nb\",c\n",
			expected: [][]string{{"a\nb", "c"}},
		},
		{
			name:     "doubled enclosure inside quotes",
			input:    "\"say \"\"hi\"\"\",x\n",
			expected: [][]string{{`say "hi"`, "x"}},
		},
		{
			name:     "escaped enclosure inside quotes",
			input:    "\"say \\\"hi\\\"\",x\n",
			expected: [][]string{{`say "hi"`, "x"}},
		},
		{
			name:     "escape not followed by enclosure stays literal",
			input:    "\"a\\b\",c\n",
			expected: [][]string{{`a\b`, "c"}},
		},
		{
			name:     "unterminated quoted field runs to end of input",
			input:    "a,\"unclosed\nstill going",
			expected: [][]string{{"a", "unclosed\nstill going"}},
		},
		{
			name:     "lone open quote at end of input",
			input:    "a,b\n\"",
			expected: [][]string{{"a", "b"}, {""}},
		},
		{
			name:     "enclosure mid-field is literal",
			input:    "ab\"cd\",e\n",
			expected: [][]string{{`ab"cd"`, "e"}},
		},
		{
			name:     "quote adjacent text after closing quote is literal",
			input:    "\"ab\"cd,e\n",
			expected: [][]string{{"abcd", "e"}},
		},
		{
			name:     "multibyte field content",
			input:    "naïve,héllo\n",
			expected: [][]string{{"naïve", "héllo"}},
		},
		{
			name:     "empty quoted field",
			input:    "\"\",b\n",
			expected: [][]string{{"", "b"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(tt.input, DefaultConfig())
			if err != nil {
				t.Fatalf("Tokenize() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Tokenize() = %#v, want %#v", got, tt.expected)
			}
		})
	}
}

func TestTokenizeCustomCharacters(t *testing.T) {
	cfg := Config{Delimiter: ';', Enclosure: '\'', Escape: '\\'}

	tests := []struct {
		name     string
		input    string
		expected [][]string
	}{
		{
			name:     "semicolon delimiter",
			input:    "a;b;c\n",
			expected: [][]string{{"a", "b", "c"}},
		},
		{
			name:     "single quote enclosure",
			input:    "'a;b';c\n",
			expected: [][]string{{"a;b", "c"}},
		},
		{
			name:     "escaped single quote",
			input:    "'it\\'s';x\n",
			expected: [][]string{{"it's", "x"}},
		},
		{
			name:     "comma is plain text under semicolon delimiter",
			input:    "a,b;c\n",
			expected: [][]string{{"a,b", "c"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(tt.input, cfg)
			if err != nil {
				t.Fatalf("Tokenize() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Tokenize() = %#v, want %#v", got, tt.expected)
			}
		})
	}
}

func TestTokenizeTabDelimiter(t *testing.T) {
	got, err := Tokenize("a\tb\t\"c\td\"\n", Config{Delimiter: '\t', Enclosure: '"', Escape: '\\'})
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	expected := [][]string{{"a", "b", "c\td"}}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Tokenize() = %#v, want %#v", got, expected)
	}
}

func TestTokenizeRoundTripQuotedDelimiters(t *testing.T) {
	// Field text containing delimiters must come back byte for byte.
	fields := []string{"plain", "with,commas,inside", "with \"quotes\"", "multi\nline"}
	input := "\"plain\",\"with,commas,inside\",\"with \"\"quotes\"\"\",\"multi\nline\"\n"

	got, err := Tokenize(input, DefaultConfig())
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Tokenize() produced %d records, want 1", len(got))
	}
	if !reflect.DeepEqual(got[0], fields) {
		t.Errorf("Tokenize() = %#v, want %#v", got[0], fields)
	}
}

func TestTokenizeScratchCreateFailure(t *testing.T) {
	// Point the temp directory somewhere that does not exist so the
	// scratch file cannot be created.
	t.Setenv("TMPDIR", filepath.Join(t.TempDir(), "missing"))

	_, err := Tokenize("a,b\n1,2\n", DefaultConfig())
	var scratch *ScratchError
	if !errors.As(err, &scratch) {
		t.Fatalf("Tokenize() error = %v, want *ScratchError", err)
	}
	if scratch.Op != "create" {
		t.Errorf("ScratchError.Op = %q, want %q", scratch.Op, "create")
	}
	if scratch.Err == nil {
		t.Error("ScratchError.Err should carry the underlying cause")
	}
}

func TestScratchErrorUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := &ScratchError{Op: "write", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("ScratchError should unwrap to its cause")
	}
	want := "tokenizer scratch write: disk full"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
