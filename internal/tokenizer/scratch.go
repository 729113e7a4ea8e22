package tokenizer

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// ScratchError reports a failure of the tokenizer's scratch-file backend.
// Op names the file operation that failed (create, write, seek, read).
type ScratchError struct {
	Op  string
	Err error
}

// Error formats the failed operation and its cause.
func (e *ScratchError) Error() string {
	return fmt.Sprintf("tokenizer scratch %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *ScratchError) Unwrap() error {
	return e.Err
}

// scratch is the tokenizer's temporary materialized buffer. The document is
// spilled to a temp file once per tokenize call and parsed back through a
// buffered reader; the file is removed on every exit path.
type scratch struct {
	f *os.File
}

// newScratch writes text into a fresh temp file and positions it at the start.
func newScratch(text string) (*scratch, error) {
	f, err := os.CreateTemp("", "csvreader-*.scratch")
	if err != nil {
		return nil, &ScratchError{Op: "create", Err: err}
	}

	s := &scratch{f: f}
	if _, err := io.WriteString(f, text); err != nil {
		s.close()
		return nil, &ScratchError{Op: "write", Err: err}
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		s.close()
		return nil, &ScratchError{Op: "seek", Err: err}
	}
	return s, nil
}

// reader returns a buffered reader over the scratch contents.
func (s *scratch) reader() *bufio.Reader {
	return bufio.NewReader(s.f)
}

// close releases the scratch file and removes it from disk.
func (s *scratch) close() {
	name := s.f.Name()
	_ = s.f.Close()
	_ = os.Remove(name)
}
