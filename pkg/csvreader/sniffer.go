// Package csvreader provides delimiter auto-detection.
package csvreader

import (
	"strings"
)

// delimiterCandidates is the fixed candidate set tried during detection,
// declared in priority order. Ties in occurrence count resolve to the
// earlier candidate: comma > semicolon > pipe > tab.
var delimiterCandidates = []rune{',', ';', '|', '\t'}

// DetectDelimiter inspects the first non-blank line of sample and returns
// the candidate delimiter occurring most often in it.
//
// It fails with a *DetectionError when the sample has no non-blank line or
// when no candidate occurs at all. The sample is not modified.
func DetectDelimiter(sample string) (rune, error) {
	line, ok := firstNonBlankLine(sample)
	if !ok {
		return 0, &DetectionError{}
	}

	best := rune(0)
	bestCount := 0
	for _, cand := range delimiterCandidates {
		// Strictly greater keeps the first-declared candidate on ties.
		if n := strings.Count(line, string(cand)); n > bestCount {
			best = cand
			bestCount = n
		}
	}

	if bestCount == 0 {
		return 0, &DetectionError{Line: line}
	}
	return best, nil
}

// firstNonBlankLine returns the first line of sample that is not blank
// after trimming whitespace. ok is false when every line is blank.
func firstNonBlankLine(sample string) (line string, ok bool) {
	for len(sample) > 0 {
		i := strings.IndexByte(sample, '\n')
		if i < 0 {
			line, sample = sample, ""
		} else {
			line, sample = sample[:i], sample[i+1:]
		}
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) != "" {
			return line, true
		}
	}
	return "", false
}
