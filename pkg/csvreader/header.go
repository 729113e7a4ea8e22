// Package csvreader provides header reconciliation and column aliasing.
package csvreader

import (
	"strings"
)

// Alias renames a declared expected-header column in the resolved header.
// Name is the key under which the column appears in output rows.
type Alias struct {
	// Column is the declared expected-header column being renamed.
	Column string
	// Name is the name emitted into the resolved header and output rows.
	Name string
}

// normalizer applies the configured trim and case-fold flags to header
// fields and declared columns before matching.
type normalizer struct {
	trim bool
	fold bool
}

// apply normalizes s for header comparison.
func (n normalizer) apply(s string) string {
	if n.trim {
		s = strings.TrimSpace(s)
	}
	if n.fold {
		s = strings.ToLower(s)
	}
	return s
}

// reconcileHeader matches the first non-blank record of the document
// against the declared expected header and returns the resolved header.
//
// Each record field is normalized and compared against the normalized
// declared columns; on a match the declared column's original spelling is
// emitted, preserving the caller's casing rather than the file's. Record
// fields matching no declared column fail the load with an
// *UnexpectedColumnError listing them in encounter order. Declared columns
// absent from the record are permitted and simply omitted.
func reconcileHeader(record, expected []string, norm normalizer) ([]string, error) {
	resolved := make([]string, 0, len(record))
	var unexpected []string

	for _, field := range record {
		want := norm.apply(field)
		found := false
		for _, col := range expected {
			if norm.apply(col) == want {
				resolved = append(resolved, col)
				found = true
				break
			}
		}
		if !found {
			unexpected = append(unexpected, field)
		}
	}

	if len(unexpected) > 0 {
		return nil, &UnexpectedColumnError{Columns: unexpected}
	}
	return resolved, nil
}

// applyAliases replaces resolved header entries per the alias table and
// returns the rewritten header along with the reverse map from resolved
// name back to the originally declared column name.
func applyAliases(resolved []string, aliases []Alias) ([]string, map[string]string) {
	renamed := make([]string, len(resolved))
	reverse := make(map[string]string, len(resolved))

	for i, col := range resolved {
		name := col
		for _, a := range aliases {
			if a.Column == col {
				name = a.Name
				break
			}
		}
		renamed[i] = name
		reverse[name] = col
	}
	return renamed, reverse
}

// checkDuplicates verifies the resolved header holds no duplicate entries,
// which can happen when distinct file columns normalize-match the same
// declared column, or when an alias collides with another resolved name.
func checkDuplicates(resolved []string) error {
	seen := make(map[string]bool, len(resolved))
	var dups []string
	for _, col := range resolved {
		if seen[col] {
			dups = append(dups, col)
			continue
		}
		seen[col] = true
	}
	if len(dups) > 0 {
		return &DuplicateColumnError{Columns: dups}
	}
	return nil
}

// checkDistinct verifies a declared name list holds no duplicates on the
// raw values, before any normalization.
func checkDistinct(names []string) error {
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			return &IndexingError{Name: name}
		}
		seen[name] = true
	}
	return nil
}
