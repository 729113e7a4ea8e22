// Package csvreader provides the Row output type.
package csvreader

// Row represents a single output row of a loaded document.
// It provides access to field values by position and, when the load
// resolved a header or indexing, by column name.
type Row struct {
	fields []string
	header []string // resolved header; empty for positional rows
}

// newRow builds a Row over fields keyed by the resolved header.
// A nil header produces a positional row.
func newRow(fields, header []string) Row {
	return Row{fields: fields, header: header}
}

// Keyed reports whether the row carries resolved column names.
func (r Row) Keyed() bool {
	return len(r.header) > 0
}

// Len returns the number of fields in the row.
func (r Row) Len() int {
	return len(r.fields)
}

// Fields returns the field values in positional order.
func (r Row) Fields() []string {
	return r.fields
}

// Get returns the field at the given 0-based index.
// Returns ("", false) if the index is out of bounds.
func (r Row) Get(index int) (string, bool) {
	if index < 0 || index >= len(r.fields) {
		return "", false
	}
	return r.fields[index], true
}

// GetByName returns the field under the given resolved column name.
// Returns ("", false) for positional rows or unknown names.
func (r Row) GetByName(name string) (string, bool) {
	for i, col := range r.header {
		if col == name && i < len(r.fields) {
			return r.fields[i], true
		}
	}
	return "", false
}

// Map returns the row as a column-name to value mapping.
// Returns nil for positional rows. Iterate the resolved header to visit
// the entries in column order.
func (r Row) Map() map[string]string {
	if len(r.header) == 0 {
		return nil
	}
	m := make(map[string]string, len(r.header))
	for i, col := range r.header {
		if i < len(r.fields) {
			m[col] = r.fields[i]
		}
	}
	return m
}
