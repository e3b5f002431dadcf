package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SchemaError reports a column that the pipeline expected but the fetched
// document does not carry. It is fatal to the run: a missing column means the
// upstream schema drifted, not that a row should be skipped.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("scrip master schema: missing column %q", e.Column)
}

// Header describes the column layout shared by every record of one parsed
// document. It must not be mutated after parsing.
type Header struct {
	columns []string
	index   map[string]int
}

// NewHeader builds a header from the first CSV row. If a column name repeats,
// the first occurrence wins.
func NewHeader(columns []string) *Header {
	index := make(map[string]int, len(columns))
	for i, col := range columns {
		if _, ok := index[col]; !ok {
			index[col] = i
		}
	}
	return &Header{columns: columns, index: index}
}

// Columns returns the column names in parsed order.
func (h *Header) Columns() []string { return h.columns }

// Len returns the number of columns.
func (h *Header) Len() int { return len(h.columns) }

// Record is a single row of the scrip master. Unknown columns are opaque
// pass-through; records are read-only after parsing.
type Record struct {
	header *Header
	values []string
}

// NewRecord pairs a value row with its header. The caller must supply exactly
// header.Len() values.
func NewRecord(h *Header, values []string) Record {
	return Record{header: h, values: values}
}

// Get returns the value of the named column, or a *SchemaError if the header
// does not carry it.
func (r Record) Get(column string) (string, error) {
	i, ok := r.header.index[column]
	if !ok {
		return "", &SchemaError{Column: column}
	}
	return r.values[i], nil
}

// Lookup returns the value of the named column and whether it exists.
func (r Record) Lookup(column string) (string, bool) {
	i, ok := r.header.index[column]
	if !ok {
		return "", false
	}
	return r.values[i], true
}

// MarshalJSON emits the record as a JSON object whose keys appear in parsed
// column order, matching the order of the source document.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range r.header.columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(col)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(r.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
