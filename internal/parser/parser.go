// Package parser turns raw scrip master CSV text into records.
package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/scripfeed/scrip-tickers/internal/model"
)

// ParseError reports empty or malformed CSV input.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse scrip master: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("parse scrip master: %s", e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse interprets the first line of text as the header row and every
// subsequent line as one record, preserving row order.
//
// Malformed-row policy: rows are not required to match the header width.
// Short rows are padded with empty strings and long rows truncated, so a
// ragged row never aborts the parse; only a genuinely absent column (header
// drift) surfaces later as a schema error. Quoting is lenient (LazyQuotes)
// since the upstream occasionally embeds stray quotes in name fields.
func Parse(text string) ([]model.Record, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	columns, err := r.Read()
	if err == io.EOF {
		return nil, &ParseError{Reason: "empty input"}
	}
	if err != nil {
		return nil, &ParseError{Reason: "read header", Err: err}
	}

	header := model.NewHeader(columns)
	var records []model.Record
	for line := 2; ; line++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ParseError{Reason: fmt.Sprintf("line %d", line), Err: err}
		}
		records = append(records, model.NewRecord(header, normalize(row, header.Len())))
	}
	return records, nil
}

// normalize pads a short row with empty strings and truncates a long one so
// every record carries exactly one value per header column.
func normalize(row []string, width int) []string {
	if len(row) == width {
		return row
	}
	if len(row) > width {
		return row[:width]
	}
	padded := make([]string, width)
	copy(padded, row)
	return padded
}
