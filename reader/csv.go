// Package reader implements the CSV row reader (§4.H): an iterator
// that turns a byte stream into a sequence of (row_index, header,
// value) triples, one column at a time, tolerating per-row
// tokenization errors by yielding them and continuing with the next
// row rather than aborting the whole stream.
package reader

import (
	"encoding/csv"
	"errors"
	"io"
)

// ErrDone is returned by Next once the stream is exhausted.
var ErrDone = errors.New("reader: no more rows")

// Row is one (row_index, header, value) triple.
type Row struct {
	Index  int
	Header string
	Value  string
}

// CSVReader yields Rows one column at a time, in column order, for
// each data row of an RFC 4180 comma-separated stream. The first row
// is consumed as the header and never itself yielded.
type CSVReader struct {
	r      *csv.Reader
	header []string

	rowIndex int
	record   []string
	col      int

	started bool
	done    bool
}

// NewCSVReader wraps r. FieldsPerRecord is left unconstrained so a
// short or long row tokenizes instead of aborting the stream — §4.H
// has no dialect sniffing beyond plain comma-separated.
func NewCSVReader(r io.Reader) *CSVReader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	return &CSVReader{r: cr}
}

// Next returns the next (row_index, header, value) triple, reading a
// new data row as needed. It returns ErrDone once the stream is
// exhausted; an empty CSV or a header-only CSV yields no Rows at all.
// A row whose tokenization failed is returned as an error (not
// ErrDone); the next call to Next resumes with the following row,
// per §7's "the CSV reader keeps going past per-row tokenization
// errors, yielding them as Err items".
func (c *CSVReader) Next() (Row, error) {
	if c.done {
		return Row{}, ErrDone
	}
	if !c.started {
		c.started = true
		header, err := c.r.Read()
		if errors.Is(err, io.EOF) {
			c.done = true
			return Row{}, ErrDone
		}
		if err != nil {
			return Row{}, err
		}
		c.header = header
	}

	for c.record == nil || c.col >= len(c.record) {
		record, err := c.r.Read()
		if errors.Is(err, io.EOF) {
			c.done = true
			return Row{}, ErrDone
		}
		if err != nil {
			c.record = nil
			c.rowIndex++
			return Row{}, err
		}
		c.record = record
		c.col = 0
		if len(c.record) == 0 {
			c.rowIndex++
		}
	}

	header := ""
	if c.col < len(c.header) {
		header = c.header[c.col]
	}
	value := c.record[c.col]
	idx := c.rowIndex
	c.col++
	if c.col >= len(c.record) {
		c.rowIndex++
	}
	return Row{Index: idx, Header: header, Value: value}, nil
}
