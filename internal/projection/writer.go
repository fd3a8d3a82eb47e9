// Package projection renders aggregate records as the JSON document the
// publishing step consumes.
package projection

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/tally-lab/project-tally/internal/core/aggregation"
)

// aggregateRow is the wire shape: exactly the keys Category and Value.
// Value is a raw message so the decimal renders as a bare JSON number —
// decimal.Decimal's own MarshalJSON quotes it as a string.
type aggregateRow struct {
	Category string          `json:"Category"`
	Value    json.RawMessage `json:"Value"`
}

// Write renders records as a JSON array of {Category, Value} objects, in the
// given order, and flushes the whole document to w in a single write followed
// by a trailing newline. The document is built in memory first: if anything
// fails, zero bytes reach w.
//
// An empty record slice renders as [], never null.
func Write(w io.Writer, records []aggregation.Record, pretty bool, indent int) error {
	rows := make([]aggregateRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, aggregateRow{
			Category: rec.Category,
			Value:    json.RawMessage(rec.Value.String()),
		})
	}

	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(rows, "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(rows)
	}
	if err != nil {
		// Not one of the four classified failures; surfaces as a generic
		// internal error at the entry point.
		return fmt.Errorf("serialize: encoding %d records: %w", len(rows), err)
	}

	buf := bytes.NewBuffer(data)
	buf.WriteByte('\n')
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("serialize: writing output: %w", err)
	}
	return nil
}
