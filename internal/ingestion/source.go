// Package ingestion loads the delimited source into an in-memory table.
package ingestion

import (
	"encoding/csv"
	"errors"
	"io"
	"os"

	corerrors "github.com/tally-lab/project-tally/internal/core/errors"
	"github.com/tally-lab/project-tally/internal/core/table"
)

const stage = "load"

// Load reads a UTF-8 delimited file into a Table. The first record is the
// header; every data record must have the same field count (the csv reader
// enforces this). Standard quoting applies, nothing beyond it.
//
// A missing file is a source_not_found failure naming the path; any parse or
// read failure is malformed_source. A header-only file yields an empty table,
// which is valid.
func Load(path string, delimiter rune) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, corerrors.Wrap(corerrors.KindSourceNotFound, stage, err, "source %q does not exist", path)
		}
		return nil, corerrors.Wrap(corerrors.KindMalformedSource, stage, err, "source %q is not readable", path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = delimiter

	header, err := r.Read()
	if err == io.EOF {
		return nil, corerrors.New(corerrors.KindMalformedSource, stage, "source %q is empty (no header row)", path)
	}
	if err != nil {
		return nil, corerrors.Wrap(corerrors.KindMalformedSource, stage, err, "source %q: cannot read header", path)
	}

	tbl := table.New(header)
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Inconsistent field counts surface here as csv.ParseError
			// with the offending line number.
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, corerrors.Wrap(corerrors.KindMalformedSource, stage, err,
					"source %q: malformed record at line %d", path, pe.Line)
			}
			return nil, corerrors.Wrap(corerrors.KindMalformedSource, stage, err, "source %q: read failed", path)
		}
		if err := tbl.Append(record); err != nil {
			return nil, corerrors.Wrap(corerrors.KindMalformedSource, stage, err, "source %q: inconsistent row", path)
		}
	}

	return tbl, nil
}
