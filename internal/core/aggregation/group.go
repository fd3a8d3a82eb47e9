package aggregation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	corerrors "github.com/tally-lab/project-tally/internal/core/errors"
	"github.com/tally-lab/project-tally/internal/core/table"
)

const stage = "aggregate"

// Record is one aggregated output pair: a distinct category value and the
// folded total of its rows.
type Record struct {
	Category string
	Value    decimal.Decimal
}

// GroupBy partitions the table's rows by the category column and folds the
// value column through the named operator within each partition.
//
// Output order is the first-appearance order of each distinct category while
// scanning the table top to bottom. Category matching is exact string
// equality — no trimming, no case folding.
//
// A value cell that does not parse as a number fails the whole call with an
// invalid_value error naming the offending row; nothing is skipped or
// defaulted. The count operator never reads the value cell, so it cannot
// fail this way.
func GroupBy(tbl *table.Table, categoryCol, valueCol, operator string) ([]Record, error) {
	agg, ok := Operators[operator]
	if !ok {
		// Config validation rejects unknown operators before a run starts,
		// so this is a caller bug, not a data failure.
		return nil, fmt.Errorf("%s: unknown operator %q", stage, operator)
	}

	catIdx, ok := tbl.Header().Index(categoryCol)
	if !ok {
		return nil, corerrors.New(corerrors.KindSchemaViolation, stage, "column %q not in table", categoryCol)
	}
	valIdx, ok := tbl.Header().Index(valueCol)
	if !ok && operator != OpCount {
		return nil, corerrors.New(corerrors.KindSchemaViolation, stage, "column %q not in table", valueCol)
	}

	running := make(map[string]decimal.Decimal)
	var order []string // first-appearance order of distinct categories

	for i, row := range tbl.Rows() {
		cells := row.Cells()
		category := cells[catIdx]

		var value decimal.Decimal
		if operator != OpCount {
			raw := cells[valIdx]
			parsed, err := parseValue(raw)
			if err != nil {
				// Row numbers are 1-based over data rows; the header is not counted.
				return nil, corerrors.Wrap(corerrors.KindInvalidValue, stage, err,
					"row %d: column %q: cannot parse %q as a number", i+1, valueCol, raw)
			}
			value = parsed
		}

		if current, seen := running[category]; seen {
			running[category] = agg.Apply(current, value)
		} else {
			running[category] = agg.Initial(value)
			order = append(order, category)
		}
	}

	records := make([]Record, 0, len(order))
	for _, category := range order {
		records = append(records, Record{Category: category, Value: running[category]})
	}
	return records, nil
}

// parseValue converts a raw cell into a decimal. Surrounding whitespace is
// tolerated (common in hand-edited CSVs); anything else that is not a plain
// number is rejected.
func parseValue(raw string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(raw))
}
