package aggregation

import (
	"github.com/shopspring/decimal"
)

// Supported aggregation operators. Sum is the default for category totals;
// the rest complete the registry so a report definition can pick any of them.
const (
	OpSum   = "sum"
	OpCount = "count"
	OpMin   = "min"
	OpMax   = "max"
)

// Aggregator defines the fold semantics of an operator over one category's
// rows. Adding an operator means implementing this interface and registering
// it in Operators — the grouping loop stays switch-free.
type Aggregator interface {
	// Initial returns the running value after the first row of a category.
	Initial(value decimal.Decimal) decimal.Decimal

	// Apply folds the next row's value into the running value.
	Apply(running, value decimal.Decimal) decimal.Decimal
}

// Operators is the registry of supported operators, keyed by name.
var Operators = map[string]Aggregator{
	OpSum:   sumAgg{},
	OpCount: countAgg{},
	OpMin:   minAgg{},
	OpMax:   maxAgg{},
}

// ValidOperator reports whether name is a registered operator.
func ValidOperator(name string) bool {
	_, ok := Operators[name]
	return ok
}

type sumAgg struct{}

func (sumAgg) Initial(v decimal.Decimal) decimal.Decimal    { return v }
func (sumAgg) Apply(run, v decimal.Decimal) decimal.Decimal { return run.Add(v) }

// countAgg counts rows; the value cell is never read for it.
type countAgg struct{}

func (countAgg) Initial(_ decimal.Decimal) decimal.Decimal    { return decimal.NewFromInt(1) }
func (countAgg) Apply(run, _ decimal.Decimal) decimal.Decimal { return run.Add(decimal.NewFromInt(1)) }

type minAgg struct{}

func (minAgg) Initial(v decimal.Decimal) decimal.Decimal { return v }
func (minAgg) Apply(run, v decimal.Decimal) decimal.Decimal {
	if v.LessThan(run) {
		return v
	}
	return run
}

type maxAgg struct{}

func (maxAgg) Initial(v decimal.Decimal) decimal.Decimal { return v }
func (maxAgg) Apply(run, v decimal.Decimal) decimal.Decimal {
	if v.GreaterThan(run) {
		return v
	}
	return run
}
