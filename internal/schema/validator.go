// Package schema checks the loaded table against the columns a report needs.
// Column presence is a property of the whole table, so this runs exactly once
// per run, before any row is inspected.
package schema

import (
	"strings"

	corerrors "github.com/tally-lab/project-tally/internal/core/errors"
	"github.com/tally-lab/project-tally/internal/core/table"
)

const stage = "validate"

// Validate checks that the table's column set is a superset of required.
// On failure it returns a schema_violation error naming both the missing
// columns and the columns actually found. Cell values are not examined here.
func Validate(tbl *table.Table, required ...string) error {
	var missing []string
	for _, name := range required {
		if !tbl.Header().Has(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return corerrors.New(corerrors.KindSchemaViolation, stage,
		"missing required column(s) [%s]; found [%s]",
		strings.Join(missing, ", "),
		strings.Join(tbl.Header().Columns(), ", "))
}
