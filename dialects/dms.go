package dialects

import (
	"time"

	q931 "github.com/rgoward/q931"
)

// DMS builds the Nortel DMS-100 custom dialect: DMS's PRI trunks
// typically run a faster T309 recovery window than the generic default
// (spec.md §4.6 dialect table entry for DMS-100).
func DMS() *q931.Dialect {
	d := q931.NewGenericDialect().Clone(q931.DialectDMS)
	d.OverrideTimerDefault(q931.T309, 20*time.Second)
	d.OverrideTimerDefault(q931.T305, 15*time.Second)
	return d
}
