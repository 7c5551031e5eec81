// Package dialects holds the thin per-carrier deltas layered on top of
// the generic Q.931 dialect: National ISDN 1/2, Nortel DMS-100, and
// AT&T 5ESS custom (spec.md §4.6 dialect table). Each constructor clones
// q931.NewGenericDialect() and only registers what actually differs.
package dialects

import (
	"time"

	q931 "github.com/rgoward/q931"
)

// National builds the National ISDN 1/2 dialect: adds the Generic
// Digits IE to SETUP's whitelist (spec.md §4.1's dialect extension) and
// tightens T310 to the shorter interval National switches commonly use.
func National() *q931.Dialect {
	d := q931.NewGenericDialect().Clone(q931.DialectNational)

	up, pk := q931.GenericDigitsCodec()
	d.RegisterIE(q931.IEGenericDigits, up, pk)

	handler, order, ok := d.HandlerFor(q931.PDCallControl, q931.MsgSetup)
	if ok {
		d.RegisterMessage(q931.PDCallControl, q931.MsgSetup, append(order, q931.IEGenericDigits), handler)
	}

	d.OverrideTimerDefault(q931.T310, 4*time.Second)
	return d
}
