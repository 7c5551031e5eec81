package dialects

import (
	"time"

	q931 "github.com/rgoward/q931"
)

// FiveESS builds the AT&T 5ESS custom dialect. Its historical quirk —
// message-type octets 0x07/0x0F meaning CONNECT/CONNECT_ACKNOWLEDGE
// under the call-control protocol discriminator but SERVICE_ACK/SERVICE
// under maintenance — is not a 5ESS-specific remap here: the core
// dispatch key (protocol discriminator + message type, see dialect.go)
// already disambiguates the collision for every dialect, since it is
// inherent to the two PDs sharing one numbering space rather than a
// 5ESS-only encoding choice (spec.md §4.2, §4.6). This dialect only
// overrides the timer defaults 5ESS switches commonly ship with.
func FiveESS() *q931.Dialect {
	d := q931.NewGenericDialect().Clone(q931.Dialect5ESS)
	d.OverrideTimerDefault(q931.T303, 4*time.Second)
	d.OverrideTimerDefault(q931.T308, 4*time.Second)
	d.OverrideTimerDefault(q931.T309, 90*time.Second)
	return d
}
