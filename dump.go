package q931

import (
	"fmt"
	"strings"
)

// String renders a decoded message the way the engine's trace/capture
// tooling shows it (spec.md's supplemented Q931TraceQ931 dumper
// feature, grounded on original_source/libs/freetdm's trace printer):
// header line, then one line per IE in the order it was decoded.
func (m *Message) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s pd=0x%02X crv=%d%s tei=%d\n",
		m.Header.MessageType, byte(m.Header.ProtocolDiscriminator), m.Header.CRV,
		fromTerminatorSuffix(m.Header.FromTerminator), m.Header.TEI)
	for _, ie := range m.IEs {
		fmt.Fprintf(&b, "  %s: %s\n", ie.ID, formatIEValue(ie.Value))
	}
	return b.String()
}

func fromTerminatorSuffix(fromTerminator bool) string {
	if fromTerminator {
		return " (from-terminator)"
	}
	return ""
}

func formatIEValue(v interface{}) string {
	switch t := v.(type) {
	case *SendingComplete:
		return "present"
	case []byte:
		return fmt.Sprintf("% X", t)
	default:
		return fmt.Sprintf("%+v", t)
	}
}
