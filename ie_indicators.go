package q931

// RestartClass is the payload of the Restart Indicator IE (spec.md §4.1):
// a single octet naming which channels a RESTART affects.
type RestartClass byte

const (
	RestartIndicatedChannels RestartClass = 0
	RestartSingleInterface   RestartClass = 6
	RestartAllInterfaces     RestartClass = 7
)

type RestartIndicator struct {
	Class RestartClass
}

func unpackRestartIndicator(c *Cursor) (*RestartIndicator, error) {
	body, err := c.ReadLenPrefixed()
	if err != nil {
		return nil, err
	}
	if len(body) < 1 {
		return nil, newError(ErrIllegalIE, "restart indicator IE empty", 0, 0)
	}
	return &RestartIndicator{Class: RestartClass(body[0] & 0x7F)}, nil
}
func packRestartIndicator(r *RestartIndicator, w *Writer) {
	w.WriteLenPrefixed([]byte{byte(r.Class) | 0x80})
}

// NotificationIndicator is a single-octet description of why a message
// was sent (e.g. user suspended/resumed).
type NotificationIndicator struct {
	Value byte
}

func unpackNotificationIndicator(c *Cursor) (*NotificationIndicator, error) {
	body, err := c.ReadLenPrefixed()
	if err != nil {
		return nil, err
	}
	if len(body) < 1 {
		return nil, newError(ErrIllegalIE, "notification indicator IE empty", 0, 0)
	}
	return &NotificationIndicator{Value: body[0] & 0x7F}, nil
}
func packNotificationIndicator(n *NotificationIndicator, w *Writer) {
	w.WriteLenPrefixed([]byte{n.Value | 0x80})
}

// CallStateIE mirrors the call's own state back on the wire (used by
// STATUS messages, spec.md §4.5's unexpected-message path).
type CallStateIE struct {
	Coding byte
	Value  byte
}

func unpackCallStateIE(c *Cursor) (*CallStateIE, error) {
	body, err := c.ReadLenPrefixed()
	if err != nil {
		return nil, err
	}
	if len(body) < 1 {
		return nil, newError(ErrIllegalIE, "call state IE empty", 0, 0)
	}
	return &CallStateIE{Coding: (body[0] >> 6) & 0x3, Value: body[0] & 0x3F}, nil
}
func packCallStateIE(cs *CallStateIE, w *Writer) {
	w.WriteLenPrefixed([]byte{(cs.Coding&0x3)<<6 | (cs.Value & 0x3F)})
}

// ProgressIndicator signals in-band information availability and similar
// progress conditions (spec.md §4.8 overlap-dial uses descr=8).
type ProgressIndicator struct {
	CodingStandard byte
	Location       byte
	Description    byte
}

func unpackProgressIndicator(c *Cursor) (*ProgressIndicator, error) {
	body, err := c.ReadLenPrefixed()
	if err != nil {
		return nil, err
	}
	if len(body) < 2 {
		return nil, newError(ErrIllegalIE, "progress indicator IE too short", len(body), 0)
	}
	return &ProgressIndicator{
		CodingStandard: (body[0] >> 5) & 0x3,
		Location:       body[0] & 0xF,
		Description:    body[1] & 0x7F,
	}, nil
}
func packProgressIndicator(p *ProgressIndicator, w *Writer) {
	body := NewWriter()
	body.WriteByte(0x80 | (p.CodingStandard&0x3)<<5 | (p.Location & 0xF))
	body.WriteByte(p.Description | 0x80)
	w.WriteLenPrefixed(body.Bytes())
}
