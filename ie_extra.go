package q931

// DateTime is the Date/Time IE: year/month/day/hour/minute, and an
// optional seconds octet when the IE is long enough to carry it.
type DateTime struct {
	Year, Month, Day, Hour, Minute, Second byte
	HasSecond                              bool
}

func unpackDateTime(c *Cursor) (*DateTime, error) {
	body, err := c.ReadLenPrefixed()
	if err != nil {
		return nil, err
	}
	if len(body) < 5 {
		return nil, newError(ErrIllegalIE, "date/time IE too short", len(body), 0)
	}
	dt := &DateTime{Year: body[0], Month: body[1], Day: body[2], Hour: body[3], Minute: body[4]}
	if len(body) >= 6 {
		dt.HasSecond = true
		dt.Second = body[5]
	}
	return dt, nil
}
func packDateTime(dt *DateTime, w *Writer) {
	body := NewWriter()
	body.WriteBytes([]byte{dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute})
	if dt.HasSecond {
		body.WriteByte(dt.Second)
	}
	w.WriteLenPrefixed(body.Bytes())
}

// CallIdentity carries a short opaque identity string correlating
// SUSPEND/RESUME requests for the same user.
type CallIdentity struct {
	Data []byte
}

func unpackCallIdentity(c *Cursor) (*CallIdentity, error) {
	body, err := c.ReadLenPrefixed()
	if err != nil {
		return nil, err
	}
	return &CallIdentity{Data: append([]byte(nil), body...)}, nil
}
func packCallIdentity(ci *CallIdentity, w *Writer) { w.WriteLenPrefixed(ci.Data) }

// ChangeStatus reports a channel's new maintenance status (used by
// SERVICE messages, spec.md §4.8 service-state handling).
type ChangeStatus struct {
	ChannelNumber byte
	NewStatus     byte
}

func unpackChangeStatus(c *Cursor) (*ChangeStatus, error) {
	body, err := c.ReadLenPrefixed()
	if err != nil {
		return nil, err
	}
	if len(body) < 2 {
		return nil, newError(ErrIllegalIE, "change status IE too short", len(body), 0)
	}
	return &ChangeStatus{ChannelNumber: body[0] & 0x7F, NewStatus: body[1] & 0x7}, nil
}
func packChangeStatus(cs *ChangeStatus, w *Writer) {
	w.WriteLenPrefixed([]byte{0x80 | cs.ChannelNumber, cs.NewStatus})
}

// NetworkSpecificFacility and TransitNetworkSelection are both opaque,
// dialect-defined byte blobs in the generic Q.931 dialect; national
// dialects (DMS/National ISDN) interpret the contents further.
type NetworkSpecificFacility struct{ Data []byte }
type TransitNetworkSelection struct{ Data []byte }

func unpackNetworkSpecificFacility(c *Cursor) (*NetworkSpecificFacility, error) {
	body, err := c.ReadLenPrefixed()
	if err != nil {
		return nil, err
	}
	return &NetworkSpecificFacility{Data: append([]byte(nil), body...)}, nil
}
func packNetworkSpecificFacility(n *NetworkSpecificFacility, w *Writer) { w.WriteLenPrefixed(n.Data) }

func unpackTransitNetworkSelection(c *Cursor) (*TransitNetworkSelection, error) {
	body, err := c.ReadLenPrefixed()
	if err != nil {
		return nil, err
	}
	return &TransitNetworkSelection{Data: append([]byte(nil), body...)}, nil
}
func packTransitNetworkSelection(t *TransitNetworkSelection, w *Writer) { w.WriteLenPrefixed(t.Data) }

// LowLayerCompatibility and HighLayerCompatibility carry the same
// bearer-capability-shaped octets as BearerCapability but describe the
// compatibility the call requires end-to-end rather than what the
// network itself provides (spec.md §4.1); this engine passes their
// content through opaquely rather than decoding the bearer sub-fields a
// second time.
type LowLayerCompatibility struct{ Data []byte }
type HighLayerCompatibility struct{ Data []byte }

func unpackLowLayerCompatibility(c *Cursor) (*LowLayerCompatibility, error) {
	body, err := c.ReadLenPrefixed()
	if err != nil {
		return nil, err
	}
	return &LowLayerCompatibility{Data: append([]byte(nil), body...)}, nil
}
func packLowLayerCompatibility(l *LowLayerCompatibility, w *Writer) { w.WriteLenPrefixed(l.Data) }

func unpackHighLayerCompatibility(c *Cursor) (*HighLayerCompatibility, error) {
	body, err := c.ReadLenPrefixed()
	if err != nil {
		return nil, err
	}
	return &HighLayerCompatibility{Data: append([]byte(nil), body...)}, nil
}
func packHighLayerCompatibility(h *HighLayerCompatibility, w *Writer) { w.WriteLenPrefixed(h.Data) }

// SegmentedMessage is decode-only scaffolding: this engine does not
// reassemble segmented messages (spec.md §1 non-goal adjacent — full
// segmentation support isn't required for voice ISDN), but a segment
// marker must still be parseable so an unexpected SEGMENT message
// doesn't abort the whole frame.
type SegmentedMessage struct {
	First      bool
	RemainingSegments byte
	SegmentedMessageType MessageType
}

func unpackSegmentedMessage(c *Cursor) (*SegmentedMessage, error) {
	body, err := c.ReadLenPrefixed()
	if err != nil {
		return nil, err
	}
	if len(body) < 2 {
		return nil, newError(ErrSegmentation, "segmented message IE too short", len(body), 0)
	}
	return &SegmentedMessage{
		First:             body[0]&0x80 != 0,
		RemainingSegments: body[0] & 0x7F,
		SegmentedMessageType: MessageType(body[1]),
	}, nil
}
func packSegmentedMessage(s *SegmentedMessage, w *Writer) {
	b0 := s.RemainingSegments & 0x7F
	if s.First {
		b0 |= 0x80
	}
	w.WriteLenPrefixed([]byte{b0, byte(s.SegmentedMessageType)})
}
