package q931

// ChannelSelection is the info-channel-selection field of a BRI Channel
// Identification IE (spec.md §4.1).
type ChannelSelection byte

const (
	ChannelSelectNone ChannelSelection = iota
	ChannelSelectB1
	ChannelSelectB2
	ChannelSelectAny
)

// ChannelIdentification distinguishes the BRI and PRI encodings of the
// Channel Identification IE. IsPRI selects which fields are meaningful:
// BRI carries only Selection; PRI carries either a single channel number
// or, when ChannelMap is non-nil, a bitmap of channels (spec.md §4.1).
type ChannelIdentification struct {
	IsPRI        bool
	InterfaceID  byte
	HasInterface bool
	Exclusive    bool // true=exclusive, false=preferred; NT MUST set exclusive
	DChannel     bool
	Selection    ChannelSelection // BRI only
	ChannelNumber byte            // PRI only, when ChannelMap == nil
	ChannelMap    []byte          // PRI only, channel-number map form
}

func unpackChannelIdentification(c *Cursor) (*ChannelIdentification, error) {
	body, err := c.ReadLenPrefixed()
	if err != nil {
		return nil, err
	}
	if len(body) < 1 {
		return nil, newError(ErrIllegalIE, "channel id IE empty", 0, 0)
	}
	bodyC := NewCursor(body)
	ci := &ChannelIdentification{}

	o3, _ := bodyC.ReadByte()
	ci.IsPRI = o3&0x20 != 0
	ci.Exclusive = o3&0x08 != 0
	ci.DChannel = o3&0x04 != 0
	ci.Selection = ChannelSelection(o3 & 0x3)

	if o3&0x40 != 0 { // interface identifier present, extended octet 3a
		o3a, err := bodyC.ReadByte()
		if err != nil {
			return nil, newError(ErrIllegalIE, "channel id missing octet 3a", 0, 0)
		}
		ci.HasInterface = true
		ci.InterfaceID = o3a & 0x7F
	}

	if ci.IsPRI && bodyC.Remain() > 0 {
		if o3&0x10 != 0 { // channel-map coding
			ci.ChannelMap = append([]byte(nil), bodyC.Remaining()...)
		} else {
			o4, err := bodyC.ReadByte()
			if err != nil {
				return nil, newError(ErrIllegalIE, "channel id missing channel number", 0, 0)
			}
			ci.ChannelNumber = o4 & 0x7F
		}
	}
	return ci, nil
}

func packChannelIdentification(ci *ChannelIdentification, w *Writer) {
	body := NewWriter()
	o3 := byte(0x80)
	if ci.IsPRI {
		o3 |= 0x20
	}
	if ci.Exclusive {
		o3 |= 0x08
	}
	if ci.DChannel {
		o3 |= 0x04
	}
	if ci.HasInterface {
		o3 &^= 0x80
		o3 |= 0x40
	}
	if ci.IsPRI && ci.ChannelMap != nil {
		o3 |= 0x10
	}
	o3 |= byte(ci.Selection) & 0x3
	body.WriteByte(o3)
	if ci.HasInterface {
		body.WriteByte(0x80 | ci.InterfaceID)
	}
	if ci.IsPRI {
		if ci.ChannelMap != nil {
			body.WriteBytes(ci.ChannelMap)
		} else {
			body.WriteByte(0x80 | ci.ChannelNumber)
		}
	}
	w.WriteLenPrefixed(body.Bytes())
}
