package q931

// CauseIE is the decoded Cause information element (spec.md §4.1): octet
// 3 carries coding standard + location, an optional octet 3a carries a
// recommendation, octet 4 the cause value, and any remaining bytes are
// implementation-specific diagnostics that are consumed but not required
// to be decoded further.
type CauseIE struct {
	CodingStandard byte
	Location       byte
	Recommendation byte
	HasRecommendation bool
	Value          Cause
	Diagnostics    []byte
}

func unpackCause(c *Cursor) (*CauseIE, error) {
	body, err := c.ReadLenPrefixed()
	if err != nil {
		return nil, err
	}
	if len(body) < 2 {
		return nil, newError(ErrIllegalIE, "cause IE too short", len(body), 0)
	}
	bodyC := NewCursor(body)
	ci := &CauseIE{}

	o3, _ := bodyC.ReadByte()
	ci.CodingStandard = (o3 >> 5) & 0x3
	ci.Location = o3 & 0xF
	if o3&0x80 == 0 {
		o3a, err := bodyC.ReadByte()
		if err != nil {
			return nil, newError(ErrIllegalIE, "cause IE missing octet 3a", 0, 0)
		}
		ci.HasRecommendation = true
		ci.Recommendation = o3a & 0x7F
	}
	o4, err := bodyC.ReadByte()
	if err != nil {
		return nil, newError(ErrIllegalIE, "cause IE missing octet 4", 0, 0)
	}
	ci.Value = Cause(o4 & 0x7F)
	ci.Diagnostics = append([]byte(nil), bodyC.Remaining()...)
	return ci, nil
}

func packCause(ci *CauseIE, w *Writer) {
	body := NewWriter()
	if ci.HasRecommendation {
		body.WriteByte((ci.CodingStandard&0x3)<<5 | (ci.Location & 0xF))
		body.WriteByte(ci.Recommendation | 0x80)
	} else {
		body.WriteByte(0x80 | (ci.CodingStandard&0x3)<<5 | (ci.Location & 0xF))
	}
	body.WriteByte(byte(ci.Value) | 0x80)
	body.WriteBytes(ci.Diagnostics)
	w.WriteLenPrefixed(body.Bytes())
}
