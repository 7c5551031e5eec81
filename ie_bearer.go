package q931

// BearerCapability is the mandatory octets-3/4 pair plus the optional
// extension chain of spec.md §4.1. InfoTransferRate == RateMultirate
// (0x18) is the only case where octet 4.1 is present.
type BearerCapability struct {
	CodingStandard       byte
	InfoTransferCapability byte
	TransferMode         byte
	InfoTransferRate     byte
	RateMultiplier       byte // octet 4.1, valid iff InfoTransferRate == RateMultirate
	HasRateMultiplier    bool
	Layer1Ident          byte
	HasLayer1            bool
	Layer2Ident          byte
	HasLayer2            bool
	Layer3Ident          byte
	HasLayer3            bool
}

const RateMultirate = 0x18

func unpackBearerCapability(c *Cursor) (*BearerCapability, error) {
	body, err := c.ReadLenPrefixed()
	if err != nil {
		return nil, err
	}
	bc := &BearerCapability{}
	bodyC := NewCursor(body)

	o3, err := bodyC.ReadByte()
	if err != nil {
		return nil, newError(ErrBearerCap, "missing octet 3", 0, 0)
	}
	bc.CodingStandard = (o3 >> 5) & 0x3
	bc.InfoTransferCapability = o3 & 0x1F

	o4, err := bodyC.ReadByte()
	if err != nil {
		return nil, newError(ErrBearerCap, "missing octet 4", 0, 0)
	}
	bc.TransferMode = (o4 >> 5) & 0x3
	bc.InfoTransferRate = o4 & 0x1F

	if bc.InfoTransferRate == RateMultirate {
		o41, err := bodyC.ReadByte()
		if err != nil {
			return nil, newError(ErrBearerCap, "missing octet 4.1 for multirate", 0, 0)
		}
		bc.HasRateMultiplier = true
		bc.RateMultiplier = o41 & 0x7F
	}

	// Walk the remaining extension chain: each octet whose top bit is 0
	// continues the chain; the decoder stops consuming once the buffer
	// is exhausted or an octet with the top bit set ends it.
	for bodyC.Remain() > 0 {
		b, err := bodyC.ReadByte()
		if err != nil {
			break
		}
		switch {
		case !bc.HasLayer1 && b&0x60 == 0x20:
			bc.Layer1Ident = b & 0x1F
			bc.HasLayer1 = true
		case !bc.HasLayer2 && b&0x60 == 0x40:
			bc.Layer2Ident = b & 0x1F
			bc.HasLayer2 = true
		case !bc.HasLayer3 && b&0x60 == 0x60:
			bc.Layer3Ident = b & 0x1F
			bc.HasLayer3 = true
		}
		if b&0x80 != 0 {
			break
		}
	}
	return bc, nil
}

func packBearerCapability(bc *BearerCapability, w *Writer) {
	body := NewWriter()
	o3 := byte(0x80) | (bc.CodingStandard&0x3)<<5 | (bc.InfoTransferCapability & 0x1F)
	body.WriteByte(o3)

	extendO4 := bc.InfoTransferRate == RateMultirate || bc.HasLayer1 || bc.HasLayer2 || bc.HasLayer3
	o4 := (bc.TransferMode&0x3)<<5 | (bc.InfoTransferRate & 0x1F)
	if extendO4 {
		body.WriteByte(o4)
	} else {
		body.WriteByte(o4 | 0x80)
	}

	if bc.InfoTransferRate == RateMultirate && bc.HasRateMultiplier {
		body.WriteByte(bc.RateMultiplier | 0x80)
	}
	if bc.HasLayer1 {
		flag := byte(0x80)
		if bc.HasLayer2 || bc.HasLayer3 {
			flag = 0
		}
		body.WriteByte(flag | 0x20 | (bc.Layer1Ident & 0x1F))
	}
	if bc.HasLayer2 {
		flag := byte(0x80)
		if bc.HasLayer3 {
			flag = 0
		}
		body.WriteByte(flag | 0x40 | (bc.Layer2Ident & 0x1F))
	}
	if bc.HasLayer3 {
		body.WriteByte(0x80 | 0x60 | (bc.Layer3Ident & 0x1F))
	}
	w.WriteLenPrefixed(body.Bytes())
}
