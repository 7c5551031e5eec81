package q931

// UnpackMessage parses a single Q.931/Q.932 message (header already
// stripped of its Layer-2 framing) using the dialect's IE tables and
// per-message IE whitelist (spec.md §4.2). It tolerates optional IEs,
// rejects IEs not whitelisted for this message type, and stops on the
// first unrecognised IE in the base codeset, per spec.md §7's
// propagation policy.
func UnpackMessage(d *Dialect, data []byte) (*Message, error) {
	c := NewCursor(data)

	pdByte, err := c.ReadByte()
	if err != nil {
		return nil, newError(ErrIllegalMessage, "missing protocol discriminator", 0, 0)
	}
	pd := ProtocolDiscriminator(pdByte)

	crvBytes, err := c.ReadLenPrefixed()
	if err != nil {
		return nil, newError(ErrIllegalMessage, "missing CRV", 0, 0)
	}
	crv, fromTerminator, long, err := decodeCRV(crvBytes)
	if err != nil {
		return nil, err
	}

	mtByte, err := c.ReadByte()
	if err != nil {
		return nil, newError(ErrIllegalMessage, "missing message type", 0, 0)
	}
	mt := MessageType(mtByte)

	msg := &Message{Header: Header{
		ProtocolDiscriminator: pd,
		CRV:                   crv,
		FromTerminator:        fromTerminator,
		LongCRV:               long,
		MessageType:           mt,
	}}

	_, order, known := d.handlerFor(pd, mt)
	if !known {
		return nil, newError(ErrUnknownMessage, mt.String(), int(mt), 0)
	}
	allowed := make(map[IEID]bool, len(order))
	for _, id := range order {
		allowed[id] = true
	}

	cs := newCodesetCursor()
	for c.Remain() > 0 {
		b, err := c.PeekByte()
		if err != nil {
			break
		}
		if b&0x80 != 0 {
			// single-octet IE
			c.ReadByte()
			id := IEID(b & 0xF0)
			switch {
			case id == IEShift:
				shift := unpackShift(b)
				if !allowed[IEShift] {
					return nil, newError(ErrIllegalIE, "Shift", int(IEShift), int(mt))
				}
				msg.Insert(IEShift, shift)
				cs.applyShift(shift)
				continue // a shift does not end its own non-locking scope
			case b == byte(IESendingComplete):
				if !allowed[IESendingComplete] {
					return nil, newError(ErrIllegalIE, "SendingComplete", int(IESendingComplete), int(mt))
				}
				msg.Insert(IESendingComplete, &SendingComplete{})
			case id == IERepeatIndicator:
				if !allowed[IERepeatIndicator] {
					return nil, newError(ErrIllegalIE, "RepeatIndicator", int(IERepeatIndicator), int(mt))
				}
				msg.Insert(IERepeatIndicator, unpackRepeatIndicator(b))
			default:
				if cs.current == 0 {
					return nil, newError(ErrUnknownIE, "single-octet", int(b), int(mt))
				}
				// non-base codeset: capture raw, cannot decode further.
				msg.Insert(IEID(b), b)
			}
			cs.advance()
			continue
		}

		id := IEID(b)
		if cs.current != 0 {
			// Escaped codeset we don't model: consume the length-
			// prefixed body without interpreting it, per spec.md
			// §4.1's codeset-shift cursor design.
			c.ReadByte()
			raw, err := c.ReadLenPrefixed()
			if err != nil {
				return nil, err
			}
			msg.Insert(id, raw)
			cs.advance()
			continue
		}

		if !allowed[id] {
			return nil, newError(ErrIllegalIE, id.String(), int(id), int(mt))
		}
		up, ok := d.unpackIEFunc(id)
		if !ok {
			return nil, newError(ErrUnknownIE, id.String(), int(id), int(mt))
		}
		c.ReadByte()
		value, err := up(c)
		if err != nil {
			return nil, err
		}
		msg.Insert(id, value)
		cs.advance()
	}

	msg.Header.Size = c.Pos()
	return msg, nil
}

// PackMessage serialises msg into wire bytes using the dialect's
// registered IE order for its message type, emitting IEs in the fixed
// order Q.931 mandates (spec.md §4.2).
func PackMessage(d *Dialect, msg *Message) ([]byte, error) {
	_, order, known := d.handlerFor(msg.Header.ProtocolDiscriminator, msg.Header.MessageType)
	if !known {
		return nil, newError(ErrUnknownMessage, msg.Header.MessageType.String(), int(msg.Header.MessageType), 0)
	}

	w := NewWriter()
	w.WriteByte(byte(msg.Header.ProtocolDiscriminator))
	w.WriteBytes(encodeCRV(msg.Header.CRV, msg.Header.FromTerminator))
	w.WriteByte(byte(msg.Header.MessageType))

	for _, id := range order {
		value, ok := msg.Get(id)
		if !ok {
			continue
		}
		switch id {
		case IEShift:
			w.WriteByte(packShift(value.(*Shift)))
		case IESendingComplete:
			w.WriteByte(byte(IESendingComplete))
		case IERepeatIndicator:
			w.WriteByte(packRepeatIndicator(value.(*RepeatIndicator)))
		default:
			pk, ok := d.packIEFunc(id)
			if !ok {
				return nil, newError(ErrUnknownIE, id.String(), int(id), int(msg.Header.MessageType))
			}
			w.WriteByte(byte(id))
			pk(value, w)
		}
	}
	return w.Bytes(), nil
}

// decodeCRV interprets the CRV payload octets: bit 8 of the first octet
// is always the direction flag; the remaining bits of one or two octets
// form the value. Payloads longer than two octets are parsed (using the
// first two) but never honoured further, per spec.md §9 open question
// (c).
func decodeCRV(b []byte) (value uint16, fromTerminator bool, long bool, err error) {
	if len(b) == 0 {
		return 0, false, false, newError(ErrIllegalMessage, "empty CRV", 0, 0)
	}
	fromTerminator = b[0]&0x80 != 0
	switch {
	case len(b) == 1:
		value = uint16(b[0] & 0x7F)
	case len(b) >= 2:
		value = uint16(b[0]&0x7F)<<8 | uint16(b[1])
		long = len(b) > 2
	}
	return value, fromTerminator, long, nil
}

func encodeCRV(value uint16, fromTerminator bool) []byte {
	flag := byte(0)
	if fromTerminator {
		flag = 0x80
	}
	if value > 0x7F {
		return []byte{2, flag | byte(value>>8), byte(value)}
	}
	return []byte{1, flag | byte(value)}
}
