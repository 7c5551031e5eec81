package q931

// Header is the fixed portion of every Q.931/Q.932 message: protocol
// discriminator, CRV (with its direction flag), message type, plus the
// TEI captured from Layer 2 for point-to-multipoint BRI (spec.md §3
// Generic message).
type Header struct {
	ProtocolDiscriminator ProtocolDiscriminator
	CRV                   uint16
	FromTerminator        bool // the CRV direction flag
	LongCRV               bool // true if CRV was encoded in >2 octets (decode-only, spec.md §9 open question c)
	MessageType           MessageType
	TEI                   byte
	Size                  int
}

// IEInstance is one decoded information element: its identifier plus the
// typed struct produced by the matching unpack function (spec.md §9
// design note: "an ordered vector of IE::Variant(...) with helpers
// first<T>()/insert(T)" in place of the source's buffer-offset
// indirection).
type IEInstance struct {
	ID    IEID
	Value interface{}
}

// Message is the in-memory representation of any Q.931/Q.932 message: a
// Header plus its ordered, sparse set of IEs (spec.md §3 Generic
// message). A fixed struct represents every message variant; per-message
// pack/unpack only differ in which IEs are legal and in what order they
// are emitted (spec.md §4.2).
type Message struct {
	Header Header
	IEs    []IEInstance
}

// Insert appends (or, if present, replaces) the IE of the given id.
func (m *Message) Insert(id IEID, value interface{}) {
	for i := range m.IEs {
		if m.IEs[i].ID == id {
			m.IEs[i].Value = value
			return
		}
	}
	m.IEs = append(m.IEs, IEInstance{ID: id, Value: value})
}

// Get returns the decoded value for id and whether it was present.
func (m *Message) Get(id IEID) (interface{}, bool) {
	for _, ie := range m.IEs {
		if ie.ID == id {
			return ie.Value, true
		}
	}
	return nil, false
}

// Has reports whether the IE is present, without allocating a type
// assertion at the call site.
func (m *Message) Has(id IEID) bool {
	_, ok := m.Get(id)
	return ok
}

// Typed accessors. Each is a thin, panic-free cast over Get; they return
// (nil, false) rather than panicking on a type mismatch so a malformed
// capture never crashes the engine.

func (m *Message) BearerCapability() (*BearerCapability, bool) {
	v, ok := m.Get(IEBearerCapability)
	if !ok {
		return nil, false
	}
	bc, ok := v.(*BearerCapability)
	return bc, ok
}

func (m *Message) Cause() (*CauseIE, bool) {
	v, ok := m.Get(IECause)
	if !ok {
		return nil, false
	}
	c, ok := v.(*CauseIE)
	return c, ok
}

func (m *Message) ChannelIdentification() (*ChannelIdentification, bool) {
	v, ok := m.Get(IEChannelIdentification)
	if !ok {
		return nil, false
	}
	c, ok := v.(*ChannelIdentification)
	return c, ok
}

func (m *Message) CalledNumber() (*Number, bool) {
	v, ok := m.Get(IECalledPartyNumber)
	if !ok {
		return nil, false
	}
	n, ok := v.(*Number)
	return n, ok
}

func (m *Message) CallingNumber() (*Number, bool) {
	v, ok := m.Get(IECallingPartyNumber)
	if !ok {
		return nil, false
	}
	n, ok := v.(*Number)
	return n, ok
}

func (m *Message) ProgressIndicator() (*ProgressIndicator, bool) {
	v, ok := m.Get(IEProgressIndicator)
	if !ok {
		return nil, false
	}
	p, ok := v.(*ProgressIndicator)
	return p, ok
}

func (m *Message) RestartIndicator() (*RestartIndicator, bool) {
	v, ok := m.Get(IERestartIndicator)
	if !ok {
		return nil, false
	}
	r, ok := v.(*RestartIndicator)
	return r, ok
}

func (m *Message) ChangeStatus() (*ChangeStatus, bool) {
	v, ok := m.Get(IEChangeStatus)
	if !ok {
		return nil, false
	}
	cs, ok := v.(*ChangeStatus)
	return cs, ok
}

func (m *Message) SendingComplete() bool {
	return m.Has(IESendingComplete)
}
