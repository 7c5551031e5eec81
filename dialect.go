package q931

import "time"

// IEUnpackFunc decodes one information element's body (the cursor is
// already positioned just past the identifier octet) into its typed
// struct form (spec.md §4.1 unpack operation).
type IEUnpackFunc func(c *Cursor) (interface{}, error)

// IEPackFunc appends one information element's wire form, including its
// identifier/length framing, to w (spec.md §4.1 pack operation).
type IEPackFunc func(value interface{}, w *Writer)

// MessageHandler is a per-message-type processing handler invoked by the
// state engine once a message has been unpacked and its call located
// (spec.md §4.5).
type MessageHandler func(t *Trunk, call *Call, msg *Message, from Direction) error

// TimeoutHandler runs when a call's active timer expires (spec.md §4.4).
type TimeoutHandler func(t *Trunk, call *Call) error

// msgKey disambiguates message types that share a numeric code across
// protocol discriminators, generalising the AT&T 5ESS overload point of
// spec.md §4.2 (message types 0x07/0x0F mean CONNECT/CONNECT_ACK under
// the call-control PD and SERVICE_ACK/SERVICE under the maintenance PD)
// into the core dispatch key every dialect uses, since the collision is
// inherent to the two PDs sharing one numbering space rather than a
// 5ESS-only quirk.
type msgKey struct {
	pd ProtocolDiscriminator
	mt MessageType
}

// Dialect holds the four parallel dispatch tables of spec.md §4.6:
// proc[message], unpack_ie[id]/pack_ie[id], and timeout[timer]/
// timer_default[timer], plus the per-message IE order table that drives
// both the whitelist check and pack ordering of spec.md §4.2. newDialect
// starts every table empty; looking up an entry that was never
// registered yields an unknown-message, unknown-IE or missing-callback
// error, so an uninitialised dialect fails loudly rather than silently
// no-op'ing (spec.md §4.6).
type Dialect struct {
	ID DialectID

	proc    map[msgKey]MessageHandler
	ieOrder map[msgKey][]IEID // whitelist AND pack order, spec.md §4.2

	unpackIE map[IEID]IEUnpackFunc
	packIE   map[IEID]IEPackFunc

	timeout      map[TimerID]TimeoutHandler
	timerDefault map[TimerID]time.Duration

	// legal is the (state, message, direction) state-table of spec.md
	// §3/§8: "State-table completeness" requires at least one legal
	// message per (dialect, state) pair.
	legal map[legalKey]bool
}

type legalKey struct {
	state CallState
	mt    MessageType
	dir   Direction
}

func newDialect(id DialectID) *Dialect {
	return &Dialect{
		ID:           id,
		proc:         make(map[msgKey]MessageHandler),
		ieOrder:      make(map[msgKey][]IEID),
		unpackIE:     make(map[IEID]IEUnpackFunc),
		packIE:       make(map[IEID]IEPackFunc),
		timeout:      make(map[TimerID]TimeoutHandler),
		timerDefault: make(map[TimerID]time.Duration),
		legal:        make(map[legalKey]bool),
	}
}

// RegisterLegal marks (state, mt, dir) as a legal combination per the
// state-table of spec.md §3/§4.5.
func (d *Dialect) RegisterLegal(state CallState, mt MessageType, dir Direction) {
	d.legal[legalKey{state, mt, dir}] = true
}

// IsLegal reports whether mt is legal in state for the given direction.
// RESTART and RESTART_ACK are global procedures valid in every state
// (spec.md §4.5 "RESTART handling is global").
func (d *Dialect) IsLegal(state CallState, mt MessageType, dir Direction) bool {
	if mt == MsgRestart || mt == MsgRestartAck {
		return true
	}
	return d.legal[legalKey{state, mt, dir}]
}

// RegisterIE wires an IE codec pair into the dialect's IE tables. Called
// by dialect Init routines (spec.md §4.6); an unregistered IE id has no
// table entry and is rejected with an unknown-IE error.
func (d *Dialect) RegisterIE(id IEID, up IEUnpackFunc, pk IEPackFunc) {
	d.unpackIE[id] = up
	d.packIE[id] = pk
}

// RegisterMessage wires a message's handler and its mandatory/optional
// IE order (which doubles as its legality whitelist, spec.md §4.2) for a
// given protocol discriminator.
func (d *Dialect) RegisterMessage(pd ProtocolDiscriminator, mt MessageType, order []IEID, handler MessageHandler) {
	k := msgKey{pd, mt}
	d.ieOrder[k] = order
	d.proc[k] = handler
}

// RegisterTimer sets a timer's default duration and expiry handler.
func (d *Dialect) RegisterTimer(id TimerID, def time.Duration, handler TimeoutHandler) {
	d.timerDefault[id] = def
	d.timeout[id] = handler
}

// OverrideTimerDefault changes only a timer's default duration, leaving
// its expiry handler untouched. Used by dialect overlays that want a
// shorter/longer default without re-specifying the generic dialect's
// handler (spec.md §4.6).
func (d *Dialect) OverrideTimerDefault(id TimerID, def time.Duration) {
	d.timerDefault[id] = def
}

func (d *Dialect) unpackIEFunc(id IEID) (IEUnpackFunc, bool) {
	f, ok := d.unpackIE[id]
	return f, ok
}

func (d *Dialect) packIEFunc(id IEID) (IEPackFunc, bool) {
	f, ok := d.packIE[id]
	return f, ok
}

func (d *Dialect) handlerFor(pd ProtocolDiscriminator, mt MessageType) (MessageHandler, []IEID, bool) {
	k := msgKey{pd, mt}
	h, ok := d.proc[k]
	if !ok {
		return nil, nil, false
	}
	return h, d.ieOrder[k], true
}

func (d *Dialect) timerDefaultFor(id TimerID) time.Duration {
	if dur, ok := d.timerDefault[id]; ok {
		return dur
	}
	return 0
}

func (d *Dialect) timeoutHandlerFor(id TimerID) (TimeoutHandler, bool) {
	h, ok := d.timeout[id]
	return h, ok
}

// LegalCount reports how many (state, message, direction) triples the
// dialect's state-table has registered, used by q931ctl's dialects
// subcommand to show state-table coverage.
func (d *Dialect) LegalCount() int { return len(d.legal) }

// MessageCount reports how many (protocol discriminator, message type)
// pairs the dialect has a handler for.
func (d *Dialect) MessageCount() int { return len(d.proc) }

// IECount reports how many IE identifiers the dialect can decode.
func (d *Dialect) IECount() int { return len(d.unpackIE) }

// HandlerFor exposes handlerFor to dialect overlays outside this
// package that need to re-register a message with a modified IE order
// but the same handler (spec.md §4.6).
func (d *Dialect) HandlerFor(pd ProtocolDiscriminator, mt MessageType) (MessageHandler, []IEID, bool) {
	return d.handlerFor(pd, mt)
}

// Clone returns a shallow copy of d with its own dispatch tables, so a
// dialect overlay (see package dialects) can start from the generic
// table and add or override entries without mutating the original.
func (d *Dialect) Clone(id DialectID) *Dialect {
	nd := newDialect(id)
	for k, v := range d.proc {
		nd.proc[k] = v
	}
	for k, v := range d.ieOrder {
		cp := make([]IEID, len(v))
		copy(cp, v)
		nd.ieOrder[k] = cp
	}
	for k, v := range d.unpackIE {
		nd.unpackIE[k] = v
	}
	for k, v := range d.packIE {
		nd.packIE[k] = v
	}
	for k, v := range d.timeout {
		nd.timeout[k] = v
	}
	for k, v := range d.timerDefault {
		nd.timerDefault[k] = v
	}
	for k, v := range d.legal {
		nd.legal[k] = v
	}
	return nd
}

// GenericDigitsCodec exposes the National-ISDN Generic Digits IE codec
// pair so dialect overlays outside this package can register it without
// reaching into unexported helpers (spec.md §4.1 dialect extension).
func GenericDigitsCodec() (IEUnpackFunc, IEPackFunc) {
	return func(c *Cursor) (interface{}, error) { return unpackGenericDigits(c) },
		func(v interface{}, w *Writer) { packGenericDigits(v.(*GenericDigits), w) }
}
