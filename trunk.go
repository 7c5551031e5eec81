package q931

import "github.com/sirupsen/logrus"

// ClockFunc is the host's monotonic millisecond clock (spec.md §6
// get_time_ms). A 64-bit clock is used throughout this package rather
// than the 32-bit one the source assumes, sidestepping the wrap-around
// concern spec.md §9 leaves as an open question.
type ClockFunc func() int64

// Trunk is the unit of configuration and runtime state for one ISDN
// span (spec.md §3 Trunk). It owns the call table, CRV allocator,
// scratch buffers and dispatch pointers; the host must serialise Rx23,
// Rx43 and Tick calls for a given trunk (spec.md §5), though distinct
// trunks run independently.
type Trunk struct {
	Config *Config

	dialect *Dialect

	calls *callTable

	channelBusy []bool

	clock ClockFunc

	txL2  Layer2Tx
	txL4  Layer4Tx
	onErr ErrorCallback

	log *logrus.Logger

	metrics *trunkMetrics

	// l3Buf is the scratch unpacking buffer mentioned in spec.md §3.
	// Rx23 does not use it: UnpackMessage allocates a fresh Message for
	// every frame.
	l3Buf []byte
}

// NewTrunk builds a trunk bound to dialect d and ready to run once its
// callbacks are attached (spec.md §3 Trunk lifecycle: "created at span
// configuration").
func NewTrunk(cfg *Config, dialect *Dialect, clock ClockFunc) *Trunk {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	t := &Trunk{
		Config:      cfg,
		dialect:     dialect,
		calls:       newCallTable(cfg.MaxCalls, cfg.maxCRV()),
		channelBusy: make([]bool, len(cfg.Channels)),
		clock:       clock,
		log:         newLogger(cfg.LogLevel),
		metrics:     newTrunkMetrics(),
	}
	return t
}

// SetLayer2Tx / SetLayer4Tx / SetErrorCallback / SetLogger attach the
// host-provided collaborators of spec.md §6. Trunk is otherwise unusable
// (any Tx32/Tx34 attempt with a nil callback reports ErrMissingCallback)
// until these are set, matching the teacher's builder-then-use pattern
// (client_option.go).
func (t *Trunk) SetLayer2Tx(fn Layer2Tx)         { t.txL2 = fn }
func (t *Trunk) SetLayer4Tx(fn Layer4Tx)         { t.txL4 = fn }
func (t *Trunk) SetErrorCallback(fn ErrorCallback) { t.onErr = fn }
func (t *Trunk) SetLogger(lg *logrus.Logger)     { t.log = lg }

func (t *Trunk) now() int64 {
	if t.clock != nil {
		return t.clock()
	}
	return 0
}

func (t *Trunk) logf(level LogLevel, format string, args ...interface{}) {
	if t.log == nil {
		return
	}
	t.log.WithField("trunk", t.Config.Dialect.String()).Logf(level.logrusLevel(), format, args...)
}

func (t *Trunk) reportError(err error) {
	qerr, ok := err.(*Error)
	if !ok {
		qerr = newError(ErrInternal, err.Error(), 0, 0)
	}
	t.metrics.observeError(qerr.Kind)
	t.logf(LogError, "error: %v", qerr)
	if t.onErr != nil {
		t.onErr(qerr)
	}
}

// Rx23 is the L2->L3 entry point (spec.md §4.7): the host calls it with
// a DL-DATA/DL-UNIT-DATA indication carrying the TEI and the raw frame
// with its datalink header already stripped.
func (t *Trunk) Rx23(primitive Primitive, tei byte, data []byte) {
	msg, err := UnpackMessage(t.dialect, data)
	if err != nil {
		t.handleUnpackFailure(err, data)
		return
	}
	msg.Header.TEI = tei
	t.process(msg, ToL4)
}

func (t *Trunk) handleUnpackFailure(err error, data []byte) {
	t.reportError(err)
	qerr, ok := err.(*Error)
	if !ok || len(data) < 2 {
		return
	}
	// Best-effort CRV recovery so a STATUS can still be sent in reply
	// even though the frame didn't fully decode (spec.md §7: "the
	// engine sends STATUS with an appropriate cause value and remains
	// in its current state").
	crvBytes, crvErr := NewCursor(data[1:]).ReadLenPrefixed()
	if crvErr != nil {
		return
	}
	crv, _, _, err2 := decodeCRV(crvBytes)
	if err2 != nil {
		return
	}
	if idx, findErr := t.calls.find(crv); findErr == nil {
		t.sendStatus(t.calls.get(idx), causeForError(qerr.Kind))
	}
}

// Rx43 is the L4->L3 entry point (spec.md §4.7): the host injects a
// message it built, dispatched the same way as an L2-originated one but
// tagged from=L4.
func (t *Trunk) Rx43(msg *Message) {
	t.process(msg, ToL2)
}

// Tx32 is the L3->L2 entry point (spec.md §4.7): packs msg, resolves the
// TEI from the call table, and invokes the host's L2 transmit callback.
// primitive distinguishes a unicast DL-DATA send (4-byte L2 header
// reserve by default) from a broadcast DL-UNIT-DATA send (3-byte).
func (t *Trunk) Tx32(msg *Message, primitive Primitive) error {
	if t.txL2 == nil {
		err := newError(ErrMissingCallback, "no L2 transmit callback", 0, 0)
		t.reportError(err)
		return err
	}
	data, err := PackMessage(t.dialect, msg)
	if err != nil {
		t.reportError(err)
		return err
	}
	tei := msg.Header.TEI
	if idx, findErr := t.calls.find(msg.Header.CRV); findErr == nil {
		tei = t.calls.get(idx).TEI
	}
	t.metrics.observeTx(msg.Header.MessageType)
	return t.txL2(primitive, tei, data)
}

// Tx34 delivers an event to the host application (spec.md §4.7).
func (t *Trunk) Tx34(event *BridgeEvent) error {
	if t.txL4 == nil {
		err := newError(ErrMissingCallback, "no L4 transmit callback", 0, 0)
		t.reportError(err)
		return err
	}
	t.metrics.observeEvent(event.Kind)
	return t.txL4(event)
}

// sendStatus emits STATUS carrying cause and the call's current state,
// used both by the unexpected-message path and by unpack-failure
// recovery (spec.md §4.5, §7).
func (t *Trunk) sendStatus(call *Call, cause Cause) {
	msg := &Message{Header: Header{
		ProtocolDiscriminator: PDCallControl,
		CRV:                   call.CRV,
		FromTerminator:        t.Config.Role == RoleNT,
		MessageType:           MsgStatus,
	}}
	msg.Insert(IECause, &CauseIE{Value: cause})
	msg.Insert(IECallState, &CallStateIE{Value: byte(call.State % 100)})
	t.Tx32(msg, DLData)
}
