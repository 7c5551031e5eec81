package q931

// BridgeEventKind is the small generic telephony vocabulary the
// signalling bridge translates Q.931 state changes into (spec.md §4.8,
// §2 component C8).
type BridgeEventKind int

const (
	EventStart         BridgeEventKind = iota // inbound SETUP accepted, channel picked
	EventProgress                             // CALL_PROCEEDING
	EventProgressMedia                        // ALERTING / PROGRESS
	EventUp                                   // CONNECT
	EventTerminating                          // DISCONNECT
	EventStop                                 // RELEASE / RELEASE_COMPLETE
	EventRestart                              // RESTART, per affected channel
	EventServiceSuspended
	EventServiceResumed
)

func (k BridgeEventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventProgress:
		return "progress"
	case EventProgressMedia:
		return "progress-media"
	case EventUp:
		return "up"
	case EventTerminating:
		return "terminating"
	case EventStop:
		return "stop"
	case EventRestart:
		return "restart"
	case EventServiceSuspended:
		return "service-suspended"
	case EventServiceResumed:
		return "service-resumed"
	default:
		return "unknown-event"
	}
}

// BridgeEvent is what Tx34 hands the host application (spec.md §6
// tx_l4). It carries just enough context for a generic telephony layer
// to act without knowing Q.931 internals.
type BridgeEvent struct {
	Kind  BridgeEventKind
	CRV   uint16
	BChan byte

	CallingNumber string
	CalledNumber  string
	Cause         Cause
}

// pickChannel implements the NT-side channel hunt of spec.md §4.8: an
// exclusive request is honoured as given, "any" hunts for the first free
// B-channel, and a TE peer requesting "any" on the NT side (which MUST
// mark channel selection exclusive per spec.md §4.1) is rejected with
// cause 6.
func (t *Trunk) pickChannel(ci *ChannelIdentification) (byte, error) {
	if ci == nil {
		return t.huntFreeChannel()
	}
	if ci.IsPRI {
		if ci.Exclusive {
			if !t.channelInUse(ci.ChannelNumber) {
				t.markChannelInUse(ci.ChannelNumber, true)
				return ci.ChannelNumber, nil
			}
			return unassignedChannel, newError(ErrInternal, "requested channel busy", int(ci.ChannelNumber), 0)
		}
		return t.huntFreeChannel()
	}
	switch ci.Selection {
	case ChannelSelectB1, ChannelSelectB2:
		ch := byte(1)
		if ci.Selection == ChannelSelectB2 {
			ch = 2
		}
		t.markChannelInUse(ch, true)
		return ch, nil
	case ChannelSelectAny:
		if t.Config.Role == RoleNT {
			return unassignedChannel, newError(ErrInternal, "peer must not request any on NT exclusive interface", 0, 0)
		}
		return t.huntFreeChannel()
	default:
		return unassignedChannel, newError(ErrInternal, "unsupported channel selection", int(ci.Selection), 0)
	}
}

func (t *Trunk) huntFreeChannel() (byte, error) {
	for i, ct := range t.Config.Channels {
		if ct == ChannelB && !t.channelBusy[i] {
			t.channelBusy[i] = true
			return byte(i), nil
		}
	}
	return unassignedChannel, newError(ErrInternal, "no free B-channel", 0, 0)
}

func (t *Trunk) channelInUse(ch byte) bool {
	if int(ch) >= len(t.channelBusy) {
		return false
	}
	return t.channelBusy[ch]
}

func (t *Trunk) markChannelInUse(ch byte, inUse bool) {
	if int(ch) < len(t.channelBusy) {
		t.channelBusy[ch] = inUse
	}
}

func (t *Trunk) freeChannel(ch byte) {
	if ch != unassignedChannel {
		t.markChannelInUse(ch, false)
	}
}

// startOverlapDial arms the digit-collection timer and resets a call's
// accumulator, entering the NT overlap-receiving state (spec.md §4.8
// scenario 5).
func (t *Trunk) startOverlapDial(call *Call) {
	call.overlapDigits = ""
	call.State = StateN25
	t.StartTimer(call, TDigit)
}

// appendOverlapDigits extends a call's accumulated dial string from an
// INFORMATION message's Called-Number IE, restarting the digit timer
// each time (spec.md §4.8).
func (t *Trunk) appendOverlapDigits(call *Call, digits string, sendingComplete bool) (done bool) {
	call.overlapDigits += digits
	if sendingComplete || (len(digits) > 0 && digits[len(digits)-1] == '#') {
		return true
	}
	t.StartTimer(call, TDigit)
	return false
}
