package q931

// Generic per-message handlers. Each is written once for both roles
// rather than duplicated per TE/NT the way the C original does. A
// handler branches on the message's direction, not on t.Config.Role:
// a message sent by the host (ToL2) and one received from Layer 2
// (ToL4) each take one fixed set of state transitions whichever role
// the trunk plays. Inside this file the role only sets the CRV
// direction flag of messages the engine builds itself; the auto-acks
// follow the Config flags. Role-dependent steps elsewhere: pickChannel
// rejects a BRI "any" request on an NT trunk, and handleGlobalRestart
// always answers RESTART on an NT trunk.

func handleSetup(t *Trunk, call *Call, msg *Message, dir Direction) error {
	if dir == ToL2 {
		// Outgoing call (spec.md §8 scenario 1): U0 -> U1, arm T303,
		// send SETUP.
		call.State = StateU1
		t.StartTimer(call, T303)
		return t.Tx32(msg, DLData)
	}

	// Incoming call (spec.md §8 scenario 2 / §4.8).
	ci, _ := msg.ChannelIdentification()
	bchan, err := t.pickChannel(ci)
	if err != nil {
		t.sendStatus(call, CauseChannelUnacceptable)
		return err
	}
	call.BChan = bchan

	calledNum, hasCalled := msg.CalledNumber()
	callingNum, _ := msg.CallingNumber()

	event := &BridgeEvent{Kind: EventStart, CRV: call.CRV, BChan: bchan}
	if callingNum != nil {
		event.CallingNumber = callingNum.Digits
	}

	if !hasCalled || calledNum.Digits == "" {
		t.startOverlapDial(call)
		ack := &Message{Header: Header{
			ProtocolDiscriminator: PDCallControl,
			CRV:                   call.CRV,
			FromTerminator:        true,
			MessageType:           MsgSetupAck,
		}}
		ack.Insert(IEProgressIndicator, &ProgressIndicator{Description: 8})
		if err := t.Tx32(ack, DLData); err != nil {
			return err
		}
	} else {
		event.CalledNumber = calledNum.Digits
		call.State = StateN6
	}

	if err := t.Tx34(event); err != nil {
		return err
	}

	if t.Config.AutoSetupAck && hasCalled {
		ack := &Message{Header: Header{
			ProtocolDiscriminator: PDCallControl,
			CRV:                   call.CRV,
			FromTerminator:        true,
			MessageType:           MsgSetupAck,
		}}
		return t.Tx32(ack, DLData)
	}
	return nil
}

func handleSetupAck(t *Trunk, call *Call, msg *Message, dir Direction) error {
	if dir == ToL2 {
		return t.Tx32(msg, DLData)
	}
	call.State = StateU2
	t.StopTimer(call, T303)
	t.StartTimer(call, T304)
	return t.Tx34(&BridgeEvent{Kind: EventProgress, CRV: call.CRV, BChan: call.BChan})
}

func handleCallProceeding(t *Trunk, call *Call, msg *Message, dir Direction) error {
	if dir == ToL2 {
		call.State = StateN9
		return t.Tx32(msg, DLData)
	}
	call.State = StateU3
	t.StopTimer(call, T303)
	t.StopTimer(call, T304)
	return t.Tx34(&BridgeEvent{Kind: EventProgress, CRV: call.CRV, BChan: call.BChan})
}

func handleAlerting(t *Trunk, call *Call, msg *Message, dir Direction) error {
	if dir == ToL2 {
		return t.Tx32(msg, DLData)
	}
	call.State = StateU4
	t.StopTimer(call, T303)
	return t.Tx34(&BridgeEvent{Kind: EventProgressMedia, CRV: call.CRV, BChan: call.BChan})
}

func handleProgress(t *Trunk, call *Call, msg *Message, dir Direction) error {
	if dir == ToL2 {
		return t.Tx32(msg, DLData)
	}
	return t.Tx34(&BridgeEvent{Kind: EventProgressMedia, CRV: call.CRV, BChan: call.BChan})
}

func handleConnect(t *Trunk, call *Call, msg *Message, dir Direction) error {
	if dir == ToL2 {
		call.State = StateN10
		return t.Tx32(msg, DLData)
	}
	call.State = StateU10
	t.StopTimer(call, T303)
	t.StopTimer(call, T304)
	if err := t.Tx34(&BridgeEvent{Kind: EventUp, CRV: call.CRV, BChan: call.BChan}); err != nil {
		return err
	}
	if t.Config.AutoConnectAck {
		ack := &Message{Header: Header{
			ProtocolDiscriminator: PDCallControl,
			CRV:                   call.CRV,
			FromTerminator:        t.Config.Role == RoleNT,
			MessageType:           MsgConnectAck,
		}}
		return t.Tx32(ack, DLData)
	}
	return nil
}

func handleConnectAck(t *Trunk, call *Call, msg *Message, dir Direction) error {
	if dir == ToL2 {
		return t.Tx32(msg, DLData)
	}
	call.State = StateU10
	return nil
}

func handleDisconnect(t *Trunk, call *Call, msg *Message, dir Direction) error {
	cause := CauseNormalClearing
	if ci, ok := msg.Cause(); ok {
		cause = ci.Value
	}
	if dir == ToL2 {
		call.State = StateN11
		t.StartTimer(call, T305)
		return t.Tx32(msg, DLData)
	}

	// spec.md §8 scenario 3: DISCONNECT while alerting (or any active
	// state) -> forward "terminating", reply RELEASE, arm T308.
	call.State = StateU12
	if err := t.Tx34(&BridgeEvent{Kind: EventTerminating, CRV: call.CRV, BChan: call.BChan, Cause: cause}); err != nil {
		return err
	}
	rel := &Message{Header: Header{
		ProtocolDiscriminator: PDCallControl,
		CRV:                   call.CRV,
		FromTerminator:        t.Config.Role == RoleNT,
		MessageType:           MsgRelease,
	}}
	t.StartTimer(call, T308)
	return t.Tx32(rel, DLData)
}

func handleRelease(t *Trunk, call *Call, msg *Message, dir Direction) error {
	if dir == ToL2 {
		t.StartTimer(call, T308)
		return t.Tx32(msg, DLData)
	}
	t.StopTimer(call, T305)
	t.StopTimer(call, T308)
	bchan := call.BChan
	t.freeChannel(bchan)
	rc := &Message{Header: Header{
		ProtocolDiscriminator: PDCallControl,
		CRV:                   call.CRV,
		FromTerminator:        t.Config.Role == RoleNT,
		MessageType:           MsgReleaseComplete,
	}}
	if err := t.Tx32(rc, DLData); err != nil {
		return err
	}
	if err := t.Tx34(&BridgeEvent{Kind: EventStop, CRV: call.CRV, BChan: bchan}); err != nil {
		return err
	}
	t.metrics.observeCallReleased()
	t.calls.release(call.CRV)
	return nil
}

func handleReleaseComplete(t *Trunk, call *Call, msg *Message, dir Direction) error {
	if dir == ToL2 {
		return t.Tx32(msg, DLData)
	}
	t.StopTimer(call, T305)
	t.StopTimer(call, T308)
	bchan := call.BChan
	t.freeChannel(bchan)
	if err := t.Tx34(&BridgeEvent{Kind: EventStop, CRV: call.CRV, BChan: bchan}); err != nil {
		return err
	}
	t.metrics.observeCallReleased()
	t.calls.release(call.CRV)
	return nil
}

func handleRestartAck(t *Trunk, call *Call, msg *Message, dir Direction) error {
	if dir == ToL2 {
		return t.Tx32(msg, DLData)
	}
	return nil
}

func handleStatus(t *Trunk, call *Call, msg *Message, dir Direction) error {
	if dir == ToL2 {
		return t.Tx32(msg, DLData)
	}
	// A STATUS reporting a call state inconsistent with ours is logged
	// via the callstate error kind but does not itself force a
	// transition (spec.md §7: callstate is a state error, not
	// necessarily fatal).
	if csIE, ok := msg.Get(IECallState); ok {
		cs := csIE.(*CallStateIE)
		if CallState(cs.Value) != call.State%100 {
			t.reportError(newError(ErrCallState, "STATUS reports divergent call state", int(cs.Value), int(call.State)))
		}
	}
	return nil
}

func handleStatusEnquiry(t *Trunk, call *Call, msg *Message, dir Direction) error {
	if dir == ToL2 {
		return t.Tx32(msg, DLData)
	}
	return t.sendStatusEnquiryReply(call)
}

func (t *Trunk) sendStatusEnquiryReply(call *Call) error {
	reply := &Message{Header: Header{
		ProtocolDiscriminator: PDCallControl,
		CRV:                   call.CRV,
		FromTerminator:        t.Config.Role == RoleNT,
		MessageType:           MsgStatus,
	}}
	reply.Insert(IECause, &CauseIE{Value: CauseNormalUnspecified})
	reply.Insert(IECallState, &CallStateIE{Value: byte(call.State % 100)})
	return t.Tx32(reply, DLData)
}

func handleInformation(t *Trunk, call *Call, msg *Message, dir Direction) error {
	if dir == ToL2 {
		return t.Tx32(msg, DLData)
	}
	if call.State != StateN25 {
		// Not in overlap-receiving state: forward digits without
		// accumulating (mid-call DTMF/keypad use).
		return t.Tx34(&BridgeEvent{Kind: EventProgress, CRV: call.CRV, BChan: call.BChan})
	}
	num, _ := msg.CalledNumber()
	digits := ""
	if num != nil {
		digits = num.Digits
	}
	done := t.appendOverlapDigits(call, digits, msg.SendingComplete())
	if done {
		t.StopTimer(call, TDigit)
		call.State = StateN6
		return t.Tx34(&BridgeEvent{Kind: EventStart, CRV: call.CRV, BChan: call.BChan, CalledNumber: call.overlapDigits})
	}
	return nil
}

func handleNotify(t *Trunk, call *Call, msg *Message, dir Direction) error {
	if dir == ToL2 {
		return t.Tx32(msg, DLData)
	}
	return t.Tx34(&BridgeEvent{Kind: EventProgress, CRV: call.CRV, BChan: call.BChan})
}

// handleService / handleServiceAck implement the maintenance PD branch
// of spec.md §4.8's service-state handling (in-service/out-of-service).
func handleService(t *Trunk, call *Call, msg *Message, dir Direction) error {
	if dir == ToL2 {
		return t.Tx32(msg, DLData)
	}
	cs, ok := msg.ChangeStatus()
	kind := EventServiceSuspended
	if ok && cs.NewStatus == 0 {
		kind = EventServiceResumed
	}
	if err := t.Tx34(&BridgeEvent{Kind: kind, CRV: 0, BChan: call.BChan}); err != nil {
		return err
	}
	if t.Config.AutoServiceAck {
		ack := &Message{Header: Header{
			ProtocolDiscriminator: PDMaintenance,
			CRV:                   msg.Header.CRV,
			FromTerminator:        t.Config.Role == RoleNT,
			MessageType:           MsgServiceAck,
		}}
		if ok {
			ack.Insert(IEChangeStatus, cs)
		}
		return t.Tx32(ack, DLData)
	}
	return nil
}

func handleServiceAck(t *Trunk, call *Call, msg *Message, dir Direction) error {
	if dir == ToL2 {
		return t.Tx32(msg, DLData)
	}
	return nil
}

// passthroughHandler forwards a message between L2 and L4 unchanged,
// without asserting a state transition. Used for the Q.932 skeleton
// messages (FACILITY/HOLD/RETRIEVE family) and SUSPEND/RESUME (spec.md
// §1 in-scope skeletons). Every one of these is still checked against
// the legality table before this handler ever runs (spec.md §9 open
// question (b): "the target implementation SHOULD consult the legality
// table for every incoming message regardless of current handler
// content").
func passthroughHandler(t *Trunk, call *Call, msg *Message, dir Direction) error {
	if dir == ToL2 {
		return t.Tx32(msg, DLData)
	}
	return t.Tx34(&BridgeEvent{Kind: EventProgress, CRV: call.CRV, BChan: call.BChan})
}
