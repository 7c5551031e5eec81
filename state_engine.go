package q931

// process is the shared core of Rx23 (from=L2, dir=ToL4) and Rx43
// (from=L4, dir=ToL2): locate or create the call, check legality,
// dispatch to the dialect's handler (spec.md §4.5).
func (t *Trunk) process(msg *Message, dir Direction) {
	mt := msg.Header.MessageType
	pd := msg.Header.ProtocolDiscriminator

	if mt == MsgRestart {
		t.handleGlobalRestart(msg, dir)
		return
	}

	call, err := t.locateCall(msg, dir)
	if err != nil {
		t.reportError(err)
		if qerr, ok := err.(*Error); ok && qerr.Kind == ErrUnexpectedMessage {
			// spec.md §8 scenario 4: SETUP on an already-known CRV.
			if idx, findErr := t.calls.find(msg.Header.CRV); findErr == nil {
				t.disconnect(t.calls.get(idx), CauseInvalidCallReference)
			}
		}
		return
	}

	if !t.dialect.IsLegal(call.State, mt, dir) {
		uerr := newError(ErrUnexpectedMessage, mt.String(), int(mt), int(call.State))
		t.reportError(uerr)
		t.sendStatus(call, CauseMessageNotCompatibleWithState)
		return
	}

	handler, _, known := t.dialect.handlerFor(pd, mt)
	if !known {
		t.reportError(newError(ErrUnknownMessage, mt.String(), int(mt), 0))
		return
	}
	if err := handler(t, call, msg, dir); err != nil {
		t.reportError(err)
	}
}

// locateCall implements spec.md §4.5 step 1: create a call for an
// incoming SETUP, reject SETUP re-use of a live CRV, allocate a fresh
// CRV for an outgoing SETUP with no CRV assigned yet, or otherwise find
// the existing call.
func (t *Trunk) locateCall(msg *Message, dir Direction) (*Call, error) {
	mt := msg.Header.MessageType

	if mt == MsgSetup {
		if dir == ToL4 {
			if _, err := t.calls.find(msg.Header.CRV); err == nil {
				return nil, newError(ErrUnexpectedMessage, "SETUP on known CRV", int(msg.Header.CRV), 0)
			}
			idx, err := t.calls.allocate(msg.Header.CRV)
			if err != nil {
				return nil, err
			}
			call := t.calls.get(idx)
			call.TEI = msg.Header.TEI
			t.metrics.observeCallCreated()
			return call, nil
		}
		// Outgoing SETUP from L4: CRV 0 (or any CRV not yet tracked)
		// means "allocate a new one" (spec.md §8 scenario 1).
		if _, err := t.calls.find(msg.Header.CRV); err != nil {
			crv, idx, cerr := t.calls.create()
			if cerr != nil {
				return nil, cerr
			}
			msg.Header.CRV = crv
			call := t.calls.get(idx)
			t.metrics.observeCallCreated()
			return call, nil
		}
	}

	idx, err := t.calls.find(msg.Header.CRV)
	if err != nil {
		return nil, err
	}
	return t.calls.get(idx), nil
}

// handleGlobalRestart implements spec.md §4.5/§4.8 scenario 6: RESTART
// is a CRV=0 global procedure. This engine resets every in-use call on
// the trunk whatever the restart class; a restart of "indicated
// channels" also resets every call, and the channels it names are not
// consulted.
func (t *Trunk) handleGlobalRestart(msg *Message, dir Direction) {
	if dir == ToL2 {
		t.Tx32(msg, DLData)
		return
	}
	ri, _ := msg.RestartIndicator()
	var class RestartClass = RestartAllInterfaces
	if ri != nil {
		class = ri.Class
	}
	t.calls.forEachInUse(func(idx int, call *Call) {
		if class == RestartIndicatedChannels && ri != nil {
			// "indicated channels" scoping would consult a channel
			// list IE; without one, fall back to resetting every call
			// the same as "all interfaces" so no call is silently
			// stranded mid-teardown.
		}
		ch := call.BChan
		t.freeChannel(ch)
		t.metrics.observeCallReleased()
		call.reset()
		t.Tx34(&BridgeEvent{Kind: EventRestart, CRV: 0, BChan: ch})
	})
	if t.Config.AutoRestartAck || t.Config.Role == RoleNT {
		ack := &Message{Header: Header{
			ProtocolDiscriminator: PDCallControl,
			CRV:                   0,
			FromTerminator:        t.Config.Role == RoleNT,
			MessageType:           MsgRestartAck,
		}}
		if ri != nil {
			ack.Insert(IERestartIndicator, ri)
		}
		t.Tx32(ack, DLData)
	}
}

// disconnect emits DISCONNECT with the given cause, then frees the call's
// B-channel and releases its CRV, used by the error-recovery path of
// spec.md §7.
func (t *Trunk) disconnect(call *Call, cause Cause) {
	msg := &Message{Header: Header{
		ProtocolDiscriminator: PDCallControl,
		CRV:                   call.CRV,
		FromTerminator:        t.Config.Role == RoleNT,
		MessageType:           MsgDisconnect,
	}}
	msg.Insert(IECause, &CauseIE{Value: cause})
	t.Tx32(msg, DLData)
	t.freeChannel(call.BChan)
	t.metrics.observeCallReleased()
	t.calls.release(call.CRV)
}
