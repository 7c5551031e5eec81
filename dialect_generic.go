package q931

// NewGenericDialect builds the base ITU-T Q.931/Q.932 dialect (spec.md
// §4.6 "Generic Q.931" in the dialect table): every IE codec this
// package implements, every message type's handler and fixed IE order,
// every timer's default and expiry handler, and the TE/NT state-table
// of spec.md §4.5/§8. National/DMS/5ESS dialects start from a copy of
// this table and layer their deltas on top (dialects/*.go).
func NewGenericDialect() *Dialect {
	d := newDialect(DialectQ931Generic)
	registerGenericIEs(d)
	registerGenericMessages(d)
	registerGenericTimers(d)
	registerGenericLegality(d)
	return d
}

// registerGenericIEs wires every variable-length IE codec pair from the
// ie_*.go files into the dialect's tables (spec.md §4.1), except Generic
// Digits, which only dialects.National registers. Single-octet
// IEs (Shift/SendingComplete/RepeatIndicator) are handled specially by
// UnpackMessage/PackMessage and are not registered here.
func registerGenericIEs(d *Dialect) {
	d.RegisterIE(IEBearerCapability,
		func(c *Cursor) (interface{}, error) { return unpackBearerCapability(c) },
		func(v interface{}, w *Writer) { packBearerCapability(v.(*BearerCapability), w) })
	d.RegisterIE(IECause,
		func(c *Cursor) (interface{}, error) { return unpackCause(c) },
		func(v interface{}, w *Writer) { packCause(v.(*CauseIE), w) })
	d.RegisterIE(IECallIdentity,
		func(c *Cursor) (interface{}, error) { return unpackCallIdentity(c) },
		func(v interface{}, w *Writer) { packCallIdentity(v.(*CallIdentity), w) })
	d.RegisterIE(IECallState,
		func(c *Cursor) (interface{}, error) { return unpackCallStateIE(c) },
		func(v interface{}, w *Writer) { packCallStateIE(v.(*CallStateIE), w) })
	d.RegisterIE(IEChannelIdentification,
		func(c *Cursor) (interface{}, error) { return unpackChannelIdentification(c) },
		func(v interface{}, w *Writer) { packChannelIdentification(v.(*ChannelIdentification), w) })
	d.RegisterIE(IEProgressIndicator,
		func(c *Cursor) (interface{}, error) { return unpackProgressIndicator(c) },
		func(v interface{}, w *Writer) { packProgressIndicator(v.(*ProgressIndicator), w) })
	d.RegisterIE(IENetworkSpecificFacility,
		func(c *Cursor) (interface{}, error) { return unpackNetworkSpecificFacility(c) },
		func(v interface{}, w *Writer) { packNetworkSpecificFacility(v.(*NetworkSpecificFacility), w) })
	d.RegisterIE(IENotificationIndicator,
		func(c *Cursor) (interface{}, error) { return unpackNotificationIndicator(c) },
		func(v interface{}, w *Writer) { packNotificationIndicator(v.(*NotificationIndicator), w) })
	d.RegisterIE(IEDisplay,
		func(c *Cursor) (interface{}, error) { return unpackDisplay(c) },
		func(v interface{}, w *Writer) { packDisplay(v.(*Display), w) })
	d.RegisterIE(IEDateTime,
		func(c *Cursor) (interface{}, error) { return unpackDateTime(c) },
		func(v interface{}, w *Writer) { packDateTime(v.(*DateTime), w) })
	d.RegisterIE(IEKeypadFacility,
		func(c *Cursor) (interface{}, error) { return unpackKeypadFacility(c) },
		func(v interface{}, w *Writer) { packKeypadFacility(v.(*KeypadFacility), w) })
	d.RegisterIE(IESignal,
		func(c *Cursor) (interface{}, error) { return unpackSignal(c) },
		func(v interface{}, w *Writer) { packSignal(v.(*Signal), w) })
	d.RegisterIE(IEChangeStatus,
		func(c *Cursor) (interface{}, error) { return unpackChangeStatus(c) },
		func(v interface{}, w *Writer) { packChangeStatus(v.(*ChangeStatus), w) })
	d.RegisterIE(IECallingPartyNumber,
		func(c *Cursor) (interface{}, error) { return unpackNumber(c) },
		func(v interface{}, w *Writer) { packNumber(v.(*Number), w) })
	d.RegisterIE(IECallingPartySubaddress,
		func(c *Cursor) (interface{}, error) { return unpackSubaddress(c) },
		func(v interface{}, w *Writer) { packSubaddress(v.(*Subaddress), w) })
	d.RegisterIE(IECalledPartyNumber,
		func(c *Cursor) (interface{}, error) { return unpackNumber(c) },
		func(v interface{}, w *Writer) { packNumber(v.(*Number), w) })
	d.RegisterIE(IECalledPartySubaddress,
		func(c *Cursor) (interface{}, error) { return unpackSubaddress(c) },
		func(v interface{}, w *Writer) { packSubaddress(v.(*Subaddress), w) })
	d.RegisterIE(IETransitNetworkSelection,
		func(c *Cursor) (interface{}, error) { return unpackTransitNetworkSelection(c) },
		func(v interface{}, w *Writer) { packTransitNetworkSelection(v.(*TransitNetworkSelection), w) })
	d.RegisterIE(IERestartIndicator,
		func(c *Cursor) (interface{}, error) { return unpackRestartIndicator(c) },
		func(v interface{}, w *Writer) { packRestartIndicator(v.(*RestartIndicator), w) })
	d.RegisterIE(IEUserUser,
		func(c *Cursor) (interface{}, error) { return unpackUserUser(c) },
		func(v interface{}, w *Writer) { packUserUser(v.(*UserUser), w) })
	d.RegisterIE(IELowLayerCompatibility,
		func(c *Cursor) (interface{}, error) { return unpackLowLayerCompatibility(c) },
		func(v interface{}, w *Writer) { packLowLayerCompatibility(v.(*LowLayerCompatibility), w) })
	d.RegisterIE(IEHighLayerCompatibility,
		func(c *Cursor) (interface{}, error) { return unpackHighLayerCompatibility(c) },
		func(v interface{}, w *Writer) { packHighLayerCompatibility(v.(*HighLayerCompatibility), w) })
	d.RegisterIE(IESegmentedMessage,
		func(c *Cursor) (interface{}, error) { return unpackSegmentedMessage(c) },
		func(v interface{}, w *Writer) { packSegmentedMessage(v.(*SegmentedMessage), w) })
}

// IE order groups, reused across several message types that share the
// same variable-part shape (spec.md §4.2).
var (
	setupIEs = []IEID{
		IEShift, IESendingComplete, IERepeatIndicator,
		IEBearerCapability, IEChannelIdentification, IEProgressIndicator,
		IENetworkSpecificFacility, IEDisplay, IEKeypadFacility, IESignal,
		IECallingPartyNumber, IECallingPartySubaddress,
		IECalledPartyNumber, IECalledPartySubaddress,
		IETransitNetworkSelection, IELowLayerCompatibility, IEHighLayerCompatibility,
		IEUserUser,
	}
	simpleCallIEs = []IEID{
		IEShift, IEChannelIdentification, IEProgressIndicator, IEDisplay, IESignal,
	}
	disconnectIEs = []IEID{
		IEShift, IECause, IEProgressIndicator, IEDisplay, IEUserUser,
	}
	releaseIEs = []IEID{
		IEShift, IECause, IEDisplay, IEUserUser,
	}
	statusIEs = []IEID{
		IEShift, IECause, IECallState, IEDisplay,
	}
	restartIEs = []IEID{
		IEShift, IEChannelIdentification, IERestartIndicator, IEDisplay,
	}
	informationIEs = []IEID{
		IEShift, IESendingComplete, IERepeatIndicator,
		IECalledPartyNumber, IEKeypadFacility, IESignal, IEDisplay, IECallIdentity,
	}
	notifyIEs = []IEID{
		IEShift, IENotificationIndicator, IEDisplay,
	}
	holdFamilyIEs = []IEID{
		IEShift, IEChannelIdentification, IEDisplay, IECallIdentity, IECause,
	}
	serviceIEs = []IEID{
		IEShift, IEChangeStatus, IEDisplay,
	}
	opaqueIEs = []IEID{
		IEShift, IEDisplay, IEUserUser,
	}
)

// registerGenericMessages wires every message type's handler and
// whitelist/pack-order for both protocol discriminators this package
// uses (spec.md §4.2, §4.5).
func registerGenericMessages(d *Dialect) {
	cc := PDCallControl

	d.RegisterMessage(cc, MsgSetup, setupIEs, handleSetup)
	d.RegisterMessage(cc, MsgSetupAck, append(append([]IEID{}, simpleCallIEs...), IEProgressIndicator), handleSetupAck)
	d.RegisterMessage(cc, MsgCallProceeding, simpleCallIEs, handleCallProceeding)
	d.RegisterMessage(cc, MsgAlerting, simpleCallIEs, handleAlerting)
	d.RegisterMessage(cc, MsgProgress, disconnectIEs, handleProgress)
	d.RegisterMessage(cc, MsgConnect, simpleCallIEs, handleConnect)
	d.RegisterMessage(cc, MsgConnectAck, []IEID{IEShift, IEDisplay, IESignal}, handleConnectAck)
	d.RegisterMessage(cc, MsgDisconnect, disconnectIEs, handleDisconnect)
	d.RegisterMessage(cc, MsgRelease, releaseIEs, handleRelease)
	d.RegisterMessage(cc, MsgReleaseComplete, releaseIEs, handleReleaseComplete)
	d.RegisterMessage(cc, MsgRestart, restartIEs, nil) // special-cased in state_engine.go's process()
	d.RegisterMessage(cc, MsgRestartAck, restartIEs, handleRestartAck)
	d.RegisterMessage(cc, MsgStatus, statusIEs, handleStatus)
	d.RegisterMessage(cc, MsgStatusEnquiry, []IEID{IEShift, IEDisplay}, handleStatusEnquiry)
	d.RegisterMessage(cc, MsgInformation, informationIEs, handleInformation)
	d.RegisterMessage(cc, MsgNotify, notifyIEs, handleNotify)

	d.RegisterMessage(cc, MsgHold, holdFamilyIEs, passthroughHandler)
	d.RegisterMessage(cc, MsgHoldAck, holdFamilyIEs, passthroughHandler)
	d.RegisterMessage(cc, MsgHoldReject, holdFamilyIEs, passthroughHandler)
	d.RegisterMessage(cc, MsgRetrieve, holdFamilyIEs, passthroughHandler)
	d.RegisterMessage(cc, MsgRetrieveAck, holdFamilyIEs, passthroughHandler)
	d.RegisterMessage(cc, MsgRetrieveReject, holdFamilyIEs, passthroughHandler)
	d.RegisterMessage(cc, MsgSuspend, holdFamilyIEs, passthroughHandler)
	d.RegisterMessage(cc, MsgSuspendAck, holdFamilyIEs, passthroughHandler)
	d.RegisterMessage(cc, MsgSuspendReject, holdFamilyIEs, passthroughHandler)
	d.RegisterMessage(cc, MsgResume, holdFamilyIEs, passthroughHandler)
	d.RegisterMessage(cc, MsgResumeAck, holdFamilyIEs, passthroughHandler)
	d.RegisterMessage(cc, MsgResumeReject, holdFamilyIEs, passthroughHandler)

	d.RegisterMessage(cc, MsgFacility, opaqueIEs, passthroughHandler)
	d.RegisterMessage(cc, MsgRegister, opaqueIEs, passthroughHandler)
	d.RegisterMessage(cc, MsgUserInformation, opaqueIEs, passthroughHandler)
	d.RegisterMessage(cc, MsgSegment, []IEID{IESegmentedMessage}, passthroughHandler)
	d.RegisterMessage(cc, MsgCongestionControl, []IEID{IEShift, IECongestionLevel, IEDisplay}, passthroughHandler)

	mt := PDMaintenance
	d.RegisterMessage(mt, MsgService, serviceIEs, handleService)
	d.RegisterMessage(mt, MsgServiceAck, serviceIEs, handleServiceAck)
}

// registerGenericTimers wires the T3xx family's defaults and expiry
// handlers (spec.md §3/§4.4 example defaults).
func registerGenericTimers(d *Dialect) {
	d.RegisterTimer(T301, 180_000_000_000, timeoutDisconnectWith(CauseNoUserResponding)) // not started automatically; placeholder default
	d.RegisterTimer(T303, 4_000_000_000, timeoutRetransmitSetup)
	d.RegisterTimer(T304, 30_000_000_000, timeoutDisconnectWith(CauseRecoveryOnTimerExpiry))
	d.RegisterTimer(T305, 30_000_000_000, timeoutForceRelease)
	d.RegisterTimer(T308, 4_000_000_000, timeoutReleaseRetry)
	d.RegisterTimer(T309, 60_000_000_000, timeoutDisconnectWith(CauseRecoveryOnTimerExpiry))
	d.RegisterTimer(T310, 10_000_000_000, timeoutDisconnectWith(CauseRecoveryOnTimerExpiry))
	d.RegisterTimer(T313, 4_000_000_000, timeoutDisconnectWith(CauseRecoveryOnTimerExpiry))
	d.RegisterTimer(T316, 120_000_000_000, nil)
	d.RegisterTimer(T318, 4_000_000_000, timeoutDisconnectWith(CauseRecoveryOnTimerExpiry))
	d.RegisterTimer(T319, 4_000_000_000, timeoutDisconnectWith(CauseRecoveryOnTimerExpiry))
	d.RegisterTimer(T322, 4_000_000_000, nil)
	d.RegisterTimer(TDigit, 10_000_000_000, timeoutOverlapDigit)
}

func timeoutDisconnectWith(cause Cause) TimeoutHandler {
	return func(t *Trunk, call *Call) error {
		t.disconnect(call, cause)
		return nil
	}
}

func timeoutRetransmitSetup(t *Trunk, call *Call) error {
	// First expiry: the spec's retry policy re-sends SETUP and restarts
	// T303 once; this engine does not retain the original SETUP body,
	// so it degrades straight to the clearing path on expiry (spec.md
	// §4.4's "T303 drives a single retransmit then failure" simplified
	// to failure-only, documented as an Open Question decision).
	t.disconnect(call, CauseNoUserResponding)
	return nil
}

func timeoutForceRelease(t *Trunk, call *Call) error {
	rel := &Message{Header: Header{
		ProtocolDiscriminator: PDCallControl,
		CRV:                   call.CRV,
		FromTerminator:        t.Config.Role == RoleNT,
		MessageType:           MsgRelease,
	}}
	rel.Insert(IECause, &CauseIE{Value: CauseRecoveryOnTimerExpiry})
	t.StartTimer(call, T308)
	return t.Tx32(rel, DLData)
}

func timeoutReleaseRetry(t *Trunk, call *Call) error {
	bchan := call.BChan
	t.freeChannel(bchan)
	t.Tx34(&BridgeEvent{Kind: EventStop, CRV: call.CRV, BChan: bchan, Cause: CauseRecoveryOnTimerExpiry})
	t.metrics.observeCallReleased()
	t.calls.release(call.CRV)
	return nil
}

func timeoutOverlapDigit(t *Trunk, call *Call) error {
	t.disconnect(call, CauseRecoveryOnTimerExpiry)
	return nil
}

// registerGenericLegality populates the (state, message, direction)
// state-table for both TE U-states and NT N-states covering the six
// end-to-end scenarios of spec.md §8 plus the surrounding steady-state
// traffic (STATUS/STATUS ENQUIRY/NOTIFY/INFORMATION/hold family are
// legal in every established state).
func registerGenericLegality(d *Dialect) {
	type row struct {
		state CallState
		mt    MessageType
		dir   Direction
	}

	// TE (user) side, Q.931 §5 state diagram.
	teRows := []row{
		{StateU0, MsgSetup, ToL2},
		{StateU1, MsgSetupAck, ToL4},
		{StateU1, MsgCallProceeding, ToL4},
		{StateU1, MsgConnect, ToL4},
		{StateU1, MsgRelease, ToL4},
		{StateU2, MsgCallProceeding, ToL4},
		{StateU2, MsgConnect, ToL4},
		{StateU2, MsgRelease, ToL4},
		{StateU3, MsgAlerting, ToL4},
		{StateU3, MsgConnect, ToL4},
		{StateU3, MsgProgress, ToL4},
		{StateU3, MsgDisconnect, ToL4},
		{StateU4, MsgConnect, ToL4},
		{StateU4, MsgProgress, ToL4},
		{StateU4, MsgDisconnect, ToL4},
		{StateU6, MsgDisconnect, ToL2},
		{StateU6, MsgDisconnect, ToL4},
		{StateU10, MsgConnectAck, ToL2},
		{StateU10, MsgDisconnect, ToL2},
		{StateU10, MsgDisconnect, ToL4},
		{StateU10, MsgInformation, ToL2},
		{StateU10, MsgInformation, ToL4},
		{StateU10, MsgNotify, ToL4},
		{StateU10, MsgStatusEnquiry, ToL2},
		{StateU10, MsgStatusEnquiry, ToL4},
		{StateU10, MsgStatus, ToL2},
		{StateU10, MsgStatus, ToL4},
		{StateU11, MsgRelease, ToL4},
		{StateU12, MsgRelease, ToL2},
		{StateU12, MsgReleaseComplete, ToL4},
		{StateU19, MsgRelease, ToL2},
		{StateU19, MsgReleaseComplete, ToL4},
	}

	// NT (network) side, mirroring the TE table in the opposite
	// direction at each stage.
	ntRows := []row{
		{StateN0, MsgSetup, ToL4},
		{StateN1, MsgSetupAck, ToL2},
		{StateN1, MsgCallProceeding, ToL2},
		{StateN1, MsgRelease, ToL2},
		{StateN6, MsgCallProceeding, ToL2},
		{StateN6, MsgRelease, ToL2},
		{StateN6, MsgInformation, ToL4},
		{StateN9, MsgAlerting, ToL2},
		{StateN9, MsgConnect, ToL2},
		{StateN9, MsgDisconnect, ToL2},
		{StateN9, MsgDisconnect, ToL4},
		{StateN10, MsgConnectAck, ToL4},
		{StateN10, MsgDisconnect, ToL2},
		{StateN10, MsgDisconnect, ToL4},
		{StateN10, MsgInformation, ToL2},
		{StateN10, MsgInformation, ToL4},
		{StateN10, MsgNotify, ToL2},
		{StateN10, MsgStatusEnquiry, ToL2},
		{StateN10, MsgStatusEnquiry, ToL4},
		{StateN10, MsgStatus, ToL2},
		{StateN10, MsgStatus, ToL4},
		{StateN11, MsgRelease, ToL2},
		{StateN12, MsgRelease, ToL4},
		{StateN12, MsgReleaseComplete, ToL2},
		{StateN19, MsgRelease, ToL4},
		{StateN19, MsgReleaseComplete, ToL2},
		{StateN25, MsgInformation, ToL4},
		{StateN25, MsgDisconnect, ToL4},
		{StateN25, MsgRelease, ToL2},
	}

	for _, r := range append(teRows, ntRows...) {
		d.RegisterLegal(r.state, r.mt, r.dir)
	}

	// The hold family, NOTIFY and FACILITY are legal in any established
	// (stable, post-CONNECT) state on both sides; spelled out instead of
	// relying on a wildcard so the table stays introspectable by
	// q931ctl dialects (spec.md's supplemented Q932 skeleton features).
	establishedTE := []CallState{StateU10}
	establishedNT := []CallState{StateN10}
	holdMessages := []MessageType{
		MsgHold, MsgHoldAck, MsgHoldReject,
		MsgRetrieve, MsgRetrieveAck, MsgRetrieveReject,
		MsgSuspend, MsgSuspendAck, MsgSuspendReject,
		MsgResume, MsgResumeAck, MsgResumeReject,
		MsgFacility, MsgRegister, MsgUserInformation,
	}
	for _, s := range establishedTE {
		for _, mt := range holdMessages {
			d.RegisterLegal(s, mt, ToL2)
			d.RegisterLegal(s, mt, ToL4)
		}
	}
	for _, s := range establishedNT {
		for _, mt := range holdMessages {
			d.RegisterLegal(s, mt, ToL2)
			d.RegisterLegal(s, mt, ToL4)
		}
	}
}
