package q931

// MessageType is the Q.931/Q.932 message-type octet (spec.md §3 Generic
// message). Call-control (PD=0x08) and maintenance (PD=0x03) messages
// share the low numbering space; the (protocol discriminator, message
// type) dispatch key in dialect.go disambiguates where the two collide
// (e.g. AT&T 5ESS's 0x07/0x0F, spec.md §4.2).
type MessageType byte

const (
	// Call establishment
	MsgAlerting         MessageType = 0x01
	MsgCallProceeding    MessageType = 0x02
	MsgProgress          MessageType = 0x03
	MsgSetup             MessageType = 0x05
	MsgConnect           MessageType = 0x07
	MsgSetupAck          MessageType = 0x0D
	MsgConnectAck        MessageType = 0x0F

	// Call information
	MsgUserInformation MessageType = 0x20
	MsgSuspendReject   MessageType = 0x21
	MsgResumeReject    MessageType = 0x22
	MsgHold            MessageType = 0x24
	MsgSuspend         MessageType = 0x25
	MsgResume          MessageType = 0x26
	MsgHoldAck         MessageType = 0x28
	MsgSuspendAck      MessageType = 0x2D
	MsgResumeAck       MessageType = 0x2E
	MsgRetrieve        MessageType = 0x31
	MsgHoldReject      MessageType = 0x33
	MsgRetrieveAck     MessageType = 0x38
	MsgRetrieveReject  MessageType = 0x3A

	// Call clearing
	MsgDisconnect     MessageType = 0x45
	MsgRestart        MessageType = 0x46
	MsgRelease        MessageType = 0x4D
	MsgRestartAck     MessageType = 0x4E
	MsgReleaseComplete MessageType = 0x5A

	// Misc / Q.932 supplementary services
	MsgSegment           MessageType = 0x60
	MsgFacility          MessageType = 0x62
	MsgRegister          MessageType = 0x64
	MsgNotify            MessageType = 0x6E
	MsgCongestionControl MessageType = 0x79
	MsgInformation       MessageType = 0x7B
	MsgStatus            MessageType = 0x7D
	MsgStatusEnquiry     MessageType = 0x75

	// Maintenance (PD=0x03); share codes with call-control on purpose
	// per spec.md §4.2's overload-point design.
	MsgService    MessageType = 0x0F
	MsgServiceAck MessageType = 0x07
)

func (m MessageType) String() string {
	if name, ok := messageNames[m]; ok {
		return name
	}
	return "unknown-message"
}

var messageNames = map[MessageType]string{
	MsgAlerting: "ALERTING", MsgCallProceeding: "CALL_PROCEEDING", MsgProgress: "PROGRESS",
	MsgSetup: "SETUP", MsgConnect: "CONNECT", MsgSetupAck: "SETUP_ACKNOWLEDGE", MsgConnectAck: "CONNECT_ACKNOWLEDGE",
	MsgUserInformation: "USER_INFORMATION", MsgSuspendReject: "SUSPEND_REJECT", MsgResumeReject: "RESUME_REJECT",
	MsgHold: "HOLD", MsgSuspend: "SUSPEND", MsgResume: "RESUME", MsgHoldAck: "HOLD_ACKNOWLEDGE",
	MsgSuspendAck: "SUSPEND_ACKNOWLEDGE", MsgResumeAck: "RESUME_ACKNOWLEDGE",
	MsgRetrieve: "RETRIEVE", MsgHoldReject: "HOLD_REJECT", MsgRetrieveAck: "RETRIEVE_ACKNOWLEDGE",
	MsgRetrieveReject: "RETRIEVE_REJECT", MsgDisconnect: "DISCONNECT", MsgRestart: "RESTART",
	MsgRelease: "RELEASE", MsgRestartAck: "RESTART_ACKNOWLEDGE", MsgReleaseComplete: "RELEASE_COMPLETE",
	MsgSegment: "SEGMENT", MsgFacility: "FACILITY", MsgRegister: "REGISTER", MsgNotify: "NOTIFY",
	MsgCongestionControl: "CONGESTION_CONTROL", MsgInformation: "INFORMATION", MsgStatus: "STATUS",
	MsgStatusEnquiry: "STATUS_ENQUIRY",
}

// Cause is the Q.931 Cause IE value (ITU-T Q.850).
type Cause byte

const (
	CauseUnallocatedNumber             Cause = 1
	CauseNoRouteToTransitNetwork       Cause = 2
	CauseChannelUnacceptable           Cause = 6
	CauseNormalClearing                Cause = 16
	CauseUserBusy                      Cause = 17
	CauseNoUserResponding              Cause = 18
	CauseCallRejected                  Cause = 21
	CauseInvalidCallReference          Cause = 81
	CauseMandatoryIEMissing            Cause = 96
	CauseMessageTypeNonexistent        Cause = 97
	CauseMessageNotCompatibleWithState Cause = 101
	CauseRecoveryOnTimerExpiry         Cause = 102
	CauseSwitchingEquipmentCongestion  Cause = 42
	CauseNormalUnspecified             Cause = 31
)
