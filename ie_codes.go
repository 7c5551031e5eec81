package q931

// IEID is the one-octet information-element identifier of Q.931 Annex A.
// Single-octet IEs carry the identifier with the top bit set; variable
// IEs carry it with the top bit clear, followed by a length octet
// (spec.md §3 Information element).
type IEID byte

const (
	// Single-octet IEs (bit 8 set).
	IEShift             IEID = 0x90 // codeset shift, locking/non-locking in bit 3
	IEMoreData          IEID = 0xA0
	IESendingComplete    IEID = 0xA1
	IECongestionLevel   IEID = 0xB0
	IERepeatIndicator   IEID = 0xD0

	// Variable-length IEs (bit 8 clear).
	IESegmentedMessage        IEID = 0x00
	IEBearerCapability        IEID = 0x04
	IECause                   IEID = 0x08
	IECallIdentity            IEID = 0x10
	IECallState               IEID = 0x14
	IEChannelIdentification   IEID = 0x18
	IEProgressIndicator       IEID = 0x1E
	IENetworkSpecificFacility IEID = 0x20
	IENotificationIndicator   IEID = 0x27
	IEDisplay                 IEID = 0x28
	IEDateTime                IEID = 0x29
	IEKeypadFacility          IEID = 0x2C
	IESignal                  IEID = 0x34
	IEChangeStatus            IEID = 0x36
	IECallingPartyNumber      IEID = 0x6C
	IECallingPartySubaddress  IEID = 0x6D
	IECalledPartyNumber       IEID = 0x70
	IECalledPartySubaddress   IEID = 0x71
	IETransitNetworkSelection IEID = 0x78
	IERestartIndicator        IEID = 0x79
	IELowLayerCompatibility   IEID = 0x7C
	IEHighLayerCompatibility  IEID = 0x7D
	IEUserUser                IEID = 0x7E
	IEGenericDigits           IEID = 0x37 // dialect extension (National ISDN), spec.md §4.1
)

func (id IEID) String() string {
	if name, ok := ieNames[id]; ok {
		return name
	}
	return "unknown-ie"
}

func (id IEID) isSingleOctet() bool { return id&0x80 != 0 }

var ieNames = map[IEID]string{
	IEShift: "Shift", IEMoreData: "MoreData", IESendingComplete: "SendingComplete",
	IECongestionLevel: "CongestionLevel", IERepeatIndicator: "RepeatIndicator",
	IESegmentedMessage: "SegmentedMessage", IEBearerCapability: "BearerCapability", IECause: "Cause",
	IECallIdentity: "CallIdentity", IECallState: "CallState", IEChannelIdentification: "ChannelIdentification",
	IEProgressIndicator: "ProgressIndicator", IENetworkSpecificFacility: "NetworkSpecificFacility",
	IENotificationIndicator: "NotificationIndicator", IEDisplay: "Display", IEDateTime: "DateTime",
	IEKeypadFacility: "KeypadFacility", IESignal: "Signal", IEChangeStatus: "ChangeStatus",
	IECallingPartyNumber: "CallingPartyNumber", IECallingPartySubaddress: "CallingPartySubaddress",
	IECalledPartyNumber: "CalledPartyNumber", IECalledPartySubaddress: "CalledPartySubaddress",
	IETransitNetworkSelection: "TransitNetworkSelection", IERestartIndicator: "RestartIndicator",
	IELowLayerCompatibility: "LowLayerCompatibility", IEHighLayerCompatibility: "HighLayerCompatibility",
	IEUserUser: "UserUser", IEGenericDigits: "GenericDigits",
}
