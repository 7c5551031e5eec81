package q931

// Role distinguishes the user side (TE) from the network side (NT) of an
// ISDN interface (spec.md Glossary).
type Role int

const (
	RoleTE Role = iota
	RoleNT
)

func (r Role) String() string {
	if r == RoleNT {
		return "NT"
	}
	return "TE"
}

// TrunkType is the physical/logical span type (spec.md §3 Trunk).
type TrunkType int

const (
	TrunkE1 TrunkType = iota
	TrunkT1
	TrunkJ1
	TrunkBRIPointToPoint
	TrunkBRIPointToMultipoint
)

// ChannelType tags a single channel slot in a trunk's inventory.
type ChannelType int

const (
	ChannelUnused ChannelType = iota
	ChannelB
	ChannelD
	ChannelSync
)

// DialectID names a Q.931/Q.932 dialect (spec.md Glossary).
type DialectID int

const (
	DialectQ931Generic DialectID = iota
	DialectNational
	DialectDMS
	Dialect5ESS

	numDialects // sentinel, keep last
)

func (d DialectID) String() string {
	switch d {
	case DialectQ931Generic:
		return "Q931"
	case DialectNational:
		return "National"
	case DialectDMS:
		return "DMS"
	case Dialect5ESS:
		return "5ESS"
	default:
		return "unknown-dialect"
	}
}

// ProtocolDiscriminator is the first octet of every Q.931/Q.932 message
// (spec.md §4.2). Call-control and maintenance messages share numerous
// message-type codes and are disambiguated by this field (the AT&T 5ESS
// overload point of §4.2 depends on it).
type ProtocolDiscriminator byte

const (
	PDCallControl ProtocolDiscriminator = 0x08
	PDMaintenance ProtocolDiscriminator = 0x03
)

// Direction of a message relative to the entity processing it: a message
// received from Layer 2 is bound to Layer 4 and vice versa (spec.md §3
// State-table entry).
type Direction int

const (
	ToL4 Direction = iota
	ToL2
)

// Primitive names the Layer-2 service primitive a frame was delivered
// with or should be sent with (spec.md §6).
type Primitive int

const (
	DLData Primitive = iota // unicast, point-to-point
	DLUnitData
)

// CallState is a single Q.931 U-state (TE) or N-state (NT), or 0 for
// null/idle (spec.md §3 Call). TE and NT share the numeric null state so
// a freshly allocated call is state-neutral until Role-specific
// transitions begin.
type CallState int

const (
	StateNull CallState = 0

	// TE (user) side states, Q.931 §5.
	StateU0 CallState = 0
	StateU1 CallState = 1
	StateU2 CallState = 2
	StateU3 CallState = 3
	StateU4 CallState = 4
	StateU6 CallState = 6
	StateU7 CallState = 7
	StateU8 CallState = 8
	StateU9 CallState = 9
	StateU10 CallState = 10
	StateU11 CallState = 11
	StateU12 CallState = 12
	StateU15 CallState = 15
	StateU17 CallState = 17
	StateU19 CallState = 19
	StateU25 CallState = 25

	// NT (network) side states, offset by 100 to keep the (dialect,
	// state, message) legality table a single flat lookup (spec.md §9
	// "compile-time arrays on an enum" design note) without colliding
	// with the numerically identical TE states above. N0 is excluded
	// from the offset: it IS the shared null state (0) a freshly
	// allocated call starts in regardless of role, so it must stay
	// numerically equal to StateNull/StateU0 rather than move to 100.
	StateN0 CallState = 0

	stateNTOffset CallState = 100

	StateN1  = stateNTOffset + 1
	StateN3  = stateNTOffset + 3
	StateN4  = stateNTOffset + 4
	StateN6  = stateNTOffset + 6
	StateN7  = stateNTOffset + 7
	StateN8  = stateNTOffset + 8
	StateN9  = stateNTOffset + 9
	StateN10 = stateNTOffset + 10
	StateN11 = stateNTOffset + 11
	StateN12 = stateNTOffset + 12
	StateN19 = stateNTOffset + 19
	StateN22 = stateNTOffset + 22
	StateN25 = stateNTOffset + 25
)

// TimerID names one of the T3xx call-control timers of spec.md §3/§4.4.
type TimerID int

const (
	TimerNone TimerID = iota
	T301
	T302
	T303
	T304
	T305
	T306
	T308
	T309
	T310
	T313
	T316
	T318
	T319
	T322
	TDigit // overlap-dial digit-collection timer, spec.md §4.8
)
