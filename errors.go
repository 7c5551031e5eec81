package q931

import "fmt"

// ErrorKind enumerates the fixed error vocabulary of spec.md §7. It is
// deliberately a closed enumeration rather than arbitrary error wrapping:
// the host's on_error callback (see Trunk.SetErrorCallback) is handed one of these
// so it can make routing decisions without string matching.
type ErrorKind int

const (
	ErrNone ErrorKind = iota

	// Structural
	ErrUnknownMessage
	ErrIllegalIE
	ErrUnknownIE
	ErrBearerCap
	ErrHighLayerCompat
	ErrLowLayerCompat
	ErrSegmentation

	// State
	ErrUnexpectedMessage
	ErrIllegalMessage
	ErrInvalidCRV
	ErrTooManyCalls
	ErrCallState

	// Integration
	ErrMissingCallback
	ErrInternal
)

func (k ErrorKind) String() string {
	switch k {
	case ErrNone:
		return "no-error"
	case ErrUnknownMessage:
		return "unknown-message"
	case ErrIllegalIE:
		return "illegal-ie"
	case ErrUnknownIE:
		return "unknown-ie"
	case ErrBearerCap:
		return "bearercap"
	case ErrHighLayerCompat:
		return "hlcomp"
	case ErrLowLayerCompat:
		return "llcomp"
	case ErrSegmentation:
		return "segment"
	case ErrUnexpectedMessage:
		return "unexpected-message"
	case ErrIllegalMessage:
		return "illegal-message"
	case ErrInvalidCRV:
		return "invalid-crv"
	case ErrTooManyCalls:
		return "too-many-calls"
	case ErrCallState:
		return "callstate"
	case ErrMissingCallback:
		return "missing-cb"
	case ErrInternal:
		return "internal"
	default:
		return "unknown-error-kind"
	}
}

// Error is the error type every codec and handler in this package
// returns. Kind drives the engine's recovery policy (§7); P1/P2 carry
// kind-specific context (e.g. message type, IE id, byte offset) for the
// error callback, mirroring the teacher's errSingleCmdTerm/
// errDoubleCmdTerm sentinel-with-predicate pattern, scaled to the larger
// enumeration spec.md §7 requires.
type Error struct {
	Kind ErrorKind
	P1   int
	P2   int
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("q931: %s: %s (p1=%d p2=%d)", e.Kind, e.Msg, e.P1, e.P2)
	}
	return fmt.Sprintf("q931: %s (p1=%d p2=%d)", e.Kind, e.P1, e.P2)
}

func newError(kind ErrorKind, msg string, p1, p2 int) *Error {
	return &Error{Kind: kind, P1: p1, P2: p2, Msg: msg}
}

// IsKind reports whether err is a *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}

func IsUnexpectedMessage(err error) bool { return IsKind(err, ErrUnexpectedMessage) }
func IsInvalidCRV(err error) bool        { return IsKind(err, ErrInvalidCRV) }
func IsTooManyCalls(err error) bool      { return IsKind(err, ErrTooManyCalls) }
func IsIllegalIE(err error) bool         { return IsKind(err, ErrIllegalIE) }
func IsUnknownIE(err error) bool         { return IsKind(err, ErrUnknownIE) }
func IsUnknownMessage(err error) bool    { return IsKind(err, ErrUnknownMessage) }

// causeForError maps an error kind to the Q.931 cause value the engine
// sends on the STATUS it emits after a frame fails to unpack, per
// spec.md §7's propagation policy (e.g. too-many-calls -> 42,
// invalid-crv -> 81).
func causeForError(kind ErrorKind) Cause {
	switch kind {
	case ErrTooManyCalls:
		return CauseSwitchingEquipmentCongestion
	case ErrInvalidCRV:
		return CauseInvalidCallReference
	case ErrUnexpectedMessage:
		return CauseMessageNotCompatibleWithState
	case ErrUnknownMessage:
		return CauseMessageTypeNonexistent
	case ErrIllegalIE, ErrUnknownIE:
		return CauseMandatoryIEMissing
	default:
		return CauseNormalUnspecified
	}
}
