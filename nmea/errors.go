package nmea

import "fmt"

// Kind identifies one of the error taxonomy members a caller can switch on.
// Modeled as a single exported error type with a Kind enum (idiomatic Go
// error taxonomy) rather than one Go type per kind.
type Kind int

const (
	// InvalidSentence covers structural problems: missing commas, an
	// identifier that isn't a two-character talker plus VDM/VDO, wrong
	// field count, a bare tag block with nothing following it.
	InvalidSentence Kind = iota
	// InvalidChecksum means the XOR checksum didn't match the two hex
	// digits after '*'.
	InvalidChecksum
	// InvalidCharacter means the armor decoder saw a byte outside the
	// legal 6-bit-ASCII range.
	InvalidCharacter
	// UnexpectedEndOfData means a BitReader read, or a per-type
	// decoder, ran off the end of the bit buffer.
	UnexpectedEndOfData
	// UnsupportedMessageType means the 6-bit discriminant decoded fine
	// but names a message type this module doesn't implement.
	UnsupportedMessageType
	// TooManyPendingFragments means the fragment reassembler's fan-in
	// cap (the no-allocator tier's fixed slot count) was exceeded.
	TooManyPendingFragments
	// Other is the catch-all for field validation the caller extends.
	Other
)

func (k Kind) String() string {
	switch k {
	case InvalidSentence:
		return "InvalidSentence"
	case InvalidChecksum:
		return "InvalidChecksum"
	case InvalidCharacter:
		return "InvalidCharacter"
	case UnexpectedEndOfData:
		return "UnexpectedEndOfData"
	case UnsupportedMessageType:
		return "UnsupportedMessageType"
	case TooManyPendingFragments:
		return "TooManyPendingFragments"
	default:
		return "Other"
	}
}

// Error is the single error type every exported operation in this module
// returns. Callers distinguish failures by switching on Kind rather than
// with errors.As against a family of types.
type Error struct {
	Kind Kind
	// Expected/Actual are populated for InvalidChecksum.
	Expected, Actual byte
	// Raw is populated for UnsupportedMessageType (the decoded
	// discriminant) and for Other when a raw enum value is useful.
	Raw uint32
	// Msg is a human-readable detail; left empty for InvalidChecksum and
	// UnsupportedMessageType, whose Error() text is built from the fields
	// above.
	Msg string
}

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidChecksum:
		return fmt.Sprintf("invalid checksum: expected %02X, got %02X", e.Expected, e.Actual)
	case UnsupportedMessageType:
		return fmt.Sprintf("unsupported message type %d", e.Raw)
	default:
		if e.Msg == "" {
			return e.Kind.String()
		}
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
}

func errInvalidSentence(format string, args ...interface{}) *Error {
	return &Error{Kind: InvalidSentence, Msg: fmt.Sprintf(format, args...)}
}

func errInvalidCharacter(format string, args ...interface{}) *Error {
	return &Error{Kind: InvalidCharacter, Msg: fmt.Sprintf(format, args...)}
}

// ErrUnexpectedEndOfData is returned by BitReader reads that run past the
// end of the buffer. It carries no per-call detail so decoders can return
// it as a shared sentinel-like value; wrap with fmt.Errorf("%w: ...") style
// context isn't needed since Kind already says what happened.
var ErrUnexpectedEndOfData = &Error{Kind: UnexpectedEndOfData, Msg: "read past end of bit buffer"}

// UnsupportedMessageTypeError builds the error for a decoded-but-unimplemented
// message type discriminant.
func UnsupportedMessageTypeError(msgType uint32) *Error {
	return &Error{Kind: UnsupportedMessageType, Raw: msgType}
}

// TooManyPendingFragmentsError builds the error for a reassembler fan-in cap exceeded.
func TooManyPendingFragmentsError(limit int) *Error {
	return &Error{Kind: TooManyPendingFragments, Msg: fmt.Sprintf("more than %d pending fragment groups", limit)}
}

// OtherError builds a catch-all Other-kind error with a message.
func OtherError(format string, args ...interface{}) *Error {
	return &Error{Kind: Other, Msg: fmt.Sprintf(format, args...)}
}
