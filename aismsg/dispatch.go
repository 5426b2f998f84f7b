// Package aismsg implements the per-message-type binary decoder (C7): one
// decoder per supported AIS message type, dispatched on the 6-bit type
// discriminant that leads every decoded payload. Grounded in spirit on
// andmarios/aislib's Router/Message shape (mazgied-aislib/router.go),
// reimplemented natively as a closed Go sum type (interface + type switch)
// rather than Router's single flat Message{Type,Payload,Padding} struct,
// since this module decodes the fields rather than deferring to a caller.
package aismsg

import (
	"github.com/vesselwatch/aisdecode/nmea"
)

// Message is the tagged union over every supported AIS message type. Each
// variant is its own struct implementing Message; callers type-switch on
// the concrete type rather than reading a discriminant field, per spec §9
// "tagged variants over inheritance".
type Message interface {
	// Type returns the 6-bit message-type discriminant this variant was
	// decoded from.
	Type() uint8
}

// Decode dispatches on the first 6 bits of bits (the message type) and
// runs the matching per-type decoder. An unimplemented but structurally
// valid discriminant yields UnsupportedMessageType; a truncated payload
// yields UnexpectedEndOfData from whichever read ran past the end.
func Decode(bits *nmea.BitBuffer) (Message, *nmea.Error) {
	r := bits.Reader()
	msgType, err := r.U(6)
	if err != nil {
		return nil, err.(*nmea.Error)
	}
	switch msgType {
	case 1, 2, 3:
		return decodePositionReport(uint8(msgType), r)
	case 4, 11:
		return decodeBaseStationReport(uint8(msgType), r)
	case 5:
		return decodeStaticAndVoyageData(r)
	case 6:
		return decodeBinaryAddressedMessage(r)
	case 7:
		return decodeBinaryAcknowledge(r)
	case 8:
		return decodeBinaryBroadcastMessage(r)
	case 9:
		return decodeSARAircraftPositionReport(r)
	case 10:
		return decodeUTCDateInquiry(r)
	case 12:
		return decodeAddressedSafetyRelatedMessage(r)
	case 13:
		return decodeSafetyRelatedAcknowledge(r)
	case 14:
		return decodeSafetyRelatedBroadcastMessage(r)
	case 15:
		return decodeInterrogation(r)
	case 16:
		return decodeAssignmentModeCommand(r)
	case 17:
		return decodeDGNSSBroadcastBinaryMessage(r)
	case 18:
		return decodeStandardClassBPositionReport(r)
	case 19:
		return decodeExtendedClassBPositionReport(r)
	case 20:
		return decodeDataLinkManagementMessage(r)
	case 21:
		return decodeAidToNavigationReport(r)
	case 24:
		return decodeStaticDataReport(r)
	case 27:
		return decodeLongRangeBroadcast(r)
	default:
		return nil, nmea.UnsupportedMessageTypeError(msgType)
	}
}

func asNmeaErr(err error) *nmea.Error {
	if err == nil {
		return nil
	}
	return err.(*nmea.Error)
}
