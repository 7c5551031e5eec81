package q931

import "testing"

func TestPackUnpackSetupRoundTrip(t *testing.T) {
	d := NewGenericDialect()

	msg := &Message{Header: Header{
		ProtocolDiscriminator: PDCallControl,
		CRV:                   42,
		MessageType:           MsgSetup,
	}}
	msg.Insert(IEBearerCapability, &BearerCapability{InfoTransferCapability: 0x8, TransferMode: 0, InfoTransferRate: 0x10})
	msg.Insert(IEChannelIdentification, &ChannelIdentification{IsPRI: true, Exclusive: true, ChannelNumber: 3})
	msg.Insert(IECallingPartyNumber, &Number{Digits: "5551234", HasPresentation: true})
	msg.Insert(IECalledPartyNumber, &Number{Digits: "5556789"})

	data, err := PackMessage(d, msg)
	if err != nil {
		t.Fatalf("PackMessage() error = %v", err)
	}

	got, err := UnpackMessage(d, data)
	if err != nil {
		t.Fatalf("UnpackMessage() error = %v", err)
	}

	if got.Header.CRV != 42 || got.Header.MessageType != MsgSetup {
		t.Fatalf("header mismatch: %+v", got.Header)
	}
	calling, ok := got.CallingNumber()
	if !ok || calling.Digits != "5551234" {
		t.Errorf("CallingNumber() = %+v, ok=%v", calling, ok)
	}
	called, ok := got.CalledNumber()
	if !ok || called.Digits != "5556789" {
		t.Errorf("CalledNumber() = %+v, ok=%v", called, ok)
	}
	ci, ok := got.ChannelIdentification()
	if !ok || ci.ChannelNumber != 3 || !ci.Exclusive {
		t.Errorf("ChannelIdentification() = %+v, ok=%v", ci, ok)
	}
}

func TestUnpackMessageRejectsIllegalIE(t *testing.T) {
	// PackMessage only ever emits IEs from the dialect's whitelist, so an
	// illegal frame has to be built by hand rather than round-tripped
	// through it (a round trip would just silently drop the offending IE).
	d := NewGenericDialect()

	var data []byte
	data = append(data, byte(PDCallControl))
	data = append(data, encodeCRV(1, false)...)
	data = append(data, byte(MsgReleaseComplete))
	data = append(data, byte(IECallingPartyNumber), 0x01, 0x31) // not whitelisted for RELEASE_COMPLETE

	_, err := UnpackMessage(d, data)
	if !IsIllegalIE(err) {
		t.Errorf("UnpackMessage() error = %v, want IsIllegalIE", err)
	}
}

func TestEncodeDecodeCRVTwoOctetForm(t *testing.T) {
	encoded := encodeCRV(0x1234, true)
	value, fromTerminator, long, err := decodeCRV(encoded[1:]) // skip the length octet
	if err != nil {
		t.Fatalf("decodeCRV() error = %v", err)
	}
	if value != 0x1234 || !fromTerminator || long {
		t.Errorf("decodeCRV() = (%d, %v, %v), want (0x1234, true, false)", value, fromTerminator, long)
	}
}

func TestEncodeDecodeCRVShortForm(t *testing.T) {
	encoded := encodeCRV(5, false)
	value, fromTerminator, _, err := decodeCRV(encoded[1:]) // skip the length octet
	if err != nil {
		t.Fatalf("decodeCRV() error = %v", err)
	}
	if value != 5 || fromTerminator {
		t.Errorf("decodeCRV() = (%d, %v), want (5, false)", value, fromTerminator)
	}
}
