package q931

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureTrunk wires a test trunk with channels that record every frame
// sent to L2 and every event sent to L4, so a test can assert on the
// sequence the engine produced (spec.md §8 end-to-end scenarios).
func captureTrunk(t *testing.T, role Role) (*Trunk, *[]*Message, *[]*BridgeEvent) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Role = role
	cfg.Channels = []ChannelType{ChannelB, ChannelB}
	cfg.AutoConnectAck = true

	d := NewGenericDialect()
	tr := NewTrunk(cfg, d, func() int64 { return 0 })

	var sent []*Message
	var events []*BridgeEvent
	tr.SetLayer2Tx(func(_ Primitive, _ byte, data []byte) error {
		msg, err := UnpackMessage(d, data)
		if err != nil {
			return err
		}
		sent = append(sent, msg)
		return nil
	})
	tr.SetLayer4Tx(func(ev *BridgeEvent) error {
		events = append(events, ev)
		return nil
	})
	return tr, &sent, &events
}

// TestOutgoingCallEstablishment exercises spec.md §8 scenario 1: TE
// originates SETUP, receives CALL_PROCEEDING then CONNECT, and the
// engine auto-acks with CONNECT_ACKNOWLEDGE.
func TestOutgoingCallEstablishment(t *testing.T) {
	tr, sent, events := captureTrunk(t, RoleTE)

	setup := &Message{Header: Header{ProtocolDiscriminator: PDCallControl, MessageType: MsgSetup}}
	setup.Insert(IECalledPartyNumber, &Number{Digits: "5551234"})
	tr.Rx43(setup)

	require.Len(t, *sent, 1)
	crv := (*sent)[0].Header.CRV
	assert.NotZero(t, crv)

	idx, err := tr.calls.find(crv)
	require.NoError(t, err)
	assert.Equal(t, StateU1, tr.calls.get(idx).State)

	proceeding := &Message{Header: Header{ProtocolDiscriminator: PDCallControl, CRV: crv, FromTerminator: true, MessageType: MsgCallProceeding}}
	tr.Rx23(DLData, 0, mustPack(t, NewGenericDialect(), proceeding))
	assert.Equal(t, StateU3, tr.calls.get(idx).State)

	connect := &Message{Header: Header{ProtocolDiscriminator: PDCallControl, CRV: crv, FromTerminator: true, MessageType: MsgConnect}}
	tr.Rx23(DLData, 0, mustPack(t, NewGenericDialect(), connect))

	assert.Equal(t, StateU10, tr.calls.get(idx).State)
	require.Len(t, *sent, 2) // SETUP + auto CONNECT_ACKNOWLEDGE
	assert.Equal(t, MsgConnectAck, (*sent)[1].Header.MessageType)

	var gotUp bool
	for _, ev := range *events {
		if ev.Kind == EventUp {
			gotUp = true
		}
	}
	assert.True(t, gotUp, "expected an EventUp bridge event")
}

// TestIncomingCallAcceptedChannel exercises spec.md §8 scenario 2: NT
// receives SETUP with an explicit called number, picks a channel, and
// raises EventStart with the called/calling numbers populated.
func TestIncomingCallAcceptedChannel(t *testing.T) {
	tr, _, events := captureTrunk(t, RoleNT)

	setup := &Message{Header: Header{ProtocolDiscriminator: PDCallControl, CRV: 7, MessageType: MsgSetup}}
	setup.Insert(IEChannelIdentification, &ChannelIdentification{IsPRI: true, Exclusive: true, ChannelNumber: 1})
	setup.Insert(IECalledPartyNumber, &Number{Digits: "100"})
	setup.Insert(IECallingPartyNumber, &Number{Digits: "200"})

	tr.Rx23(DLData, 0, mustPack(t, NewGenericDialect(), setup))

	require.Len(t, *events, 1)
	ev := (*events)[0]
	assert.Equal(t, EventStart, ev.Kind)
	assert.Equal(t, byte(1), ev.BChan)
	assert.Equal(t, "100", ev.CalledNumber)
	assert.Equal(t, "200", ev.CallingNumber)
}

// TestDisconnectReleasesChannelAndCRV exercises spec.md §8 scenario 3:
// a DISCONNECT from the peer while a call is up must free the B-channel
// and eventually release the CRV once RELEASE/RELEASE_COMPLETE round-trip.
func TestDisconnectReleasesChannelAndCRV(t *testing.T) {
	tr, sent, _ := captureTrunk(t, RoleTE)

	idx, err := tr.calls.allocate(9)
	require.NoError(t, err)
	call := tr.calls.get(idx)
	call.State = StateU10
	call.BChan = 0
	tr.markChannelInUse(0, true)

	disc := &Message{Header: Header{ProtocolDiscriminator: PDCallControl, CRV: 9, FromTerminator: true, MessageType: MsgDisconnect}}
	disc.Insert(IECause, &CauseIE{Value: CauseNormalClearing})
	tr.Rx23(DLData, 0, mustPack(t, NewGenericDialect(), disc))

	require.Len(t, *sent, 1)
	assert.Equal(t, MsgRelease, (*sent)[0].Header.MessageType)
	assert.True(t, tr.channelInUse(0), "channel stays reserved until RELEASE_COMPLETE")

	relComplete := &Message{Header: Header{ProtocolDiscriminator: PDCallControl, CRV: 9, FromTerminator: true, MessageType: MsgReleaseComplete}}
	tr.Rx23(DLData, 0, mustPack(t, NewGenericDialect(), relComplete))

	assert.False(t, tr.channelInUse(0))
	_, err = tr.calls.find(9)
	assert.True(t, IsInvalidCRV(err), "CRV should be released after RELEASE_COMPLETE")
}

// TestSetupOnKnownCRVIsRejected exercises spec.md §8 scenario 4.
func TestSetupOnKnownCRVIsRejected(t *testing.T) {
	tr, sent, _ := captureTrunk(t, RoleNT)
	_, err := tr.calls.allocate(3)
	require.NoError(t, err)

	setup := &Message{Header: Header{ProtocolDiscriminator: PDCallControl, CRV: 3, MessageType: MsgSetup}}
	tr.Rx23(DLData, 0, mustPack(t, NewGenericDialect(), setup))

	require.Len(t, *sent, 1)
	assert.Equal(t, MsgDisconnect, (*sent)[0].Header.MessageType)
}

// TestOverlapDialAccumulatesDigits exercises spec.md §8 scenario 5.
func TestOverlapDialAccumulatesDigits(t *testing.T) {
	tr, _, events := captureTrunk(t, RoleNT)

	setup := &Message{Header: Header{ProtocolDiscriminator: PDCallControl, CRV: 11, MessageType: MsgSetup}}
	setup.Insert(IEChannelIdentification, &ChannelIdentification{IsPRI: true, Exclusive: true, ChannelNumber: 2})
	tr.Rx23(DLData, 0, mustPack(t, NewGenericDialect(), setup))

	idx, err := tr.calls.find(11)
	require.NoError(t, err)
	assert.Equal(t, StateN25, tr.calls.get(idx).State)

	info1 := &Message{Header: Header{ProtocolDiscriminator: PDCallControl, CRV: 11, MessageType: MsgInformation}}
	info1.Insert(IECalledPartyNumber, &Number{Digits: "55"})
	tr.Rx23(DLData, 0, mustPack(t, NewGenericDialect(), info1))
	assert.Equal(t, StateN25, tr.calls.get(idx).State)

	info2 := &Message{Header: Header{ProtocolDiscriminator: PDCallControl, CRV: 11, MessageType: MsgInformation}}
	info2.Insert(IECalledPartyNumber, &Number{Digits: "1234"})
	info2.Insert(IESendingComplete, &SendingComplete{})
	tr.Rx23(DLData, 0, mustPack(t, NewGenericDialect(), info2))

	assert.Equal(t, StateN6, tr.calls.get(idx).State)

	var gotStart bool
	for _, ev := range *events {
		if ev.Kind == EventStart && ev.CalledNumber == "551234" {
			gotStart = true
		}
	}
	assert.True(t, gotStart, "expected the accumulated digits in an EventStart")
}

// TestGlobalRestartResetsAllCalls exercises spec.md §8 scenario 6.
func TestGlobalRestartResetsAllCalls(t *testing.T) {
	tr, sent, events := captureTrunk(t, RoleNT)
	idx, err := tr.calls.allocate(20)
	require.NoError(t, err)
	tr.calls.get(idx).BChan = 0
	tr.markChannelInUse(0, true)

	restart := &Message{Header: Header{ProtocolDiscriminator: PDCallControl, MessageType: MsgRestart}}
	restart.Insert(IERestartIndicator, &RestartIndicator{Class: RestartAllInterfaces})
	tr.Rx23(DLData, 0, mustPack(t, NewGenericDialect(), restart))

	assert.False(t, tr.channelInUse(0))
	require.Len(t, *sent, 1)
	assert.Equal(t, MsgRestartAck, (*sent)[0].Header.MessageType)

	var gotRestart bool
	for _, ev := range *events {
		if ev.Kind == EventRestart {
			gotRestart = true
		}
	}
	assert.True(t, gotRestart)
}

func TestIllegalMessageForStateSendsStatus(t *testing.T) {
	tr, sent, _ := captureTrunk(t, RoleTE)
	idx, err := tr.calls.allocate(5)
	require.NoError(t, err)
	tr.calls.get(idx).State = StateU1

	// CONNECT_ACKNOWLEDGE is not legal in U1 for this dialect's table.
	connectAck := &Message{Header: Header{ProtocolDiscriminator: PDCallControl, CRV: 5, FromTerminator: true, MessageType: MsgConnectAck}}
	tr.Rx23(DLData, 0, mustPack(t, NewGenericDialect(), connectAck))

	require.Len(t, *sent, 1)
	assert.Equal(t, MsgStatus, (*sent)[0].Header.MessageType)
}

func mustPack(t *testing.T, d *Dialect, msg *Message) []byte {
	t.Helper()
	data, err := PackMessage(d, msg)
	require.NoError(t, err)
	return data
}
