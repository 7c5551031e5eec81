package q931

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTrunk(t *testing.T, clock func() int64) *Trunk {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Channels = []ChannelType{ChannelB, ChannelB}
	tr := NewTrunk(cfg, NewGenericDialect(), clock)
	tr.SetLayer2Tx(func(Primitive, byte, []byte) error { return nil })
	tr.SetLayer4Tx(func(*BridgeEvent) error { return nil })
	return tr
}

func TestTimerStartStopTick(t *testing.T) {
	now := int64(0)
	tr := newTestTrunk(t, func() int64 { return now })

	idx, err := tr.calls.allocate(1)
	require.NoError(t, err)
	call := tr.calls.get(idx)

	tr.StartTimer(call, T303)
	assert.Equal(t, T303, call.timerID)

	now += 1000
	tr.Tick(now) // below T303's 4s default, should not fire

	assert.Equal(t, T303, call.timerID)

	now += 10_000
	tr.Tick(now) // past the deadline now

	assert.Equal(t, TimerNone, call.timerID)
}

func TestStopTimerOnlyClearsMatchingID(t *testing.T) {
	now := int64(0)
	tr := newTestTrunk(t, func() int64 { return now })
	idx, _ := tr.calls.allocate(1)
	call := tr.calls.get(idx)

	tr.StartTimer(call, T303)
	tr.StartTimer(call, T305) // replaces the running timer

	tr.StopTimer(call, T303) // stale id, should be a no-op
	assert.Equal(t, T305, call.timerID)

	tr.StopTimer(call, T305)
	assert.Equal(t, TimerNone, call.timerID)
}

func TestTimerOverrideFromConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TimerOverrides[T303] = 500
	tr := newTestTrunk(t, func() int64 { return 0 })
	tr.Config = cfg

	assert.Equal(t, int64(500), tr.timerDefault(T303).Milliseconds())
}
