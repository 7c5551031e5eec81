package q931

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallTableAllocateFindRelease(t *testing.T) {
	ct := newCallTable(4, 0x7FFF)

	idx, err := ct.allocate(10)
	require.NoError(t, err)
	assert.Equal(t, uint16(10), ct.get(idx).CRV)

	found, err := ct.find(10)
	require.NoError(t, err)
	assert.Equal(t, idx, found)

	ct.release(10)
	_, err = ct.find(10)
	assert.True(t, IsInvalidCRV(err))

	// releasing an already-free CRV is a no-op, not an error
	assert.NotPanics(t, func() { ct.release(10) })
}

func TestCallTableCreateSkipsInUseCRVs(t *testing.T) {
	ct := newCallTable(8, 0x7FFF)
	ct.nextCRV = 1
	_, err := ct.allocate(2) // CRV 2 is already in use
	require.NoError(t, err)

	first, _, err := ct.create()
	require.NoError(t, err)
	assert.Equal(t, uint16(1), first)

	second, _, err := ct.create()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
	assert.Equal(t, uint16(3), second)
}

func TestCallTableAllocateFailsWhenFull(t *testing.T) {
	ct := newCallTable(2, 0x7FFF)
	_, err := ct.allocate(1)
	require.NoError(t, err)
	_, err = ct.allocate(2)
	require.NoError(t, err)

	_, err = ct.allocate(3)
	assert.True(t, IsTooManyCalls(err))
}

func TestCallTableForEachInUse(t *testing.T) {
	ct := newCallTable(4, 0x7FFF)
	ct.allocate(1)
	ct.allocate(2)

	var seen []uint16
	ct.forEachInUse(func(idx int, call *Call) {
		seen = append(seen, call.CRV)
	})
	assert.ElementsMatch(t, []uint16{1, 2}, seen)
}
