package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/tablestakes/internal/randutil"
)

func TestSnapshotCopiesState(t *testing.T) {
	t.Parallel()
	h := newTestHand(t, humans(100, 100, 100), defaultDeal)
	must(t, h, h.Raise(0, 10))

	s := h.Snapshot()
	assert.Equal(t, "test-hand", s.HandID)
	assert.Equal(t, PreFlop, s.Round)
	assert.Equal(t, 10, s.Pot)
	assert.Equal(t, 10, s.Highest)
	assert.Equal(t, 1, s.OnAction)
	require.Len(t, s.Seats, 3)
	assert.Equal(t, []string{"As", "Ah"}, s.Seats[0].HoleCards)
	assert.Equal(t, 90, s.Seats[0].Stack)

	s.Seats[0].HoleCards[0] = "2c"
	assert.Equal(t, "As", h.Snapshot().Seats[0].HoleCards[0])
}

func TestFingerprintIgnoresHandID(t *testing.T) {
	t.Parallel()

	play := func(id string, seed int64) uint64 {
		h, err := NewHand(randutil.New(seed), humans(100, 100, 100), WithHandID(id))
		require.NoError(t, err)
		must(t, h, h.Raise(0, 10))
		must(t, h, h.Call(1))
		must(t, h, h.Fold(2))
		fp, err := h.Fingerprint()
		require.NoError(t, err)
		return fp
	}

	assert.Equal(t, play("one", 42), play("two", 42))
	assert.NotEqual(t, play("one", 42), play("one", 43))
}

func TestFingerprintChangesWithActions(t *testing.T) {
	t.Parallel()
	h := newTestHand(t, humans(100, 100), headsUpDeal)

	before, err := h.Fingerprint()
	require.NoError(t, err)
	must(t, h, h.Raise(0, 10))
	after, err := h.Fingerprint()
	require.NoError(t, err)
	assert.NotEqual(t, before, after)
}

func TestCheckInvariantsDetectsBrokenAccounting(t *testing.T) {
	t.Parallel()
	h := newTestHand(t, humans(100, 100), headsUpDeal)
	must(t, h, h.Raise(0, 10))

	h.players[1].Stack += 5
	h.pot--

	err := h.CheckInvariants()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seat 1")
	assert.Contains(t, err.Error(), "pot 9")
}
