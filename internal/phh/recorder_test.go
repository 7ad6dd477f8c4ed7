package phh

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/tablestakes/internal/game"
	"github.com/lox/tablestakes/poker"
)

func playShowdown(t *testing.T, rec *Recorder, id string) *game.Hand {
	t.Helper()
	bus := game.NewEventBus()
	bus.Subscribe(rec)

	seats := []game.Seat{
		{Name: "alice", Kind: game.Human, Stack: 100},
		{Name: "bob", Kind: game.Human, Stack: 100},
	}
	h, err := game.NewHand(nil, seats,
		game.WithDeck(poker.NewStackedDeck(poker.MustParseCards("As Kd Ah Qd 9s 9h 4d 7c Jd")...)),
		game.WithEventBus(bus),
		game.WithClock(quartz.NewMock(t)),
		game.WithHandID(id),
	)
	require.NoError(t, err)

	require.NoError(t, h.Raise(0, 10))
	require.NoError(t, h.Call(1))
	for range 3 {
		require.NoError(t, h.Check(0))
	}
	require.True(t, h.IsComplete())
	return h
}

func TestRecorderBuildsHistory(t *testing.T) {
	t.Parallel()
	rec := NewRecorder("", WithTable("test"), WithMinBet(10), WithLogger(log.New(io.Discard)))
	playShowdown(t, rec, "hand-1")

	hands := rec.Hands()
	require.Len(t, hands, 1)
	hist := hands[0]

	assert.Equal(t, "NT", hist.Variant)
	assert.Equal(t, "test", hist.Table)
	assert.Equal(t, "hand-1", hist.HandID)
	assert.Equal(t, 10, hist.MinBet)
	assert.Equal(t, []string{"alice", "bob"}, hist.Players)
	assert.Equal(t, []int{1, 2}, hist.Seats)
	assert.Equal(t, []int{100, 100}, hist.StartingStacks)
	assert.Equal(t, []int{110, 90}, hist.FinishingStacks)
	assert.Equal(t, []int{20, 0}, hist.Winnings)
	assert.Equal(t, []string{"9s", "9h", "4d", "7c", "Jd"}, hist.Board)
	assert.Equal(t, []string{
		"d dh p1 AsAh",
		"d dh p2 KdQd",
		"p1 cbr 10",
		"p2 cc",
		"d db 9s9h4d",
		"p1 cc",
		"d db 7c",
		"p1 cc",
		"d db Jd",
		"p1 cc",
		"p1 sm AsAh",
		"p2 sm KdQd",
	}, hist.Actions)
	assert.Equal(t, "UTC", hist.TimeZone)
	assert.Equal(t, false, hist.Metadata["default_win"])
	assert.NoError(t, rec.Err())
}

func TestRecorderWritesFiles(t *testing.T) {
	t.Parallel()
	dir := filepath.Join(t.TempDir(), "hands")

	var written []string
	rec := NewRecorder(dir, WithOnWrite(func(path string, _ *HandHistory) {
		written = append(written, path)
	}))
	playShowdown(t, rec, "hand-a")
	playShowdown(t, rec, "hand-b")
	require.NoError(t, rec.Err())

	require.Equal(t, []string{
		filepath.Join(dir, "hand-a.phh"),
		filepath.Join(dir, "hand-b.phh"),
	}, written)

	f, err := os.Open(written[0])
	require.NoError(t, err)
	defer f.Close()

	decoded, err := Decode(f)
	require.NoError(t, err)
	assert.Equal(t, "hand-a", decoded.HandID)
	assert.Equal(t, rec.Hands()[0].Actions, decoded.Actions)
	assert.Equal(t, []int{20, 0}, decoded.Winnings)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "no temp files left behind")
}

func TestRecorderReportsWriteErrors(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	rec := NewRecorder(filepath.Join(blocker, "hands"))
	playShowdown(t, rec, "hand-err")

	require.Error(t, rec.Err())
	assert.Contains(t, rec.Err().Error(), "hand-err")
	assert.Len(t, rec.Hands(), 1)
}

func TestRecorderIgnoresUnknownHands(t *testing.T) {
	t.Parallel()
	rec := NewRecorder("")
	rec.OnEvent(game.ActionEvent{Seat: 0, Action: game.Fold})
	assert.Empty(t, rec.Hands())
}
