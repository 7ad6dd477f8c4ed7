package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardCreation(t *testing.T) {
	t.Parallel()

	aceSpades := NewCard(Ace, Spades)
	assert.Equal(t, Ace, aceSpades.Rank())
	assert.Equal(t, Spades, aceSpades.Suit())
	assert.Equal(t, "As", aceSpades.String())
	assert.Equal(t, "A♠", aceSpades.Glyph())
	assert.False(t, aceSpades.IsRed())

	twoClubs := NewCard(Two, Clubs)
	assert.Equal(t, "2c", twoClubs.String())
	assert.True(t, NewCard(Ten, Hearts).IsRed())
	assert.False(t, Card(NumCards).Valid())
}

func TestParseCard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Card
		wantErr bool
	}{
		{input: "As", want: NewCard(Ace, Spades)},
		{input: "2h", want: NewCard(Two, Hearts)},
		{input: "td", want: NewCard(Ten, Diamonds)},
		{input: "K♣", want: NewCard(King, Clubs)},
		{input: "Xs", wantErr: true},
		{input: "Az", wantErr: true},
		{input: "10s", want: NewCard(Ten, Spades)},
		{input: "11s", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseCard(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseCardsRoundTrip(t *testing.T) {
	t.Parallel()

	cards, err := ParseCards("As Kd 7c 2h")
	require.NoError(t, err)
	require.Len(t, cards, 4)
	assert.Equal(t, "As Kd 7c 2h", FormatCards(cards))

	_, err = ParseCards("As 1d")
	assert.Error(t, err)
}

func TestAll52CardsUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for _, c := range FullDeck() {
		s := c.String()
		assert.False(t, seen[s], "duplicate card %s", s)
		seen[s] = true

		parsed, err := ParseCard(s)
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}
	assert.Len(t, seen, NumCards)
}
