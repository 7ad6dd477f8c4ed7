package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cards string
		want  Category
	}{
		{"As Kd", HighCard},
		{"9s 9d", Pair},
		{"As Kd 7c 4h 2s", HighCard},
		{"As Ad 7c 4h 2s", Pair},
		{"As Ad 7c 7h 2s 2d", TwoPair},
		{"7s 7d 7c 4h 2s", ThreeOfAKind},
		{"As 2d 3c 4h 5s", Straight},
		{"Ts Jd Qc Kh As 2d", Straight},
		{"2s 7s 9s Js Ks Ad", Flush},
		{"7s 7d 7c 4h 4s", FullHouse},
		{"7s 7d 7c 4h 4s 4d", FullHouse},
		{"7s 7d 7c 7h 4s 4d Ac", FourOfAKind},
		{"5h 6h 7h 8h 9h Ah Ad", StraightFlush},
		{"Ah 2h 3h 4h 5h", StraightFlush},
		{"Qs Ks As 2s 3d", HighCard},
	}

	for _, tc := range tests {
		t.Run(tc.cards, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(MustParseCards(tc.cards)))
		})
	}
}
