package poker

// Category is the descriptive class of a poker hand, weakest first.
type Category uint8

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

func (c Category) String() string {
	switch c {
	case HighCard:
		return "high card"
	case Pair:
		return "pair"
	case TwoPair:
		return "two pair"
	case ThreeOfAKind:
		return "three of a kind"
	case Straight:
		return "straight"
	case Flush:
		return "flush"
	case FullHouse:
		return "full house"
	case FourOfAKind:
		return "four of a kind"
	case StraightFlush:
		return "straight flush"
	default:
		return "unknown"
	}
}

// Classify returns the category of the best five-card hand that can be made
// from cards. Fewer than five cards are classified by rank groups only, so
// two hole cards give Pair or HighCard.
func Classify(cards []Card) Category {
	var rankCounts [13]int
	var suitMasks [4]uint16
	var rankMask uint16
	for _, c := range cards {
		rankCounts[c.Rank()]++
		suitMasks[c.Suit()] |= 1 << c.Rank()
		rankMask |= 1 << c.Rank()
	}

	flush := false
	for _, m := range suitMasks {
		if popcount(m) >= 5 {
			if hasStraight(m) {
				return StraightFlush
			}
			flush = true
		}
	}

	var quads, trips, pairs int
	for _, n := range rankCounts {
		switch {
		case n >= 4:
			quads++
		case n == 3:
			trips++
		case n == 2:
			pairs++
		}
	}

	switch {
	case quads > 0:
		return FourOfAKind
	case trips >= 2, trips == 1 && pairs > 0:
		return FullHouse
	case flush:
		return Flush
	case hasStraight(rankMask):
		return Straight
	case trips == 1:
		return ThreeOfAKind
	case pairs >= 2:
		return TwoPair
	case pairs == 1:
		return Pair
	default:
		return HighCard
	}
}

// hasStraight reports five consecutive ranks in mask, counting A-2-3-4-5.
func hasStraight(mask uint16) bool {
	ranks := uint32(mask) << 1
	if mask&(1<<Ace) != 0 {
		ranks |= 1
	}
	for i := 0; i <= 9; i++ {
		if ranks>>i&0x1f == 0x1f {
			return true
		}
	}
	return false
}

func popcount(m uint16) int {
	n := 0
	for m != 0 {
		m &= m - 1
		n++
	}
	return n
}
