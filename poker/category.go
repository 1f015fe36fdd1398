package poker

// Category is a hand category. Lower values are stronger hands.
type Category uint8

const (
	RoyalFlush Category = iota + 1
	StraightFlush
	FourOfAKind
	FullHouse
	Flush
	Straight
	ThreeOfAKind
	TwoPair
	Pair
	HighCard
)

// Categories lists every category from strongest to weakest
var Categories = []Category{
	RoyalFlush, StraightFlush, FourOfAKind, FullHouse, Flush,
	Straight, ThreeOfAKind, TwoPair, Pair, HighCard,
}

// String returns the readable name of the category
func (c Category) String() string {
	switch c {
	case RoyalFlush:
		return "Royal Flush"
	case StraightFlush:
		return "Straight Flush"
	case FourOfAKind:
		return "Four of a Kind"
	case FullHouse:
		return "Full House"
	case Flush:
		return "Flush"
	case Straight:
		return "Straight"
	case ThreeOfAKind:
		return "Three of a Kind"
	case TwoPair:
		return "Two Pair"
	case Pair:
		return "Pair"
	case HighCard:
		return "High Card"
	default:
		return "Unknown"
	}
}

// Beats reports whether c is a stronger category than other
func (c Category) Beats(other Category) bool {
	return c < other
}
