package poker

// Category is a poker hand class, ordered from weakest to strongest.
type Category int

const (
	Nothing Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

func (c Category) String() string {
	switch c {
	case Nothing:
		return "nothing"
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
	case RoyalFlush:
		return "royal flush"
	}
	return "unknown"
}

// Classification is the result of Evaluate: the best category found and
// its human-readable label, e.g. "Four Kings" or "Flush of Spades".
type Classification struct {
	Category Category
	Label    string
}

func (c Classification) String() string {
	return c.Label
}
