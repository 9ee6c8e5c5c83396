package poker

import (
	"fmt"
	"strconv"
)

// Rank is the face value of a standard card, ordered from Two (0) to Ace (12).
type Rank uint8

// Card rank constants, lowest first.
const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// JokerRankValue is the rank value reported by a Joker. It sorts above Ace.
const JokerRankValue = 14

// Ranks lists every rank in ascending order.
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// String returns the long rank name ("2".."10", "Jack", "Queen", "King", "Ace").
func (r Rank) String() string {
	switch r {
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case Ace:
		return "Ace"
	}
	if r < Jack {
		return strconv.Itoa(int(r) + 2)
	}
	return "?"
}

// Abbrev returns the short rank form used by Display(Short).
func (r Rank) Abbrev() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	return r.String()
}

// Plural returns the rank name as used inside hand labels ("Kings", "7s").
func (r Rank) Plural() string {
	return r.String() + "s"
}

func (r Rank) valid() bool {
	return r <= Ace
}

// Suit of a standard card, ordered Clubs, Diamonds, Hearts, Spades.
type Suit uint8

// Card suit constants (0-3)
const (
	Clubs    Suit = iota // ♣ (black)
	Diamonds             // ♦ (red)
	Hearts               // ♥ (red)
	Spades               // ♠ (black)
)

// Suits lists every suit in ascending order.
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// JokerSuitValue is the suit value reported by a Joker, one past Spades.
const JokerSuitValue = 5

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	case Hearts:
		return "Hearts"
	case Spades:
		return "Spades"
	}
	return "?"
}

// Initial returns the first letter of the suit name.
func (s Suit) Initial() string {
	return s.String()[:1]
}

// IsRed reports whether the suit is printed in red.
func (s Suit) IsRed() bool {
	return s == Diamonds || s == Hearts
}

func (s Suit) valid() bool {
	return s <= Spades
}

// Color labels a Joker. It only matters for display.
type Color uint8

const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	if c == Red {
		return "Red"
	}
	return "Black"
}

// Form selects the rendering used by Card.Display.
type Form int

const (
	Long Form = iota
	Short
)

// Card is an immutable playing card: either a standard rank/suit pair or a
// Joker carrying a display colour. The zero value is the Two of Clubs.
type Card struct {
	rank  Rank
	suit  Suit
	joker bool
	color Color
}

// NewCard creates a standard card.
//
// Parameters:
//   - rank: Two..Ace
//   - suit: Clubs..Spades
//
// Returns the Card or an error if rank or suit is outside its universe.
func NewCard(rank Rank, suit Suit) (Card, error) {
	if !rank.valid() || !suit.valid() {
		return Card{}, fmt.Errorf("invalid card %d, %d", rank, suit)
	}
	return Card{rank: rank, suit: suit}, nil
}

// NewJoker creates a Joker of the given colour.
func NewJoker(color Color) Card {
	return Card{joker: true, color: color}
}

// IsJoker reports whether the card is a wildcard.
func (c Card) IsJoker() bool {
	return c.joker
}

// Rank returns the rank of a standard card. It is meaningless for a Joker;
// use RankValue when a total order is needed.
func (c Card) Rank() Rank {
	return c.rank
}

// Suit returns the suit of a standard card. It is meaningless for a Joker.
func (c Card) Suit() Suit {
	return c.suit
}

// Color returns the colour of a Joker.
func (c Card) Color() Color {
	return c.color
}

// RankValue returns the 0-based rank index, or JokerRankValue for a Joker.
func (c Card) RankValue() int {
	if c.joker {
		return JokerRankValue
	}
	return int(c.rank)
}

// SuitValue returns the 1-based suit index, or JokerSuitValue for a Joker.
func (c Card) SuitValue() int {
	if c.joker {
		return JokerSuitValue
	}
	return int(c.suit) + 1
}

// Display renders the card in the long ("Queen of Hearts", "Red Joker") or
// short ("QH", "Jk(R)") form.
func (c Card) Display(form Form) string {
	if c.joker {
		if form == Short {
			return "Jk(" + c.color.String()[:1] + ")"
		}
		return c.color.String() + " Joker"
	}
	if form == Short {
		return c.rank.Abbrev() + c.suit.Initial()
	}
	return c.rank.String() + " of " + c.suit.String()
}

// String returns the long display form.
func (c Card) String() string {
	return c.Display(Long)
}
