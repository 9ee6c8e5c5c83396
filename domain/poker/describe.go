package poker

import (
	"errors"
	"fmt"

	"github.com/paulhankin/poker"
)

// ErrNotDescribable is returned by Describe for hands the literal evaluator
// cannot handle: hands holding a Joker, or hands of other than 5 or 7 cards.
var ErrNotDescribable = errors.New("hand cannot be described without wildcards")

// Describe returns the literal (no wildcard) description of a 5 or 7 card
// hand as produced by github.com/paulhankin/poker. It is a secondary,
// detail-level reading of the hand and never affects Evaluate.
func Describe(cards []Card) (string, error) {
	if len(cards) != 5 && len(cards) != 7 {
		return "", fmt.Errorf("%w: %d cards", ErrNotDescribable, len(cards))
	}
	converted := make([]poker.Card, 0, len(cards))
	for i, c := range cards {
		if c.IsJoker() {
			return "", fmt.Errorf("%w: card %d is a joker", ErrNotDescribable, i+1)
		}
		pc, err := poker.MakeCard(poker.Suit(c.suit), literalRank(c.rank))
		if err != nil {
			return "", fmt.Errorf("invalid card %s: %w", c, err)
		}
		converted = append(converted, pc)
	}
	return poker.Describe(converted)
}

// literalRank maps a Rank to the library's numbering (Ace=1, King=13).
func literalRank(r Rank) poker.Rank {
	if r == Ace {
		return poker.Rank(1)
	}
	return poker.Rank(int(r) + 2)
}
