package deck

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/luca-patrignani/wildcard-poker/domain/poker"
)

// ErrInsufficientCards is returned by Draw when more cards are requested than
// the whole deck holds, even after the discards are shuffled back in.
var ErrInsufficientCards = errors.New("insufficient cards")

// Deck owns a fixed universe of cards split between a draw pile and a
// discard pile. Cards are never created or lost after construction: every
// card is always in exactly one of the two piles.
//
// A Deck is not safe for concurrent use.
type Deck struct {
	drawPile    []poker.Card
	discardPile []poker.Card
	jokers      bool
	rng         *rand.Rand
	logger      *slog.Logger
	reshuffles  int
}

// New creates a deck holding all 52 standard cards, plus a Red and a Black
// Joker when WithJokers(true) is given. The draw pile is in suit-major,
// rank-minor order until the first Shuffle.
func New(opts ...Option) (*Deck, error) {
	d := Deck{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		d = opt(d)
	}
	if d.rng == nil {
		src, err := newSource()
		if err != nil {
			return nil, fmt.Errorf("seeding shuffle source: %w", err)
		}
		d.rng = rand.New(src)
	}
	d.fill()
	return &d, nil
}

func (d *Deck) fill() {
	d.drawPile = make([]poker.Card, 0, len(poker.Suits)*len(poker.Ranks)+2)
	for _, s := range poker.Suits {
		for _, r := range poker.Ranks {
			c, _ := poker.NewCard(r, s)
			d.drawPile = append(d.drawPile, c)
		}
	}
	if d.jokers {
		d.drawPile = append(d.drawPile, poker.NewJoker(poker.Red), poker.NewJoker(poker.Black))
	}
	d.discardPile = nil
}

// Draw takes n cards from the top of the draw pile, moves them to the
// discard pile and returns them sorted ascending by rank with Jokers last.
//
// If the draw pile holds fewer than n cards the deck is reshuffled first
// (discards included), which is logged and counted by Reshuffles. If the
// whole deck is still too small, Draw returns ErrInsufficientCards and the
// piles are left as they were after the reshuffle.
//
// A non-positive n returns an empty hand.
func (d *Deck) Draw(n int) ([]poker.Card, error) {
	if n <= 0 {
		return []poker.Card{}, nil
	}
	if len(d.drawPile) < n {
		d.logger.Warn(fmt.Sprintf("deck only contains %d cards, reshuffling", len(d.drawPile)),
			"requested", n,
			"discarded", len(d.discardPile),
		)
		d.Shuffle()
		d.reshuffles++
	}
	if len(d.drawPile) < n {
		return nil, fmt.Errorf("%w: requested %d, deck holds %d", ErrInsufficientCards, n, d.Size())
	}

	hand := make([]poker.Card, n)
	copy(hand, d.drawPile[:n])
	d.drawPile = d.drawPile[n:]
	d.discardPile = append(d.discardPile, hand...)
	poker.SortByRank(hand)
	return hand, nil
}

// ReturnDiscards moves the discard pile to the bottom of the draw pile
// without changing the order of either.
func (d *Deck) ReturnDiscards() {
	pile := make([]poker.Card, 0, len(d.drawPile)+len(d.discardPile))
	pile = append(pile, d.drawPile...)
	pile = append(pile, d.discardPile...)
	d.drawPile = pile
	d.discardPile = nil
}

// Size returns the total number of cards the deck was built with.
func (d *Deck) Size() int {
	return len(d.drawPile) + len(d.discardPile)
}

// Remaining returns the number of cards in the draw pile.
func (d *Deck) Remaining() int {
	return len(d.drawPile)
}

// Discarded returns the number of cards in the discard pile.
func (d *Deck) Discarded() int {
	return len(d.discardPile)
}

// DrawPile returns a copy of the draw pile, top card first.
func (d *Deck) DrawPile() []poker.Card {
	return append([]poker.Card(nil), d.drawPile...)
}

// DiscardPile returns a copy of the discard pile in the order cards were drawn.
func (d *Deck) DiscardPile() []poker.Card {
	return append([]poker.Card(nil), d.discardPile...)
}

// HasJokers reports whether the deck was built with the two Jokers.
func (d *Deck) HasJokers() bool {
	return d.jokers
}

// Reshuffles returns how many times Draw had to reshuffle an exhausted pile.
func (d *Deck) Reshuffles() int {
	return d.reshuffles
}
