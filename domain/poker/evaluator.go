package poker

import "fmt"

// hand is the pre-grouped view of a card set shared by every check.
type hand struct {
	literals []Card
	jokers   int
	byRank   [Ace + 1]int
	bySuit   [Spades + 1][]Card
}

func newHand(cards []Card) hand {
	var h hand
	for _, c := range cards {
		if c.IsJoker() {
			h.jokers++
			continue
		}
		h.literals = append(h.literals, c)
		h.byRank[c.rank]++
		h.bySuit[c.suit] = append(h.bySuit[c.suit], c)
	}
	return h
}

// bestRank returns the highest rank whose literal count plus the Jokers
// reaches n.
func (h hand) bestRank(n int) (Rank, bool) {
	for r := int(Ace); r >= int(Two); r-- {
		if h.byRank[r] > 0 && h.byRank[r]+h.jokers >= n {
			return Rank(r), true
		}
	}
	return 0, false
}

// trueRanks returns the ranks with at least n literal cards, highest first.
func (h hand) trueRanks(n int) []Rank {
	var ranks []Rank
	for r := int(Ace); r >= int(Two); r-- {
		if h.byRank[r] >= n {
			ranks = append(ranks, Rank(r))
		}
	}
	return ranks
}

type check func(h hand) (Classification, bool)

// checks in priority order; the first match wins.
var checks = []check{
	straightFlush,
	fourOfAKind,
	fullHouse,
	flush,
	straight,
	threeOfAKind,
	twoPair,
	pair,
}

// Evaluate returns the best classification achievable from cards, using
// any Jokers as wildcards. cards may have any length and order; an empty
// or hopeless set yields the Nothing classification. Evaluate does not
// modify cards and is safe for concurrent use.
func Evaluate(cards []Card) Classification {
	h := newHand(cards)
	for _, c := range checks {
		if res, ok := c(h); ok {
			return res
		}
	}
	return Classification{Category: Nothing, Label: "Nothing!"}
}

func straightFlush(h hand) (Classification, bool) {
	found := false
	var bestSuit Suit
	bestKey := -1
	for _, s := range Suits {
		cs := h.bySuit[s]
		if len(cs) == 0 || len(cs)+h.jokers < 5 {
			continue
		}
		var counts [Ace + 1]int
		for _, c := range cs {
			counts[c.rank]++
		}
		high, ok := findStraight(counts, h.jokers)
		if !ok {
			continue
		}
		// suit only breaks ties between equally high straights
		key := int(high)*10 + int(s)
		if key > bestKey {
			bestKey, bestSuit, found = key, s, true
		}
	}
	if !found {
		return Classification{}, false
	}

	// the whole Joker pool is available again: a royal may use Jokers
	// differently than the straight found above
	royal := true
	jokersLeft := h.jokers
	for _, r := range []Rank{Ten, Jack, Queen, King, Ace} {
		if hasRank(h.bySuit[bestSuit], r) {
			continue
		}
		if jokersLeft > 0 {
			jokersLeft--
			continue
		}
		royal = false
	}
	if royal {
		return Classification{Category: RoyalFlush, Label: "Royal Flush of " + bestSuit.String()}, true
	}
	return Classification{Category: StraightFlush, Label: "Straight Flush of " + bestSuit.String()}, true
}

func hasRank(cards []Card, r Rank) bool {
	for _, c := range cards {
		if c.rank == r {
			return true
		}
	}
	return false
}

func fourOfAKind(h hand) (Classification, bool) {
	r, ok := h.bestRank(4)
	if !ok {
		return Classification{}, false
	}
	return Classification{Category: FourOfAKind, Label: "Four " + r.Plural()}, true
}

// fullHouse only resolves hands with zero or one Joker. With two Jokers any
// pair already makes four of a kind, which is checked first.
func fullHouse(h hand) (Classification, bool) {
	pairs := h.trueRanks(2)
	switch h.jokers {
	case 0:
		for _, triple := range h.trueRanks(3) {
			for _, p := range pairs {
				if p != triple {
					return fullHouseOf(triple, p), true
				}
			}
		}
	case 1:
		// the Joker turns the lower of the two best pairs into a triple
		if len(pairs) >= 2 {
			return fullHouseOf(pairs[0], pairs[1]), true
		}
	}
	return Classification{}, false
}

func fullHouseOf(triple, pair Rank) Classification {
	return Classification{
		Category: FullHouse,
		Label:    fmt.Sprintf("Full house, %s over %s", triple.Plural(), pair.Plural()),
	}
}

// flush picks the highest suit ordinal among the qualifying suits, not the
// suit holding the highest cards.
func flush(h hand) (Classification, bool) {
	for s := int(Spades); s >= int(Clubs); s-- {
		n := len(h.bySuit[s])
		if n > 0 && n+h.jokers >= 5 {
			return Classification{Category: Flush, Label: "Flush of " + Suit(s).String()}, true
		}
	}
	return Classification{}, false
}

func straight(h hand) (Classification, bool) {
	high, ok := findStraight(h.byRank, h.jokers)
	if !ok {
		return Classification{}, false
	}
	return Classification{Category: Straight, Label: high.String() + " high straight"}, true
}

// findStraight searches for the highest five-rank run. Each rank present in
// counts is tried as the low anchor, highest first; missing ranks above the
// anchor are covered by Jokers while any remain. A run cannot extend past
// Ace. When no anchor works the wheel (Ace to 5) is tried last.
func findStraight(counts [Ace + 1]int, jokers int) (Rank, bool) {
	for anchor := int(Ace); anchor >= int(Two); anchor-- {
		if counts[anchor] == 0 || anchor+4 > int(Ace) {
			continue
		}
		left := jokers
		ok := true
		for step := 1; step <= 4; step++ {
			if counts[anchor+step] > 0 {
				continue
			}
			if left > 0 {
				left--
				continue
			}
			ok = false
			break
		}
		if ok {
			return Rank(anchor + 4), true
		}
	}

	left := jokers
	for _, r := range []Rank{Ace, Two, Three, Four, Five} {
		if counts[r] > 0 {
			continue
		}
		if left == 0 {
			return 0, false
		}
		left--
	}
	return Five, true
}

func threeOfAKind(h hand) (Classification, bool) {
	r, ok := h.bestRank(3)
	if !ok {
		return Classification{}, false
	}
	return Classification{Category: ThreeOfAKind, Label: "Three " + r.Plural()}, true
}

func twoPair(h hand) (Classification, bool) {
	pairs := h.trueRanks(2)
	if h.jokers > 0 {
		// a Joker pairs the highest card not already in a pair
		for r := int(Ace); r >= int(Two); r-- {
			if h.byRank[r] == 1 {
				pairs = insertRank(pairs, Rank(r))
				break
			}
		}
	}
	if len(pairs) < 2 {
		return Classification{}, false
	}
	return Classification{
		Category: TwoPair,
		Label:    fmt.Sprintf("Two pair, %s and %s", pairs[0].Plural(), pairs[1].Plural()),
	}, true
}

// insertRank adds r to a descending rank list, keeping it descending.
func insertRank(ranks []Rank, r Rank) []Rank {
	out := make([]Rank, 0, len(ranks)+1)
	inserted := false
	for _, x := range ranks {
		if !inserted && r > x {
			out = append(out, r)
			inserted = true
		}
		out = append(out, x)
	}
	if !inserted {
		out = append(out, r)
	}
	return out
}

func pair(h hand) (Classification, bool) {
	r, ok := h.bestRank(2)
	if !ok {
		return Classification{}, false
	}
	return Classification{Category: Pair, Label: "Pair of " + r.Plural()}, true
}
