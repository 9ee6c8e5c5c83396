package poker

import (
	"fmt"
	"slices"
	"strings"
)

// ParseCard reads a card in the short display form, e.g. "10S", "JD", "ah"
// or "Jk(R)". Parsing is case-insensitive.
func ParseCard(s string) (Card, error) {
	str := strings.ToUpper(strings.TrimSpace(s))
	switch str {
	case "JK(R)":
		return NewJoker(Red), nil
	case "JK(B)":
		return NewJoker(Black), nil
	}
	if len(str) < 2 {
		return Card{}, fmt.Errorf("invalid card string: %q", s)
	}

	var suit Suit
	switch str[len(str)-1] {
	case 'C':
		suit = Clubs
	case 'D':
		suit = Diamonds
	case 'H':
		suit = Hearts
	case 'S':
		suit = Spades
	default:
		return Card{}, fmt.Errorf("invalid suit in %q", s)
	}

	rankStr := str[:len(str)-1]
	for _, r := range Ranks {
		if r.Abbrev() == rankStr {
			return NewCard(r, suit)
		}
	}
	if rankStr == "T" {
		return NewCard(Ten, suit)
	}
	return Card{}, fmt.Errorf("invalid rank in %q", s)
}

// ParseHand parses a whitespace or comma separated list of short-form cards.
func ParseHand(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	cards := make([]Card, 0, len(fields))
	for i, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i+1, err)
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// SortByRank sorts cards ascending by RankValue, Jokers last. The sort is
// stable so equal ranks keep their draw order.
func SortByRank(cards []Card) {
	slices.SortStableFunc(cards, func(a, b Card) int {
		return a.RankValue() - b.RankValue()
	})
}
