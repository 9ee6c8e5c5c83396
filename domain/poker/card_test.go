package poker

import "testing"

func TestCardDisplay(t *testing.T) {
	tests := []struct {
		card  Card
		long  string
		short string
	}{
		{card: Card{rank: Queen, suit: Hearts}, long: "Queen of Hearts", short: "QH"},
		{card: Card{rank: Ten, suit: Spades}, long: "10 of Spades", short: "10S"},
		{card: Card{rank: Two, suit: Clubs}, long: "2 of Clubs", short: "2C"},
		{card: Card{rank: Ace, suit: Diamonds}, long: "Ace of Diamonds", short: "AD"},
		{card: NewJoker(Red), long: "Red Joker", short: "Jk(R)"},
		{card: NewJoker(Black), long: "Black Joker", short: "Jk(B)"},
	}
	for _, tt := range tests {
		if got := tt.card.Display(Long); got != tt.long {
			t.Fatalf("expected %s, got %s", tt.long, got)
		}
		if got := tt.card.Display(Short); got != tt.short {
			t.Fatalf("expected %s, got %s", tt.short, got)
		}
		if tt.card.String() != tt.long {
			t.Fatalf("String() should match the long form, got %s", tt.card.String())
		}
	}
}

func TestCardValues(t *testing.T) {
	c, err := NewCard(Jack, Diamonds)
	if err != nil {
		t.Fatal(err)
	}
	if c.IsJoker() {
		t.Fatal("standard card reported as joker")
	}
	if c.RankValue() != 9 {
		t.Fatalf("expected rank value 9, got %d", c.RankValue())
	}
	if c.SuitValue() != 2 {
		t.Fatalf("expected suit value 2, got %d", c.SuitValue())
	}

	j := NewJoker(Black)
	if !j.IsJoker() {
		t.Fatal("joker not reported as joker")
	}
	if j.RankValue() != JokerRankValue {
		t.Fatalf("expected joker rank value %d, got %d", JokerRankValue, j.RankValue())
	}
	spade, _ := NewCard(Two, Spades)
	if j.SuitValue() <= spade.SuitValue() {
		t.Fatalf("joker suit value %d must sort after spades %d", j.SuitValue(), spade.SuitValue())
	}
}

func TestNewCardInvalid(t *testing.T) {
	if _, err := NewCard(Ace+1, Clubs); err == nil {
		t.Fatal("expected error for rank above ace")
	}
	if _, err := NewCard(Two, Spades+1); err == nil {
		t.Fatal("expected error for unknown suit")
	}
}

func TestParseCardRoundTrip(t *testing.T) {
	for _, s := range Suits {
		for _, r := range Ranks {
			c, err := NewCard(r, s)
			if err != nil {
				t.Fatal(err)
			}
			parsed, err := ParseCard(c.Display(Short))
			if err != nil {
				t.Fatal(err)
			}
			if parsed != c {
				t.Fatalf("expected %v, got %v", c, parsed)
			}
		}
	}
	for _, j := range []Card{NewJoker(Red), NewJoker(Black)} {
		parsed, err := ParseCard(j.Display(Short))
		if err != nil {
			t.Fatal(err)
		}
		if parsed != j {
			t.Fatalf("expected %v, got %v", j, parsed)
		}
	}
}

func TestParseCardLenient(t *testing.T) {
	c, err := ParseCard(" th ")
	if err != nil {
		t.Fatal(err)
	}
	if c.Rank() != Ten || c.Suit() != Hearts {
		t.Fatalf("expected 10 of Hearts, got %v", c)
	}
	c, err = ParseCard("jk(r)")
	if err != nil {
		t.Fatal(err)
	}
	if !c.IsJoker() || c.Color() != Red {
		t.Fatalf("expected Red Joker, got %v", c)
	}
}

func TestParseCardInvalid(t *testing.T) {
	for _, s := range []string{"", "S", "1S", "11H", "10X", "ZZ", "Jk(G)"} {
		if _, err := ParseCard(s); err == nil {
			t.Fatalf("expected error parsing %q", s)
		}
	}
}

func TestParseHand(t *testing.T) {
	cards, err := ParseHand("10S, JS QS\tKS AS")
	if err != nil {
		t.Fatal(err)
	}
	if len(cards) != 5 {
		t.Fatalf("expected 5 cards, got %d", len(cards))
	}
	if _, err := ParseHand("10S JS XX"); err == nil {
		t.Fatal("expected error for invalid card")
	}
}

func TestSortByRank(t *testing.T) {
	cards := mustHand(t, "Jk(R) AS 2C KD 2H")
	SortByRank(cards)
	want := []string{"2C", "2H", "KD", "AS", "Jk(R)"}
	for i, c := range cards {
		if c.Display(Short) != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], c.Display(Short))
		}
	}
}

func mustHand(t *testing.T, s string) []Card {
	t.Helper()
	cards, err := ParseHand(s)
	if err != nil {
		t.Fatal(err)
	}
	return cards
}
