package ledger

import (
	"testing"

	"github.com/luca-patrignani/wildcard-poker/domain/poker"
)

func testHand(t *testing.T) ([]poker.Card, poker.Classification) {
	t.Helper()
	hand, err := poker.ParseHand("KC KD KH 5S 5C")
	if err != nil {
		t.Fatal(err)
	}
	return hand, poker.Evaluate(hand)
}

func TestNewHistory(t *testing.T) {
	h := NewHistory()
	if h.Len() != 0 {
		t.Fatalf("expected no draws, got %d", h.Len())
	}
	genesis, err := h.GetLatest()
	if err != nil {
		t.Fatal(err)
	}
	if genesis.Index != 0 || genesis.PrevHash != "0" || genesis.Hash == "" {
		t.Fatalf("unexpected genesis block %+v", genesis)
	}
	if err := h.Verify(); err != nil {
		t.Fatal(err)
	}
}

func TestAppend(t *testing.T) {
	h := NewHistory()
	hand, c := testHand(t)

	block, err := h.Append(hand, c, Metadata{Remaining: 47})
	if err != nil {
		t.Fatalf("unexpected error appending block: %v", err)
	}
	if block.Index != 1 {
		t.Fatalf("expected index 1, got %d", block.Index)
	}
	if block.Classification != "Full house, Kings over 5s" {
		t.Fatalf("unexpected classification %q", block.Classification)
	}
	if len(block.Hand) != 5 || block.Hand[0] != "KC" {
		t.Fatalf("unexpected hand %v", block.Hand)
	}
	genesis, err := h.GetByIndex(0)
	if err != nil {
		t.Fatal(err)
	}
	if block.PrevHash != genesis.Hash {
		t.Fatal("block not linked to genesis")
	}
	if h.Len() != 1 || len(h.Draws()) != 1 {
		t.Fatalf("expected one draw, got %d", h.Len())
	}
}

func TestAppendMultipleBlocks(t *testing.T) {
	h := NewHistory()
	hand, c := testHand(t)
	for i := range 10 {
		if _, err := h.Append(hand, c, Metadata{Remaining: 47 - i, Reshuffled: i == 5}); err != nil {
			t.Fatalf("unexpected error appending block %d: %v", i, err)
		}
	}
	if h.Len() != 10 {
		t.Fatalf("expected 10 draws, got %d", h.Len())
	}
	if err := h.Verify(); err != nil {
		t.Fatal(err)
	}
}

func TestGetByIndexOutOfRange(t *testing.T) {
	h := NewHistory()
	if _, err := h.GetByIndex(1); err == nil {
		t.Fatal("expected error for index out of range")
	}
	if _, err := h.GetByIndex(-1); err == nil {
		t.Fatal("expected error for negative index")
	}
}

func TestVerifyEmptyHistory(t *testing.T) {
	h := &History{blocks: []Block{}}
	if err := h.Verify(); err == nil {
		t.Fatal("expected error for empty history verification, got nil")
	}
	if _, err := h.GetLatest(); err == nil {
		t.Fatal("expected error for empty history, got nil")
	}
}

func TestVerifyDetectsTampering(t *testing.T) {
	tests := []struct {
		name   string
		tamper func(h *History)
	}{
		{"genesis", func(h *History) { h.blocks[0].PrevHash = "invalid" }},
		{"hash", func(h *History) { h.blocks[1].Hash = "tamperedhash" }},
		{"link", func(h *History) { h.blocks[2].PrevHash = "wronghash" }},
		{"index", func(h *History) { h.blocks[1].Index = 5 }},
		{"classification", func(h *History) { h.blocks[2].Classification = "Royal Flush of Spades" }},
		{"hand", func(h *History) { h.blocks[1].Hand[0] = "AS" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHistory()
			hand, c := testHand(t)
			for range 2 {
				if _, err := h.Append(hand, c, Metadata{Remaining: 47}); err != nil {
					t.Fatal(err)
				}
			}
			tt.tamper(h)
			if err := h.Verify(); err == nil {
				t.Fatal("expected verification error, got nil")
			}
		})
	}
}
