package deck

import (
	"math/rand/v2"
	"testing"
)

func TestShuffleRecyclesDiscards(t *testing.T) {
	d := newTestDeck(t, true)
	if _, err := d.Draw(20); err != nil {
		t.Fatal(err)
	}
	d.Shuffle()
	if d.Remaining() != 54 || d.Discarded() != 0 {
		t.Fatalf("expected 54/0 after shuffle, got %d/%d", d.Remaining(), d.Discarded())
	}
}

func TestShuffleIsReproducibleWithSeed(t *testing.T) {
	a := newTestDeck(t, false)
	b := newTestDeck(t, false)
	a.Shuffle()
	b.Shuffle()
	pa, pb := a.DrawPile(), b.DrawPile()
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("position %d differs: %v vs %v", i, pa[i], pb[i])
		}
	}

	c, err := New()
	if err != nil {
		t.Fatal(err)
	}
	c.Shuffle()
	if c.Size() != 52 {
		t.Fatalf("expected 52 cards, got %d", c.Size())
	}
}

func TestPermuteIsUniform(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	const trials = 60000
	var counts [3][3]int
	for range trials {
		s := []int{0, 1, 2}
		permute(rng, s)
		for pos, v := range s {
			counts[v][pos]++
		}
	}
	for v := range counts {
		for pos, n := range counts[v] {
			if n < trials/3-1000 || n > trials/3+1000 {
				t.Fatalf("value %d landed at %d %d times out of %d", v, pos, n, trials)
			}
		}
	}
}

func TestNewSource(t *testing.T) {
	src, err := newSource()
	if err != nil {
		t.Fatal(err)
	}
	a, b := src.Uint64(), src.Uint64()
	if a == b {
		t.Fatalf("source repeated %d", a)
	}
}
