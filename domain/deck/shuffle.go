package deck

import (
	"encoding/binary"
	"errors"
	"math/rand/v2"

	"go.dedis.ch/kyber/v4/suites"
)

var suite suites.Suite = suites.MustFind("Ed25519")

// Shuffle returns the discard pile to the draw pile and then applies a
// uniform random permutation to the whole draw pile.
func (d *Deck) Shuffle() {
	d.ReturnDiscards()
	permute(d.rng, d.drawPile)
}

// permute is a Fisher-Yates shuffle.
func permute[T any](rng *rand.Rand, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// newSource seeds a PCG generator from the suite's random stream.
func newSource() (rand.Source, error) {
	seed := make([]byte, 16)
	suite.RandomStream().XORKeyStream(seed, seed)
	hi := binary.LittleEndian.Uint64(seed[:8])
	lo := binary.LittleEndian.Uint64(seed[8:])
	if hi == 0 && lo == 0 {
		return nil, errors.New("random stream returned an all-zero seed")
	}
	return rand.NewPCG(hi, lo), nil
}
