package deck

import (
	"log/slog"
	"math/rand/v2"
)

// Option configures a Deck built by New.
type Option func(Deck) Deck

// WithJokers adds a Red and a Black Joker to the deck when jokers is true.
func WithJokers(jokers bool) Option {
	return func(d Deck) Deck {
		d.jokers = jokers
		return d
	}
}

// WithRand makes the deck shuffle with rng instead of a freshly seeded source.
func WithRand(rng *rand.Rand) Option {
	return func(d Deck) Deck {
		d.rng = rng
		return d
	}
}

// WithSeed makes shuffles reproducible.
func WithSeed(seed1, seed2 uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed1, seed2)))
}

// WithLogger sets the logger used to report reshuffles. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(d Deck) Deck {
		if logger != nil {
			d.logger = logger
		}
		return d
	}
}
